package hpxml

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hpxml-mapper/internal/common"
)

const (
	fractionTolerance = 0.01
	areaTolerance     = 1.0
	minutesPerHour    = 60
)

// checkEntity returns the generic violations of e: invalid enumerations,
// out-of-range numbers and references that do not resolve, followed by the
// violations of everything e owns.
func checkEntity(e Entity) []string {
	var errs []string

	for _, a := range e.attrs() {
		if v, ok := a.codec.(validator); ok {
			if bad, invalid := v.invalid(e); invalid {
				errs = append(errs, fmt.Sprintf("%s: invalid %s %q", label(e), a.Name, bad))
			}
		}

		if msg, bad := a.outOfRange(e); bad {
			errs = append(errs, fmt.Sprintf("%s: %s", label(e), msg))
		}
	}

	errs = append(errs, checkRefs(e)...)

	for _, p := range e.children() {
		errs = append(errs, p.check()...)
	}

	return errs
}

// checkRefs converts resolution failures into violations, one per
// reference that does not resolve.
func checkRefs(e Entity) []string {
	var errs []string

	for _, r := range relations {
		if r.From != e.Kind() {
			continue
		}

		var err error
		if isList(e, r.Attr) {
			_, err = ResolveAll(e, r.Attr)
		} else {
			_, err = Resolve(e, r.Attr)
		}

		errs = append(errs, resolutionMessages(err)...)
	}

	return errs
}

func resolutionMessages(err error) []string {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, resolutionMessages(e)...)
		}

		return out
	}

	var re *ResolutionError
	if errors.As(err, &re) {
		return []string{re.Error()}
	}

	return []string{err.Error()}
}

// Check validates the header: the simulation run period must be a valid
// calendar range and the timestep must divide an hour.
func (h *Header) Check() []string {
	errs := checkEntity(h)

	if h.Timestep != nil && (*h.Timestep <= 0 || minutesPerHour%*h.Timestep != 0) {
		errs = append(errs, fmt.Sprintf("Timestep (%d) must be a positive divisor of %d.", *h.Timestep, minutesPerHour))
	}

	beginOK := checkDate(&errs, "Begin", h.SimBeginMonth, h.SimBeginDay)
	endOK := checkDate(&errs, "End", h.SimEndMonth, h.SimEndDay)

	if beginOK && endOK && h.SimBeginMonth != nil && h.SimEndMonth != nil {
		bm, em := *h.SimBeginMonth, *h.SimEndMonth
		bd, ed := deref(h.SimBeginDay, 1), deref(h.SimEndDay, daysIn(em))

		if em < bm || (em == bm && ed < bd) {
			errs = append(errs, fmt.Sprintf("Run Period End Day of Month (%d/%d) must be on or after Begin Day of Month (%d/%d).", em, ed, bm, bd))
		}
	}

	return errs
}

func checkDate(errs *[]string, which string, month, day *int) bool {
	if month == nil {
		if day != nil {
			*errs = append(*errs, fmt.Sprintf("Run Period %s Day of Month (%d) requires a %s Month.", which, *day, which))
			return false
		}

		return true
	}

	if !common.IsInRange(1, *month, 12) {
		*errs = append(*errs, fmt.Sprintf("Run Period %s Month (%d) must be between 1 and 12.", which, *month))
		return false
	}

	if day != nil && !common.IsInRange(1, *day, daysIn(*month)) {
		*errs = append(*errs, fmt.Sprintf("Run Period %s Day of Month (%d) must be between 1 and %d.", which, *day, daysIn(*month)))
		return false
	}

	return true
}

// daysIn returns the number of days of month in a non-leap year.
func daysIn(month int) int {
	return time.Date(2023, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}

	return *p
}

// Check validates the foundation wall: its depth below grade cannot exceed
// its height.
func (e *FoundationWall) Check() []string {
	errs := checkEntity(e)

	if e.DepthBelowGrade != nil && e.Height != nil && *e.DepthBelowGrade > *e.Height {
		errs = append(errs, fmt.Sprintf("%s: depth_below_grade (%g) cannot exceed height (%g)", label(e), *e.DepthBelowGrade, *e.Height))
	}

	return errs
}

// Check validates the building and everything it owns, then applies the
// rules that span several entities.
func (b *Building) Check() []string {
	errs := checkEntity(b)
	errs = append(errs, b.checkIdentifiers()...)
	errs = append(errs, b.checkPrimarySystems()...)
	errs = append(errs, b.checkLoadFractions()...)
	errs = append(errs, b.checkConditionedFloorArea()...)

	return errs
}

func (b *Building) checkIdentifiers() []string {
	var errs []string

	seen := map[string]Kind{}

	walk(b, func(e Entity) {
		if _, ok := e.(*Building); ok {
			return
		}

		id := ID(e)
		if id == "" {
			return
		}

		if first, ok := seen[id]; ok {
			errs = append(errs, fmt.Sprintf("Duplicate SystemIdentifier IDs detected for '%s' (%s and %s).", id, first, e.Kind()))
			return
		}

		seen[id] = e.Kind()
	})

	return errs
}

func (b *Building) checkPrimarySystems() []string {
	var heating, cooling []string

	for _, hs := range b.HeatingSystems.items {
		if deref(hs.PrimarySystem, false) {
			heating = append(heating, label(hs))
		}
	}

	for _, cs := range b.CoolingSystems.items {
		if deref(cs.PrimarySystem, false) {
			cooling = append(cooling, label(cs))
		}
	}

	for _, hp := range b.HeatPumps.items {
		if deref(hp.PrimaryHeatingSystem, false) {
			heating = append(heating, label(hp))
		}

		if deref(hp.PrimaryCoolingSystem, false) {
			cooling = append(cooling, label(hp))
		}
	}

	var errs []string

	if len(heating) > 1 {
		errs = append(errs, "More than one primary heating system: "+strings.Join(heating, ", ")+".")
	}

	if len(cooling) > 1 {
		errs = append(errs, "More than one primary cooling system: "+strings.Join(cooling, ", ")+".")
	}

	return errs
}

func (b *Building) checkLoadFractions() []string {
	var heat, cool, dhw float64

	for _, hs := range b.HeatingSystems.items {
		heat += deref(hs.FractionHeatLoadServed, 0)
	}

	for _, cs := range b.CoolingSystems.items {
		cool += deref(cs.FractionCoolLoadServed, 0)
	}

	for _, hp := range b.HeatPumps.items {
		heat += deref(hp.FractionHeatLoadServed, 0)
		cool += deref(hp.FractionCoolLoadServed, 0)
	}

	for _, wh := range b.WaterHeatingSystems.items {
		dhw += deref(wh.FractionDHWLoadServed, 0)
	}

	var errs []string

	for _, f := range []struct {
		name string
		sum  float64
	}{
		{"heat", heat},
		{"cool", cool},
		{"DHW", dhw},
	} {
		if f.sum > 1+fractionTolerance {
			errs = append(errs, fmt.Sprintf("Expected FractionLoadServed (%s) to sum to <= 1, but calculated sum is %g.", f.name, round(f.sum)))
		}
	}

	return errs
}

func (b *Building) checkConditionedFloorArea() []string {
	if b.Construction == nil || b.Construction.ConditionedFloorArea == nil {
		return nil
	}

	cfa := *b.Construction.ConditionedFloorArea

	var served float64
	for _, d := range b.HVACDistributions.items {
		served += deref(d.ConditionedFloorAreaServed, 0)
	}

	if served > cfa+areaTolerance {
		return []string{fmt.Sprintf("The total conditioned floor area served by the HVAC distribution system(s) (%g) is larger than the conditioned floor area of the building (%g).", round(served), cfa)}
	}

	return nil
}

// round trims float noise from sums in messages.
func round(v float64) float64 {
	const scale = 1e6
	return float64(int64(v*scale+0.5)) / scale
}
