package hpxml

import (
	"reflect"
	"slices"
)

// Merge records one surface folded into another by CollapseSurfaces.
type Merge struct {
	Kind     Kind
	Survivor string
	Removed  string
}

// summed attributes are accumulated into the survivor instead of compared.
var summed = []string{"area", "length", "exposed_perimeter"}

// weighted lists, per kind, the attributes that may differ between merged
// surfaces. depth_below_grade is averaged by length afterwards.
var weighted = map[Kind][]string{
	KindFoundationWall: {"azimuth", "orientation", "depth_below_grade"},
}

const (
	depthAttr  = "depth_below_grade"
	lengthAttr = "length"
)

// CollapseSurfaces merges enclosure surfaces of the same kind that differ
// only in identifier and extensive quantities. Higher-index duplicates are
// folded into the lowest-index survivor, references to the removed surface
// are repointed to the survivor and the removed surface is deleted.
// Surfaces without an identifier are never merged.
// Running it again on a collapsed building merges nothing.
func (b *Building) CollapseSurfaces() []Merge {
	var merges []Merge

	merges = append(merges, collapse(b, &b.Roofs)...)
	merges = append(merges, collapse(b, &b.RimJoists)...)
	merges = append(merges, collapse(b, &b.Walls)...)
	merges = append(merges, collapse(b, &b.FoundationWalls)...)
	merges = append(merges, collapse(b, &b.Floors)...)
	merges = append(merges, collapse(b, &b.Slabs)...)
	merges = append(merges, collapse(b, &b.Windows)...)
	merges = append(merges, collapse(b, &b.Skylights)...)
	merges = append(merges, collapse(b, &b.Doors)...)

	return merges
}

type depthSample struct {
	depth, length float64
}

func collapse[T Entity](b *Building, c *Collection[T]) []Merge {
	var merges []Merge

	samples := map[Entity][]depthSample{}

	for i := 0; i < len(c.items); i++ {
		keep := c.items[i]
		if ID(keep) == "" {
			continue
		}

		for j := i + 1; j < len(c.items); {
			drop := c.items[j]
			if ID(drop) == "" || !sameSurface(keep, drop) {
				j++
				continue
			}

			if _, ok := weighted[keep.Kind()]; ok {
				recordDepth(samples, keep, drop)
			}

			for _, name := range summed {
				accumulate(keep, drop, name)
			}

			merges = append(merges, Merge{Kind: keep.Kind(), Survivor: ID(keep), Removed: ID(drop)})

			b.repoint(keep.Kind(), ID(drop), ID(keep))
			c.Delete(drop)
		}
	}

	for _, keep := range c.items {
		s := samples[keep]
		if len(s) == 0 {
			continue
		}

		if sameDepth(s) {
			_ = Set(keep, depthAttr, s[0].depth)
			continue
		}

		var num, den float64
		for _, x := range s {
			num += x.depth * x.length
			den += x.length
		}

		if den > 0 {
			_ = Set(keep, depthAttr, num/den)
		}
	}

	return merges
}

// recordDepth collects the (depth, length) pairs of every wall folded into
// keep. Walls without a depth contribute none.
func recordDepth(samples map[Entity][]depthSample, keep, drop Entity) {
	if _, seeded := samples[keep]; !seeded {
		samples[keep] = depthSamples(keep)
	}

	samples[keep] = append(samples[keep], depthSamples(drop)...)
}

func depthSamples(e Entity) []depthSample {
	v, _ := Get(e, depthAttr)

	depth, ok := v.(float64)
	if !ok {
		return nil
	}

	return []depthSample{{depth: depth, length: floatOf(e, lengthAttr)}}
}

func sameDepth(s []depthSample) bool {
	for _, x := range s[1:] {
		if x.depth != s[0].depth {
			return false
		}
	}

	return true
}

// sameSurface compares every declared attribute except identifiers and the
// summed or weighted ones.
func sameSurface(a, b Entity) bool {
	skip := weighted[a.Kind()]

	for _, attr := range a.attrs() {
		if attr.Type == AttrID || slices.Contains(summed, attr.Name) || slices.Contains(skip, attr.Name) {
			continue
		}

		if !reflect.DeepEqual(attr.codec.get(a), attr.codec.get(b)) {
			return false
		}
	}

	return true
}

// accumulate adds drop's value of name into keep's when the kind declares it.
func accumulate(keep, drop Entity, name string) {
	if _, ok := infoOf(keep).index[name]; !ok {
		return
	}

	kv, _ := Get(keep, name)
	dv, _ := Get(drop, name)

	if kv == nil && dv == nil {
		return
	}

	_ = Set(keep, name, floatOf(keep, name)+floatOf(drop, name))
}

func floatOf(e Entity, name string) float64 {
	v, _ := Get(e, name)
	f, _ := v.(float64)

	return f
}
