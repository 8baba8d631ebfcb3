package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hpxml-mapper/hpxml"
	"hpxml-mapper/internal/diagnostic"
	"hpxml-mapper/internal/xmlpath"
)

// Validator checks a document file before a graph is built from it.
// errs and warnings describe the document; err reports a failure to run.
type Validator interface {
	Validate(ctx context.Context, path string) (errs, warnings []string, err error)
}

// Options configures Load.
type Options struct {
	// BuildingID keeps only the named building. Empty keeps all of them,
	// which requires MultiUnit when there is more than one.
	BuildingID string
	MultiUnit  bool

	Validators []Validator

	// TempDir receives the single-building document handed to validators.
	TempDir string

	CollapseSurfaces bool

	Logger zerolog.Logger
}

// Result is a loaded document.
type Result struct {
	Source   string
	Document *hpxml.Document

	// Warnings come from validators, Violations from Check. Both are
	// prefixed with Source.
	Warnings   []string
	Violations []string

	Merges []hpxml.Merge
}

// LoadError is returned when a document fails validation. No graph is
// built for it.
type LoadError struct {
	Source   string
	Errors   []string
	Warnings []string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%d validation error(s): %s", len(e.Errors), strings.Join(e.Errors, "; "))
}

// Load reads the document at path and runs every stage on it.
func Load(ctx context.Context, path string, opts Options) (*Result, error) {
	log := opts.Logger.With().Str("source", path).Logger()

	doc, err := xmlpath.ReadFile(path)
	if err != nil {
		return nil, err
	}

	removed, err := hpxml.SelectBuilding(doc.Root(), opts.BuildingID, opts.MultiUnit)
	if err != nil {
		return nil, &LoadError{Source: path, Errors: []string{diagnostic.Prefix(path, err.Error())}}
	}

	if opts.BuildingID != "" {
		log = log.With().Str("building_id", opts.BuildingID).Logger()
	}

	log.Debug().Int("removed", removed).Msg("selected building")

	validated := path

	if removed > 0 {
		tmp, err := writeTemp(doc, opts.TempDir)
		if err != nil {
			return nil, err
		}

		defer func() {
			if err := os.Remove(tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
				log.Warn().Err(err).Str("path", tmp).Msg("removing temporary document")
			}
		}()

		validated = tmp
	}

	warnings, err := validate(ctx, path, validated, opts.Validators)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			log.Error().Int("errors", len(le.Errors)).Int("warnings", len(le.Warnings)).Msg("document failed validation")
		}

		return nil, err
	}

	for _, w := range warnings {
		log.Warn().Msg(w)
	}

	d, err := hpxml.FromElement(doc.Root())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().Int("buildings", d.Buildings.Len()).Msg("materialized document")

	res := &Result{Source: path, Document: d, Warnings: warnings}

	violations, err := d.Check()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for _, v := range violations {
		res.Violations = append(res.Violations, diagnostic.Prefix(path, v))
	}

	if len(violations) > 0 {
		log.Info().Int("violations", len(violations)).Msg("document has violations")
	}

	if opts.CollapseSurfaces {
		for _, b := range d.Buildings.Items() {
			merges := b.CollapseSurfaces()
			for _, m := range merges {
				log.Debug().Str("kind", string(m.Kind)).Str("survivor", m.Survivor).Str("removed", m.Removed).Msg("collapsed surface")
			}

			res.Merges = append(res.Merges, merges...)
		}
	}

	return res, nil
}

// validate runs validators on file in order. Messages are attributed to
// source, which differs from file when a temporary document is validated.
func validate(ctx context.Context, source, file string, validators []Validator) ([]string, error) {
	var errs, warnings []string

	for _, v := range validators {
		e, w, err := v.Validate(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}

		for _, msg := range e {
			errs = append(errs, diagnostic.Prefix(source, relabel(msg, file, source)))
		}

		for _, msg := range w {
			warnings = append(warnings, diagnostic.Prefix(source, relabel(msg, file, source)))
		}
	}

	if len(errs) > 0 {
		return nil, &LoadError{Source: source, Errors: errs, Warnings: warnings}
	}

	return warnings, nil
}

// relabel drops the file path a validator may have echoed in msg; the
// source prefix is added by the caller.
func relabel(msg, file, source string) string {
	for _, p := range []string{file, source} {
		if rest, ok := strings.CutPrefix(msg, p+":"); ok {
			return strings.TrimSpace(rest)
		}
	}

	return msg
}

// writeTemp writes doc to a uniquely named file in dir.
func writeTemp(doc *etree.Document, dir string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	path := filepath.Join(dir, "hpxml-"+uuid.NewString()+".xml")
	if err := xmlpath.WriteFile(doc, path); err != nil {
		return "", err
	}

	return path, nil
}
