package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpxml-mapper/hpxml"
	"hpxml-mapper/internal/rules"
	"hpxml-mapper/internal/xmlpath"
)

const basePath = "../../hpxml/testdata/base.xml"

// fixture writes the base document, changed by edit, to a temporary
// home.xml and returns its path.
func fixture(t *testing.T, edit func(root *etree.Element)) string {
	t.Helper()

	doc, err := xmlpath.ReadFile(basePath)
	require.NoError(t, err)

	if edit != nil {
		edit(doc.Root())
	}

	path := filepath.Join(t.TempDir(), "home.xml")
	require.NoError(t, xmlpath.WriteFile(doc, path))

	return path
}

// addBuilding appends a copy of the first building identified as id.
func addBuilding(id string) func(root *etree.Element) {
	return func(root *etree.Element) {
		b := xmlpath.Element(root, "Building").Copy()
		xmlpath.AddAttr(xmlpath.Element(b, "BuildingID"), "id", id)
		root.AddChild(b)
	}
}

// recorder is a Validator that remembers what it was shown.
type recorder struct {
	paths     []string
	buildings [][]string

	errs     []string
	warnings []string
	err      error
}

func (r *recorder) Validate(_ context.Context, path string) ([]string, []string, error) {
	r.paths = append(r.paths, path)

	if doc, err := xmlpath.ReadFile(path); err == nil {
		r.buildings = append(r.buildings, hpxml.BuildingIDs(doc.Root()))
	}

	return r.errs, r.warnings, r.err
}

func TestLoad(t *testing.T) {
	var logs bytes.Buffer

	res, err := Load(context.Background(), basePath, Options{
		Validators: []Validator{rules.Default()},
		Logger:     zerolog.New(&logs).Level(zerolog.DebugLevel),
	})
	require.NoError(t, err)

	assert.Equal(t, basePath, res.Source)
	assert.Empty(t, res.Violations)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Merges)
	require.Equal(t, 1, res.Document.Buildings.Len())
	assert.Equal(t, "MyBuilding", res.Document.Buildings.At(0).ID)

	assert.Contains(t, logs.String(), `"source":"../../hpxml/testdata/base.xml"`)
	assert.Contains(t, logs.String(), `"message":"materialized document"`)
}

func TestLoadSelectsBuilding(t *testing.T) {
	path := fixture(t, addBuilding("Other"))
	tmp := t.TempDir()
	rec := &recorder{}

	var logs bytes.Buffer

	res, err := Load(context.Background(), path, Options{
		BuildingID: "Other",
		TempDir:    tmp,
		Validators: []Validator{rec},
		Logger:     zerolog.New(&logs).Level(zerolog.DebugLevel),
	})
	require.NoError(t, err)

	require.Len(t, rec.paths, 1)
	assert.Equal(t, tmp, filepath.Dir(rec.paths[0]), "validators see the single-building document")
	assert.Equal(t, [][]string{{"Other"}}, rec.buildings)

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries, "the temporary document is removed")

	require.Equal(t, 1, res.Document.Buildings.Len())
	assert.Equal(t, "Other", res.Document.Buildings.At(0).ID)
	assert.Contains(t, logs.String(), `"building_id":"Other"`)
}

func TestLoadKeepsSingleBuildingInPlace(t *testing.T) {
	rec := &recorder{}

	_, err := Load(context.Background(), basePath, Options{
		BuildingID: "MyBuilding",
		TempDir:    t.TempDir(),
		Validators: []Validator{rec},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{basePath}, rec.paths, "nothing removed, nothing copied")
}

func TestLoadValidationErrorsAreFatal(t *testing.T) {
	path := fixture(t, addBuilding("Other"))
	tmp := t.TempDir()

	first := &recorder{warnings: []string{"looks odd"}}
	second := &recorder{errs: []string{"bad wall"}}

	res, err := Load(context.Background(), path, Options{
		BuildingID: "MyBuilding",
		TempDir:    tmp,
		Validators: []Validator{first, second},
	})
	assert.Nil(t, res)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.Source)
	assert.Equal(t, []string{path + ": bad wall"}, le.Errors)
	assert.Equal(t, []string{path + ": looks odd"}, le.Warnings)
	assert.EqualError(t, err, "1 validation error(s): "+path+": bad wall")

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries, "the temporary document is removed on failure")
}

func TestLoadRelabelsValidatorMessages(t *testing.T) {
	path := fixture(t, addBuilding("Other"))
	rec := &recorder{}
	echo := validatorFunc(func(_ context.Context, file string) ([]string, []string, error) {
		return []string{file + ":3: element Wall: invalid"}, nil, nil
	})

	_, err := Load(context.Background(), path, Options{
		BuildingID: "Other",
		TempDir:    t.TempDir(),
		Validators: []Validator{rec, echo},
	})

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, []string{path + ": 3: element Wall: invalid"}, le.Errors)
}

func TestLoadValidatorFailure(t *testing.T) {
	boom := errors.New("xmllint not found")

	_, err := Load(context.Background(), basePath, Options{
		Validators: []Validator{&recorder{err: boom}},
	})
	require.ErrorIs(t, err, boom)

	var le *LoadError
	assert.False(t, errors.As(err, &le))
}

func TestLoadSelectionErrors(t *testing.T) {
	path := fixture(t, addBuilding("Other"))

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"ambiguous", Options{}, hpxml.ErrMultipleBuildings.Error()},
		{"unknown", Options{BuildingID: "Nope"}, `building "Nope"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), path, tt.opts)

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Contains(t, le.Errors[0], tt.want)
		})
	}

	res, err := Load(context.Background(), path, Options{MultiUnit: true})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Document.Buildings.Len())
}

func TestLoadReportsViolations(t *testing.T) {
	path := fixture(t, func(root *etree.Element) {
		win := xmlpath.Element(root, "Building/BuildingDetails/Enclosure/Windows/Window/AttachedToWall")
		xmlpath.AddAttr(win, "idref", "Nope")
	})

	res, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)

	require.Len(t, res.Violations, 1)
	assert.Contains(t, res.Violations[0], path+": ")
	assert.Contains(t, res.Violations[0], `"Nope"`)
}

func TestLoadCollapsesSurfaces(t *testing.T) {
	path := fixture(t, func(root *etree.Element) {
		windows := xmlpath.Elements(root, "Building/BuildingDetails/Enclosure/Windows/Window")
		xmlpath.Element(windows[1], "Azimuth").SetText("0")
	})

	res, err := Load(context.Background(), path, Options{CollapseSurfaces: true})
	require.NoError(t, err)

	assert.Equal(t, []hpxml.Merge{{Kind: hpxml.KindWindow, Survivor: "Window1", Removed: "Window2"}}, res.Merges)

	b := res.Document.Buildings.At(0)
	require.Equal(t, 1, b.Windows.Len())
	assert.Equal(t, 180.0, *b.Windows.At(0).Area)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.xml"), Options{})
	assert.ErrorContains(t, err, "reading document")
}

type validatorFunc func(ctx context.Context, path string) ([]string, []string, error)

func (f validatorFunc) Validate(ctx context.Context, path string) ([]string, []string, error) {
	return f(ctx, path)
}
