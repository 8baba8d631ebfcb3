package gen

import (
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpxml-mapper/internal/schema"
)

const smallSchema = `
package: model
enums:
  - name: Location
    values:
      - {name: Outside, value: outside}
      - {name: ConditionedSpace, value: conditioned space}
  - name: WallType
    doc: WallType is the framing of a wall.
    values:
      - {name: WoodStud, value: WoodStud}
      - {name: SteelFrame, value: SteelFrame}
entities:
  - name: Wall
    attributes:
      - {name: id, type: id}
      - {name: exterior_adjacent_to, type: enum, enum: Location}
      - name: wall_type
        type: choice
        enum: WallType
        group: WallType
        choices:
          - {value: WoodStud, path: WallType/WoodStud}
          - {value: SteelFrame, path: WallType/SteelFrame}
      - {name: area, type: float, min: 0}
      - {name: azimuth, type: int, min: 0, max: 359}
      - {name: solar_absorptance, type: float, max: 1}
  - name: Window
    attributes:
      - {name: id, type: id}
      - {name: wall_idref, type: idref, path: AttachedToWall}
  - name: Attic
    attributes:
      - {name: id, type: id}
      - {name: attached_to_wall_idrefs, type: idrefs, path: AttachedToWall}
      - {name: related_idref, type: idref, path: Related}
  - name: Building
    custom_check: true
    attributes:
      - {name: building_id, field: ID, type: id, path: BuildingID}
    children:
      - {kind: Wall, many: true, path: Walls/Wall}
      - {kind: Window, many: true, path: Windows/Window}
      - {kind: Attic, many: true, path: Attics/Attic}
      - {name: Summary, kind: Window, path: Summary}
relations:
  - {from: Window, attr: wall_idref, to: Wall, on_delete: cascade, required: true}
  - {from: Attic, attr: attached_to_wall_idrefs, to: Wall}
  - {from: Attic, attr: related_idref, to: [Wall, Window]}
`

func generate(t *testing.T, yaml string, cfg GeneratorConfig) map[string]string {
	t.Helper()

	f, err := schema.Parse([]byte(yaml))
	require.NoError(t, err)

	files, err := NewGenerator(cfg).Generate(f)
	require.NoError(t, err)

	out := map[string]string{}
	for _, file := range files {
		out[file.Filename] = string(file.Content)
	}

	return out
}

func TestGenerator_Enums(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.OutputDir = t.TempDir()

	code := generate(t, smallSchema, cfg)[EnumsFile]

	assert.True(t, strings.HasPrefix(code, "// Code generated by hpxml-mapper gen. DO NOT EDIT.\n\npackage model\n"))
	assert.Contains(t, code, "// WallType is the framing of a wall.\ntype WallType string")
	assert.Contains(t, code, "// Location enumerates the HPXML Location values.\ntype Location string")
	assert.Contains(t, code, `LocationConditionedSpace Location = "conditioned space"`)
	assert.Contains(t, code, "func (v Location) IsValid() bool { return slices.Contains(locationValues, v) }")
	assert.Contains(t, code, "func WallTypeValues() []WallType { return slices.Clone(wallTypeValues) }")
	assertParses(t, EnumsFile, code)
}

func TestGenerator_Entities(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.OutputDir = t.TempDir()

	code := generate(t, smallSchema, cfg)[EntitiesFile]

	for _, want := range []string{
		`KindWall     Kind = "Wall"`,
		"type Wall struct {\n\telement\n",
		"WallType            *WallType\n\tWallTypeIsDefaulted bool",
		"func newWall() *Wall { return &Wall{} }",
		`Walls:   newCollection("Walls/Wall", newWall),`,
		`Summary: newWindow(),`,
		`single{"Summary", e.Summary},`,
		`floatAttr("area", "Area", func(e *Wall) (**float64, *bool) { return &e.Area, &e.AreaIsDefaulted }).atLeast(0),`,
		`intAttr("azimuth", "Azimuth", func(e *Wall) (**int, *bool) { return &e.Azimuth, &e.AzimuthIsDefaulted }).between(0, 359),`,
		`.atMost(1),`,
		`choice[WallType]{WallTypeSteelFrame, "WallType/SteelFrame"},`,
		`identAttr("building_id", "BuildingID", func(e *Building) (*string, *bool) { return &e.ID, &e.IDIsDefaulted }),`,
		`refsAttr("attached_to_wall_idrefs", "AttachedToWall", func(e *Attic) (*[]string, *bool)`,
		"func (e *Window) Wall() (*Wall, error) { return resolveOne[*Wall](e, \"wall_idref\") }",
		"func (e *Attic) AttachedToWalls() ([]*Wall, error) {\n\treturn resolveAll[*Wall](e, \"attached_to_wall_idrefs\")\n}",
		"func (e *Attic) Related() (Entity, error) { return Resolve(e, \"related_idref\") }",
		`{From: KindWindow, Attr: "wall_idref", To: []Kind{KindWall}, OnDelete: Cascade, Required: true},`,
		`{From: KindAttic, Attr: "related_idref", To: []Kind{KindWall, KindWindow}, OnDelete: Nullify},`,
		"func (e *Wall) Check() []string { return checkEntity(e) }",
	} {
		assert.Contains(t, code, want)
	}

	assert.NotContains(t, code, "func (e *Building) Check()", "custom checks are written by hand")
	assertParses(t, EntitiesFile, code)
}

func TestGenerator_PackageOverrideAndComments(t *testing.T) {
	cfg := GeneratorConfig{PackageName: "other", OutputDir: t.TempDir()}

	files := generate(t, smallSchema, cfg)

	assert.Contains(t, files[EnumsFile], "package other\n")
	assert.NotContains(t, files[EnumsFile], "enumerates the HPXML")
	assert.NotContains(t, files[EntitiesFile], "maps the HPXML")
}

func TestGenerator_InvalidSchema(t *testing.T) {
	f, err := schema.Parse([]byte(`
entities:
  - name: Wall
    attributes:
      - {name: area, type: flot}
`))
	require.NoError(t, err)

	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(f)
	require.Error(t, err)
	assert.Nil(t, files)
	assert.Contains(t, err.Error(), "invalid schema")
	assert.Contains(t, err.Error(), "unknown_type")
}

// The committed files must be what the generator produces from the shipped
// declarations.
func TestGenerator_CommittedFilesUpToDate(t *testing.T) {
	const dir = "../../hpxml"

	f, err := schema.LoadFile(filepath.Join(dir, "schema.yaml"))
	require.NoError(t, err)

	files, err := NewGenerator(GeneratorConfig{OutputDir: t.TempDir(), GenerateComments: true}).Generate(f)
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, file := range files {
		committed, err := os.ReadFile(filepath.Join(dir, file.Filename))
		require.NoError(t, err)

		want, err := format.Source(committed)
		require.NoError(t, err)

		assert.Equal(t, string(want), string(file.Content), "%s is stale; run go generate ./hpxml", file.Filename)
	}
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	files := []GeneratedFile{
		{Filename: EnumsFile, Content: []byte("package x\n")},
		{Filename: EntitiesFile, Content: []byte("package x\n\nconst A = 1\n")},
	}

	written, err := WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{EnumsFile, EntitiesFile}, written)

	files[1].Content = []byte("package x\n\nconst A = 2\n")

	written, err = WriteFiles(files, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{EntitiesFile}, written, "unchanged files are skipped")

	data, err := os.ReadFile(filepath.Join(dir, EntitiesFile))
	require.NoError(t, err)
	assert.Equal(t, "package x\n\nconst A = 2\n", string(data))
}

func TestRenderWritesDebugSidecar(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(GeneratorConfig{OutputDir: dir})

	data := &fileData{Tool: tool, PackageName: "bad pkg"}

	file, err := g.render(EnumsFile, enumsTemplate, data)
	require.Error(t, err)
	assert.Contains(t, string(file.Content), "package bad pkg")

	sidecar, err := os.ReadFile(filepath.Join(dir, EnumsFile+unformattedSuffix))
	require.NoError(t, err)
	assert.Equal(t, file.Content, sidecar)
}

func TestUnexported(t *testing.T) {
	tests := map[string]string{
		"Wall":             "wall",
		"HVACDistribution": "hvacDistribution",
		"DHW":              "dhw",
		"lower":            "lower",
		"PTAC":             "ptac",
	}

	for in, want := range tests {
		assert.Equal(t, want, unexported(in), in)
	}
}

func assertParses(t *testing.T, name, code string) {
	t.Helper()

	_, err := parser.ParseFile(token.NewFileSet(), name, code, parser.ParseComments)
	assert.NoError(t, err)
}
