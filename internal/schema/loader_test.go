package schema

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
enums:
  - name: Location
    values:
      - {name: Outside, value: outside}
entities:
  - name: Wall
    attributes:
      - {name: id, type: id}
      - {name: exterior_adjacent_to, type: enum, enum: Location}
      - {name: area, type: float, min: 0}
      - {name: depth_below_grade, field: Depth, type: float, path: Below/Grade}
  - name: Window
    attributes:
      - {name: id, type: id}
      - {name: wall_idref, type: idref, path: AttachedToWall}
  - name: Enclosure
    attributes: []
    children:
      - {kind: Wall, many: true, path: Walls/Wall}
      - {kind: Window, path: Window}
relations:
  - {from: Window, attr: wall_idref, to: Wall, on_delete: cascade, required: true}
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	// Defaults
	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "hpxml", f.Package)

	wall, ok := f.Entity("Wall")
	require.True(t, ok)

	id, _ := wall.Attribute("id")
	assert.Equal(t, "ID", id.Field)
	assert.Equal(t, "SystemIdentifier", id.Path)

	ext, _ := wall.Attribute("exterior_adjacent_to")
	assert.Equal(t, "ExteriorAdjacentTo", ext.Field)
	assert.Equal(t, "ExteriorAdjacentTo", ext.Path)

	area, _ := wall.Attribute("area")
	require.NotNil(t, area.Min)
	assert.Zero(t, *area.Min)
	assert.Nil(t, area.Max)

	depth, _ := wall.Attribute("depth_below_grade")
	assert.Equal(t, "Depth", depth.Field)
	assert.Equal(t, "Below/Grade", depth.Path)

	enc, _ := f.Entity("Enclosure")
	assert.Equal(t, "Walls", enc.Children[0].Name)
	assert.Equal(t, "Window", enc.Children[1].Name)

	require.Len(t, f.Relations, 1)
	r := f.Relations[0]
	assert.Equal(t, StringOrArray{"Wall"}, r.To)
	assert.Equal(t, Cascade, r.OnDelete)
	assert.True(t, r.Required)

	assert.Equal(t, []Relation{r}, f.RelationsFrom("Window"))
	assert.Empty(t, f.RelationsFrom("Wall"))
	assert.True(t, wall.HasID())
	assert.False(t, enc.HasID())
}

func TestParseRelationDefaults(t *testing.T) {
	f, err := Parse([]byte(`
relations:
  - {from: Heater, attr: related_idref, to: [Furnace, Boiler]}
`))
	require.NoError(t, err)

	r := f.Relations[0]
	assert.Equal(t, StringOrArray{"Furnace", "Boiler"}, r.To)
	assert.Equal(t, Nullify, r.OnDelete)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("entities: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema YAML")

	_, err = Parse([]byte("relations:\n  - {from: A, attr: b, to: {x: 1}}\n"))
	assert.Error(t, err, "to must be a string or a list")
}

func TestWriteFileRoundTrip(t *testing.T) {
	f, err := LoadFile("../../hpxml/schema.yaml")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, WriteFile(f, path))

	again, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, again)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read schema file")
}
