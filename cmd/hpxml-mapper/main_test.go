package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpxml-mapper/hpxml"
	"hpxml-mapper/internal/config"
	"hpxml-mapper/internal/gen"
	"hpxml-mapper/internal/schema"
	"hpxml-mapper/internal/xmlpath"
)

const baseDocument = "../../hpxml/testdata/base.xml"

// run executes the root command and returns what it wrote to stdout and
// stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// writeDocument copies the base document into dir as name after applying
// edit to its text.
func writeDocument(t *testing.T, dir, name string, edit func(string) string) string {
	t.Helper()

	data, err := os.ReadFile(baseDocument)
	require.NoError(t, err)

	text := string(data)
	if edit != nil {
		text = edit(text)
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	return path
}

func twoBuildings(text string) string {
	start := strings.Index(text, "<Building>")
	end := strings.LastIndex(text, "</Building>") + len("</Building>")
	second := strings.Replace(text[start:end], `<BuildingID id="MyBuilding"/>`, `<BuildingID id="Other"/>`, 1)

	return text[:end] + "\n  " + second + text[end:]
}

func TestValidateCommand(t *testing.T) {
	stdout, _, err := run(t, "validate", baseDocument)
	require.NoError(t, err)

	assert.Equal(t, baseDocument+": ok\n", stdout)
}

func TestValidateCommandGlob(t *testing.T) {
	dir := t.TempDir()
	a := writeDocument(t, dir, "a.xml", nil)
	b := writeDocument(t, dir, "b.xml", nil)

	stdout, _, err := run(t, "validate", filepath.Join(dir, "**", "*.xml"), a)
	require.NoError(t, err)

	assert.Equal(t, a+": ok\n"+b+": ok\n", stdout, "each document is validated once, in order")
}

func TestValidateCommandReportsFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeDocument(t, dir, "good.xml", nil)
	dangling := writeDocument(t, dir, "dangling.xml", func(s string) string {
		return strings.Replace(s, `<AttachedToWall idref="Wall1"/>`, `<AttachedToWall idref="Nope"/>`, 1)
	})
	skeleton := writeDocument(t, dir, "skeleton.xml", func(s string) string {
		return strings.Replace(s, `<BuildingID id="MyBuilding"/>`, "", 1)
	})

	stdout, _, err := run(t, "validate", good, dangling, skeleton)
	require.EqualError(t, err, "2 of 3 document(s) failed validation")

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, good+": ok", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], dangling+": "))
	assert.Contains(t, lines[1], `"Nope"`)
	assert.Equal(t, skeleton+": Expected 1 element(s) for xpath: BuildingID [context: /HPXML/Building]", lines[2])
}

func TestValidateCommandNoMatch(t *testing.T) {
	_, _, err := run(t, "validate", filepath.Join(t.TempDir(), "*.xml"))
	assert.ErrorContains(t, err, "no documents match")
}

func TestValidateCommandSelectsBuilding(t *testing.T) {
	path := writeDocument(t, t.TempDir(), "units.xml", twoBuildings)

	_, _, err := run(t, "validate", path)
	assert.ErrorContains(t, err, "1 of 1")

	stdout, _, err := run(t, "validate", "--building", "Other", path)
	require.NoError(t, err)
	assert.Equal(t, path+": ok\n", stdout)

	_, _, err = run(t, "validate", "--multi-unit", path)
	require.NoError(t, err)
}

func TestTranslateCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.xml")

	_, _, err := run(t, "translate", baseDocument, "--out", out)
	require.NoError(t, err)

	want, err := hpxml.Read(baseDocument)
	require.NoError(t, err)

	wantBytes, err := want.Bytes()
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(wantBytes), string(got))

	stdout, _, err := run(t, "translate", out)
	require.NoError(t, err)
	assert.Equal(t, string(got), stdout, "translating a translation changes nothing")
}

func TestTranslateCommandCollapse(t *testing.T) {
	path := writeDocument(t, t.TempDir(), "home.xml", func(s string) string {
		return strings.Replace(s, "<Azimuth>90</Azimuth>", "<Azimuth>0</Azimuth>", 1)
	})

	stdout, _, err := run(t, "translate", "--collapse", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, `<SystemIdentifier id="Window1"/>`)
	assert.NotContains(t, stdout, `<SystemIdentifier id="Window2"/>`)
	assert.Contains(t, stdout, "<Area>180</Area>")
}

func TestTranslateCommandRejectsViolations(t *testing.T) {
	path := writeDocument(t, t.TempDir(), "home.xml", func(s string) string {
		return strings.Replace(s, "<SHGC>0.45</SHGC>", "<SHGC>1.5</SHGC>", 1)
	})

	stdout, stderr, err := run(t, "translate", path)
	require.EqualError(t, err, path+": 1 violation(s)")

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `Window "Window1": shgc must be between 0 and 1, got 1.5`)
}

func TestSelectCommand(t *testing.T) {
	path := writeDocument(t, t.TempDir(), "units.xml", twoBuildings)

	stdout, _, err := run(t, "select", "--building", "Other", path)
	require.NoError(t, err)

	doc, err := xmlpath.Parse([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, []string{"Other"}, hpxml.BuildingIDs(doc.Root()))

	_, _, err = run(t, "select", path)
	assert.EqualError(t, err, "select requires --building")

	_, _, err = run(t, "select", "--building", "Nope", path)
	assert.ErrorIs(t, err, hpxml.ErrNotFound)
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	first := writeDocument(t, dir, "a.xml", nil)
	second := writeDocument(t, dir, "b.xml", twoBuildings)
	out := filepath.Join(dir, "merged.xml")

	_, _, err := run(t, "merge", first, second, "--out", out)
	require.NoError(t, err)

	doc, err := xmlpath.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"MyBuilding_1", "MyBuilding_2", "Other_3"}, hpxml.BuildingIDs(doc.Root()))

	merged, err := hpxml.FromElement(doc.Root())
	require.NoError(t, err)

	violations, err := merged.Check()
	require.NoError(t, err)
	assert.Empty(t, violations, "rewritten references still resolve")
}

func TestGenCommand(t *testing.T) {
	out := t.TempDir()

	stdout, _, err := run(t, "gen", "--schema", "../../hpxml/schema.yaml", "--out", out)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+gen.EnumsFile+"\nwrote "+gen.EntitiesFile+"\n", stdout)

	stdout, _, err = run(t, "gen", "--schema", "../../hpxml/schema.yaml", "--out", out)
	require.NoError(t, err)
	assert.Empty(t, stdout, "unchanged files are not rewritten")

	_, _, err = run(t, "gen", "--schema", filepath.Join(out, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read schema file")
}

func TestGenWritesResolvedSchema(t *testing.T) {
	out := t.TempDir()
	resolved := filepath.Join(out, "resolved.yaml")

	stdout, _, err := run(t, "gen", "--schema", "../../hpxml/schema.yaml", "--out", out, "--resolved", resolved)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+resolved)

	f, err := schema.LoadFile(resolved)
	require.NoError(t, err)

	wall, ok := f.Entity("Wall")
	require.True(t, ok)

	area, ok := wall.Attribute("area")
	require.True(t, ok)
	assert.Equal(t, "Area", area.Path)
	assert.Equal(t, "Area", area.Field)

	for _, r := range f.Relations {
		assert.NotEmpty(t, r.OnDelete, "%s.%s", r.From, r.Attr)
	}
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hpxml-mapper.yaml")

	_, _, err := run(t, "init", "--building", "MyBuilding", path)
	require.NoError(t, err)

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "MyBuilding", cfg.BuildingID)

	_, _, err = run(t, "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, _, err = run(t, "init", "--force", path)
	require.NoError(t, err)
}

func TestConfigFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: debug\nrules: [extra.yaml]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.yaml"), []byte(`
rules:
  - context: /HPXML/Building
    role: warn
    asserts:
      - test: ProjectStatus/EventType
        min: 0
        max: 0
        message: Event type is ignored
`), 0o644))

	stdout, stderr, err := run(t, "validate", "--config", cfgPath, baseDocument)
	require.NoError(t, err)

	assert.Contains(t, stdout, baseDocument+`: Event type is ignored [context: /HPXML/Building, id: "MyBuilding"]`)
	assert.Contains(t, stderr, `"level":"debug"`, "log level comes from the config file")

	_, _, err = run(t, "validate", "--config", cfgPath, "--log-level", "loud", baseDocument)
	assert.ErrorContains(t, err, "log_level")

	_, _, err = run(t, "validate", "--building", "B", "--multi-unit", baseDocument)
	assert.ErrorContains(t, err, "mutually exclusive")
}
