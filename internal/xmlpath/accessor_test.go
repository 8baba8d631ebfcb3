package xmlpath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<HPXML>
  <Building>
    <BuildingID id="MyBuilding"/>
    <HeatingSystem>
      <SystemIdentifier id="HeatingSystem1"/>
      <HeatingSystemType>
        <Furnace/>
      </HeatingSystemType>
      <HeatingSystemFuel>natural gas</HeatingSystemFuel>
      <HeatingCapacity dataSource="software">36000</HeatingCapacity>
      <AnnualHeatingEfficiency>
        <Units>Percent</Units>
        <Value>1.0</Value>
      </AnnualHeatingEfficiency>
      <AnnualHeatingEfficiency>
        <Units>AFUE</Units>
        <Value>0.92</Value>
      </AnnualHeatingEfficiency>
      <FractionHeatLoadServed>1</FractionHeatLoadServed>
      <AttachedToZone idref="Zone1"/>
      <AttachedToZone idref="Zone2"/>
    </HeatingSystem>
  </Building>
</HPXML>
`

func parseSample(t *testing.T) (*etree.Document, *etree.Element) {
	t.Helper()

	doc, err := Parse([]byte(sample))
	require.NoError(t, err)

	hs := Element(doc.Root(), "Building/HeatingSystem")
	require.NotNil(t, hs)

	return doc, hs
}

func TestValue(t *testing.T) {
	_, hs := parseSample(t)

	fuel, ok, err := Value[string](hs, "HeatingSystemFuel")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "natural gas", fuel)

	capacity, ok, err := Value[int](hs, "HeatingCapacity")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 36000, capacity)

	afue, ok, err := Value[float64](hs, "AnnualHeatingEfficiency[Units='AFUE']/Value")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 0.92, afue, 1e-12)

	served, ok, err := Value[bool](hs, "FractionHeatLoadServed")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, served)

	_, ok, err = Value[float64](hs, "AnnualHeatingEfficiency[Units='HSPF']/Value")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = Value[int](hs, "HeatingSystemFuel")
	assert.Error(t, err)
}

func TestValues(t *testing.T) {
	_, hs := parseSample(t)

	units, err := Values[string](hs, "AnnualHeatingEfficiency/Units")
	require.NoError(t, err)
	assert.Equal(t, []string{"Percent", "AFUE"}, units)

	_, err = Values[int](hs, "AnnualHeatingEfficiency/Units")
	assert.Error(t, err)
}

func TestElementsAndAttributes(t *testing.T) {
	doc, hs := parseSample(t)

	zones := Elements(hs, "AttachedToZone")
	require.Len(t, zones, 2)

	id, ok := AttrValue(zones[1], "idref")
	assert.True(t, ok)
	assert.Equal(t, "Zone2", id)

	_, ok = AttrValue(zones[1], "id")
	assert.False(t, ok)

	buildings := Elements(doc.Root(), "/HPXML/Building")
	assert.Len(t, buildings, 1)

	assert.Same(t, hs, Element(hs, ""))
	assert.Nil(t, Element(nil, "Anything"))
}

func TestChildName(t *testing.T) {
	_, hs := parseSample(t)

	assert.Equal(t, "Furnace", ChildName(hs, "HeatingSystemType"))
	assert.Empty(t, ChildName(hs, "HeatingSystemFuel"))
	assert.Empty(t, ChildName(hs, "Missing"))
}

func TestIsDefaulted(t *testing.T) {
	_, hs := parseSample(t)

	assert.True(t, IsDefaulted(Element(hs, "HeatingCapacity")))
	assert.False(t, IsDefaulted(Element(hs, "HeatingSystemFuel")))
}

func TestCreateElementsAsNeeded(t *testing.T) {
	_, root := NewDocument("Wall")

	layer, err := CreateElementsAsNeeded(root, "Insulation/Layer[InstallationType='continuous - interior']/NominalRValue")
	require.NoError(t, err)
	layer.SetText("10")

	// The same path finds the element created above.
	again, err := CreateElementsAsNeeded(root, "Insulation/Layer[InstallationType='continuous - interior']/NominalRValue")
	require.NoError(t, err)
	assert.Same(t, layer, again)

	// A different predicate value creates a sibling.
	ext, err := CreateElementsAsNeeded(root, "Insulation/Layer[InstallationType='continuous - exterior']/NominalRValue")
	require.NoError(t, err)
	ext.SetText("5")

	assert.Len(t, Elements(root, "Insulation"), 1)
	assert.Len(t, Elements(root, "Insulation/Layer"), 2)

	v, ok, err := Value[float64](root, "Insulation/Layer[InstallationType='continuous - exterior']/NominalRValue")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 5.0, v, 1e-12)

	_, err = CreateElementsAsNeeded(root, "/Absolute")
	assert.Error(t, err)

	_, err = CreateElementsAsNeeded(root, "A/*")
	assert.Error(t, err)
}

func TestAppendElement(t *testing.T) {
	_, root := NewDocument("Attic")

	for _, id := range []string{"Roof1", "Roof2"} {
		el, err := AppendElement(root, "AttachedToRoof")
		require.NoError(t, err)
		AddAttr(el, "idref", id)
	}

	refs := Elements(root, "AttachedToRoof")
	require.Len(t, refs, 2)
	assert.Equal(t, "Roof2", refs[1].SelectAttrValue("idref", ""))
}

func TestAddElementAndExtension(t *testing.T) {
	_, root := NewDocument("SoftwareInfo")

	AddElement(root, "SoftwareProgramUsed", "hpxml-mapper", false)
	AddExtension(root, "Timestep", "60", true)
	AddExtension(root, "WholeSFAorMFBuildingSimulation", "false", false)

	assert.Len(t, Elements(root, "extension"), 1)

	ts := Element(root, "extension/Timestep")
	require.NotNil(t, ts)
	assert.True(t, IsDefaulted(ts))
	assert.Equal(t, "60", ts.Text())

	empty := AddElement(root, "Empty", "", false)
	assert.Empty(t, empty.Text())
}

func TestFormatScalar(t *testing.T) {
	assert.Equal(t, "500", FormatScalar(500.0))
	assert.Equal(t, "0.92", FormatScalar(0.92))
	assert.Equal(t, "3.3333333333333335", FormatScalar(10.0/3.0))
	assert.Equal(t, "12", FormatScalar(12))
	assert.Equal(t, "true", FormatScalar(true))
	assert.Equal(t, "x", FormatScalar("x"))
}

func TestWriteAndReadFile(t *testing.T) {
	doc, _ := parseSample(t)

	path := filepath.Join(t.TempDir(), "out.xml")
	require.NoError(t, WriteFile(doc, path))

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	reread, err := ReadFile(path)
	require.NoError(t, err)

	second, err := Bytes(reread)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)

	_, err = Parse([]byte("   "))
	assert.Error(t, err)
}
