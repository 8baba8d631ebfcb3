package hpxml

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allKinds returns one fresh instance of every generated kind.
func allKinds() []Entity {
	return []Entity{
		newHeader(), newBuilding(), newSite(), newBuildingConstruction(),
		newAttic(), newFoundation(), newRoof(), newRimJoist(), newWall(),
		newFoundationWall(), newFloor(), newSlab(), newWindow(), newSkylight(),
		newDoor(), newHeatingSystem(), newCoolingSystem(), newHeatPump(),
		newHVACDistribution(), newDuctLeakageMeasurement(), newDuct(),
		newWaterHeatingSystem(),
	}
}

func TestAttributeNamesHaveOneFlagEach(t *testing.T) {
	for _, e := range allKinds() {
		t.Run(string(e.Kind()), func(t *testing.T) {
			names := AttributeNames(e)
			declared := e.attrs()

			require.Len(t, names, 2*len(declared))

			seen := map[string]int{}
			for _, n := range names {
				seen[n]++
			}

			for _, a := range declared {
				assert.Equal(t, 1, seen[a.Name], a.Name)
				assert.Equal(t, 1, seen[a.Name+FlagSuffix], a.Name+FlagSuffix)
			}
		})
	}
}

func TestAttributeNamesStableAcrossInstances(t *testing.T) {
	first := AttributeNames(newWall())
	second := AttributeNames(newWall())

	assert.Equal(t, first, second)
}

func TestWithFlagsIsIdempotent(t *testing.T) {
	once := withFlags([]string{"area", "azimuth"})
	twice := withFlags(once)

	assert.Equal(t, []string{"area", "azimuth", "area_isdefaulted", "azimuth_isdefaulted"}, once)
	assert.Equal(t, once, twice)
}

func TestGetSet(t *testing.T) {
	w := newWall()

	v, err := Get(w, "area")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, Set(w, "area", 500))
	require.NoError(t, Set(w, "area_isdefaulted", true))
	require.NoError(t, Set(w, "wall_type", WallTypeWoodStud))
	require.NoError(t, Set(w, "exterior_adjacent_to", "outside"))

	v, err = Get(w, "area")
	require.NoError(t, err)
	assert.Equal(t, 500.0, v)
	assert.True(t, w.AreaIsDefaulted)
	assert.Equal(t, WallTypeWoodStud, *w.WallType)
	assert.Equal(t, LocationOutside, *w.ExteriorAdjacentTo)

	flag, err := Get(w, "area_isdefaulted")
	require.NoError(t, err)
	assert.Equal(t, true, flag)

	require.NoError(t, Set(w, "area", nil))
	assert.Nil(t, w.Area)

	err = Set(w, "area_isdefaulted", "yes")
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = Set(w, "area", "large")
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.ErrorContains(t, err, "Wall.area (float)")
}

func TestUnknownAttributeSuggestsClosestName(t *testing.T) {
	fw := newFoundationWall()

	_, err := Get(fw, "depth_below_grad")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAttribute))

	var ue *UnknownAttributeError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, KindFoundationWall, ue.Kind)
	assert.Equal(t, []string{"depth_below_grade"}, ue.Suggestions)
	assert.Contains(t, err.Error(), `did you mean "depth_below_grade"?`)
}

func TestApplyRejectsBeforeAssigning(t *testing.T) {
	w := newWall()

	err := Apply(w, Attrs{"area": 100.0, "aera": 5.0})
	require.ErrorIs(t, err, ErrUnknownAttribute)
	assert.Nil(t, w.Area)

	require.NoError(t, Apply(w, Attrs{"id": "Wall1", "area": 100.0}))
	assert.Equal(t, "Wall1", w.ID)
	assert.Equal(t, 100.0, *w.Area)
}

func TestFieldsAndIsEmpty(t *testing.T) {
	d := newDoor()
	assert.True(t, IsEmpty(d))

	d.IDIsDefaulted = true
	assert.True(t, IsEmpty(d), "flags are not data")

	require.NoError(t, Apply(d, Attrs{"id": "Door1", "r_value": 4.4}))
	assert.False(t, IsEmpty(d))

	fields := Fields(d)
	assert.Len(t, fields, len(AttributeNames(d)))
	assert.Equal(t, "Door1", fields["id"])
	assert.Equal(t, 4.4, fields["r_value"])
	assert.Nil(t, fields["area"])
	assert.Equal(t, true, fields["id_isdefaulted"])
}

func TestID(t *testing.T) {
	assert.Empty(t, ID(newDuctLeakageMeasurement()))

	b := NewBuilding()
	b.ID = "MyBuilding"
	assert.Equal(t, "MyBuilding", ID(b))
	assert.Equal(t, `Building "MyBuilding"`, label(b))
	assert.Equal(t, "Site", label(b.Site))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, LocationGarage.IsValid())
	assert.False(t, Location("garden").IsValid())
	assert.Equal(t, FuelTypeElectricity, FuelTypeValues()[0])

	// Values returns a copy.
	vals := OrientationValues()
	vals[0] = "up"
	assert.Equal(t, OrientationNorth, OrientationValues()[0])
}

func TestChoiceAttrDeclaresEveryShape(t *testing.T) {
	for _, a := range Attributes(newAttic()) {
		if a.Type != AttrChoice {
			continue
		}

		assert.Equal(t, "AtticType", a.Path)

		c, ok := a.codec.(choiceCodec[*Attic, AtticType])
		require.True(t, ok)

		for _, ch := range c.choices {
			assert.True(t, ch.value.IsValid(), ch.value)
			assert.True(t, strings.HasPrefix(ch.path, a.Path+"/"), ch.path)
		}
	}
}
