package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"area", "Area"},
		{"id", "ID"},
		{"wall_idref", "WallIDRef"},
		{"attached_to_roof_idrefs", "AttachedToRoofIDRefs"},
		{"fraction_dhw_load_served", "FractionDHWLoadServed"},
		{"heating_efficiency_afue", "HeatingEfficiencyAFUE"},
		{"number_of_bedrooms", "NumberOfBedrooms"},
		{"xml_type", "XMLType"},
		{"double__underscore", "DoubleUnderscore"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, GoName(tt.in))
		})
	}
}

func TestElementName(t *testing.T) {
	assert.Equal(t, "ExteriorAdjacentTo", ElementName("exterior_adjacent_to"))
	assert.Equal(t, "Area", ElementName("area"))
}

func TestAccessorName(t *testing.T) {
	assert.Equal(t, "Wall", AccessorName("wall_idref", TypeIDRef))
	assert.Equal(t, "DistributionSystem", AccessorName("distribution_system_idref", TypeIDRef))
	assert.Equal(t, "RelatedHVAC", AccessorName("related_hvac_idref", TypeIDRef))
	assert.Equal(t, "AttachedToWalls", AccessorName("attached_to_wall_idrefs", TypeIDRefs))
	assert.Equal(t, "AttachedToRoofs", AccessorName("attached_to_roof_idrefs", TypeIDRefs))
	assert.Equal(t, "Area", AccessorName("area", TypeFloat))
}

func TestCollectionField(t *testing.T) {
	assert.Equal(t, "Walls", CollectionField("Wall"))
	assert.Equal(t, "HeatPumps", CollectionField("HeatPump"))
	assert.Equal(t, "HVACDistributions", CollectionField("HVACDistribution"))
	assert.Equal(t, "WaterHeatingSystems", CollectionField("WaterHeatingSystem"))
	assert.Equal(t, "AreaIsDefaulted", FlagField("Area"))
}
