package xmlpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		input    string
		expected Path
		wantErr  bool
	}{
		{
			input:    "Area",
			expected: Path{Segments: []Segment{{Name: "Area"}}},
		},
		{
			input: "Insulation/AssemblyEffectiveRValue",
			expected: Path{Segments: []Segment{
				{Name: "Insulation"},
				{Name: "AssemblyEffectiveRValue"},
			}},
		},
		{
			input: "AnnualHeatingEfficiency[Units='AFUE']/Value",
			expected: Path{Segments: []Segment{
				{Name: "AnnualHeatingEfficiency", Predicates: []Predicate{{Child: "Units", Value: "AFUE"}}},
				{Name: "Value"},
			}},
		},
		{
			input: "Insulation/Layer[InstallationType='continuous - interior']/NominalRValue",
			expected: Path{Segments: []Segment{
				{Name: "Insulation"},
				{Name: "Layer", Predicates: []Predicate{{Child: "InstallationType", Value: "continuous - interior"}}},
				{Name: "NominalRValue"},
			}},
		},
		{
			input: `Attic[Vented="true"][CapeCod='false']`,
			expected: Path{Segments: []Segment{
				{Name: "Attic", Predicates: []Predicate{
					{Child: "Vented", Value: "true"},
					{Child: "CapeCod", Value: "false"},
				}},
			}},
		},
		{
			input: "/HPXML/Building",
			expected: Path{Absolute: true, Segments: []Segment{
				{Name: "HPXML"},
				{Name: "Building"},
			}},
		},
		{
			input: "Ratio[Value='1/2']",
			expected: Path{Segments: []Segment{
				{Name: "Ratio", Predicates: []Predicate{{Child: "Value", Value: "1/2"}}},
			}},
		},
		{input: "", wantErr: true},
		{input: "A//B", wantErr: true},
		{input: "A[B='x'", wantErr: true},
		{input: "A[B=x]", wantErr: true},
		{input: "A[B]", wantErr: true},
		{input: "1A", wantErr: true},
		{input: "A[B='x]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParsePath(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPathString(t *testing.T) {
	tests := []string{
		"Area",
		"/HPXML/Building/BuildingID",
		"AnnualHeatingEfficiency[Units='AFUE']/Value",
		"AtticType/Attic[Vented='true'][CapeCod='false']",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			p := MustParsePath(input)
			assert.Equal(t, input, p.String())
		})
	}
}

func TestPathSplit(t *testing.T) {
	dir, last := MustParsePath("DistributionSystemType/AirDistribution/Ducts").Split()

	assert.Equal(t, "DistributionSystemType/AirDistribution", dir.String())
	assert.Equal(t, "Ducts", last.Name)
}

func TestMustParsePathPanics(t *testing.T) {
	assert.Panics(t, func() { MustParsePath("A[") })
}
