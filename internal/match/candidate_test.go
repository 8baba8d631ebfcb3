package match

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wallAttrs = []string{
	"id", "exterior_adjacent_to", "interior_adjacent_to", "wall_type",
	"area", "azimuth", "orientation", "insulation_assembly_r_value",
}

func TestRankNames(t *testing.T) {
	candidates := RankNames("InteriorAdjacentTo", wallAttrs)

	require.Len(t, candidates, len(wallAttrs))
	assert.Equal(t, "interior_adjacent_to", candidates[0].Name)
	assert.InDelta(t, 1.0, candidates[0].Score, 1e-9)
	assert.Equal(t, "exterior_adjacent_to", candidates[1].Name)
	assert.Equal(t, "interioradjacentto", candidates[0].NormalizedTarget)

	assert.Empty(t, RankNames("x", nil))
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		target   string
		expected []string
	}{
		{"aria", []string{"area"}},
		{"azimut", []string{"azimuth"}},
		{"insulation_assembly_rvalue", []string{"insulation_assembly_r_value"}},
		{"fuel", nil},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.target, wallAttrs, 1))
		})
	}
}

func TestCandidateListSorting(t *testing.T) {
	list := CandidateList{
		{Name: "b", Score: 0.5},
		{Name: "c", Score: 0.9},
		{Name: "a", Score: 0.5},
	}
	sort.Sort(list)

	var got []string
	for _, c := range list {
		got = append(got, c.Name)
	}

	assert.Equal(t, []string{"c", "a", "b"}, got)
	assert.Len(t, list.Top(2), 2)
	assert.Len(t, list.Top(10), 3)
	assert.Len(t, list.AboveThreshold(0.6), 1)
}

func ExampleSuggest() {
	fmt.Println(Suggest("depth_below_grd", []string{"height", "depth_below_grade", "length"}, 1))
	// Output: [depth_below_grade]
}
