package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopoSort_Order(t *testing.T) {
	order, err := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{2}
		case 1:
			return []int{2}
		default:
			return nil
		}
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, order)
}

func TestTopoSort_Cycle(t *testing.T) {
	_, err := topoSort(2, func(i int) []int {
		if i == 0 {
			return []int{1}
		}

		return []int{0}
	})
	assert.ErrorIs(t, err, errCycle)
}

func TestTopoSort_OutOfRange(t *testing.T) {
	_, err := topoSort(1, func(int) []int { return []int{3} })
	assert.ErrorContains(t, err, "out of range")
}

func TestCascadeOrder(t *testing.T) {
	f := &File{
		Entities: []Entity{{Name: "Window"}, {Name: "Door"}, {Name: "Wall"}},
		Relations: []Relation{
			{From: "Window", Attr: "wall_idref", To: StringOrArray{"Wall"}, OnDelete: Cascade},
			{From: "Door", Attr: "wall_idref", To: StringOrArray{"Wall"}, OnDelete: Nullify},
		},
	}

	order, err := f.CascadeOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"Door", "Wall", "Window"}, order)

	f.Relations = append(f.Relations, Relation{From: "Wall", Attr: "window_idref", To: StringOrArray{"Window"}, OnDelete: Cascade})

	_, err = f.CascadeOrder()
	assert.ErrorIs(t, err, errCycle)
}
