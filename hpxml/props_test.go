package hpxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProps(t *testing.T) {
	w := newWall()

	_, err := w.Props().Get("net_area")
	require.ErrorIs(t, err, ErrPropertyNotSet)
	assert.False(t, w.Props().Has("net_area"))

	w.Props()["net_area"] = 420.0

	v, err := PropAs[float64](w.Props(), "net_area")
	require.NoError(t, err)
	assert.Equal(t, 420.0, v)

	_, err = PropAs[string](w.Props(), "net_area")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = PropAs[int](w.Props(), "missing")
	assert.ErrorIs(t, err, ErrPropertyNotSet)
}

func TestPropsAreNotSerialized(t *testing.T) {
	d := NewDocument()
	b := d.Buildings.Append(NewBuilding())
	b.ID = "B1"
	b.Props()["scratch"] = true

	data, err := d.Bytes()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "scratch")
}
