package hpxml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedResolvers(t *testing.T) {
	b := mustBuilding(t, loadBase(t))

	win := b.Windows.At(0)
	wall, err := win.Wall()
	require.NoError(t, err)
	assert.Equal(t, KindWall, wall.Kind())
	assert.Equal(t, "Wall1", ID(wall))

	walls, err := b.Attics.At(0).AttachedToWalls()
	require.NoError(t, err)
	require.Len(t, walls, 2)
	assert.Equal(t, "Wall2", walls[1].ID)

	dist, err := b.HeatingSystems.At(0).DistributionSystem()
	require.NoError(t, err)
	assert.Same(t, b.HVACDistributions.At(0), dist)

	related, err := b.WaterHeatingSystems.At(0).RelatedHVAC()
	require.NoError(t, err)
	assert.Nil(t, related, "unset optional reference")
}

func TestResolveMultipleTargetKinds(t *testing.T) {
	b := mustBuilding(t, loadBase(t))

	wh := b.WaterHeatingSystems.At(0)
	wh.RelatedHVACIDRef = "HeatingSystem1"

	target, err := wh.RelatedHVAC()
	require.NoError(t, err)
	assert.Equal(t, KindHeatingSystem, target.Kind())

	wh.RelatedHVACIDRef = "CoolingSystem1"

	_, err = wh.RelatedHVAC()
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `HeatingSystem or HeatPump "CoolingSystem1"`)
}

func TestWindowOnFoundationWall(t *testing.T) {
	b := mustBuilding(t, loadBase(t))

	win := b.Windows.At(0)
	win.WallIDRef = "FoundationWall1"

	wall, err := win.Wall()
	require.NoError(t, err)
	assert.Same(t, b.FoundationWalls.At(0), wall)
	assert.Empty(t, b.Check())

	require.True(t, b.FoundationWalls.Delete(b.FoundationWalls.At(0)))
	_, ok := b.Windows.Find(win.ID)
	assert.False(t, ok, "windows on a deleted foundation wall are deleted")
}

func TestResolutionErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *Building) error
		wantRef string
		wantMsg string
	}{
		{
			name: "dangling single reference",
			mutate: func(b *Building) error {
				b.Doors.At(0).WallIDRef = "Nope"
				_, err := b.Doors.At(0).Wall()

				return err
			},
			wantRef: "Nope",
			wantMsg: `Door "Door1": wall_idref references unknown Wall or FoundationWall "Nope"`,
		},
		{
			name: "unset required reference",
			mutate: func(b *Building) error {
				b.Windows.At(1).WallIDRef = ""
				_, err := b.Windows.At(1).Wall()

				return err
			},
			wantMsg: `Window "Window2": wall_idref is not set`,
		},
		{
			name: "dangling list member",
			mutate: func(b *Building) error {
				a := b.Attics.At(0)
				a.AttachedToRoofIDRefs = append(a.AttachedToRoofIDRefs, "Roof9")

				roofs, err := a.AttachedToRoofs()
				assert.Len(t, roofs, 1, "resolvable members are still returned")

				return err
			},
			wantRef: "Roof9",
			wantMsg: `Attic "Attic1": attached_to_roof_idrefs references unknown Roof "Roof9"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBuilding(t, loadBase(t))

			err := tt.mutate(b)
			require.ErrorIs(t, err, ErrNotFound)
			assert.EqualError(t, err, tt.wantMsg)

			var re *ResolutionError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.wantRef, re.Ref)
		})
	}
}

func TestResolveNonReference(t *testing.T) {
	b := mustBuilding(t, loadBase(t))

	_, err := Resolve(b.Walls.At(0), "area")
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestDetachedEntityResolvesNothing(t *testing.T) {
	w := newWindow()
	w.WallIDRef = "Wall1"

	_, err := w.Wall()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCascades(t *testing.T) {
	b := mustBuilding(t, loadBase(t))

	wall, _ := b.Walls.Find("Wall1")
	require.True(t, b.Walls.Delete(wall))

	assert.Nil(t, wall.Owner(), "deleted entity is detached")
	assert.Equal(t, 1, b.Walls.Len())
	assert.Zero(t, b.Windows.Len(), "windows on Wall1 are deleted")
	assert.Zero(t, b.Doors.Len(), "doors on Wall1 are deleted")
	assert.Equal(t, []string{"Wall2"}, b.Attics.At(0).AttachedToWallIDRefs)

	violations := b.Check()
	assert.Empty(t, violations)

	assert.False(t, b.Walls.Delete(wall), "second delete is a no-op")
}

func TestDeleteNullifies(t *testing.T) {
	b := mustBuilding(t, loadBase(t))

	hs := b.HeatingSystems.At(0)
	hs.DistributionSystemIDRefIsDefaulted = true

	require.True(t, b.HVACDistributions.Delete(b.HVACDistributions.At(0)))

	assert.Empty(t, hs.DistributionSystemIDRef)
	assert.False(t, hs.DistributionSystemIDRefIsDefaulted)
	assert.Empty(t, b.CoolingSystems.At(0).DistributionSystemIDRef)
	assert.Equal(t, 1, b.HeatingSystems.Len(), "nullify keeps the referencing entity")

	dist, err := hs.DistributionSystem()
	require.NoError(t, err)
	assert.Nil(t, dist)
}

func TestDeleteOwnedChildren(t *testing.T) {
	b := mustBuilding(t, loadBase(t))

	d := b.HVACDistributions.At(0)
	duct := d.Ducts.At(0)

	require.True(t, d.Ducts.Delete(duct))
	assert.Zero(t, d.Ducts.Len())
	assert.Nil(t, duct.Owner())
}

func TestDeleteFromDetachedCollection(t *testing.T) {
	d := newHVACDistribution()

	duct, err := d.Ducts.Add(Attrs{"id": "D1"})
	require.NoError(t, err)

	assert.True(t, d.Ducts.Delete(duct))
	assert.Zero(t, d.Ducts.Len())
}

func TestRelationsTable(t *testing.T) {
	for _, r := range Relations() {
		assert.NotEmpty(t, r.To, "%s.%s", r.From, r.Attr)

		if r.Required {
			assert.Equal(t, Cascade, r.OnDelete, "%s.%s", r.From, r.Attr)
		}
	}

	assert.Equal(t, "cascade", Cascade.String())
	assert.Equal(t, "nullify", Nullify.String())
	assert.Equal(t, "DeletePolicy(7)", DeletePolicy(7).String())
}
