package bound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gobound/pkg/geometry"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "box", KindBox.String())
	assert.Equal(t, "sphere", KindSphere.String())
	assert.Equal(t, "cylinder", KindCylinder.String())
	assert.Equal(t, "compound", KindCompound.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestCollidePerVariant(t *testing.T) {
	box := mustBox(t, vec(-1, -1, -1), vec(1, 1, 1), 0)
	compound, err := NewCompound(box)
	require.NoError(t, err)

	bounds := []Bound{
		box,
		mustSphere(t, geometry.Zero(), 1),
		mustCylinder(t, vec(0, -1, 0), 1, 2),
		compound,
	}
	ray := geometry.NewRay3(vec(-5, 0, 0), vec(1, 0, 0))
	for _, b := range bounds {
		t.Run(b.Kind().String(), func(t *testing.T) {
			hit, ok := Collide(b, ray)
			require.True(t, ok)
			assert.InDelta(t, 4.0, hit.Entry, eps)
			assert.InDelta(t, 6.0, hit.Exit, eps)
			assert.InDelta(t, 2.0, hit.Penetration(), eps)

			moved := Shift(b, vec(0, 0, 10))
			_, ok = Collide(moved, ray)
			assert.False(t, ok)
			assert.Equal(t, b.Kind(), moved.Kind())
		})
	}
}

func TestOnlyBoxIsOriented(t *testing.T) {
	var b Bound = mustBox(t, vec(0, 0, 0), vec(1, 1, 1), 0)
	_, ok := b.(Oriented)
	assert.True(t, ok)

	b = mustSphere(t, geometry.Zero(), 1)
	_, ok = b.(Oriented)
	assert.False(t, ok)

	b = mustCylinder(t, geometry.Zero(), 1, 1)
	_, ok = b.(Oriented)
	assert.False(t, ok)
}

func TestCollisionFrontEntry(t *testing.T) {
	assert.Equal(t, 3.0, Collision{Entry: 3, Exit: 4}.FrontEntry())
	assert.Equal(t, 0.0, Collision{Entry: -2, Exit: 4}.FrontEntry())
	assert.Equal(t, 6.0, Collision{Entry: -2, Exit: 4}.Penetration())
}
