package blocks

import (
	"path/filepath"
	"testing"

	"github.com/reallyoldfogie/mc-data-gen/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gobound/pkg/bound"
	"github.com/philipparndt/gobound/pkg/geometry"
)

func loadTestdata(t *testing.T) *Registry {
	t.Helper()
	reg, err := Load(filepath.Join("testdata", "blocks"))
	require.NoError(t, err)
	return reg
}

func TestLoadDir(t *testing.T) {
	reg := loadTestdata(t)
	assert.Equal(t, 4, reg.Len())
}

func TestFullBlockIsSingleBox(t *testing.T) {
	reg := loadTestdata(t)

	b, err := reg.Bound("minecraft:stone", nil)
	require.NoError(t, err)
	box, ok := b.(bound.Box)
	require.True(t, ok, "got %T", b)
	assert.Equal(t, geometry.NewVector3(1, 1, 1), box.Max())
}

func TestStairsBecomeCompound(t *testing.T) {
	reg := loadTestdata(t)

	b, err := reg.Bound("minecraft:oak_stairs", map[string]string{"half": "bottom", "facing": "north"})
	require.NoError(t, err)
	c, ok := b.(bound.Compound)
	require.True(t, ok, "got %T", b)
	assert.Equal(t, 2, c.Len())

	assert.True(t, c.Contains(geometry.NewVector3(0.5, 0.75, 0.25)))
	assert.False(t, c.Contains(geometry.NewVector3(0.5, 0.75, 0.75)))
}

func TestFlatBoxesAreSkipped(t *testing.T) {
	reg := loadTestdata(t)

	b, err := reg.Bound("minecraft:oak_stairs", map[string]string{"facing": "south", "half": "top"})
	require.NoError(t, err)
	c, ok := b.(bound.Compound)
	require.True(t, ok, "got %T", b)
	assert.Equal(t, 2, c.Len())
}

func TestBoundErrors(t *testing.T) {
	reg := loadTestdata(t)

	_, err := reg.Bound("minecraft:air", nil)
	assert.ErrorIs(t, err, ErrNoCollision)

	_, err = reg.Bound("minecraft:stone", map[string]string{"variant": "smooth"})
	assert.ErrorIs(t, err, ErrUnknownBlock)

	_, err = reg.Bound("minecraft:unobtainium", nil)
	assert.ErrorIs(t, err, ErrUnknownBlock)
}

func TestInvertedExportBoxIsAnError(t *testing.T) {
	reg := NewRegistry(map[loader.StateKey]loader.ShapeInfo{
		{BlockID: "test:broken"}: {Collision: []loader.Box{{Min: [3]float64{1, 0, 0}, Max: [3]float64{0, 1, 1}}}},
	})

	_, err := reg.Bound("test:broken", nil)
	assert.ErrorIs(t, err, bound.ErrInvertedBox)
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
