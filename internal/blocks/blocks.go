// Package blocks turns exported Minecraft block collision shapes into
// bounds. Shapes are in block-local coordinates where a full block spans
// 0..1 on every axis.
package blocks

import (
	"errors"
	"fmt"

	"github.com/reallyoldfogie/mc-data-gen/loader"

	"github.com/philipparndt/gobound/internal/logging"
	"github.com/philipparndt/gobound/pkg/bound"
	"github.com/philipparndt/gobound/pkg/geometry"
)

var (
	ErrUnknownBlock = errors.New("unknown block state")
	ErrNoCollision  = errors.New("block state has no collision shape")
)

// Registry maps block states to their collision shapes
type Registry struct {
	shapes map[loader.StateKey]loader.ShapeInfo
}

// Load reads every per-block JSON file below dir
func Load(dir string) (*Registry, error) {
	shapes, err := loader.LoadBlocksDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load blocks %s: %w", dir, err)
	}
	logging.Debug("loaded block states", "dir", dir, "states", len(shapes))
	return NewRegistry(shapes), nil
}

// NewRegistry wraps an already loaded shape map
func NewRegistry(shapes map[loader.StateKey]loader.ShapeInfo) *Registry {
	return &Registry{shapes: shapes}
}

// Len returns the number of known block states
func (r *Registry) Len() int {
	return len(r.shapes)
}

// Bound returns the collision volume of a block state. A shape made of
// one box is returned as that box; several boxes become a compound in
// export order.
func (r *Registry) Bound(id string, props map[string]string) (bound.Bound, error) {
	key := loader.StateKey{BlockID: id, PropsKey: loader.MakePropsKey(props)}
	info, ok := r.shapes[key]
	if !ok {
		return nil, fmt.Errorf("%s[%s]: %w", id, key.PropsKey, ErrUnknownBlock)
	}

	boxes := make([]bound.Bound, 0, len(info.Collision))
	for i, b := range info.Collision {
		min := geometry.NewVector3(b.Min[0], b.Min[1], b.Min[2])
		max := geometry.NewVector3(b.Max[0], b.Max[1], b.Max[2])
		box, err := bound.NewBox(min, max)
		if errors.Is(err, bound.ErrDegenerateBox) {
			logging.Warn("skipping flat collision box", "block", id, "props", key.PropsKey, "index", i)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s[%s] box %d: %w", id, key.PropsKey, i, err)
		}
		boxes = append(boxes, box)
	}

	switch len(boxes) {
	case 0:
		return nil, fmt.Errorf("%s[%s]: %w", id, key.PropsKey, ErrNoCollision)
	case 1:
		return boxes[0], nil
	}
	return bound.NewCompound(boxes...)
}
