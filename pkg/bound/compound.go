package bound

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gobound/pkg/geometry"
)

// Compound is the union of an ordered list of bounds
type Compound struct {
	bounds []Bound
}

// NewCompound creates a union of at least one bound. The slice is copied.
func NewCompound(bounds ...Bound) (Compound, error) {
	if len(bounds) == 0 {
		return Compound{}, ErrEmptyCompound
	}
	for i, b := range bounds {
		if b == nil {
			return Compound{}, fmt.Errorf("compound member %d: %w", i, ErrNilBound)
		}
	}
	return Compound{bounds: append([]Bound(nil), bounds...)}, nil
}

// Len returns the member count
func (c Compound) Len() int { return len(c.bounds) }

// Members returns a copy of the member list
func (c Compound) Members() []Bound {
	return append([]Bound(nil), c.bounds...)
}

func (Compound) Kind() Kind { return KindCompound }
func (Compound) sealed()    {}

func (c Compound) Shift(offset geometry.Vector3) Bound {
	mustFiniteOffset(offset)
	shifted := make([]Bound, len(c.bounds))
	for i, b := range c.bounds {
		shifted[i] = b.Shift(offset)
	}
	return Compound{bounds: shifted}
}

func (c Compound) Contains(point geometry.Vector3) bool {
	for _, b := range c.bounds {
		if b.Contains(point) {
			return true
		}
	}
	return false
}

func (c Compound) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, b := range c.bounds {
		bbox = bbox.Union(b.Bounds())
	}
	return bbox
}

// Collision tests every member and returns the one the ray reaches first.
// Members are compared by entry clamped to the ray origin, so a member the
// ray starts inside wins at distance 0. Ties go to the earlier member.
func (c Compound) Collision(ray geometry.Ray3) (Collision, bool) {
	var nearest Collision
	found := false
	for _, b := range c.bounds {
		hit, ok := b.Collision(ray)
		if !ok {
			continue
		}
		if !found || hit.FrontEntry() < nearest.FrontEntry() {
			nearest = hit
			found = true
		}
	}
	return nearest, found
}

func (c Compound) String() string {
	parts := make([]string, len(c.bounds))
	for i, b := range c.bounds {
		parts[i] = fmt.Sprint(b)
	}
	return "compound [" + strings.Join(parts, ", ") + "]"
}
