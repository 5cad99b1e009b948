package raycast

import (
	"fmt"

	"github.com/philipparndt/gobound/pkg/bound"
	"github.com/philipparndt/gobound/pkg/geometry"
)

// Boundable is anything placed in the world with a volume. The bound is
// expressed relative to Origin.
type Boundable interface {
	Origin() geometry.Vector3
	Bound() bound.Bound
}

// Object is a plain Boundable value
type Object struct {
	origin geometry.Vector3
	bound  bound.Bound
}

var _ Boundable = Object{}

// NewObject places b at origin
func NewObject(origin geometry.Vector3, b bound.Bound) Object {
	return Object{origin: origin, bound: b}
}

func (o Object) Origin() geometry.Vector3 { return o.origin }
func (o Object) Bound() bound.Bound       { return o.bound }

// Moved returns the object re-anchored offset away. The bound itself is
// unchanged since it is relative to the origin.
func (o Object) Moved(offset geometry.Vector3) Object {
	o.origin = o.origin.Add(offset)
	return o
}

func (o Object) String() string {
	return fmt.Sprintf("%v @ %s", o.bound, o.origin)
}

// WorldBounds returns the axis-aligned extent of a Boundable in world space
func WorldBounds(b Boundable) geometry.BoundingBox {
	return b.Bound().Bounds().Translate(b.Origin())
}
