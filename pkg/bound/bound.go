// Package bound implements the solid volumes a ray can hit: oriented
// boxes, spheres, upright cylinders and compound unions of them.
//
// Every bound lives in its own local frame. Placing a bound in a scene is
// the job of the raycast package, which moves rays into that frame before
// asking a bound for a Collision.
package bound

import (
	"fmt"

	"github.com/philipparndt/gobound/pkg/geometry"
)

// Kind tags the concrete variant of a Bound
type Kind int

const (
	KindBox Kind = iota
	KindSphere
	KindCylinder
	KindCompound
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	case KindCylinder:
		return "cylinder"
	case KindCompound:
		return "compound"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Bound is a closed set of solid volumes. The unexported sealed method
// keeps the variants limited to Box, Sphere, Cylinder and Compound.
type Bound interface {
	// Collision intersects the ray with the volume. The ray must already be
	// expressed in the bound's coordinate space. A false result means the
	// ray misses; that is never an error.
	Collision(ray geometry.Ray3) (Collision, bool)

	// Contains reports whether the point lies inside the volume,
	// boundaries included.
	Contains(point geometry.Vector3) bool

	// Shift returns a copy moved by offset. The offset must be finite;
	// Shift panics otherwise.
	Shift(offset geometry.Vector3) Bound

	// Bounds returns the axis-aligned extent of the volume.
	Bounds() geometry.BoundingBox

	Kind() Kind

	sealed()
}

// Oriented is a bound that can be turned about the vertical axis.
// Only Box supports it.
type Oriented interface {
	Bound
	// Angle is the clockwise yaw in radians about the bound's center.
	Angle() float64
	// WithAngle returns a copy turned to the given yaw. A NaN or infinite
	// angle is rejected with ErrNonFinite.
	WithAngle(angle float64) (Box, error)
}

var (
	_ Oriented = Box{}
	_ Bound    = Sphere{}
	_ Bound    = Cylinder{}
	_ Bound    = Compound{}
)

// Collision describes where a ray enters and leaves a volume.
// Entry and Exit are ray parameters, not positions.
type Collision struct {
	Entry  float64
	Exit   float64
	Normal geometry.Vector3
}

// Penetration is the length of the ray inside the volume, in ray units
func (c Collision) Penetration() float64 {
	return c.Exit - c.Entry
}

// FrontEntry is the entry parameter clamped to the ray origin. A ray that
// starts inside a volume enters it at 0.
func (c Collision) FrontEntry() float64 {
	if c.Entry < 0 {
		return 0
	}
	return c.Entry
}

// Collide dispatches Collision over the closed set of variants
func Collide(b Bound, ray geometry.Ray3) (Collision, bool) {
	switch v := b.(type) {
	case Box:
		return v.Collision(ray)
	case Sphere:
		return v.Collision(ray)
	case Cylinder:
		return v.Collision(ray)
	case Compound:
		return v.Collision(ray)
	}
	panic(fmt.Sprintf("bound: unknown variant %T", b))
}

// Shift dispatches Shift over the closed set of variants
func Shift(b Bound, offset geometry.Vector3) Bound {
	switch v := b.(type) {
	case Box:
		return v.Shift(offset)
	case Sphere:
		return v.Shift(offset)
	case Cylinder:
		return v.Shift(offset)
	case Compound:
		return v.Shift(offset)
	}
	panic(fmt.Sprintf("bound: unknown variant %T", b))
}

// fmin and fmax compare instead of calling math.Min/math.Max: when the
// comparison involves NaN they return the second operand, which the slab
// test depends on. math.Min would return NaN.
func fmin(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
