package bound

import (
	"fmt"
	"math"

	"github.com/philipparndt/gobound/pkg/geometry"
)

// Cylinder is an upright cylinder standing on base. It spans
// [base.Y, base.Y+height] and is a disk of radius around base in XZ.
// Cylinders are always axis aligned.
type Cylinder struct {
	base      geometry.Vector3
	radius    float64
	height    float64
	sqrRadius float64
}

// NewCylinder creates an upright cylinder; radius and height must be positive
func NewCylinder(base geometry.Vector3, radius, height float64) (Cylinder, error) {
	if err := checkFinite("cylinder base", base); err != nil {
		return Cylinder{}, err
	}
	if err := checkPositive("cylinder radius", radius, ErrInvalidRadius); err != nil {
		return Cylinder{}, err
	}
	if err := checkPositive("cylinder height", height, ErrInvalidHeight); err != nil {
		return Cylinder{}, err
	}
	return Cylinder{base: base, radius: radius, height: height, sqrRadius: radius * radius}, nil
}

func (c Cylinder) Base() geometry.Vector3 { return c.base }
func (c Cylinder) Radius() float64        { return c.radius }
func (c Cylinder) Height() float64        { return c.height }
func (Cylinder) Kind() Kind               { return KindCylinder }
func (Cylinder) sealed()                  {}

func (c Cylinder) Shift(offset geometry.Vector3) Bound {
	mustFiniteOffset(offset)
	c.base = c.base.Add(offset)
	return c
}

func (c Cylinder) Contains(point geometry.Vector3) bool {
	if point.Y < c.base.Y || point.Y > c.base.Y+c.height {
		return false
	}
	dx := point.X - c.base.X
	dz := point.Z - c.base.Z
	return dx*dx+dz*dz <= c.sqrRadius
}

func (c Cylinder) Bounds() geometry.BoundingBox {
	return geometry.BoundingBox{
		Min: geometry.NewVector3(c.base.X-c.radius, c.base.Y, c.base.Z-c.radius),
		Max: geometry.NewVector3(c.base.X+c.radius, c.base.Y+c.height, c.base.Z+c.radius),
	}
}

// Collision intersects the ray with the infinite vertical cylinder through
// the disk and with the slab between the two caps, then keeps the overlap
// of both intervals.
func (c Cylinder) Collision(ray geometry.Ray3) (Collision, bool) {
	if ray.Dir.IsZero() {
		return Collision{}, false
	}
	sideIn, sideOut, ok := c.lateral(ray)
	if !ok {
		return Collision{}, false
	}
	capIn, capOut, ok := c.caps(ray)
	if !ok {
		return Collision{}, false
	}

	entry := math.Max(sideIn, capIn)
	exit := math.Min(sideOut, capOut)
	if !(exit > math.Max(entry, 0)) {
		return Collision{}, false
	}

	var normal geometry.Vector3
	if capIn > sideIn {
		normal = geometry.NewVector3(0, -math.Copysign(1, ray.Dir.Y), 0)
	} else {
		p := ray.Point(entry)
		normal = geometry.NewVector3(p.X-c.base.X, 0, p.Z-c.base.Z).Normalize()
	}
	return Collision{Entry: entry, Exit: exit, Normal: normal}, true
}

// lateral returns the ray interval inside the infinite cylinder
func (c Cylinder) lateral(ray geometry.Ray3) (float64, float64, bool) {
	mx := ray.Origin.X - c.base.X
	mz := ray.Origin.Z - c.base.Z
	dx, dz := ray.Dir.X, ray.Dir.Z

	a := dx*dx + dz*dz
	k := mx*mx + mz*mz - c.sqrRadius
	if a == 0 {
		// vertical ray: inside the disk for the whole ray or never
		if k > 0 {
			return 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), true
	}

	b := mx*dx + mz*dz
	disc := b*b - a*k
	if disc < 0 {
		return 0, 0, false
	}
	root := math.Sqrt(disc)
	return (-b - root) / a, (-b + root) / a, true
}

// caps returns the ray interval between the bottom and top planes
func (c Cylinder) caps(ray geometry.Ray3) (float64, float64, bool) {
	bottom := c.base.Y
	top := c.base.Y + c.height
	if ray.Dir.Y == 0 {
		if ray.Origin.Y < bottom || ray.Origin.Y > top {
			return 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), true
	}

	t1 := (bottom - ray.Origin.Y) / ray.Dir.Y
	t2 := (top - ray.Origin.Y) / ray.Dir.Y
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}

func (c Cylinder) String() string {
	return fmt.Sprintf("cylinder %s r=%.6f h=%.6f", c.base, c.radius, c.height)
}
