package bound

import (
	"fmt"
	"math"

	"github.com/philipparndt/gobound/pkg/geometry"
)

// Box is a rectangular volume turned about the vertical axis through its
// own center. With a zero angle it is an ordinary axis-aligned box.
type Box struct {
	min    geometry.Vector3
	max    geometry.Vector3
	extent geometry.Vector3
	angle  float64
}

// NewBox creates an axis-aligned box
func NewBox(min, max geometry.Vector3) (Box, error) {
	return NewRotatedBox(min, max, 0)
}

// NewBoxAround creates an axis-aligned box from its center and half extents
func NewBoxAround(center, halfExtents geometry.Vector3) (Box, error) {
	return NewRotatedBox(center.Sub(halfExtents), center.Add(halfExtents), 0)
}

// NewRotatedBox creates a box turned clockwise by angle radians about its center
func NewRotatedBox(min, max geometry.Vector3, angle float64) (Box, error) {
	if err := checkFinite("box min", min); err != nil {
		return Box{}, err
	}
	if err := checkFinite("box max", max); err != nil {
		return Box{}, err
	}
	if err := checkAngle(angle); err != nil {
		return Box{}, err
	}
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return Box{}, fmt.Errorf("box %s..%s: %w", min, max, ErrInvertedBox)
	}
	extent := max.Sub(min)
	if extent.X == 0 || extent.Y == 0 || extent.Z == 0 {
		return Box{}, fmt.Errorf("box %s..%s: %w", min, max, ErrDegenerateBox)
	}
	return Box{min: min, max: max, extent: extent, angle: angle}, nil
}

func (b Box) Min() geometry.Vector3    { return b.min }
func (b Box) Max() geometry.Vector3    { return b.max }
func (b Box) Extent() geometry.Vector3 { return b.extent }
func (b Box) Angle() float64           { return b.angle }
func (Box) Kind() Kind                 { return KindBox }
func (Box) sealed()                    {}

// Center returns the point the box rotates about
func (b Box) Center() geometry.Vector3 {
	return b.min.Add(b.max).Mul(0.5)
}

// WithAngle returns the same box turned to a new yaw
func (b Box) WithAngle(angle float64) (Box, error) {
	if err := checkAngle(angle); err != nil {
		return Box{}, err
	}
	b.angle = angle
	return b, nil
}

// Shift moves the box; its yaw stays the same
func (b Box) Shift(offset geometry.Vector3) Bound {
	mustFiniteOffset(offset)
	b.min = b.min.Add(offset)
	b.max = b.max.Add(offset)
	return b
}

// Contains turns the point into the box's unrotated frame and tests it
// against min and max.
func (b Box) Contains(point geometry.Vector3) bool {
	p := point.RotateYAround(b.Center(), -b.angle)
	return p.X >= b.min.X && p.X <= b.max.X &&
		p.Y >= b.min.Y && p.Y <= b.max.Y &&
		p.Z >= b.min.Z && p.Z <= b.max.Z
}

// Bounds returns the axis-aligned hull of the turned box
func (b Box) Bounds() geometry.BoundingBox {
	if b.angle == 0 {
		return geometry.BoundingBox{Min: b.min, Max: b.max}
	}
	center := b.Center()
	bbox := geometry.NewBoundingBox()
	for _, x := range [2]float64{b.min.X, b.max.X} {
		for _, z := range [2]float64{b.min.Z, b.max.Z} {
			corner := geometry.NewVector3(x, b.min.Y, z).RotateYAround(center, b.angle)
			bbox = bbox.Extend(corner)
			bbox = bbox.Extend(geometry.NewVector3(corner.X, b.max.Y, corner.Z))
		}
	}
	return bbox
}

// Collision moves the ray into a frame centered on the box and, for a
// turned box, counter-rotates it so the box is axis aligned there. It then
// runs a slab test that stays correct when an axis produces NaN (the ray
// lies in a slab plane) or ±Inf (the ray is parallel to a slab).
//
// Entry is negative when the ray starts inside the box.
func (b Box) Collision(ray geometry.Ray3) (Collision, bool) {
	if ray.Dir.IsZero() {
		return Collision{}, false
	}
	local := ray.At(ray.Origin.Sub(b.Center()))
	if b.angle != 0 {
		local = local.RotateYAround(geometry.Zero(), -b.angle)
	}

	half := b.extent.Mul(0.5)
	var t1, t2 [3]float64
	for axis := 0; axis < 3; axis++ {
		h := half.Component(axis)
		o := local.Origin.Component(axis)
		inv := local.InvDir.Component(axis)
		t1[axis] = (-h - o) * inv
		t2[axis] = (h - o) * inv
	}

	tMin := fmin(t1[0], t2[0])
	tMax := fmax(t1[0], t2[0])
	for axis := 1; axis < 3; axis++ {
		tMin = fmax(tMin, fmin(fmin(t1[axis], t2[axis]), tMax))
		tMax = fmin(tMax, fmax(fmax(t1[axis], t2[axis]), tMin))
	}

	if math.IsNaN(tMin) || !(tMax > fmax(tMin, 0)) {
		return Collision{}, false
	}

	normal := b.entryNormal(t1, t2, tMin, local.Dir)
	return Collision{
		Entry:  tMin,
		Exit:   tMax,
		Normal: normal.RotateY(b.angle),
	}, true
}

// entryNormal picks the axis whose near slab plane produced tMin. The
// normal points toward -axis when that plane is the min face.
func (b Box) entryNormal(t1, t2 [3]float64, tMin float64, dir geometry.Vector3) geometry.Vector3 {
	axis, sign := -1, 0.0
	for i := 0; i < 3; i++ {
		if fmin(t1[i], t2[i]) != tMin {
			continue
		}
		axis = i
		if t1[i] <= t2[i] {
			sign = -1
		} else {
			sign = 1
		}
		break
	}

	if axis < 0 {
		// unreachable for a finite hit; fall back to the dominant direction
		axis = dominantAxis(dir)
		sign = -math.Copysign(1, dir.Component(axis))
	}

	switch axis {
	case 0:
		return geometry.NewVector3(sign, 0, 0)
	case 1:
		return geometry.NewVector3(0, sign, 0)
	default:
		return geometry.NewVector3(0, 0, sign)
	}
}

func dominantAxis(v geometry.Vector3) int {
	a := v.Abs()
	if a.X >= a.Y && a.X >= a.Z {
		return 0
	}
	if a.Y >= a.Z {
		return 1
	}
	return 2
}

func (b Box) String() string {
	if b.angle == 0 {
		return fmt.Sprintf("box %s..%s", b.min, b.max)
	}
	return fmt.Sprintf("box %s..%s yaw %.6f", b.min, b.max, b.angle)
}
