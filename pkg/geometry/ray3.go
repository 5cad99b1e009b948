package geometry

import "fmt"

// Ray3 is a half-line Origin + t·Dir.
// InvDir caches the component-wise reciprocal of Dir; it may hold ±Inf.
// Distances measured along a ray are in units of Dir's length.
type Ray3 struct {
	Origin Vector3
	Dir    Vector3
	InvDir Vector3
}

// NewRay3 creates a ray and precomputes its reciprocal direction
func NewRay3(origin, dir Vector3) Ray3 {
	return Ray3{
		Origin: origin,
		Dir:    dir,
		InvDir: dir.Reciprocal(),
	}
}

// Point returns the point at parameter t along the ray
func (r Ray3) Point(t float64) Vector3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// At returns the same ray starting from a different origin
func (r Ray3) At(origin Vector3) Ray3 {
	return Ray3{
		Origin: origin,
		Dir:    r.Dir,
		InvDir: r.InvDir,
	}
}

// Translate returns the ray with its origin moved by offset
func (r Ray3) Translate(offset Vector3) Ray3 {
	return r.At(r.Origin.Add(offset))
}

// RotateYAround rotates origin and direction about a vertical axis
// through center. The reciprocal direction is recomputed.
func (r Ray3) RotateYAround(center Vector3, angle float64) Ray3 {
	if angle == 0 {
		return r
	}
	return NewRay3(r.Origin.RotateYAround(center, angle), r.Dir.RotateY(angle))
}

// Normalized returns the ray with a unit-length direction
func (r Ray3) Normalized() Ray3 {
	return NewRay3(r.Origin, r.Dir.Normalize())
}

func (r Ray3) String() string {
	return fmt.Sprintf("ray %s -> %s", r.Origin, r.Dir)
}
