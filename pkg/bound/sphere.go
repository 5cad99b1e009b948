package bound

import (
	"fmt"
	"math"

	"github.com/philipparndt/gobound/pkg/geometry"
)

// Sphere is a ball around a center point
type Sphere struct {
	center    geometry.Vector3
	radius    float64
	sqrRadius float64
}

// NewSphere creates a sphere; radius must be positive
func NewSphere(center geometry.Vector3, radius float64) (Sphere, error) {
	if err := checkFinite("sphere center", center); err != nil {
		return Sphere{}, err
	}
	if err := checkPositive("sphere radius", radius, ErrInvalidRadius); err != nil {
		return Sphere{}, err
	}
	return Sphere{center: center, radius: radius, sqrRadius: radius * radius}, nil
}

func (s Sphere) Center() geometry.Vector3 { return s.center }
func (s Sphere) Radius() float64          { return s.radius }
func (Sphere) Kind() Kind                 { return KindSphere }
func (Sphere) sealed()                    {}

func (s Sphere) Shift(offset geometry.Vector3) Bound {
	mustFiniteOffset(offset)
	s.center = s.center.Add(offset)
	return s
}

func (s Sphere) Contains(point geometry.Vector3) bool {
	return point.Sub(s.center).LengthSquared() <= s.sqrRadius
}

func (s Sphere) Bounds() geometry.BoundingBox {
	r := geometry.NewVector3(s.radius, s.radius, s.radius)
	return geometry.BoundingBox{Min: s.center.Sub(r), Max: s.center.Add(r)}
}

// Collision solves |o + t·d - c|² = r². With m = o - c:
//
//	a·t² + 2b·t + c' = 0,  a = d·d, b = m·d, c' = m·m - r²
//
// For a unit direction a is 1 and this is the textbook form.
func (s Sphere) Collision(ray geometry.Ray3) (Collision, bool) {
	m := ray.Origin.Sub(s.center)
	b := m.Dot(ray.Dir)
	c := m.LengthSquared() - s.sqrRadius

	// outside and pointing away
	if c > 0 && b > 0 {
		return Collision{}, false
	}

	a := ray.Dir.LengthSquared()
	if a == 0 {
		return Collision{}, false
	}
	disc := b*b - a*c
	if disc < 0 || math.IsNaN(disc) {
		return Collision{}, false
	}

	root := math.Sqrt(disc)
	entry := (-b - root) / a
	exit := (-b + root) / a

	return Collision{
		Entry:  entry,
		Exit:   exit,
		Normal: ray.Point(entry).Sub(s.center).Normalize(),
	}, true
}

func (s Sphere) String() string {
	return fmt.Sprintf("sphere %s r=%.6f", s.center, s.radius)
}
