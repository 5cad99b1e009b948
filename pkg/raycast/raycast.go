// Package raycast finds the first volume a ray reaches among a set of
// placed bounds.
//
// Each candidate's bound is tested with the ray moved into the candidate's
// local frame; the nearest hit within the distance limit wins and its
// positions are translated back to world space.
package raycast

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gobound/pkg/bound"
	"github.com/philipparndt/gobound/pkg/geometry"
)

// Hit describes the volume a ray struck
type Hit[B Boundable] struct {
	// Out is the world position where the ray leaves the volume.
	Out geometry.Vector3
	// Normal is the outward surface normal where the ray's line enters the
	// volume. For a ray that starts inside, Pos and Distance are clamped to
	// the origin but Normal still belongs to the face behind the origin,
	// so it points back toward the ray's source side.
	Normal geometry.Vector3
	// Penetration is the ray length inside the volume from Pos to Out.
	Penetration float64
	Object      B
}

// Result is the outcome of a single cast. Pos is the entry point on a hit
// or the ray end at the distance limit on a miss.
type Result[B Boundable] struct {
	Ray      geometry.Ray3
	Distance float64
	Pos      geometry.Vector3
	Hit      *Hit[B]
}

// Missed reports whether the ray reached its limit without hitting anything
func (r Result[B]) Missed() bool {
	return r.Hit == nil
}

func (r Result[B]) String() string {
	if r.Hit == nil {
		return fmt.Sprintf("miss at %s (distance %.6f)", r.Pos, r.Distance)
	}
	return fmt.Sprintf("hit %v at %s (distance %.6f, normal %s, out %s, penetration %.6f)",
		r.Hit.Object, r.Pos, r.Distance, r.Hit.Normal, r.Hit.Out, r.Hit.Penetration)
}

// Raycast casts rays against the candidates of a source. It holds no
// mutable state; concurrent casts are safe when the source and predicates
// are.
type Raycast[B Boundable] struct {
	source Source[B]
}

// New creates a Raycast over source
func New[B Boundable](source Source[B]) (*Raycast[B], error) {
	if source == nil {
		return nil, ErrNilSource
	}
	return &Raycast[B]{source: source}, nil
}

// Cast returns the nearest candidate accepted by filter that the ray
// reaches within maxDistance. A candidate the ray starts inside is hit at
// distance 0. Equal distances go to the candidate listed first.
func (r *Raycast[B]) Cast(ray geometry.Ray3, maxDistance float64, filter Predicate[B]) (Result[B], error) {
	if err := validate(ray, maxDistance); err != nil {
		return Result[B]{}, err
	}
	return cast(ray, maxDistance, r.source.Candidates(ray, maxDistance), filter), nil
}

// CastFrom builds a ray from origin along direction, normalized so
// distances are in world units, and casts it
func (r *Raycast[B]) CastFrom(origin, direction geometry.Vector3, maxDistance float64, filter Predicate[B]) (Result[B], error) {
	if direction.IsZero() || !direction.IsFinite() {
		return Result[B]{}, fmt.Errorf("direction %s: %w", direction, ErrZeroDirection)
	}
	return r.Cast(geometry.NewRay3(origin, direction).Normalized(), maxDistance, filter)
}

// CastAll returns a hit result for every accepted candidate within
// maxDistance, ordered by distance. Equal distances keep candidate order.
func (r *Raycast[B]) CastAll(ray geometry.Ray3, maxDistance float64, filter Predicate[B]) ([]Result[B], error) {
	if err := validate(ray, maxDistance); err != nil {
		return nil, err
	}
	var results []Result[B]
	for _, b := range r.source.Candidates(ray, maxDistance) {
		if filter != nil && !filter(b) {
			continue
		}
		if res, ok := collide(ray, maxDistance, b); ok {
			results = append(results, res)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	return results, nil
}

// Cast runs a single cast over a candidate slice
func Cast[B Boundable](ray geometry.Ray3, maxDistance float64, candidates []B, filter Predicate[B]) (Result[B], error) {
	if err := validate(ray, maxDistance); err != nil {
		return Result[B]{}, err
	}
	return cast(ray, maxDistance, candidates, filter), nil
}

func validate(ray geometry.Ray3, maxDistance float64) error {
	if !ray.Origin.IsFinite() {
		return fmt.Errorf("origin %s: %w", ray.Origin, ErrInvalidOrigin)
	}
	if ray.Dir.IsZero() || !ray.Dir.IsFinite() {
		return fmt.Errorf("direction %s: %w", ray.Dir, ErrZeroDirection)
	}
	if math.IsNaN(maxDistance) || math.IsInf(maxDistance, 0) || maxDistance <= 0 {
		return fmt.Errorf("max distance %v: %w", maxDistance, ErrInvalidDistance)
	}
	return nil
}

func cast[B Boundable](ray geometry.Ray3, maxDistance float64, candidates []B, filter Predicate[B]) Result[B] {
	best := Result[B]{
		Ray:      ray,
		Distance: maxDistance,
		Pos:      ray.Point(maxDistance),
	}
	for _, b := range candidates {
		if filter != nil && !filter(b) {
			continue
		}
		res, ok := collide(ray, maxDistance, b)
		if !ok {
			continue
		}
		if best.Hit == nil || res.Distance < best.Distance {
			best = res
		}
	}
	return best
}

// collide tests one candidate with the ray moved into its local frame
func collide[B Boundable](ray geometry.Ray3, maxDistance float64, b B) (Result[B], bool) {
	origin := b.Origin()
	local := ray.At(ray.Origin.Sub(origin))

	c, ok := bound.Collide(b.Bound(), local)
	if !ok {
		return Result[B]{}, false
	}
	d := c.FrontEntry()
	if d > maxDistance {
		return Result[B]{}, false
	}
	return Result[B]{
		Ray:      ray,
		Distance: d,
		Pos:      local.Point(d).Add(origin),
		Hit: &Hit[B]{
			Out:         local.Point(c.Exit).Add(origin),
			Normal:      c.Normal,
			Penetration: c.Exit - d,
			Object:      b,
		},
	}, true
}
