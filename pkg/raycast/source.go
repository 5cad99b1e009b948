package raycast

import "github.com/philipparndt/gobound/pkg/geometry"

// Predicate selects which candidates a cast may hit. A nil predicate
// accepts every candidate.
type Predicate[B Boundable] func(B) bool

// Source enumerates the candidates a ray may hit. Implementations may
// narrow the set using the ray and distance; returning everything is
// always correct.
type Source[B Boundable] interface {
	Candidates(ray geometry.Ray3, maxDistance float64) []B
}

// SliceSource is a fixed candidate list
type SliceSource[B Boundable] []B

func (s SliceSource[B]) Candidates(geometry.Ray3, float64) []B {
	return s
}

// SourceFunc adapts a function to Source
type SourceFunc[B Boundable] func(ray geometry.Ray3, maxDistance float64) []B

func (f SourceFunc[B]) Candidates(ray geometry.Ray3, maxDistance float64) []B {
	return f(ray, maxDistance)
}
