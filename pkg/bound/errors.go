package bound

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gobound/pkg/geometry"
)

var (
	ErrNonFinite     = errors.New("value is NaN or infinite")
	ErrInvalidRadius = errors.New("radius must be greater than zero")
	ErrInvalidHeight = errors.New("height must be greater than zero")
	ErrInvertedBox   = errors.New("box min exceeds max")
	ErrDegenerateBox = errors.New("box has zero extent")
	ErrEmptyCompound = errors.New("compound needs at least one bound")
	ErrNilBound      = errors.New("bound is nil")
)

func checkFinite(name string, v geometry.Vector3) error {
	if !v.IsFinite() {
		return fmt.Errorf("%s %s: %w", name, v, ErrNonFinite)
	}
	return nil
}

func checkAngle(angle float64) error {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return fmt.Errorf("box angle %v: %w", angle, ErrNonFinite)
	}
	return nil
}

// mustFiniteOffset guards Shift, which has no error return. Callers moving
// a bound by an untrusted offset validate it first.
func mustFiniteOffset(offset geometry.Vector3) {
	if !offset.IsFinite() {
		panic(fmt.Sprintf("bound: shift offset %s: %v", offset, ErrNonFinite))
	}
}

func checkPositive(name string, value float64, sentinel error) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s %v: %w", name, value, ErrNonFinite)
	}
	if value <= 0 {
		return fmt.Errorf("%s %v: %w", name, value, sentinel)
	}
	return nil
}
