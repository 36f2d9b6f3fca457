// Package grid provides flat-buffer 2D grids addressed through a fixed dimension.
package grid

import (
	"errors"
	"fmt"
)

// ErrZero is returned when a NonZero is constructed from a value that is not positive.
var ErrZero = errors.New("value must be positive")

// NonZero is a positive integer. The only way to obtain a valid one is
// NewNonZero or MustNonZero; the zero value is not valid.
type NonZero struct {
	v int
}

// NewNonZero validates v.
func NewNonZero(v int) (NonZero, error) {
	if v <= 0 {
		return NonZero{}, fmt.Errorf("%w: got %d", ErrZero, v)
	}
	return NonZero{v: v}, nil
}

// MustNonZero is like NewNonZero but panics on invalid input.
// Use it for constants.
func MustNonZero(v int) NonZero {
	nz, err := NewNonZero(v)
	if err != nil {
		panic(err)
	}
	return nz
}

// Int returns the underlying value.
func (n NonZero) Int() int {
	return n.v
}

// Valid reports whether n came from a successful constructor.
func (n NonZero) Valid() bool {
	return n.v > 0
}

func (n NonZero) String() string {
	return fmt.Sprintf("%d", n.v)
}
