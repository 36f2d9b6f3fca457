package grid

import (
	"errors"
	"fmt"
	"iter"
)

// ErrLength is returned when a buffer does not fill a whole number of rows
// (or columns) of its dimension.
var ErrLength = errors.New("buffer length does not match dimension")

// Grid is a read-only 2D field of values stored in a flat buffer.
type Grid[T any] struct {
	values []T
	dim    FixedDimension
}

// New wraps values in a grid. The grid takes ownership of values; callers
// must not modify the slice afterwards.
func New[T any](values []T, dim FixedDimension) (*Grid[T], error) {
	if dim == nil || dim.Size() <= 0 {
		return nil, fmt.Errorf("%w: invalid dimension", ErrZero)
	}
	if len(values) == 0 || len(values)%dim.Size() != 0 {
		return nil, fmt.Errorf("%w: %d values for fixed size %d", ErrLength, len(values), dim.Size())
	}
	return &Grid[T]{values: values, dim: dim}, nil
}

// Get returns the value at c. The dimension rejects coordinates outside
// its fixed axis; the buffer length bounds the variable axis.
func (g *Grid[T]) Get(c Coords) (T, bool) {
	var zero T
	i, ok := g.dim.ToIndex(c)
	if !ok || i >= len(g.values) {
		return zero, false
	}
	return g.values[i], true
}

// Contains reports whether c addresses a cell of the grid.
func (g *Grid[T]) Contains(c Coords) bool {
	w, h := g.Size()
	return c[0] >= 0 && c[1] >= 0 && c[0] < w && c[1] < h
}

// At returns the value at linear index i. It panics when i is out of range.
func (g *Grid[T]) At(i int) T {
	return g.values[i]
}

// Len returns the number of cells.
func (g *Grid[T]) Len() int {
	return len(g.values)
}

// Size returns the width and height of the grid.
func (g *Grid[T]) Size() (width, height int) {
	return g.dim.Extent(len(g.values))
}

// Width returns the extent of axis 0.
func (g *Grid[T]) Width() int {
	w, _ := g.Size()
	return w
}

// Height returns the extent of axis 1.
func (g *Grid[T]) Height() int {
	_, h := g.Size()
	return h
}

// Dimension returns the layout of the grid.
func (g *Grid[T]) Dimension() FixedDimension {
	return g.dim
}

// Coords yields every cell coordinate in index order.
func (g *Grid[T]) Coords() iter.Seq[Coords] {
	return g.dim.Coords(len(g.values))
}

// All yields every cell coordinate with its value, in index order.
func (g *Grid[T]) All() iter.Seq2[Coords, T] {
	return func(yield func(Coords, T) bool) {
		for i, v := range g.values {
			if !yield(g.dim.ToCoords(i), v) {
				return
			}
		}
	}
}
