package grid

import "iter"

// FixedDimension maps 2D coordinates to a linear index for a grid whose
// size along one axis is fixed. The extent of the other axis follows from
// the length of the buffer being addressed.
type FixedDimension interface {
	// ToIndex returns the linear index of c, or false when c lies outside
	// the fixed axis or has a negative component.
	ToIndex(c Coords) (int, bool)
	// ToCoords is the inverse of ToIndex. i is not bounds checked.
	ToCoords(i int) Coords
	// Coords yields the coordinates of the first n indices in raster order.
	Coords(n int) iter.Seq[Coords]
	// Size returns the length of the fixed axis.
	Size() int
	// FixedAxis returns which coordinate component the size applies to.
	FixedAxis() int
	// Extent returns the width and height of a buffer with n elements.
	Extent(n int) (width, height int)
}

// FixedWidth is a row-major layout: index = y*width + x.
type FixedWidth struct {
	width NonZero
}

// FixedHeight is a column-major layout: index = x*height + y.
type FixedHeight struct {
	height NonZero
}

// NewFixedWidth returns a row-major dimension of the given width.
func NewFixedWidth(width NonZero) FixedWidth {
	return FixedWidth{width: width}
}

// FixedWidthOf validates width and returns a row-major dimension.
func FixedWidthOf(width int) (FixedWidth, error) {
	nz, err := NewNonZero(width)
	if err != nil {
		return FixedWidth{}, err
	}
	return FixedWidth{width: nz}, nil
}

// NewFixedHeight returns a column-major dimension of the given height.
func NewFixedHeight(height NonZero) FixedHeight {
	return FixedHeight{height: height}
}

// FixedHeightOf validates height and returns a column-major dimension.
func FixedHeightOf(height int) (FixedHeight, error) {
	nz, err := NewNonZero(height)
	if err != nil {
		return FixedHeight{}, err
	}
	return FixedHeight{height: nz}, nil
}

// Width returns the fixed width.
func (d FixedWidth) Width() int { return d.width.Int() }

// Size returns the fixed width.
func (d FixedWidth) Size() int { return d.width.Int() }

// FixedAxis returns 0.
func (d FixedWidth) FixedAxis() int { return 0 }

// ToIndex implements FixedDimension.
func (d FixedWidth) ToIndex(c Coords) (int, bool) {
	w := d.width.Int()
	if c[0] < 0 || c[1] < 0 || c[0] >= w {
		return 0, false
	}
	return c[1]*w + c[0], true
}

// ToCoords implements FixedDimension.
func (d FixedWidth) ToCoords(i int) Coords {
	w := d.width.Int()
	return Coords{i % w, i / w}
}

// Extent implements FixedDimension.
func (d FixedWidth) Extent(n int) (int, int) {
	w := d.width.Int()
	return w, n / w
}

// Coords implements FixedDimension. X advances inner, Y outer.
func (d FixedWidth) Coords(n int) iter.Seq[Coords] {
	w := d.width.Int()
	return func(yield func(Coords) bool) {
		var c Coords
		for range n {
			if !yield(c) {
				return
			}
			c[0]++
			if c[0] == w {
				c[0] = 0
				c[1]++
			}
		}
	}
}

// Height returns the fixed height.
func (d FixedHeight) Height() int { return d.height.Int() }

// Size returns the fixed height.
func (d FixedHeight) Size() int { return d.height.Int() }

// FixedAxis returns 1.
func (d FixedHeight) FixedAxis() int { return 1 }

// ToIndex implements FixedDimension.
func (d FixedHeight) ToIndex(c Coords) (int, bool) {
	h := d.height.Int()
	if c[0] < 0 || c[1] < 0 || c[1] >= h {
		return 0, false
	}
	return c[0]*h + c[1], true
}

// ToCoords implements FixedDimension.
func (d FixedHeight) ToCoords(i int) Coords {
	h := d.height.Int()
	return Coords{i / h, i % h}
}

// Extent implements FixedDimension.
func (d FixedHeight) Extent(n int) (int, int) {
	h := d.height.Int()
	return n / h, h
}

// Coords implements FixedDimension. Y advances inner, X outer.
func (d FixedHeight) Coords(n int) iter.Seq[Coords] {
	h := d.height.Int()
	return func(yield func(Coords) bool) {
		var c Coords
		for range n {
			if !yield(c) {
				return
			}
			c[1]++
			if c[1] == h {
				c[1] = 0
				c[0]++
			}
		}
	}
}
