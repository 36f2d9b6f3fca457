package grid

// Coords addresses a grid cell. Component 0 runs along the width (X) axis,
// component 1 along the height (Z) axis.
type Coords [2]int

// Step returns the neighbouring coordinates in the given direction.
// The result may lie outside any grid.
func (c Coords) Step(d Direction) Coords {
	off := d.Offset()
	return Coords{c[0] + off[0], c[1] + off[1]}
}

// Direction is one of the four axis-aligned neighbours of a cell.
type Direction int

// Directions. Up is +Z, Right is +X.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in index order.
var Directions = [4]Direction{Up, Down, Left, Right}

// CCW turns counter-clockwise.
func (d Direction) CCW() Direction {
	switch d {
	case Up:
		return Left
	case Down:
		return Right
	case Left:
		return Down
	default:
		return Up
	}
}

// CW turns clockwise.
func (d Direction) CW() Direction {
	switch d {
	case Up:
		return Right
	case Down:
		return Left
	case Left:
		return Up
	default:
		return Down
	}
}

// Inv turns 180 degrees.
func (d Direction) Inv() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Index returns the position of d in Directions.
func (d Direction) Index() int {
	return int(d)
}

// DirectionFromIndex is the inverse of Index.
func DirectionFromIndex(i int) (Direction, bool) {
	if i < 0 || i >= len(Directions) {
		return 0, false
	}
	return Directions[i], true
}

// Offset returns the coordinate delta for one step in d.
func (d Direction) Offset() Coords {
	switch d {
	case Up:
		return Coords{0, 1}
	case Down:
		return Coords{0, -1}
	case Left:
		return Coords{-1, 0}
	default:
		return Coords{1, 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
