package core

// Size describes the dimensions of a viewport or display area.
type Size struct {
	W int
	H int
}

// Coord addresses a cell on the unbounded lattice. Y grows northwards.
type Coord struct {
	X int
	Y int
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord { return Coord{X: c.X + d.X, Y: c.Y + d.Y} }

// Sub returns the offset from o to c.
func (c Coord) Sub(o Coord) Coord { return Coord{X: c.X - o.X, Y: c.Y - o.Y} }

// Heading is one of the four cardinal directions, ordered clockwise.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

var headingNames = [...]string{"north", "east", "south", "west"}

// TurnClockwise returns the next heading around clockwise.
func (h Heading) TurnClockwise() Heading { return (h + 1) % 4 }

// TurnCounterclockwise returns the next heading around counterclockwise.
func (h Heading) TurnCounterclockwise() Heading { return (h + 3) % 4 }

// Delta returns the unit move for the heading.
func (h Heading) Delta() Coord {
	switch h % 4 {
	case North:
		return Coord{Y: 1}
	case East:
		return Coord{X: 1}
	case South:
		return Coord{Y: -1}
	default:
		return Coord{X: -1}
	}
}

func (h Heading) String() string { return headingNames[h%4] }
