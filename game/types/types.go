package types

// Point is a position or unit direction on the game grid, in cell units.
type Point struct {
	X, Y int
}

// The four cardinal unit directions. Y grows downward (screen coordinates).
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Reverse returns the opposite direction.
func (p Point) Reverse() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsUnit reports whether p is one of the four cardinal unit directions.
func (p Point) IsUnit() bool {
	return p == Up || p == Down || p == Left || p == Right
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether pos lies inside the grid.
func (g Grid) Contains(pos Point) bool {
	return pos.X >= 0 && pos.X < g.Width && pos.Y >= 0 && pos.Y < g.Height
}

// Game constants
const (
	ScorePerFood = 10 // Points awarded per food pickup
)
