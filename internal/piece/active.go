package piece

// Spawn columns. The square sits one column further right to look centered.
const (
	SpawnCol       = 3
	SpawnColSquare = 4
	SpawnRow       = 0
)

// Point is a grid coordinate.
type Point struct {
	Row int
	Col int
}

// Active is the falling piece: its kind, the current rotation of its shape
// and the grid position of the shape's top-left corner.
type Active struct {
	Kind     Kind
	Shape    Matrix
	Col      int
	Row      int
	Rotation int
}

// New places a fresh piece of kind at its spawn position.
func New(kind Kind) *Active {
	col := SpawnCol
	if kind == KindO {
		col = SpawnColSquare
	}
	return &Active{
		Kind:  kind,
		Shape: Lookup(kind).Shape,
		Col:   col,
		Row:   SpawnRow,
	}
}

// Cells returns the absolute grid coordinates of every set shape cell.
func (a *Active) Cells() []Point {
	pts := make([]Point, 0, 5)
	for i, row := range a.Shape {
		for j, set := range row {
			if set {
				pts = append(pts, Point{Row: a.Row + i, Col: a.Col + j})
			}
		}
	}
	return pts
}

// Center is the cell at the middle of the shape's bounding square; the bomb
// detonates here.
func (a *Active) Center() Point {
	cols := 0
	if len(a.Shape) > 0 {
		cols = len(a.Shape[0])
	}
	return Point{Row: a.Row + len(a.Shape)/2, Col: a.Col + cols/2}
}

// Clone returns an independent copy.
func (a *Active) Clone() *Active {
	c := *a
	c.Shape = a.Shape.Clone()
	return &c
}
