package playfield

import (
	"fmt"
	"strings"

	"go-blocks/internal/piece"
)

// Field dimensions. Row 0 is the top row.
const (
	Rows = 20
	Cols = 10
)

// Cell is one grid square. A zero Cell is empty.
type Cell struct {
	Occupied bool
	Kind     piece.Kind
	Special  bool
}

// Grid is the fixed-size playfield. Being an array, its dimensions cannot
// change and assigning it copies every cell.
type Grid [Rows][Cols]Cell

// At returns the cell at row, col. Out-of-range coordinates read as empty.
func (g *Grid) At(row, col int) Cell {
	if !inBounds(row, col) {
		return Cell{}
	}
	return g[row][col]
}

// Occupied reports whether the in-bounds cell at row, col holds a block.
func (g *Grid) Occupied(row, col int) bool {
	return g.At(row, col).Occupied
}

// Fill marks the cell with a locked block of kind.
func (g *Grid) Fill(row, col int, kind piece.Kind) {
	if !inBounds(row, col) {
		return
	}
	g[row][col] = Cell{Occupied: true, Kind: kind, Special: kind.Special()}
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c].Occupied {
				n++
			}
		}
	}
	return n
}

// RowFilled reports whether every cell of row is occupied.
func (g *Grid) RowFilled(row int) bool {
	for _, cell := range g[row] {
		if !cell.Occupied {
			return false
		}
	}
	return true
}

// Reset empties the whole grid.
func (g *Grid) Reset() {
	*g = Grid{}
}

// String renders the grid, one line per row, using the piece letters for
// occupied cells and '.' for empty ones.
func (g *Grid) String() string {
	var b strings.Builder
	for r := range g {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range g[r] {
			if cell.Occupied {
				b.WriteString(cell.Kind.String())
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// FromRows builds a grid whose bottom rows are given by lines, top to
// bottom. Each line must be Cols wide and use piece letters or '.'.
func FromRows(lines ...string) (Grid, error) {
	var g Grid
	if len(lines) > Rows {
		return g, fmt.Errorf("too many rows: %d > %d", len(lines), Rows)
	}
	offset := Rows - len(lines)
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) != Cols {
			return g, fmt.Errorf("row %d: width %d, want %d", i, len(runes), Cols)
		}
		for c, r := range runes {
			if r == '.' {
				continue
			}
			kind, ok := piece.ParseKind(r)
			if !ok {
				return g, fmt.Errorf("row %d col %d: unknown cell %q", i, c, r)
			}
			g.Fill(offset+i, c, kind)
		}
	}
	return g, nil
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}
