package playfield

import (
	"math"

	"go-blocks/internal/piece"
)

// BombRadius is the blast radius, in cells, of the bomb piece.
const BombRadius = 3

// LockResult reports what happened when a piece was written into the grid.
type LockResult struct {
	ToppedOut bool
}

// Collides reports whether p overlaps a wall, the floor or a locked cell.
// Cells above the field (row < 0) never collide so pieces may spawn
// partially hidden.
func Collides(g *Grid, p *piece.Active) bool {
	for _, pt := range p.Cells() {
		if pt.Col < 0 || pt.Col >= Cols || pt.Row >= Rows {
			return true
		}
		if pt.Row >= 0 && g[pt.Row][pt.Col].Occupied {
			return true
		}
	}
	return false
}

// Lock writes p into the grid. Cells above the field cannot be stored;
// any such cell means the stack has topped out, which is reported after
// the visible cells are written.
func Lock(g *Grid, p *piece.Active) LockResult {
	var res LockResult
	for _, pt := range p.Cells() {
		if pt.Row < 0 {
			res.ToppedOut = true
			continue
		}
		g.Fill(pt.Row, pt.Col, p.Kind)
	}
	return res
}

// ClearFilledLines removes every filled row, scanning bottom to top, and
// drops the rows above into the gap. The scan re-checks a row after a
// removal since a filled row may have shifted into it. Returns the number
// of rows removed.
func ClearFilledLines(g *Grid) int {
	cleared := 0
	for row := Rows - 1; row >= 0; row-- {
		if !g.RowFilled(row) {
			continue
		}
		removeRow(g, row)
		cleared++
		row++
	}
	return cleared
}

// ClearBottomRows removes the bottom n rows, inserting empty rows on top.
func ClearBottomRows(g *Grid, n int) {
	n = min(n, Rows)
	for i := 0; i < n; i++ {
		removeRow(g, Rows-1)
	}
}

// ApplyBombEffect empties every cell within radius of the center
// (Euclidean, inclusive), lets the remaining blocks fall in their columns,
// then clears any rows that became filled. Returns the rows cleared.
func ApplyBombEffect(g *Grid, centerCol, centerRow int, radius float64) int {
	reach := int(math.Floor(radius))
	for row := max(0, centerRow-reach); row <= min(Rows-1, centerRow+reach); row++ {
		for col := max(0, centerCol-reach); col <= min(Cols-1, centerCol+reach); col++ {
			dx := float64(col - centerCol)
			dy := float64(row - centerRow)
			if math.Sqrt(dx*dx+dy*dy) <= radius {
				g[row][col] = Cell{}
			}
		}
	}
	Compact(g)
	return ClearFilledLines(g)
}

// Compact drops every block in each column down to close the gaps below
// it, keeping the top-to-bottom order of the column's blocks.
func Compact(g *Grid) {
	for col := 0; col < Cols; col++ {
		gaps := 0
		for row := Rows - 1; row >= 0; row-- {
			if !g[row][col].Occupied {
				gaps++
				continue
			}
			if gaps > 0 {
				g[row+gaps][col] = g[row][col]
				g[row][col] = Cell{}
			}
		}
	}
}

// ApplyPaintEffect recolors every occupied non-special cell with a random
// standard kind. Occupancy is unchanged. Returns the number of cells
// repainted.
func ApplyPaintEffect(g *Grid, r piece.Rand) int {
	painted := 0
	for row := range g {
		for col := range g[row] {
			cell := &g[row][col]
			if !cell.Occupied || cell.Special {
				continue
			}
			cell.Kind = piece.RandomStandard(r)
			painted++
		}
	}
	return painted
}

func removeRow(g *Grid, row int) {
	for r := row; r > 0; r-- {
		g[r] = g[r-1]
	}
	g[0] = [Cols]Cell{}
}
