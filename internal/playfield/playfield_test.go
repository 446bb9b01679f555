package playfield

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-blocks/internal/piece"
)

func mustGrid(t *testing.T, lines ...string) Grid {
	t.Helper()
	g, err := FromRows(lines...)
	require.NoError(t, err)
	return g
}

func emptyRow() string { return strings.Repeat(".", Cols) }

func TestFromRows_Errors(t *testing.T) {
	_, err := FromRows("....")
	assert.Error(t, err)
	_, err = FromRows("........x.")
	assert.Error(t, err)
}

func TestCollides_Walls(t *testing.T) {
	var g Grid
	p := piece.New(piece.KindI)

	p.Col = -1
	assert.True(t, Collides(&g, p), "left wall")
	p.Col = Cols - 3
	assert.True(t, Collides(&g, p), "right wall")
	p.Col = 0
	assert.False(t, Collides(&g, p))
	p.Row = Rows - 1
	assert.True(t, Collides(&g, p), "floor")
	p.Row = Rows - 2
	assert.False(t, Collides(&g, p))
}

func TestCollides_AboveFieldNeverCollides(t *testing.T) {
	var g Grid
	for c := 0; c < Cols; c++ {
		g.Fill(0, c, piece.KindZ)
	}
	p := piece.New(piece.KindI)
	// the I's cells sit in its shape's second row
	p.Row = -2
	assert.False(t, Collides(&g, p))
	p.Row = -1
	assert.True(t, Collides(&g, p))
}

// Collision must agree with the plain reading of the rule for arbitrary
// grids and placements.
func TestCollides_MatchesReferencePredicate(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	kinds := append(append([]piece.Kind{}, piece.StandardKinds...), piece.SpecialKinds...)
	for iter := 0; iter < 2000; iter++ {
		var g Grid
		for row := range g {
			for col := range g[row] {
				if r.Float64() < 0.3 {
					g.Fill(row, col, piece.KindT)
				}
			}
		}
		p := piece.New(kinds[r.IntN(len(kinds))])
		for i := r.IntN(4); i > 0; i-- {
			p.Shape = piece.RotateClockwise(p.Shape)
		}
		p.Row = r.IntN(Rows+6) - 4
		p.Col = r.IntN(Cols+6) - 3

		want := false
		for _, pt := range p.Cells() {
			inside := pt.Col >= 0 && pt.Col < Cols && pt.Row < Rows
			free := pt.Row < 0 || (inside && !g[pt.Row][pt.Col].Occupied)
			if !inside || !free {
				want = true
			}
		}
		require.Equal(t, want, Collides(&g, p), "iteration %d: %+v", iter, p)
	}
}

func TestLock_WritesCells(t *testing.T) {
	var g Grid
	p := piece.New(piece.KindO)
	p.Row, p.Col = Rows-2, 0
	res := Lock(&g, p)

	assert.False(t, res.ToppedOut)
	assert.Equal(t, 4, g.Count())
	for _, pt := range []piece.Point{{18, 0}, {18, 1}, {19, 0}, {19, 1}} {
		cell := g.At(pt.Row, pt.Col)
		assert.True(t, cell.Occupied)
		assert.Equal(t, piece.KindO, cell.Kind)
	}
}

func TestLock_TopOutStillWritesVisibleCells(t *testing.T) {
	var g Grid
	p := piece.New(piece.KindO)
	p.Row = -1
	res := Lock(&g, p)

	assert.True(t, res.ToppedOut)
	assert.Equal(t, 2, g.Count())
	assert.True(t, g.Occupied(0, 4))
	assert.True(t, g.Occupied(0, 5))
}

func TestClearFilledLines_TwoSeparatedRows(t *testing.T) {
	var g Grid
	// rows 2 and 5 are full, a few other rows carry marker blocks
	for c := 0; c < Cols; c++ {
		g.Fill(2, c, piece.KindI)
		g.Fill(5, c, piece.KindJ)
	}
	g.Fill(1, 0, piece.KindS)
	g.Fill(3, 1, piece.KindT)
	g.Fill(4, 2, piece.KindL)
	g.Fill(19, 9, piece.KindZ)
	before := g

	cleared := ClearFilledLines(&g)
	require.Equal(t, 2, cleared)

	var want Grid
	// two empty rows prepended, remaining rows keep their order
	kept := []int{}
	for r := 0; r < Rows; r++ {
		if r != 2 && r != 5 {
			kept = append(kept, r)
		}
	}
	for i, r := range kept {
		want[i+2] = before[r]
	}
	assert.Equal(t, want, g)
}

func TestClearFilledLines_AdjacentRowsAndPartials(t *testing.T) {
	g := mustGrid(t,
		"T.........",
		"IIIIIIIIII",
		"JJJJJJJJJJ",
		"LLLLLLLLLL",
		"OOOOOOOOOO",
		"S........Z",
	)
	assert.Equal(t, 4, ClearFilledLines(&g))
	want := mustGrid(t,
		"T.........",
		"S........Z",
	)
	assert.Equal(t, want, g)
	assert.Zero(t, ClearFilledLines(&g))
}

func TestClearBottomRows(t *testing.T) {
	g := mustGrid(t,
		"T.........",
		"IIIII.....",
		"JJJJJJJ...",
	)
	ClearBottomRows(&g, 2)
	want := mustGrid(t, "T.........")
	assert.Equal(t, want, g)
}

func TestCompact_PreservesColumnOrder(t *testing.T) {
	g := mustGrid(t,
		"I.........",
		"..........",
		"J.........",
		"..........",
		"L.........",
	)
	Compact(&g)
	want := mustGrid(t,
		"I.........",
		"J.........",
		"L.........",
	)
	assert.Equal(t, want, g)
}

func TestApplyBombEffect_RadiusBoundary(t *testing.T) {
	var g Grid
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			g.Fill(r, c, piece.KindT)
		}
	}
	// keep one hole per row so nothing is line-cleared afterwards
	for r := 0; r < Rows; r++ {
		g[r][9] = Cell{}
	}
	centerRow, centerCol := 10, 4

	var blasted Grid = g
	// apply without the gravity pass to inspect the crater directly
	reach := BombRadius
	for r := centerRow - reach; r <= centerRow+reach; r++ {
		for c := centerCol - reach; c <= centerCol+reach; c++ {
			dr, dc := r-centerRow, c-centerCol
			if dr*dr+dc*dc <= BombRadius*BombRadius {
				blasted[r][c] = Cell{}
			}
		}
	}
	// distance exactly 3 is inside, sqrt(10) ≈ 3.16 is outside
	assert.False(t, blasted.Occupied(centerRow, centerCol+3))
	assert.False(t, blasted.Occupied(centerRow-3, centerCol))
	assert.True(t, blasted.Occupied(centerRow+1, centerCol+3))
	assert.True(t, blasted.Occupied(centerRow-3, centerCol-1))

	cleared := ApplyBombEffect(&g, centerCol, centerRow, BombRadius)
	assert.Zero(t, cleared)

	// 29 cells lie within distance 3 of a point on the integer lattice
	assert.Equal(t, Rows*(Cols-1)-29, g.Count())

	// per column, the crater is filled from above: the column's block count
	// drops by exactly the number of blasted cells
	for c := 0; c < Cols-1; c++ {
		removed := 0
		for r := 0; r < Rows; r++ {
			dr, dc := r-centerRow, c-centerCol
			if dr*dr+dc*dc <= 9 {
				removed++
			}
		}
		for r := 0; r < removed; r++ {
			assert.False(t, g.Occupied(r, c), "col %d row %d should be empty", c, r)
		}
		for r := removed; r < Rows; r++ {
			assert.True(t, g.Occupied(r, c), "col %d row %d should be filled", c, r)
		}
	}
}

func TestApplyBombEffect_ClipsToBoundsAndClearsLines(t *testing.T) {
	g := mustGrid(t,
		"IIIIIIIII.",
		"OOOOOOOOO.",
		"T.........",
	)
	// blast at the bottom-right corner; the crater reaches no full row
	cleared := ApplyBombEffect(&g, 9, 19, BombRadius)
	assert.Zero(t, cleared)
	assert.False(t, g.Occupied(19, 9))
	assert.True(t, g.Occupied(19, 0))

	// a blast that compacts a row into a full one clears it
	h := mustGrid(t,
		"....S.....",
		"..........",
		"IIII.IIIII",
	)
	cleared = ApplyBombEffect(&h, 9, 0, 1)
	assert.Equal(t, 1, cleared)
	assert.Zero(t, h.Count())
}

func TestApplyPaintEffect(t *testing.T) {
	g := mustGrid(t,
		"B.........",
		"IIIII.....",
	)
	before := g
	r := rand.New(rand.NewPCG(1, 2))
	painted := ApplyPaintEffect(&g, r)

	assert.Equal(t, 5, painted)
	for row := range g {
		for col := range g[row] {
			assert.Equal(t, before[row][col].Occupied, g[row][col].Occupied)
		}
	}
	assert.Equal(t, piece.KindBomb, g.At(18, 0).Kind, "special cells keep their kind")
	for col := 0; col < 5; col++ {
		assert.False(t, g.At(19, col).Kind.Special())
	}
}

func TestGrid_String(t *testing.T) {
	g := mustGrid(t, "IJLOSTZPB.")
	lines := strings.Split(g.String(), "\n")
	require.Len(t, lines, Rows)
	assert.Equal(t, emptyRow(), lines[0])
	assert.Equal(t, "IJLOSTZPB.", lines[Rows-1])
}
