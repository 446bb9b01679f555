package game

import (
	"go-blocks/internal/piece"
	"go-blocks/internal/playfield"
)

// PieceState is where the active piece is in its life.
type PieceState uint8

const (
	Falling PieceState = iota
	// Locking means the piece could not move down and must be locked
	// before anything else happens.
	Locking
	Locked
)

func (p PieceState) String() string {
	switch p {
	case Falling:
		return "falling"
	case Locking:
		return "locking"
	default:
		return "locked"
	}
}

// kick is an offset from the pre-rotation position.
type kick struct {
	col, row int
}

// Candidates in order: in place, left 1, right 1, up 1.
var wallKicks = [...]kick{{0, 0}, {-1, 0}, {1, 0}, {0, -1}}

// Shift moves p by dCol columns, reverting on collision.
func Shift(g *playfield.Grid, p *piece.Active, dCol int) bool {
	p.Col += dCol
	if playfield.Collides(g, p) {
		p.Col -= dCol
		return false
	}
	return true
}

// Step moves p down one row. On collision the move is reverted and the
// piece is Locking.
func Step(g *playfield.Grid, p *piece.Active) PieceState {
	p.Row++
	if playfield.Collides(g, p) {
		p.Row--
		return Locking
	}
	return Falling
}

// Rotate turns p clockwise, trying each wall kick in order. If none fits
// p is left exactly as it was.
func Rotate(g *playfield.Grid, p *piece.Active) bool {
	origShape, origCol, origRow, origRot := p.Shape, p.Col, p.Row, p.Rotation

	p.Shape = piece.RotateClockwise(origShape)
	p.Rotation = (origRot + 1) % 4
	for _, k := range wallKicks {
		p.Col, p.Row = origCol+k.col, origRow+k.row
		if !playfield.Collides(g, p) {
			return true
		}
	}

	p.Shape, p.Col, p.Row, p.Rotation = origShape, origCol, origRow, origRot
	return false
}

// HardDrop lowers p until it rests and returns the rows it fell.
func HardDrop(g *playfield.Grid, p *piece.Active) int {
	distance := 0
	for Step(g, p) == Falling {
		distance++
	}
	return distance
}
