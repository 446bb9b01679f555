package game

import (
	"testing"

	"go-blocks/internal/piece"
	"go-blocks/internal/playfield"
)

func horizontalI(col, row int) *piece.Active {
	p := piece.New(piece.KindI)
	p.Col, p.Row = col, row
	return p
}

func verticalI(col, row int) *piece.Active {
	p := piece.New(piece.KindI)
	p.Shape = piece.RotateClockwise(p.Shape)
	p.Rotation = 1
	p.Col, p.Row = col, row
	return p
}

func TestShift(t *testing.T) {
	var g playfield.Grid
	p := piece.New(piece.KindO) // cols 4-5

	if !Shift(&g, p, 1) || p.Col != 5 {
		t.Fatalf("Expected shift to col 5, got %d", p.Col)
	}
	if !Shift(&g, p, 1) || p.Col != 6 {
		t.Fatalf("Expected shift to col 6, got %d", p.Col)
	}
	p.Col = 8
	if Shift(&g, p, 1) {
		t.Error("Expected shift into the wall to fail")
	}
	if p.Col != 8 {
		t.Errorf("Expected column restored to 8, got %d", p.Col)
	}

	g.Fill(0, 7, piece.KindT)
	if Shift(&g, p, -1) {
		t.Error("Expected shift into a block to fail")
	}
}

func TestStep(t *testing.T) {
	var g playfield.Grid
	p := piece.New(piece.KindO)
	p.Row = 17

	if Step(&g, p) != Falling || p.Row != 18 {
		t.Fatalf("Expected to fall to row 18, got %d", p.Row)
	}
	if Step(&g, p) != Locking {
		t.Error("Expected Locking at the floor")
	}
	if p.Row != 18 {
		t.Errorf("Expected row reverted to 18, got %d", p.Row)
	}
}

func TestRotate_InPlace(t *testing.T) {
	var g playfield.Grid
	p := horizontalI(3, 5)

	if !Rotate(&g, p) {
		t.Fatal("Expected rotation to succeed")
	}
	if p.Col != 3 || p.Row != 5 || p.Rotation != 1 {
		t.Errorf("Expected unkicked rotation, got col=%d row=%d rot=%d", p.Col, p.Row, p.Rotation)
	}
}

func TestRotate_KickOrder(t *testing.T) {
	// Vertical I lands in shape column 2; each blocker pushes the search
	// one step further along the kick list.
	cases := []struct {
		name    string
		blocks  [][2]int
		wantOK  bool
		wantCol int
		wantRow int
		wantRot int
	}{
		{"in place", nil, true, 3, 0, 1},
		{"left", [][2]int{{3, 5}}, true, 2, 0, 1},
		{"right", [][2]int{{3, 5}, {3, 4}}, true, 4, 0, 1},
		{"up", [][2]int{{3, 5}, {3, 4}, {3, 6}}, true, 3, -1, 1},
		{"none", [][2]int{{3, 5}, {3, 4}, {3, 6}, {2, 5}}, false, 3, 0, 0},
	}
	for _, tc := range cases {
		var g playfield.Grid
		for _, b := range tc.blocks {
			g.Fill(b[0], b[1], piece.KindZ)
		}
		p := horizontalI(3, 0)
		before := p.Clone()

		ok := Rotate(&g, p)

		if ok != tc.wantOK {
			t.Errorf("%s: expected ok=%v, got %v", tc.name, tc.wantOK, ok)
		}
		if p.Col != tc.wantCol || p.Row != tc.wantRow || p.Rotation != tc.wantRot {
			t.Errorf("%s: expected col=%d row=%d rot=%d, got col=%d row=%d rot=%d",
				tc.name, tc.wantCol, tc.wantRow, tc.wantRot, p.Col, p.Row, p.Rotation)
		}
		if !tc.wantOK && !p.Shape.Equal(before.Shape) {
			t.Errorf("%s: expected shape restored", tc.name)
		}
	}
}

func TestRotate_WallKickOffRightWall(t *testing.T) {
	var g playfield.Grid
	p := verticalI(7, 5) // occupies column 9

	if !Rotate(&g, p) {
		t.Fatal("Expected rotation to kick off the wall")
	}
	if p.Col != 6 {
		t.Errorf("Expected kick to col 6, got %d", p.Col)
	}
}

func TestHardDrop(t *testing.T) {
	var g playfield.Grid
	p := piece.New(piece.KindO)

	if d := HardDrop(&g, p); d != 18 {
		t.Errorf("Expected drop of 18 rows, got %d", d)
	}
	if p.Row != 18 {
		t.Errorf("Expected to rest at row 18, got %d", p.Row)
	}
	if d := HardDrop(&g, p); d != 0 {
		t.Errorf("Expected a resting piece to drop 0, got %d", d)
	}
}

func TestSpawner(t *testing.T) {
	rng := &MockRand{Ints: []int{3, 5}}
	s := NewSpawner(rng)

	first := s.First()
	if first != piece.KindO {
		t.Fatalf("Expected O, got %v", first)
	}
	active, next := s.Spawn(first)
	if active.Kind != piece.KindO || active.Col != piece.SpawnColSquare || active.Row != piece.SpawnRow {
		t.Errorf("Unexpected spawn %+v", active)
	}
	if next != piece.KindT {
		t.Errorf("Expected next T, got %v", next)
	}
}
