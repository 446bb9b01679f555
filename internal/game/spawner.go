package game

import "go-blocks/internal/piece"

// Spawner hands out pieces one ahead so the next kind can be previewed.
type Spawner struct {
	rng piece.Rand
}

func NewSpawner(rng piece.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// First draws the kind a new game previews before its first spawn.
func (s *Spawner) First() piece.Kind {
	return piece.Draw(s.rng)
}

// Spawn promotes previousNext to the active piece at its spawn position
// and draws a fresh next kind.
func (s *Spawner) Spawn(previousNext piece.Kind) (*piece.Active, piece.Kind) {
	return piece.New(previousNext), piece.Draw(s.rng)
}
