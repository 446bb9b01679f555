package state

import (
	"go-blocks/internal/piece"
	"go-blocks/internal/playfield"
	"go-blocks/internal/scoring"
)

func (s *State) Lifecycle() string {
	return s.FSM.Current()
}

func (s *State) IsMenu() bool {
	return s.FSM.Is(Menu)
}

func (s *State) IsPlaying() bool {
	return s.FSM.Is(Playing)
}

func (s *State) IsPaused() bool {
	return s.FSM.Is(Paused)
}

func (s *State) IsGameOver() bool {
	return s.FSM.Is(GameOver)
}

// Snapshot is a read-only copy of the session for renderers.
type Snapshot struct {
	Lifecycle         string
	SessionID         string
	Grid              playfield.Grid
	Active            *piece.Active
	GhostRow          int
	Next              piece.Kind
	Score             int
	Level             int
	Lines             int
	Combo             int
	MaxCombo          int
	DropIntervalMs    int
	Effect            scoring.ActiveEffect
	ElapsedMs         int
	PiecesPlaced      int
	SpecialPiecesUsed int
}

// Snapshot copies the session. The active piece, when present, is cloned
// and GhostRow is the row it would land on.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Lifecycle:         s.Lifecycle(),
		SessionID:         s.SessionID,
		Grid:              s.Grid,
		Next:              s.Next,
		Score:             s.Score.CurrentScore,
		Level:             s.Score.Level,
		Lines:             s.Score.Lines,
		Combo:             s.Score.Combo,
		MaxCombo:          s.Score.MaxCombo,
		DropIntervalMs:    s.Score.DropIntervalMs,
		Effect:            s.Score.Effect,
		ElapsedMs:         s.ElapsedMs,
		PiecesPlaced:      s.PiecesPlaced,
		SpecialPiecesUsed: s.SpecialPiecesUsed,
	}
	if s.Active != nil {
		snap.Active = s.Active.Clone()
		snap.GhostRow = landingRow(&s.Grid, s.Active)
	}
	return snap
}

func landingRow(g *playfield.Grid, p *piece.Active) int {
	probe := p.Clone()
	for !playfield.Collides(g, probe) {
		probe.Row++
	}
	return probe.Row - 1
}
