package state

import (
	"context"

	"go-blocks/internal/piece"
	"go-blocks/internal/playfield"
	"go-blocks/internal/scoring"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

// Lifecycle states.
const (
	Menu     = "menu"
	Playing  = "playing"
	Paused   = "paused"
	GameOver = "gameOver"
)

// Lifecycle events.
const (
	EventStart   = "start"
	EventPause   = "pause"
	EventResume  = "resume"
	EventEnd     = "end"
	EventTopOut  = "topOut"
	EventRestart = "restart"
	EventToMenu  = "toMenu"
)

type GameOptions struct {
	Difficulty scoring.Difficulty
}

// Hooks let the owner react to lifecycle changes. Any may be nil.
type Hooks struct {
	// Started runs after the session state has been reset for a new game.
	Started func()
	// Ended runs on entering gameOver with the event that caused it.
	Ended func(reason string)
	// Changed runs on every transition.
	Changed func(from, to string)
}

// State is everything one session owns. Only the game package mutates it.
type State struct {
	Grid              playfield.Grid
	Active            *piece.Active
	Next              piece.Kind
	Score             *scoring.Scoring
	FSM               *fsm.FSM
	SessionID         string
	DropCounterMs     int
	ElapsedMs         int
	PiecesPlaced      int
	SpecialPiecesUsed int
	Hooks             Hooks
	Options           GameOptions
}

func NewState(score *scoring.Scoring, opts GameOptions) *State {
	s := &State{
		Score:   score,
		Options: opts,
	}

	s.FSM = fsm.NewFSM(
		Menu,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

// Reset clears everything a new game starts without.
func (s *State) Reset() {
	s.Grid.Reset()
	s.Active = nil
	s.Next = piece.KindI
	s.Score.Reset()
	s.DropCounterMs = 0
	s.ElapsedMs = 0
	s.PiecesPlaced = 0
	s.SpecialPiecesUsed = 0
	s.SessionID = uuid.NewString()
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: EventStart, Src: []string{Menu}, Dst: Playing},
		{Name: EventPause, Src: []string{Playing}, Dst: Paused},
		{Name: EventResume, Src: []string{Paused}, Dst: Playing},

		// Leaving a game
		{Name: EventEnd, Src: []string{Playing}, Dst: GameOver},
		{Name: EventTopOut, Src: []string{Playing}, Dst: GameOver},

		{Name: EventRestart, Src: []string{GameOver}, Dst: Playing},
		{Name: EventToMenu, Src: []string{GameOver}, Dst: Menu},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_" + Playing: func(_ context.Context, e *fsm.Event) {
			// Resuming keeps the board.
			if e.Event == EventResume {
				return
			}
			s.Reset()
			if s.Hooks.Started != nil {
				s.Hooks.Started()
			}
		},
		"enter_" + GameOver: func(_ context.Context, e *fsm.Event) {
			if s.Hooks.Ended != nil {
				s.Hooks.Ended(e.Event)
			}
		},
		"enter_state": func(_ context.Context, e *fsm.Event) {
			if s.Hooks.Changed != nil {
				s.Hooks.Changed(e.Src, e.Dst)
			}
		},
	}
}
