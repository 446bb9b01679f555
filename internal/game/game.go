package game

import (
	"context"
	"math/rand/v2"

	"go-blocks/internal/piece"
	"go-blocks/internal/playfield"
	"go-blocks/internal/scoring"
	"go-blocks/internal/state"

	"go.uber.org/zap"
)

// Command is an input collaborator request.
type Command uint8

const (
	CmdMoveLeft Command = iota
	CmdMoveRight
	CmdMoveDown
	CmdRotate
	CmdHardDrop
	CmdTogglePause
	CmdStart
	CmdEnd
	CmdRestart
	CmdToMenu
)

// LockReport describes the most recent lock.
type LockReport struct {
	Kind       piece.Kind
	Cleared    int
	Outcome    scoring.LockOutcome
	ToppedOut  bool
	BlockedOut bool
}

// Observer receives a snapshot after every change.
type Observer func(state.Snapshot)

type Option func(*Game)

func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithCues routes cues to sink.
func WithCues(sink CueSink) Option {
	return func(g *Game) { g.cues = sink }
}

// WithRand sets the random source for piece draws, paint colours and
// effect rolls. *rand.Rand from math/rand/v2 fits.
func WithRand(rng piece.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// Game encapsulates the core game logic, independent of the UI. Calls must
// be serialized by the host; nothing here is safe for concurrent use.
type Game struct {
	State    *state.State
	LastLock LockReport

	spawner    *Spawner
	rng        piece.Rand
	logger     *zap.Logger
	cues       CueSink
	observers  []Observer
	gameOver   []func(reason string)
	pieceState PieceState
}

// NewGame creates a game sitting in the menu.
func NewGame(difficulty scoring.Difficulty, opts ...Option) *Game {
	g := &Game{
		logger: zap.NewNop(),
		cues:   nopSink{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g.spawner = NewSpawner(g.rng)

	score := scoring.InitScoring(scoring.ProfileFor(difficulty), g.rng)
	g.State = state.NewState(score, state.GameOptions{Difficulty: difficulty})
	g.State.Hooks = state.Hooks{
		Ended: g.ended,
		Changed: func(from, to string) {
			g.logger.Debug("lifecycle", zap.String("from", from), zap.String("to", to))
		},
	}
	return g
}

// Observe registers o for snapshots.
func (g *Game) Observe(o Observer) {
	g.observers = append(g.observers, o)
}

// OnGameOver registers fn to run when a game ends.
func (g *Game) OnGameOver(fn func(reason string)) {
	g.gameOver = append(g.gameOver, fn)
}

// SetDifficulty switches the progression profile. It only applies outside
// a running game.
func (g *Game) SetDifficulty(d scoring.Difficulty) bool {
	if g.State.IsPlaying() || g.State.IsPaused() {
		return false
	}
	g.State.Options.Difficulty = d
	g.State.Score = scoring.InitScoring(scoring.ProfileFor(d), g.rng)
	return true
}

// PieceState reports the active piece's controller state.
func (g *Game) PieceState() PieceState {
	return g.pieceState
}

// Snapshot returns a read-only copy of the session.
func (g *Game) Snapshot() state.Snapshot {
	return g.State.Snapshot()
}

// Start begins a game from the menu.
func (g *Game) Start() error {
	if err := g.event(state.EventStart); err != nil {
		return err
	}
	g.begin()
	return nil
}

// Restart begins a new game after game over.
func (g *Game) Restart() error {
	if err := g.event(state.EventRestart); err != nil {
		return err
	}
	g.begin()
	return nil
}

func (g *Game) Pause() error {
	return g.lifecycle(state.EventPause)
}

func (g *Game) Resume() error {
	return g.lifecycle(state.EventResume)
}

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause() error {
	if g.State.IsPaused() {
		return g.Resume()
	}
	return g.Pause()
}

// End gives up the running game.
func (g *Game) End() error {
	return g.lifecycle(state.EventEnd)
}

func (g *Game) ReturnToMenu() error {
	return g.lifecycle(state.EventToMenu)
}

// Handle dispatches cmd and reports whether it had any effect.
func (g *Game) Handle(cmd Command) bool {
	switch cmd {
	case CmdMoveLeft:
		return g.MoveLeft()
	case CmdMoveRight:
		return g.MoveRight()
	case CmdMoveDown:
		return g.MoveDown()
	case CmdRotate:
		return g.Rotate()
	case CmdHardDrop:
		return g.HardDrop()
	case CmdTogglePause:
		return g.TogglePause() == nil
	case CmdStart:
		return g.Start() == nil
	case CmdEnd:
		return g.End() == nil
	case CmdRestart:
		return g.Restart() == nil
	case CmdToMenu:
		return g.ReturnToMenu() == nil
	}
	return false
}

func (g *Game) MoveLeft() bool {
	return g.shift(-1)
}

func (g *Game) MoveRight() bool {
	return g.shift(1)
}

// MoveDown is a player soft drop: one row for one point, or a lock when
// the piece is resting.
func (g *Game) MoveDown() bool {
	if !g.canMove() {
		return false
	}
	g.down(true)
	g.notify()
	return true
}

func (g *Game) Rotate() bool {
	if !g.canMove() {
		return false
	}
	if !Rotate(&g.State.Grid, g.State.Active) {
		return false
	}
	g.emit(CueRotate)
	g.notify()
	return true
}

// HardDrop drops the piece to its landing row and locks it.
func (g *Game) HardDrop() bool {
	if !g.canMove() {
		return false
	}
	distance := HardDrop(&g.State.Grid, g.State.Active)
	g.State.Score.AddHardDrop(distance)
	g.emit(CueHardDrop)
	g.lock()
	g.notify()
	return true
}

// Advance moves the simulation on by elapsedMs. At most one gravity step
// happens per call.
func (g *Game) Advance(elapsedMs int) {
	if !g.State.IsPlaying() || elapsedMs <= 0 {
		return
	}
	s := g.State
	s.ElapsedMs += elapsedMs

	if expired := s.Score.Tick(elapsedMs); expired != scoring.EffectNone {
		g.logger.Debug("effect expired", zap.Stringer("effect", expired))
	}

	s.DropCounterMs += elapsedMs
	if s.DropCounterMs > s.Score.DropIntervalMs {
		s.DropCounterMs = 0
		g.down(false)
	}
	g.notify()
}

func (g *Game) begin() {
	s := g.State
	g.LastLock = LockReport{}
	g.logger.Info("game started",
		zap.String("session", s.SessionID),
		zap.String("difficulty", string(s.Options.Difficulty)),
	)
	s.Next = g.spawner.First()
	g.spawn()
	g.notify()
}

func (g *Game) canMove() bool {
	return g.State.IsPlaying() && g.State.Active != nil && g.pieceState == Falling
}

func (g *Game) shift(dCol int) bool {
	if !g.canMove() {
		return false
	}
	if !Shift(&g.State.Grid, g.State.Active, dCol) {
		return false
	}
	g.emit(CueMove)
	g.notify()
	return true
}

func (g *Game) down(player bool) {
	if Step(&g.State.Grid, g.State.Active) == Falling {
		if player {
			g.State.Score.ScoreEvent("softDrop")
			g.emit(CueMove)
		}
		return
	}
	g.lock()
}

// lock runs the whole lock sequence for the active piece: write or effect,
// line clear, scoring, triggered effects and the next spawn.
func (g *Game) lock() {
	s := g.State
	p := s.Active
	g.pieceState = Locking
	report := LockReport{Kind: p.Kind}
	s.PiecesPlaced++

	switch p.Kind.Effect() {
	case piece.EffectPaint:
		recolored := playfield.ApplyPaintEffect(&s.Grid, g.rng)
		s.Score.ScoreEvent("paintBonus")
		s.SpecialPiecesUsed++
		g.emit(CueSpecialEffect)
		g.logger.Debug("paint", zap.Int("recolored", recolored))
	case piece.EffectBomb:
		c := p.Center()
		report.Cleared += playfield.ApplyBombEffect(&s.Grid, c.Col, c.Row, playfield.BombRadius)
		s.Score.ScoreEvent("bombBonus")
		s.SpecialPiecesUsed++
		g.emit(CueSpecialEffect)
		g.logger.Debug("bomb", zap.Int("row", c.Row), zap.Int("col", c.Col))
	default:
		if playfield.Lock(&s.Grid, p).ToppedOut {
			report.ToppedOut = true
			g.LastLock = report
			g.pieceState = Locked
			g.emit(CueLock)
			g.topOut("top out")
			return
		}
	}
	g.emit(CueLock)

	report.Cleared += playfield.ClearFilledLines(&s.Grid)
	report.Outcome = s.Score.RecordLock(report.Cleared)
	if report.Cleared > 0 {
		g.emit(CueLineClear)
	}
	for _, kind := range report.Outcome.Started {
		if kind == scoring.EffectBottomClear {
			playfield.ClearBottomRows(&s.Grid, scoring.BottomClearRows)
		}
		g.emit(CueSpecialEffect)
		g.logger.Info("special effect", zap.Stringer("effect", kind), zap.String("session", s.SessionID))
	}
	if report.Outcome.LevelUp {
		g.logger.Info("level up", zap.Int("level", s.Score.Level), zap.Int("interval_ms", s.Score.DropIntervalMs))
	}
	g.logger.Debug("locked",
		zap.Stringer("kind", p.Kind),
		zap.Int("cleared", report.Cleared),
		zap.Int("score", s.Score.CurrentScore),
		zap.Int("combo", s.Score.Combo),
	)
	g.pieceState = Locked

	if !g.spawn() {
		report.BlockedOut = true
		g.LastLock = report
		g.topOut("block out")
		return
	}
	g.LastLock = report
}

// spawn brings in the next piece and reports whether it fits.
func (g *Game) spawn() bool {
	s := g.State
	s.Active, s.Next = g.spawner.Spawn(s.Next)
	s.DropCounterMs = 0
	g.pieceState = Falling
	return !playfield.Collides(&s.Grid, s.Active)
}

func (g *Game) topOut(why string) {
	g.logger.Info(why, zap.String("session", g.State.SessionID))
	if err := g.event(state.EventTopOut); err != nil {
		g.logger.Warn("top out transition failed", zap.Error(err))
	}
}

func (g *Game) ended(reason string) {
	s := g.State
	g.emit(CueGameOver)
	g.logger.Info("game over",
		zap.String("session", s.SessionID),
		zap.String("reason", reason),
		zap.Int("score", s.Score.CurrentScore),
		zap.Int("lines", s.Score.Lines),
		zap.Int("level", s.Score.Level),
	)
	for _, fn := range g.gameOver {
		fn(reason)
	}
}

func (g *Game) lifecycle(event string) error {
	if err := g.event(event); err != nil {
		return err
	}
	g.notify()
	return nil
}

// We use background context as we don't need cancellation here.
func (g *Game) event(name string) error {
	return g.State.FSM.Event(context.Background(), name)
}

// emit hands c to the sink. Sink failures never reach the simulation.
func (g *Game) emit(c Cue) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("cue sink failed", zap.Stringer("cue", c), zap.Any("panic", r))
		}
	}()
	g.cues.Play(c)
}

func (g *Game) notify() {
	if len(g.observers) == 0 {
		return
	}
	snap := g.State.Snapshot()
	for _, o := range g.observers {
		o(snap)
	}
}
