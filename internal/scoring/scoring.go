package scoring

// Roller is the random source used for milestone effect rolls.
// *rand.Rand from math/rand/v2 satisfies it.
type Roller interface {
	Float64() float64
	IntN(n int) int
}

// Scoring tracks score, combo, level and the gravity interval for one
// session, along with the special effect currently running.
type Scoring struct {
	// public
	CurrentScore   int
	Level          int
	Lines          int
	Combo          int
	MaxCombo       int
	DropIntervalMs int
	Effect         ActiveEffect
	// private
	profile    Profile
	rng        Roller
	scoreTable map[string]int
}

// LockOutcome summarises what one lock did to the score.
type LockOutcome struct {
	Cleared    int
	LinePoints int
	ComboBonus int
	LevelUp    bool
	// Started lists effects that began during this lock, in order.
	Started []EffectKind
}

// InitScoring creates a Scoring at level 1 for the given profile.
func InitScoring(profile Profile, rng Roller) *Scoring {
	s := &Scoring{
		profile:    profile,
		rng:        rng,
		scoreTable: getScoreTable(),
	}
	s.Reset()
	return s
}

// Reset starts the counters over, keeping the profile and random source.
func (s *Scoring) Reset() {
	s.CurrentScore = 0
	s.Level = 1
	s.Lines = 0
	s.Combo = 0
	s.MaxCombo = 0
	s.Effect = ActiveEffect{}
	s.DropIntervalMs = s.profile.IntervalFor(1)
}

// ScoreEvent adds the flat award for a named event.
func (s *Scoring) ScoreEvent(event string) {
	s.CurrentScore += s.scoreTable[event]
}

// AddHardDrop awards points for the rows a hard drop traversed.
func (s *Scoring) AddHardDrop(distance int) {
	if distance <= 0 {
		return
	}
	s.CurrentScore += distance * s.scoreTable["hardDropRow"]
}

// RecordLock settles a lock that removed cleared lines: line and combo
// points, the tetris boost, level and interval, then the milestone roll.
func (s *Scoring) RecordLock(cleared int) LockOutcome {
	out := LockOutcome{Cleared: cleared}
	if cleared <= 0 {
		s.Combo = 0
		return out
	}

	s.Combo++
	s.MaxCombo = max(s.MaxCombo, s.Combo)
	out.ComboBonus = s.Combo * s.scoreTable["comboStep"] * s.Level
	out.LinePoints = s.lineScore(cleared) * s.Level
	s.CurrentScore += out.LinePoints + out.ComboBonus

	if cleared >= 4 && s.TriggerEffect(EffectSpeedBoost) {
		out.Started = append(out.Started, EffectSpeedBoost)
	}

	prevLines := s.Lines
	s.Lines += cleared
	if level := s.profile.LevelFor(s.Lines); level != s.Level {
		s.Level = level
		out.LevelUp = true
		s.refreshInterval()
	}

	if s.Lines/MilestoneLines > prevLines/MilestoneLines {
		if s.rng != nil && s.rng.Float64() < MilestoneChance {
			kind := milestoneEffects[s.rng.IntN(len(milestoneEffects))]
			if s.TriggerEffect(kind) {
				out.Started = append(out.Started, kind)
			}
		}
	}

	return out
}

// TriggerEffect starts kind unless a timed effect is already running, in
// which case the trigger is dropped. Bottom clear is instantaneous: its
// points are awarded here and the caller removes the rows.
func (s *Scoring) TriggerEffect(kind EffectKind) bool {
	if kind == EffectNone || s.Effect.Active() {
		return false
	}
	switch kind {
	case EffectSpeedBoost:
		s.Effect = ActiveEffect{Kind: kind, RemainingMs: SpeedBoostMs}
	case EffectSlowMotion:
		s.Effect = ActiveEffect{Kind: kind, RemainingMs: SlowMotionMs}
	case EffectBottomClear:
		s.CurrentScore += BottomClearRows * s.scoreTable["bottomClearRow"] * s.Level
	}
	s.refreshInterval()
	return true
}

// Tick runs the effect timer down by elapsedMs and returns the kind that
// expired, if any.
func (s *Scoring) Tick(elapsedMs int) EffectKind {
	if !s.Effect.Active() || elapsedMs <= 0 {
		return EffectNone
	}
	s.Effect.RemainingMs -= elapsedMs
	if s.Effect.RemainingMs > 0 {
		return EffectNone
	}
	expired := s.Effect.Kind
	s.Effect = ActiveEffect{}
	s.refreshInterval()
	return expired
}

func (s *Scoring) refreshInterval() {
	s.DropIntervalMs = scaleInterval(s.profile.IntervalFor(s.Level), s.Effect.Kind)
}

func (s *Scoring) lineScore(cleared int) int {
	switch cleared {
	case 1:
		return s.scoreTable["single"]
	case 2:
		return s.scoreTable["double"]
	case 3:
		return s.scoreTable["triple"]
	default:
		return s.scoreTable["tetris"]
	}
}

// getScoreTable returns the predefined values for different scoring events.
func getScoreTable() map[string]int {
	return map[string]int{
		"softDrop":       1,
		"hardDropRow":    2,
		"single":         100,
		"double":         300,
		"triple":         500,
		"tetris":         800,
		"comboStep":      50,
		"bottomClearRow": 100,
		"paintBonus":     1000,
		"bombBonus":      500,
	}
}
