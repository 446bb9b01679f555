package scoring

// EffectKind is a special effect. At most one timed effect runs at a time.
type EffectKind uint8

const (
	EffectNone EffectKind = iota
	EffectSpeedBoost
	EffectSlowMotion
	EffectBottomClear
)

const (
	SpeedBoostMs    = 5000
	SlowMotionMs    = 8000
	BottomClearRows = 2

	// Every MilestoneLines cleared lines there is a MilestoneChance roll
	// for a random effect.
	MilestoneLines  = 10
	MilestoneChance = 0.7
)

var milestoneEffects = []EffectKind{EffectSpeedBoost, EffectSlowMotion, EffectBottomClear}

// ActiveEffect is the running timed effect, if any.
type ActiveEffect struct {
	Kind        EffectKind
	RemainingMs int
}

// Active reports whether a timed effect is running.
func (e ActiveEffect) Active() bool {
	return e.Kind != EffectNone
}

func (k EffectKind) String() string {
	switch k {
	case EffectSpeedBoost:
		return "speedBoost"
	case EffectSlowMotion:
		return "slowMotion"
	case EffectBottomClear:
		return "bottomClear"
	default:
		return "none"
	}
}

// scaleInterval applies a timed effect to a level-derived interval.
func scaleInterval(base int, kind EffectKind) int {
	switch kind {
	case EffectSpeedBoost:
		return base / 2
	case EffectSlowMotion:
		return base * 3 / 2
	default:
		return base
	}
}
