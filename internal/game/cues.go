package game

// Cue is a semantic event for the audio collaborator.
type Cue uint8

const (
	CueMove Cue = iota
	CueRotate
	CueHardDrop
	CueLock
	CueLineClear
	CueSpecialEffect
	CueGameOver
)

var cueNames = [...]string{"move", "rotate", "hardDrop", "lock", "lineClear", "specialEffect", "gameOver"}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// CueSink receives cues. Play must not block.
type CueSink interface {
	Play(Cue)
}

// CueFunc adapts a function to CueSink.
type CueFunc func(Cue)

func (f CueFunc) Play(c Cue) { f(c) }

type nopSink struct{}

func (nopSink) Play(Cue) {}
