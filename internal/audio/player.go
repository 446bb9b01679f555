package audio

import (
	"sync"
	"time"

	"go-blocks/internal/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const (
	effectVolume = 0.35
	musicVolume  = 0.12
)

// device is the slice of beep/speaker the player drives.
type device struct {
	open   func(sr beep.SampleRate, bufferSize int) error
	play   func(s ...beep.Streamer)
	lock   func()
	unlock func()
	close  func()
}

var speakerDevice = device{
	open:   speaker.Init,
	play:   speaker.Play,
	lock:   speaker.Lock,
	unlock: speaker.Unlock,
	close:  speaker.Close,
}

// Player turns game cues into synthesized sound. It opens the audio device
// lazily; if that fails the player goes quiet for good.
type Player struct {
	mu          sync.Mutex
	dev         device
	logger      *zap.Logger
	mixer       *beep.Mixer
	music       *beep.Ctrl
	sound       bool
	musicOn     bool
	initialized bool
	failed      bool
}

// NewPlayer returns a player for the default speaker.
func NewPlayer(logger *zap.Logger, sound, music bool) *Player {
	return newPlayer(speakerDevice, logger, sound, music)
}

func newPlayer(dev device, logger *zap.Logger, sound, music bool) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{
		dev:     dev,
		logger:  logger,
		mixer:   &beep.Mixer{},
		sound:   sound,
		musicOn: music,
	}
}

var _ game.CueSink = (*Player)(nil)

// Play queues the tone for c. It never blocks on playback and never fails.
func (p *Player) Play(c game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.sound || !p.ready() {
		return
	}
	s, err := Tone(SampleRate, c, effectVolume)
	if err != nil {
		p.logger.Debug("no tone", zap.Stringer("cue", c), zap.Error(err))
		return
	}
	p.dev.lock()
	p.mixer.Add(s)
	p.dev.unlock()
}

// SetSound turns cue playback on or off.
func (p *Player) SetSound(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sound = on
}

// SetMusic enables or disables background music. Music only plays while
// Playing(true) has been called.
func (p *Player) SetMusic(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.musicOn = on
	if !on {
		p.pauseMusic(true)
	}
}

// Playing tells the player whether a game is running so the music can
// follow it.
func (p *Player) Playing(running bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !running || !p.musicOn {
		p.pauseMusic(true)
		return
	}
	if !p.ready() {
		return
	}
	if p.music == nil {
		p.music = &beep.Ctrl{Streamer: newVolume(newMelody(SampleRate, theme), musicVolume), Paused: true}
		p.dev.lock()
		p.mixer.Add(p.music)
		p.dev.unlock()
	}
	p.pauseMusic(false)
}

// Close silences everything and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.dev.lock()
	p.mixer.Clear()
	p.dev.unlock()
	p.dev.close()
	p.initialized = false
	p.music = nil
}

func (p *Player) pauseMusic(paused bool) {
	if p.music == nil {
		return
	}
	p.dev.lock()
	p.music.Paused = paused
	p.dev.unlock()
}

// ready opens the device on first use. Callers hold p.mu.
func (p *Player) ready() bool {
	if p.initialized {
		return true
	}
	if p.failed {
		return false
	}
	if err := p.dev.open(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		p.failed = true
		p.logger.Warn("audio disabled", zap.Error(err))
		return false
	}
	p.dev.play(p.mixer)
	p.initialized = true
	return true
}
