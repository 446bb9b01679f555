package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"go-blocks/internal/audio"
	"go-blocks/internal/game"
	"go-blocks/internal/persist"
	"go-blocks/internal/scoring"
	"go-blocks/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type difficultyFlag string

func (d *difficultyFlag) String() string {
	return string(*d)
}

func (d *difficultyFlag) Set(s string) error {
	switch v := strings.ToLower(s); v {
	case string(scoring.Easy), string(scoring.Medium), string(scoring.Hard):
		*d = difficultyFlag(v)
		return nil
	}
	return fmt.Errorf("invalid difficulty: %s (use easy, medium or hard)", s)
}

type options struct {
	difficulty difficultyFlag
	seed       uint64
	mute       bool
	noMusic    bool
	dataDir    string
	debug      bool
	theme      string
	blockStyle string
}

func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	path := filepath.Join(os.TempDir(), "go-blocks-debug.log")
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func openStore(dir string, logger *zap.Logger) persist.Store {
	if dir == "" {
		var err error
		if dir, err = persist.DefaultDir(); err != nil {
			logger.Warn("no config dir, progress will not be saved", zap.Error(err))
			return persist.NewMemoryStore()
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("falling back to memory store", zap.String("dir", dir), zap.Error(err))
		return persist.NewMemoryStore()
	}
	return persist.NewFileStore(dir)
}

// applyFlags copies explicitly set flags into the saved settings.
func applyFlags(sess *game.Session, opts options) error {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if len(set) == 0 {
		return nil
	}
	return sess.UpdateSettings(func(s *persist.Settings) {
		if opts.difficulty != "" {
			s.Difficulty = string(opts.difficulty)
		}
		if set["theme"] {
			s.Theme = opts.theme
		}
		if set["block-style"] {
			s.BlockStyle = opts.blockStyle
		}
		if opts.mute {
			s.Sound = false
			s.Music = false
		}
		if opts.noMusic {
			s.Music = false
		}
	})
}

func main() {
	var opts options

	flag.Var(&opts.difficulty, "difficulty", "Difficulty: easy, medium or hard")
	flag.Var(&opts.difficulty, "d", "Difficulty (shorthand)")
	flag.Uint64Var(&opts.seed, "seed", 0, "Seed for the piece sequence (0 picks one)")
	flag.BoolVar(&opts.mute, "mute", false, "Turn off sound and music")
	flag.BoolVar(&opts.noMusic, "no-music", false, "Turn off music")
	flag.StringVar(&opts.dataDir, "data-dir", "", "Where settings and scores are kept")
	flag.BoolVar(&opts.debug, "debug", false, "Write a debug log to the temp dir")
	flag.StringVar(&opts.theme, "theme", "", "Color theme: classic, neon, pastel or mono")
	flag.StringVar(&opts.blockStyle, "block-style", "", "Block style: classic, solid or round")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "   -d, --difficulty=NAME   easy, medium or hard\n")
		fmt.Fprintf(os.Stderr, "       --seed=N            Seed for the piece sequence\n")
		fmt.Fprintf(os.Stderr, "       --mute              Turn off sound and music\n")
		fmt.Fprintf(os.Stderr, "       --no-music          Turn off music\n")
		fmt.Fprintf(os.Stderr, "       --data-dir=DIR      Where settings and scores are kept\n")
		fmt.Fprintf(os.Stderr, "       --theme=NAME        classic, neon, pastel or mono\n")
		fmt.Fprintf(os.Stderr, "       --block-style=NAME  classic, solid or round\n")
		fmt.Fprintf(os.Stderr, "       --debug             Log to %s\n", filepath.Join(os.TempDir(), "go-blocks-debug.log"))
		fmt.Fprintf(os.Stderr, "   -h, --help              Show this help message\n")
	}

	flag.Parse()

	logger, err := newLogger(opts.debug)
	if err != nil {
		fmt.Printf("Error opening debug log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	seed := opts.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Info("starting", zap.Uint64("seed", seed))

	player := audio.NewPlayer(logger, true, true)
	defer player.Close()

	sess := game.NewSession(openStore(opts.dataDir, logger), logger,
		game.WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
		game.WithCues(player),
	)
	if err := applyFlags(sess, opts); err != nil {
		logger.Warn("settings not saved", zap.Error(err))
	}
	player.SetSound(sess.Settings.Sound)
	player.SetMusic(sess.Settings.Music)

	p := tea.NewProgram(ui.New(sess, player, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error starting the program: %v\n", err)
		os.Exit(1)
	}

	if res := sess.LastResult; res != nil {
		fmt.Printf("Last game: %d points, %d lines, level %d\n", res.Score, res.Lines, res.Level)
	}
}
