package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"go-tetris/internal/config"
	"go-tetris/internal/game"
	"go-tetris/internal/input"
	"go-tetris/internal/render"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

const (
	tickInterval   = 20 * time.Millisecond
	scrollInterval = 150 * time.Millisecond
	splashWidth    = 24
	topScores      = 5
)

var roundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

type phase int

const (
	phaseSplash phase = iota
	phasePlay
	phaseOver
)

type LocalState struct {
	Session *game.Session
	Splash  *render.Splash

	cfg   *config.Config
	opts  game.Options
	rng   *rand.Rand
	keys  input.KeyMap
	help  help.Model
	phase phase
	log   logrus.FieldLogger
}

type TickMsg time.Time

type ScrollMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func scrollCmd() tea.Cmd {
	return tea.Tick(scrollInterval, func(t time.Time) tea.Msg {
		return ScrollMsg(t)
	})
}

func initialModel(cfg *config.Config, log logrus.FieldLogger) *LocalState {
	rng := newRand(cfg.Seed)
	return &LocalState{
		Splash: render.NewSplash(cfg.SplashText, splashWidth, rng),
		cfg:    cfg,
		opts:   gameOptions(cfg),
		rng:    rng,
		keys:   input.DefaultKeyMap(),
		help:   help.New(),
		phase:  phaseSplash,
		log:    log,
	}
}

func (s *LocalState) Init() tea.Cmd {
	return tea.Batch(tickCmd(), scrollCmd())
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ScrollMsg:
		if s.phase != phaseSplash {
			return s, nil
		}
		s.Splash.Advance()
		return s, scrollCmd()
	case TickMsg:
		if s.phase == phasePlay {
			s.Session.CurrentGame.HandleTick(time.Time(msg))
			s.checkRoundOver()
		}
		return s, tickCmd()
	case tea.WindowSizeMsg:
		s.help.Width = msg.Width
	case tea.KeyMsg:
		cmd := s.keys.Command(msg)
		if cmd == input.Quit {
			return s, tea.Quit
		}

		now := time.Now()
		switch s.phase {
		case phaseSplash, phaseOver:
			// Any key starts a round.
			s.startRound(now)
		case phasePlay:
			if cmd == input.Restart {
				s.startRound(now)
				break
			}
			s.Session.CurrentGame.HandleCommand(cmd, now)
			s.checkRoundOver()
		}
	}

	return s, nil
}

func (s *LocalState) startRound(now time.Time) {
	if s.Session == nil {
		s.Session = game.NewSession(s.rng, s.opts, s.log, now)
	} else {
		s.Session.NextRound(now)
	}
	s.phase = phasePlay
}

func (s *LocalState) checkRoundOver() {
	if s.Session.Update() {
		s.phase = phaseOver
	}
}

func (s *LocalState) View() string {
	switch s.phase {
	case phaseSplash:
		return s.Splash.View() + "\n" + s.help.View(s.keys)
	case phaseOver:
		entry, _ := s.Session.LastEntry()
		return render.GameOver(entry, s.Session.History, topScores, s.Session.NewBest)
	}

	g := s.Session.CurrentGame
	frame := g.Frame(!s.cfg.HideGhost, !s.cfg.HideNext)
	return render.Game(frame) + "\n" +
		roundStyle.Render(fmt.Sprintf("Round %d", s.Session.Round)) + "\n" +
		s.help.View(s.keys)
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func gameOptions(cfg *config.Config) game.Options {
	return game.Options{
		DropBase: cfg.Drop.Base,
		DropStep: cfg.Drop.Step,
		DropMin:  cfg.Drop.Min,
	}
}

// dropFlag accepts a drop interval as plain milliseconds or a Go duration.
type dropFlag time.Duration

func (d *dropFlag) String() string {
	if *d == 0 {
		return "config"
	}
	return time.Duration(*d).String()
}

func (d *dropFlag) Set(s string) error {
	// Try parsing as simple integer first
	if ms, err := strconv.Atoi(s); err == nil {
		if ms <= 0 {
			return fmt.Errorf("drop interval must be positive: %s", s)
		}
		*d = dropFlag(time.Duration(ms) * time.Millisecond)
		return nil
	}

	v, err := time.ParseDuration(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("invalid drop interval: %s (use milliseconds or e.g. 450ms)", s)
	}
	*d = dropFlag(v)
	return nil
}

type seedFlag uint64

func (i *seedFlag) String() string {
	return fmt.Sprint(uint64(*i))
}

func (i *seedFlag) Set(s string) error {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid seed: %s", s)
	}
	*i = seedFlag(v)
	return nil
}

func main() {
	var configPath string
	var logFile string
	var seed seedFlag
	var drop dropFlag
	var serial bool
	var joystick string
	var noGhost bool
	var noNext bool

	flag.StringVar(&configPath, "config", "", "YAML configuration file")
	flag.StringVar(&configPath, "c", "", "YAML configuration file (shorthand)")

	flag.StringVar(&logFile, "log", "", "Write the log to this file")
	flag.StringVar(&logFile, "l", "", "Write the log to this file (shorthand)")

	flag.Var(&seed, "seed", "Seed the piece sequence")
	flag.Var(&seed, "s", "Seed the piece sequence (shorthand)")

	flag.Var(&drop, "drop", "Starting drop interval (e.g. 450 or 450ms)")
	flag.Var(&drop, "d", "Starting drop interval (shorthand)")

	flag.BoolVar(&serial, "serial", false, "Read raw terminal bytes instead of running the full-screen UI")
	flag.StringVar(&joystick, "joystick", "", "Read analog joystick readings from this file (serial mode)")

	flag.BoolVar(&noGhost, "no-ghost", false, "Hide the landing preview")
	flag.BoolVar(&noGhost, "ng", false, "Hide the landing preview (shorthand)")
	flag.BoolVar(&noNext, "no-next", false, "Hide the next piece")
	flag.BoolVar(&noNext, "nn", false, "Hide the next piece (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "    -c, --config=FILE      YAML configuration file\n")
		fmt.Fprintf(os.Stderr, "    -l, --log=FILE         Write the log to FILE\n")
		fmt.Fprintf(os.Stderr, "    -s, --seed=N           Seed the piece sequence\n")
		fmt.Fprintf(os.Stderr, "    -d, --drop=MS          Starting drop interval (e.g. 450 or 450ms)\n")
		fmt.Fprintf(os.Stderr, "        --serial           Read raw terminal bytes instead of running the full-screen UI\n")
		fmt.Fprintf(os.Stderr, "        --joystick=FILE    Read analog joystick readings from FILE (serial mode)\n")
		fmt.Fprintf(os.Stderr, "   -ng, --no-ghost         Hide the landing preview\n")
		fmt.Fprintf(os.Stderr, "   -nn, --no-next          Hide the next piece\n")
		fmt.Fprintf(os.Stderr, "    -h, --help             Show this help message\n")
		config.Usage(os.Stderr)
	}

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags override the file and the environment.
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if joystick != "" {
		cfg.Joystick = joystick
	}
	if seed != 0 {
		cfg.Seed = uint64(seed)
	}
	if drop != 0 {
		cfg.Drop.Base = time.Duration(drop)
	}
	cfg.HideGhost = cfg.HideGhost || noGhost
	cfg.HideNext = cfg.HideNext || noNext

	log, closeLog, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if serial {
		if err := runSerial(cfg, log); err != nil {
			log.WithError(err).Error("serial mode failed")
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeLog()
			os.Exit(1)
		}
		return
	}

	model := initialModel(cfg, log)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program failed")
		fmt.Printf("Error starting the program: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	// Final output
	if model.Session != nil && model.Session.History.Attempts() > 0 {
		best := model.Session.History.GetNScoreEntries(1)[0]
		fmt.Printf("Rounds played: %d | Best score: %d\n", model.Session.History.Attempts(), best.Score)
	}
}
