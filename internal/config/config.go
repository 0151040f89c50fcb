package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"TETRIS_LOG_LEVEL" env-default:"info" env-description:"logrus level"`
	LogFile    string `yaml:"log-file" env:"TETRIS_LOG_FILE" env-description:"log destination, empty discards"`
	Joystick   string `yaml:"joystick" env:"TETRIS_JOYSTICK" env-description:"analog joystick stream of \"x y\" lines, serial mode only"`
	Seed       uint64 `yaml:"seed" env:"TETRIS_SEED" env-description:"piece sequence seed, 0 picks one"`
	HideNext   bool   `yaml:"hide-next" env:"TETRIS_HIDE_NEXT" env-description:"hide the next piece preview"`
	HideGhost  bool   `yaml:"hide-ghost" env:"TETRIS_HIDE_GHOST" env-description:"hide where the piece lands"`
	SplashText string `yaml:"splash-text" env:"TETRIS_SPLASH_TEXT" env-default:"Tetris for your terminal - press any key to start" env-description:"scrolling splash banner"`
	Drop       Drop   `yaml:"drop"`
}

// Drop is the gravity policy: interval = max(Min, Base - cleared*Step).
type Drop struct {
	Base time.Duration `yaml:"base" env:"TETRIS_DROP_BASE" env-default:"600ms" env-description:"drop interval at zero cleared rows"`
	Step time.Duration `yaml:"step" env:"TETRIS_DROP_STEP" env-default:"30ms" env-description:"speed-up per cleared row"`
	Min  time.Duration `yaml:"min" env:"TETRIS_DROP_MIN" env-default:"0s" env-description:"fastest drop interval"`
}

// Load reads the YAML file at path and then the environment. An empty path
// reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Usage writes the environment variable help to w.
func Usage(w io.Writer) {
	header := "\nEnvironment variables:"
	cleanenv.FUsage(w, &Config{}, &header)()
}

func (that *Config) validate() error {
	if _, err := logrus.ParseLevel(that.LogLevel); err != nil {
		return fmt.Errorf("invalid log-level: %w", err)
	}
	if that.Drop.Base <= 0 {
		return fmt.Errorf("drop base must be positive, got %s", that.Drop.Base)
	}
	if that.Drop.Step < 0 || that.Drop.Min < 0 {
		return fmt.Errorf("drop step and min must not be negative")
	}
	return nil
}

// NewLogger builds the logger described by the config. The returned close
// function releases the log file, if any.
func (that *Config) NewLogger() (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	level, err := logrus.ParseLevel(that.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log-level: %w", err)
	}
	log.SetLevel(level)

	if that.LogFile == "" {
		return log, func() error { return nil }, nil
	}

	f, err := os.OpenFile(that.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f.Close, nil
}
