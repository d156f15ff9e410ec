// Package config reads process settings from the environment and an optional
// .env file and builds the logger and gameplay tuning from them.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"hop/internal/jump"
)

const (
	EnvSeed     = "HOP_SEED"
	EnvConfig   = "HOP_CONFIG"
	EnvLogLevel = "HOP_LOG_LEVEL"
	EnvLogFile  = "HOP_LOG_FILE"
	EnvVolume   = "HOP_VOLUME"
)

// Settings is everything a front-end needs to start a game.
type Settings struct {
	Seed   uint64
	Tuning jump.Config
	Log    zerolog.Logger
	Volume float64 // master effect volume in [0, 1]

	logFile io.Closer
}

// Close releases the log file opened for HOP_LOG_FILE, if any.
func (s Settings) Close() error {
	if s.logFile == nil {
		return nil
	}
	return s.logFile.Close()
}

// LoadEnv loads .env files into the process environment. Missing files are
// fine; variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// GetEnv returns the value of v, or def when it is unset or empty.
func GetEnv(v, def string) string {
	if s := os.Getenv(v); s != "" {
		return s
	}
	return def
}

// Seed parses HOP_SEED. Without one the clock picks a seed.
func Seed() (uint64, error) {
	s := os.Getenv(EnvSeed)
	if s == "" {
		return uint64(time.Now().UnixNano()), nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", EnvSeed, s, err)
	}
	return n, nil
}

// Volume parses HOP_VOLUME, full volume when unset.
func Volume() (float64, error) {
	s := os.Getenv(EnvVolume)
	if s == "" {
		return 1, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", EnvVolume, s, err)
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("%s=%q: must be within [0, 1]", EnvVolume, s)
	}
	return v, nil
}

// LogOutput opens HOP_LOG_FILE for appending. Without it, def is used and
// the returned closer is nil.
func LogOutput(def io.Writer) (io.Writer, io.Closer, error) {
	path := os.Getenv(EnvLogFile)
	if path == "" {
		return def, nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", EnvLogFile, err)
	}
	return f, f, nil
}

// NewLogger writes timestamped JSON lines to w at the HOP_LOG_LEVEL level,
// info by default.
func NewLogger(w io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if s := os.Getenv(EnvLogLevel); s != "" {
		l, err := zerolog.ParseLevel(s)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("%s=%q: %w", EnvLogLevel, s, err)
		}
		level = l
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Load reads .env, then the seed, logger, volume and tuning file. Logs go to
// HOP_LOG_FILE when set, otherwise to logOut. The caller closes the returned
// Settings.
func Load(logOut io.Writer) (s Settings, err error) {
	if err := LoadEnv(); err != nil {
		return Settings{}, err
	}
	out, closer, err := LogOutput(logOut)
	if err != nil {
		return Settings{}, err
	}
	defer func() {
		if err != nil && closer != nil {
			closer.Close()
		}
	}()
	log, err := NewLogger(out)
	if err != nil {
		return Settings{}, err
	}
	seed, err := Seed()
	if err != nil {
		return Settings{}, err
	}
	vol, err := Volume()
	if err != nil {
		return Settings{}, err
	}
	tuning, err := jump.LoadConfig(os.Getenv(EnvConfig))
	if err != nil {
		return Settings{}, err
	}
	log.Debug().Uint64("seed", seed).Float64("volume", vol).Str("tuning", GetEnv(EnvConfig, "defaults")).Msg("settings loaded")
	return Settings{Seed: seed, Tuning: tuning, Log: log, Volume: vol, logFile: closer}, nil
}
