package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSeedFromEnv(t *testing.T) {
	t.Setenv(EnvSeed, "42")
	seed, err := Seed()
	if err != nil || seed != 42 {
		t.Fatalf("seed: %d %v", seed, err)
	}
	t.Setenv(EnvSeed, "forty-two")
	if _, err := Seed(); err == nil {
		t.Fatalf("bad seed accepted")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv(EnvLogLevel, "warn")
	log, err := NewLogger(&buf)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("level not applied: %q", out)
	}

	t.Setenv(EnvLogLevel, "loud")
	if _, err := NewLogger(&buf); err == nil {
		t.Fatalf("bad level accepted")
	}
}

func TestLoadEnvIgnoresMissingFile(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing .env: %v", err)
	}
}

func TestLoadReadsEnvFileAndTuning(t *testing.T) {
	dir := t.TempDir()
	tuning := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(tuning, []byte("maxDistance: 4\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	env := filepath.Join(dir, "test.env")
	body := EnvSeed + "=7\n" + EnvConfig + "=" + tuning + "\n"
	if err := os.WriteFile(env, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Register cleanup for variables the .env file sets.
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvConfig, "")
	os.Unsetenv(EnvSeed)
	os.Unsetenv(EnvConfig)
	if err := LoadEnv(env); err != nil {
		t.Fatalf("load env: %v", err)
	}

	var buf bytes.Buffer
	s, err := Load(&buf)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Seed != 7 || s.Tuning.MaxDistance != 4 {
		t.Fatalf("settings: seed=%d maxDistance=%f", s.Seed, s.Tuning.MaxDistance)
	}
	if GetEnv(EnvConfig, "x") != tuning {
		t.Fatalf("config path not exported")
	}
}

func TestLoadWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hop.log")
	t.Setenv(EnvLogFile, path)
	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvSeed, "1")
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvVolume, "")

	var tty bytes.Buffer
	s, err := Load(&tty)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s.Log.Info().Msg("round started")
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if tty.Len() != 0 {
		t.Fatalf("log reached the default writer: %q", tty.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "round started") {
		t.Fatalf("log file: %q", data)
	}
}

func TestLogOutputDefault(t *testing.T) {
	t.Setenv(EnvLogFile, "")
	var buf bytes.Buffer
	w, c, err := LogOutput(&buf)
	if err != nil || c != nil || w != &buf {
		t.Fatalf("got w=%v c=%v err=%v", w, c, err)
	}

	t.Setenv(EnvLogFile, filepath.Join(t.TempDir(), "missing", "hop.log"))
	if _, _, err := LogOutput(&buf); err == nil {
		t.Fatalf("unopenable log file accepted")
	}
}

func TestVolumeFromEnv(t *testing.T) {
	tests := []struct {
		env     string
		want    float64
		wantErr bool
	}{
		{"", 1, false},
		{"0", 0, false},
		{"0.25", 0.25, false},
		{"1.5", 0, true},
		{"-0.1", 0, true},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		t.Setenv(EnvVolume, tt.env)
		got, err := Volume()
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("Volume(%q) = %v, %v", tt.env, got, err)
		}
	}
}
