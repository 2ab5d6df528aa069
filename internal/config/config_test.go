package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/core"
)

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("DefaultRunnerConfig().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded defaults differ from DefaultRunnerConfig():\n got %+v\nwant %+v", cfg, DefaultRunnerConfig())
	}
}

func TestDifficultyTable(t *testing.T) {
	cfg := DefaultRunnerConfig()

	tests := []struct {
		name     Difficulty
		speed    float64
		interval int
		strength float64
		gravity  float64
		weights  []float64
	}{
		{DifficultyEasy, 0.005, 1500, 20, 0.2, []float64{0.8, 0.2, 0}},
		{DifficultyMedium, 0.008, 1000, 15, 0.3, []float64{0.6, 0.3, 0.1}},
		{DifficultyHard, 0.012, 800, 10, 0.4, []float64{0.4, 0.4, 0.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name.String(), func(t *testing.T) {
			p, err := cfg.Profile(tt.name)
			if err != nil {
				t.Fatalf("Profile(%s) failed: %v", tt.name, err)
			}
			if p.Speed != tt.speed {
				t.Errorf("Speed = %g, expected %g", p.Speed, tt.speed)
			}
			if p.IntervalMs != tt.interval {
				t.Errorf("IntervalMs = %d, expected %d", p.IntervalMs, tt.interval)
			}
			if p.JumpStrength != tt.strength {
				t.Errorf("JumpStrength = %g, expected %g", p.JumpStrength, tt.strength)
			}
			if p.Gravity != tt.gravity {
				t.Errorf("Gravity = %g, expected %g", p.Gravity, tt.gravity)
			}
			if !reflect.DeepEqual(p.GroupWeights, tt.weights) {
				t.Errorf("GroupWeights = %v, expected %v", p.GroupWeights, tt.weights)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{" Medium ", DifficultyMedium, false},
		{"HARD", DifficultyHard, false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestUnknownNamesRejected(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if _, err := cfg.Profile("NIGHTMARE"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("Profile(NIGHTMARE) error = %v, expected ErrUnknownDifficulty", err)
	}
	if _, err := cfg.ColorIndex("ORANGE"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("ColorIndex(ORANGE) error = %v, expected ErrUnknownColor", err)
	}

	// Lookup ignores case
	if i, err := cfg.ColorIndex("purple"); err != nil || i != 4 {
		t.Errorf("ColorIndex(purple) = %d, %v; expected 4, nil", i, err)
	}
	if i, err := cfg.ProfileIndex("easy"); err != nil || i != 0 {
		t.Errorf("ProfileIndex(easy) = %d, %v; expected 0, nil", i, err)
	}
}

func TestNames(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if got := cfg.DifficultyNames(); !reflect.DeepEqual(got, []string{"EASY", "MEDIUM", "HARD"}) {
		t.Errorf("DifficultyNames() = %v", got)
	}
	want := []string{"BLUE", "RED", "GREEN", "YELLOW", "PURPLE"}
	if got := cfg.ColorNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ColorNames() = %v, expected %v", got, want)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *RunnerConfig)
		target error
	}{
		{"two lanes", func(c *RunnerConfig) { c.Lanes = []float64{-100, 100} }, ErrInvalid},
		{"lanes not increasing", func(c *RunnerConfig) { c.Lanes = []float64{0, -150, 150} }, ErrInvalid},
		{"start lane out of range", func(c *RunnerConfig) { c.Player.StartLane = 3 }, ErrInvalid},
		{"ground above horizon", func(c *RunnerConfig) { c.Screen.GroundY = 100 }, ErrInvalid},
		{"zero width", func(c *RunnerConfig) { c.Screen.Width = 0 }, ErrInvalid},
		{"no difficulties", func(c *RunnerConfig) { c.Difficulties = nil }, ErrInvalid},
		{"no colors", func(c *RunnerConfig) { c.Colors = nil }, ErrInvalid},
		{"zero speed", func(c *RunnerConfig) { c.Difficulties[0].Speed = 0 }, ErrInvalid},
		{"negative interval", func(c *RunnerConfig) { c.Difficulties[1].IntervalMs = -5 }, ErrInvalid},
		{"zero gravity", func(c *RunnerConfig) { c.Difficulties[2].Gravity = 0 }, ErrInvalid},
		{"zero strength", func(c *RunnerConfig) { c.Difficulties[2].JumpStrength = 0 }, ErrInvalid},
		{"negative weight", func(c *RunnerConfig) { c.Difficulties[0].GroupWeights = []float64{1, -0.5} }, ErrInvalid},
		{"all zero weights", func(c *RunnerConfig) { c.Difficulties[0].GroupWeights = []float64{0, 0, 0} }, ErrInvalid},
		{"jitter inverted", func(c *RunnerConfig) { c.Spawn.JitterMin, c.Spawn.JitterMax = 1.2, 0.8 }, ErrInvalid},
		{"jitter zero", func(c *RunnerConfig) { c.Spawn.JitterMin = 0 }, ErrInvalid},
		{"duplicate difficulty", func(c *RunnerConfig) { c.Difficulties[1].Name = "easy" }, ErrInvalid},
		{"duplicate color", func(c *RunnerConfig) { c.Colors[1].Name = "Blue" }, ErrInvalid},
		{"no elevations", func(c *RunnerConfig) { c.Obstacles.Elevations = nil }, ErrInvalid},
		{"hitbox fraction", func(c *RunnerConfig) { c.Obstacles.HitboxFraction = 0 }, ErrInvalid},
		{"default difficulty", func(c *RunnerConfig) { c.Defaults.Difficulty = "INSANE" }, ErrUnknownDifficulty},
		{"default color", func(c *RunnerConfig) { c.Defaults.Color = "CYAN" }, ErrUnknownColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.target) {
				t.Errorf("Validate() = %v, expected %v", err, tt.target)
			}
		})
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	data := []byte(`
player:
  lane_ease: 0.3
defaults:
  color: green
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Player.LaneEase != 0.3 {
		t.Errorf("LaneEase = %g, expected 0.3", cfg.Player.LaneEase)
	}
	if cfg.Player.Width != 50 || cfg.Player.Height != 80 {
		t.Errorf("Player size = %gx%g, expected 50x80", cfg.Player.Width, cfg.Player.Height)
	}
	if len(cfg.Difficulties) != 3 {
		t.Errorf("len(Difficulties) = %d, expected 3", len(cfg.Difficulties))
	}
	if cfg.Defaults.Difficulty != DifficultyHard {
		t.Errorf("Defaults.Difficulty = %s, expected HARD", cfg.Defaults.Difficulty)
	}
	if cfg.Defaults.Color != "green" {
		t.Errorf("Defaults.Color = %q, expected green", cfg.Defaults.Color)
	}
}

func TestParseMergesNamedEntries(t *testing.T) {
	data := []byte(`
difficulties:
  - name: easy
    speed: 0.01
  - name: INSANE
    speed: 0.02
    interval_ms: 500
    jump_strength: 8
    gravity: 0.5
    group_weights: [0.2, 0.3, 0.5]
colors:
  - name: RED
    rgb: {r: 200, g: 10, b: 10}
  - name: ORANGE
    rgb: {r: 255, g: 165, b: 0}
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if len(cfg.Difficulties) != 4 {
		t.Fatalf("len(Difficulties) = %d, expected 4", len(cfg.Difficulties))
	}
	easy, err := cfg.Profile(DifficultyEasy)
	if err != nil {
		t.Fatalf("Profile(EASY) failed: %v", err)
	}
	if easy.Speed != 0.01 {
		t.Errorf("EASY speed = %g, expected 0.01", easy.Speed)
	}
	if easy.IntervalMs != 1500 || easy.JumpStrength != 20 || easy.Gravity != 0.2 {
		t.Errorf("EASY lost unset fields: %+v", easy)
	}
	if _, err := cfg.Profile("insane"); err != nil {
		t.Errorf("Profile(insane) failed: %v", err)
	}

	if len(cfg.Colors) != 6 {
		t.Fatalf("len(Colors) = %d, expected 6", len(cfg.Colors))
	}
	if i, err := cfg.ColorIndex("BLUE"); err != nil || i != 0 {
		t.Errorf("ColorIndex(BLUE) = %d, %v; expected 0, nil", i, err)
	}
	if got := cfg.Colors[1].Color; got != core.RGB(200, 10, 10) {
		t.Errorf("RED = %v, expected (200,10,10)", got)
	}

	// Defaults are not shared with the merged config
	if def := DefaultRunnerConfig(); def.Difficulties[0].Speed != 0.005 {
		t.Errorf("default EASY speed = %g, expected 0.005", def.Difficulties[0].Speed)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("lanes: [")); err == nil {
		t.Error("Parse() of malformed YAML should fail")
	}
	if _, err := Parse([]byte("lanes: [0, 1]")); !errors.Is(err, ErrInvalid) {
		t.Errorf("Parse() of two lanes = %v, expected ErrInvalid", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Screen.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.Screen.TickRate)
	}

	// Local configs directory
	writeFile(t, filepath.Join(work, "configs", "runner.yaml"), "screen:\n  tick_rate: 30\n")
	if src, _ := Source(""); src != localConfig {
		t.Errorf("Source() = %q, expected %q", src, localConfig)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Screen.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30 from ./configs", cfg.Screen.TickRate)
	}

	// User directory wins over the local one
	writeFile(t, filepath.Join(home, userConfigDir, userConfigFile), "screen:\n  tick_rate: 45\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Screen.TickRate != 45 {
		t.Errorf("TickRate = %d, expected 45 from home", cfg.Screen.TickRate)
	}

	// Custom path wins over everything
	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "screen:\n  tick_rate: 120\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}
	if cfg.Screen.TickRate != 120 {
		t.Errorf("TickRate = %d, expected 120 from custom path", cfg.Screen.TickRate)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing custom path should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, expected to wrap os.ErrNotExist", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := DefaultRunnerConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Error("Marshal() output does not parse back to the defaults")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
