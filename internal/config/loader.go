package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".lane-runner"
	userConfigFile = "config.yaml"
	localConfig    = "configs/runner.yaml"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.lane-runner/config.yaml -> ./configs/runner.yaml -> embedded default.
//
// The file found is decoded over the embedded defaults, so a partial file
// only overrides the keys it names. Difficulties and colors are merged by
// name; other lists replace the default list. The result is validated before it is
// returned.
func Load(customPath string) (RunnerConfig, error) {
	cfg, err := Parse(nil)
	if err != nil {
		return cfg, err
	}

	path, err := Source(customPath)
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if cfg, err = Parse(data); err != nil {
		return cfg, fmt.Errorf("%w (in %s)", err, path)
	}
	return cfg, nil
}

// Parse decodes data over the embedded defaults and validates the result.
// A nil or empty data yields the defaults.
func Parse(data []byte) (RunnerConfig, error) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		// Fallback to hardcoded if the embed is broken
		cfg = DefaultRunnerConfig()
	}

	if len(data) > 0 {
		base := cfg
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse: %w", err)
		}
		if err := mergeNamedLists(data, base, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// namedLists holds the raw entries of the lists merged by name.
type namedLists struct {
	Difficulties []yaml.Node `yaml:"difficulties"`
	Colors       []yaml.Node `yaml:"colors"`
}

// mergeNamedLists rebuilds the difficulty and color lists of cfg so that
// entries in data override the base entry with the same name field by
// field. Base entries not named in data are kept; new names are appended.
func mergeNamedLists(data []byte, base RunnerConfig, cfg *RunnerConfig) error {
	var raw namedLists
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("config: failed to parse: %w", err)
	}

	var err error
	if raw.Difficulties != nil {
		cfg.Difficulties, err = mergeByName(base.Difficulties, raw.Difficulties,
			func(p DifficultyProfile) string { return string(p.Name) })
		if err != nil {
			return err
		}
	}
	if raw.Colors != nil {
		cfg.Colors, err = mergeByName(base.Colors, raw.Colors,
			func(c PlayerColor) string { return c.Name })
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeByName[T any](base []T, nodes []yaml.Node, name func(T) string) ([]T, error) {
	out := slices.Clone(base)
	for i := range nodes {
		var entry struct {
			Name string `yaml:"name"`
		}
		if err := nodes[i].Decode(&entry); err != nil {
			return nil, fmt.Errorf("config: failed to parse: %w", err)
		}

		idx := slices.IndexFunc(out, func(v T) bool { return equalFold(name(v), entry.Name) })
		if idx < 0 {
			var v T
			out = append(out, v)
			idx = len(out) - 1
		}
		if err := nodes[i].Decode(&out[idx]); err != nil {
			return nil, fmt.Errorf("config: failed to parse: %w", err)
		}
	}
	return out, nil
}

// Source reports which file Load would read. An empty path means the
// embedded default. A custom path that does not exist is an error; the
// other locations are skipped when absent.
func Source(customPath string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err != nil {
			return "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, p := range []string{userConfigPath(), localConfig} {
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config: failed to stat %s: %w", p, err)
		}
	}
	return "", nil
}

// Marshal renders the configuration as YAML.
func (c RunnerConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userConfigDir, userConfigFile)
}
