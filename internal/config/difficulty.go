package config

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty names a difficulty profile.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Errors returned for configuration that violates the closed sets of
// difficulties and colors or is otherwise malformed.
var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownColor      = errors.New("unknown color")
	ErrInvalid           = errors.New("invalid config")
)

// ParseDifficulty normalizes a difficulty name. It does not check that the
// name exists in a particular config; RunnerConfig.Profile does that.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", unknownDifficulty(Difficulty(s))
	}
	return Difficulty(strings.ToUpper(s)), nil
}

// String returns the difficulty name.
func (d Difficulty) String() string {
	return string(d)
}

func unknownDifficulty(name Difficulty) error {
	return fmt.Errorf("config: %w %q", ErrUnknownDifficulty, string(name))
}

func unknownColor(name string) error {
	return fmt.Errorf("config: %w %q", ErrUnknownColor, name)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
