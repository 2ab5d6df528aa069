package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
)

var (
	flagDifficulty string
	flagColor      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the current terminal.

Controls:
  A/D, Left/Right - Change lane
  Space           - Jump
  Up/Down, W/S    - Move the menu highlight
  Enter           - Activate menu option / back to menu
  Mouse           - Hover and click menu options
  ?               - Toggle help
  Q/Esc/Ctrl+C    - Quit

Examples:
  runner play
  runner play --difficulty easy
  runner play --color green --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addSelectionFlags(playCmd)
}

// addSelectionFlags registers the menu preselection flags on cmd.
func addSelectionFlags(cmd *cobra.Command) {
	defaults := config.DefaultRunnerConfig()

	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty: "+strings.ToLower(strings.Join(defaults.DifficultyNames(), ", ")))
	cmd.Flags().StringVar(&flagColor, "color", "", "Initial player color: "+strings.ToLower(strings.Join(defaults.ColorNames(), ", ")))
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	rc, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame fits
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = tickRate(rc)

	game, err := newGame(rc, logger)
	if err != nil {
		return err
	}

	logger.Info("starting terminal frontend", "width", cfg.ScreenW, "height", cfg.ScreenH, "fps", cfg.TickRate)
	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("terminal frontend: %w", err)
	}
	return nil
}

// newGame creates a game from rc and the global and selection flags.
func newGame(rc config.RunnerConfig, logger *log.Logger) (*runner.Game, error) {
	opts := []runner.Option{
		runner.WithSeed(flagSeed),
		runner.WithLogger(logger),
	}
	if flagDifficulty != "" {
		opts = append(opts, runner.WithDifficulty(flagDifficulty))
	}
	if flagColor != "" {
		opts = append(opts, runner.WithColor(flagColor))
	}
	return runner.New(rc, opts...)
}

// tickRate returns --fps when set, otherwise the configured rate.
func tickRate(rc config.RunnerConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return rc.Screen.TickRate
}
