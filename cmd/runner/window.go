package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in an 800x600 desktop window rendered with Ebitengine.

Controls are the same as in the terminal, plus held keys:
lane changes fire once per key press and the mouse drives the menu.

Examples:
  runner window
  runner window --difficulty medium --fps 120`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	addSelectionFlags(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	rc, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	game, err := newGame(rc, logger)
	if err != nil {
		return err
	}

	logger.Info("opening window", "width", rc.Screen.Width, "height", rc.Screen.Height, "fps", tickRate(rc))
	if err := window.Run(game, tickRate(rc), logger); err != nil {
		return fmt.Errorf("window frontend: %w", err)
	}
	return nil
}
