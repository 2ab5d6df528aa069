package runner

import (
	"fmt"

	"github.com/vovakirdan/lane-runner/internal/core"
)

const (
	hudMargin     = 10
	hudScoreInset = 200
	hudLineStep   = 30
	gameOverStep  = 40
	gameOverTitle = "Game Over! Press ENTER for Menu"
)

// seconds converts a score in ms to the displayed whole seconds.
func seconds(ms int) int {
	return ms / 1000
}

// drawHUD paints the in-run overlay: difficulty top left, score and best
// top right.
func drawHUD(s core.Surface, w int, difficulty string, scoreMs, bestMs int) {
	s.DrawText(hudMargin, hudMargin, "Difficulty: "+difficulty, core.ColorLabel)
	s.DrawText(w-hudScoreInset, hudMargin, fmt.Sprintf("Score: %d", seconds(scoreMs)), core.ColorBlack)
	s.DrawText(w-hudScoreInset, hudMargin+hudLineStep, fmt.Sprintf("Best: %d", seconds(bestMs)), core.ColorBlack)
}

// drawGameOver paints the game over text block starting at mid-height.
func drawGameOver(s core.Surface, w, h int, scoreMs, bestMs int) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{gameOverTitle, core.ColorRed},
		{fmt.Sprintf("Score: %d", seconds(scoreMs)), core.ColorBlack},
		{fmt.Sprintf("Best: %d", seconds(bestMs)), core.ColorBlack},
	}
	for i, l := range lines {
		tw, _ := s.MeasureText(l.text)
		s.DrawText(w/2-tw/2, h/2+i*gameOverStep, l.text, l.color)
	}
}
