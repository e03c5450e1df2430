package hotcold

import (
	"fmt"

	"github.com/vovakirdan/minigames/internal/core"
)

func feedbackColor(f Feedback) core.Color {
	switch f {
	case FeedbackHot:
		return core.ColorBrightRed
	case FeedbackCold:
		return core.ColorBrightCyan
	case FeedbackWinner:
		return core.ColorBrightGreen
	default:
		return core.ColorYellow
	}
}

// Render draws the prompt, entry line, verdict and recent guesses.
func (a *Arcade) Render(dst *core.Screen) {
	dst.Clear()
	if a.game == nil {
		return
	}

	dst.DrawText(0, 0, fmt.Sprintf(" Hot/Cold - Guesses: %d", a.game.Guesses()))
	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}

	y := 3
	dst.DrawTextCentered(y, fmt.Sprintf("Guess a number between %d and %d", a.game.Min(), a.game.Max()), core.ColorWhite)

	y += 2
	w := a.maxLen + 6
	box := core.NewRect((dst.Width()-w)/2, y, w, 3)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawTextColor(box.X+2, box.Y+1, string(a.entry)+"_", core.ColorBrightWhite)

	y += 4
	msgColor := core.ColorYellow
	switch {
	case a.msgErr:
		msgColor = core.ColorRed
	case len(a.history) > 0:
		msgColor = feedbackColor(a.history[len(a.history)-1].feedback)
	}
	dst.DrawTextCentered(y, a.message, msgColor)

	y += 2
	for i := len(a.history) - 1; i >= 0 && y < dst.Height()-1; i-- {
		g := a.history[i]
		dst.DrawTextCentered(y, fmt.Sprintf("%4d  %s", g.value, g.feedback), feedbackColor(g.feedback))
		y++
	}

	if a.game.Won() {
		dst.DrawOverlay(core.ColorBrightGreen, a.message, fmt.Sprintf("Guesses: %d", a.game.Guesses()), "Press R to play again")
	}
	if a.loadErr != nil {
		dst.DrawTextColor(0, dst.Height()-1, " config error, using defaults", core.ColorRed)
	}
}
