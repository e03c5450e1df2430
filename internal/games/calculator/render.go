package calculator

import (
	"fmt"

	"github.com/vovakirdan/minigames/internal/core"
)

var keypad = []string{
	"7  8  9  /",
	"4  5  6  *",
	"1  2  3  -",
	"C  0  =  +",
}

const displayWidth = 28

// Render draws the display, the pending operator, a key legend and the
// most recent results.
func (a *Arcade) Render(dst *core.Screen) {
	dst.Clear()
	if a.calc == nil {
		return
	}

	dst.DrawText(0, 0, " Calculator")
	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}

	box := core.NewRect((dst.Width()-displayWidth)/2, 3, displayWidth, 3)
	color := core.ColorBrightWhite
	if a.calc.Err() {
		color = core.ColorBrightRed
	}
	dst.DrawBox(box, core.ColorGray)
	text := a.display
	if inner := box.W - 4; len(text) > inner {
		text = text[len(text)-inner:]
	}
	dst.DrawTextColor(box.Right()-2-len(text), box.Y+1, text, color)
	if op := a.calc.Pending(); op != OpNone {
		dst.DrawTextColor(box.X+2, box.Y+1, string(rune(op)), core.ColorYellow)
	}

	y := box.Bottom() + 1
	for _, row := range keypad {
		dst.DrawTextCentered(y, row, core.ColorCyan)
		y++
	}

	y++
	dst.DrawTextCentered(y, "Enter or = evaluates, C clears", core.ColorGray)
	y += 2
	for i := len(a.tape) - 1; i >= 0 && y < dst.Height()-1; i-- {
		dst.DrawTextCentered(y, fmt.Sprintf("= %s", a.tape[i]), core.ColorGray)
		y++
	}

	if a.loadErr != nil {
		dst.DrawTextColor(0, dst.Height()-1, " config error, using defaults", core.ColorRed)
	}
}
