package menu

import (
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/options"
)

const tabSpacing = 36

// drawHeader draws the title bar with one icon per tab.
func drawHeader(s lcd.Surface, title string, icons []lcd.Glyph, current int, titleFocused bool) {
	s.DrawFilledRect(0, 0, lcd.Width, MenuHeaderHeight, lcd.Color(lcd.ColorTitleBg))
	for i, g := range icons {
		flags := lcd.Color(lcd.ColorLine)
		if i == current {
			flags = lcd.Color(lcd.ColorTextInverted)
		}
		s.DrawGlyph(5+i*tabSpacing, 2, g, flags)
	}

	flags := lcd.Color(lcd.ColorTextInverted)
	if titleFocused {
		flags |= lcd.Inverse
	}
	s.DrawText(options.MarginLeft, MenuHeaderHeight-lcd.FontHeight, title, flags)
}

// drawSubHeader draws the title bar of a page without tabs.
func drawSubHeader(s lcd.Surface, title string) {
	s.DrawFilledRect(0, 0, lcd.Width, MenuHeaderHeight, lcd.Color(lcd.ColorTitleBg))
	s.DrawGlyph(5, 2, lcd.GlyphWidgets, lcd.Color(lcd.ColorTextInverted))
	s.DrawText(options.MarginLeft, MenuHeaderHeight-lcd.FontHeight, title, lcd.Color(lcd.ColorTextInverted))
}

func drawButton(s lcd.Surface, x, y int, label string, attr lcd.Flags) {
	w := len(label)*lcd.CharWidth + 16
	if attr&lcd.Inverse != 0 {
		s.DrawFilledRect(x-4, y-1, w, lcd.FontHeight+1, lcd.Color(lcd.ColorTextInvertedBg))
		s.DrawText(x+4, y, label, lcd.Inverse|lcd.Color(lcd.ColorTextInverted))
		return
	}
	s.DrawRect(x-4, y-1, w, lcd.FontHeight+1, 1, lcd.Color(lcd.ColorLine))
	s.DrawText(x+4, y, label, lcd.Color(lcd.ColorText))
}

func rowY(i int) int {
	return MenuContentTop + i*lcd.FontHeight
}
