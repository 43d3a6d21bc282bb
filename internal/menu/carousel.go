package menu

import (
	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/lcd"
)

// Carousel geometry.
const (
	// CarouselWidth is the number of visible items
	CarouselWidth = 4
	// CarouselSpacing is the horizontal distance between thumbnails
	CarouselSpacing = 56
)

// ThumbFunc draws the thumbnail of item i at x, y.
type ThumbFunc func(i, x, y int, flags lcd.Flags)

// Carousel draws a horizontal choice of count items at x, y, of which
// current is the active one, and returns the newly chosen index or -1.
//
// The visible window starts at c.HorizontalOffset. With needsOffsetCheck
// (and always on event.Entry) the window is moved the minimum needed to
// show current; while browsing it follows c.HorizontalPos instead.
func Carousel(c *Context, s lcd.Surface, x, y, count int, thumb ThumbFunc, current int, needsOffsetCheck bool, attr lcd.Flags, ev event.Event) int {
	if ev == event.Entry {
		c.HorizontalOffset = 0
		needsOffsetCheck = true
	}

	sel := max(current, 0)
	if needsOffsetCheck {
		c.HorizontalOffset = window(c.HorizontalOffset, sel)
	}

	if attr != 0 {
		if c.HorizontalPos < 0 {
			s.DrawFilledRect(x-3, y-2, min(CarouselWidth, count)*CarouselSpacing+1, 2*lcd.FontHeight-5, lcd.Color(lcd.ColorTextInvertedBg))
		} else if needsOffsetCheck {
			c.HorizontalPos = sel
		} else {
			c.HorizontalOffset = window(c.HorizontalOffset, c.HorizontalPos)
		}
	}

	last := min(c.HorizontalOffset+CarouselWidth, count)
	for i, pos := c.HorizontalOffset, x; i < last; i, pos = i+1, pos+CarouselSpacing {
		flags := lcd.Color(lcd.ColorLine)
		if i == current {
			flags = lcd.Color(lcd.ColorTextInvertedBg)
			if attr != 0 && c.HorizontalPos < 0 {
				flags = lcd.Color(lcd.ColorTextInverted)
			}
		}
		thumb(i, pos, y, flags)
	}

	if count > CarouselWidth {
		left, right := lcd.Color(lcd.ColorCurveAxis), lcd.Color(lcd.ColorCurveAxis)
		if c.HorizontalOffset > 0 {
			left = lcd.Color(lcd.ColorLine)
		}
		if last < count {
			right = lcd.Color(lcd.ColorLine)
		}
		s.DrawGlyph(x-12, y, lcd.GlyphCarouselLeft, left)
		s.DrawGlyph(x+CarouselWidth*CarouselSpacing, y, lcd.GlyphCarouselRight, right)
	}

	if attr != 0 && c.HorizontalPos >= 0 {
		s.DrawRect(x+(c.HorizontalPos-c.HorizontalOffset)*CarouselSpacing-3, y-2, CarouselSpacing+1, 35, 1, lcd.Color(lcd.ColorTextInvertedBg))
		if ev == event.KeyBreak(event.KeyEnter) {
			chosen := c.HorizontalPos
			c.EditMode = false
			c.HorizontalPos = -1
			if chosen != current {
				return chosen
			}
		}
	}
	return -1
}

// window returns the offset closest to offset that shows index.
func window(offset, index int) int {
	if index < offset {
		return index
	}
	if index > offset+CarouselWidth-1 {
		return index - (CarouselWidth - 1)
	}
	return offset
}
