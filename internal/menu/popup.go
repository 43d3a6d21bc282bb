package menu

import (
	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/lcd"
)

// Popup item labels.
const (
	ItemSelectWidget   = "Select widget"
	ItemWidgetSettings = "Widget settings"
	ItemRemoveWidget   = "Remove widget"
	ItemRemoveScreen   = "Remove screen"
	ItemMoveLeft       = "Move left"
	ItemMoveRight      = "Move right"
)

const (
	popupWidth = 200
	popupX     = (lcd.Width - popupWidth) / 2
)

// Popup is a modal list of choices drawn over the current page. While it
// is open it receives the events and the page below is drawn without input.
type Popup struct {
	items    []string
	selected int
	handler  func(item string)
}

// Open shows items; handler is called with the chosen one.
func (p *Popup) Open(items []string, handler func(item string)) {
	p.items = append(p.items[:0], items...)
	p.selected = 0
	p.handler = handler
}

// Active reports whether the popup is shown
func (p *Popup) Active() bool {
	return len(p.items) > 0
}

// Items returns the shown items
func (p *Popup) Items() []string {
	return p.items
}

// Selected returns the highlighted item index
func (p *Popup) Selected() int {
	return p.selected
}

func (p *Popup) close() {
	p.items = p.items[:0]
	p.handler = nil
}

// Run draws the popup on s and applies ev to it.
func (p *Popup) Run(s lcd.Surface, ev event.Event) {
	if !p.Active() {
		return
	}

	switch {
	case ev.IsRotary():
		p.selected = clamp(p.selected+ev.Delta(), 0, len(p.items)-1)
	case ev == event.KeyBreak(event.KeyExit):
		p.close()
		return
	case ev == event.KeyBreak(event.KeyEnter):
		item, handler := p.items[p.selected], p.handler
		p.close()
		if handler != nil {
			handler(item)
		}
		return
	}

	h := len(p.items)*lcd.FontHeight + 8
	y := (lcd.Height - h) / 2
	s.DrawFilledRect(popupX, y, popupWidth, h, lcd.Color(lcd.ColorBackground))
	s.DrawRect(popupX, y, popupWidth, h, 1, lcd.Color(lcd.ColorLine))
	for i, item := range p.items {
		ty := y + 4 + i*lcd.FontHeight
		if i == p.selected {
			s.DrawFilledRect(popupX+2, ty, popupWidth-4, lcd.FontHeight, lcd.Color(lcd.ColorTextInvertedBg))
			s.DrawText(popupX+10, ty, item, lcd.Inverse|lcd.Color(lcd.ColorTextInverted))
			continue
		}
		s.DrawText(popupX+10, ty, item, lcd.Color(lcd.ColorText))
	}
}
