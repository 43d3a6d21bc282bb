package menu

import "github.com/muurk/mainviews/internal/event"

// Page is one menu handler. Handle returns false when it popped or chained
// itself and drew nothing further.
type Page struct {
	Name   string
	Handle func(ev event.Event) bool
}

// Stack is the stack of open menu pages. The top page receives the events.
type Stack struct {
	pages []Page
}

// Depth returns the number of open pages
func (s *Stack) Depth() int {
	return len(s.pages)
}

// Empty reports whether no menu is open
func (s *Stack) Empty() bool {
	return len(s.pages) == 0
}

// Top returns the page receiving events, or the zero Page.
func (s *Stack) Top() Page {
	if len(s.pages) == 0 {
		return Page{}
	}
	return s.pages[len(s.pages)-1]
}

// Push opens p above the current page and runs it with event.Entry.
func (s *Stack) Push(p Page) {
	s.pages = append(s.pages, p)
	p.Handle(event.Entry)
}

// Pop closes the top page and runs the one below with event.EntryUp.
func (s *Stack) Pop() {
	if len(s.pages) == 0 {
		return
	}
	s.pages = s.pages[:len(s.pages)-1]
	if len(s.pages) > 0 {
		s.Top().Handle(event.EntryUp)
	}
}

// Chain replaces the top page with p and runs it with event.Entry.
func (s *Stack) Chain(p Page) {
	if len(s.pages) == 0 {
		s.Push(p)
		return
	}
	s.pages[len(s.pages)-1] = p
	p.Handle(event.Entry)
}

// Clear closes every page without running any handler.
func (s *Stack) Clear() {
	s.pages = s.pages[:0]
}

// Run delivers ev to the top page. It reports whether a page was open.
func (s *Stack) Run(ev event.Event) bool {
	if len(s.pages) == 0 {
		return false
	}
	s.Top().Handle(ev)
	return true
}
