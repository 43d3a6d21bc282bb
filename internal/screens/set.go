package screens

import (
	"errors"
	"fmt"

	"github.com/muurk/mainviews/internal/logging"
	"github.com/muurk/mainviews/internal/options"
	"github.com/muurk/mainviews/internal/storage"
)

// ErrNoLayouts is returned by Load when no layout factory is registered.
var ErrNoLayouts = errors.New("no layout registered")

// Set holds the layout instances of a model's custom screens.
type Set struct {
	catalog *Catalog
	model   *storage.ModelData
	dirty   storage.DirtyMarker
	slots   [storage.MaxCustomScreens]Layout
}

// NewSet creates an empty set over model. Call Load to instantiate it.
func NewSet(catalog *Catalog, model *storage.ModelData, dirty storage.DirtyMarker) *Set {
	return &Set{catalog: catalog, model: model, dirty: dirty}
}

// Load closes every instance and rebuilds the set from the model records.
//
// Gaps between used slots are closed, unknown layout names fall back to the
// first registered layout and slot 0 is created when missing; each of these
// repairs marks the model dirty.
func (s *Set) Load() error {
	if s.catalog.Layouts.Len() == 0 {
		return fmt.Errorf("load screens: %w", ErrNoLayouts)
	}
	s.Close()

	repaired := s.compactRecords()

	for i := range s.model.Screens {
		rec := &s.model.Screens[i]
		if !rec.Used() {
			if i > 0 {
				continue
			}
			rec.Reset()
			rec.LayoutName = storage.TruncateName(s.catalog.Layouts.At(0).Name())
			s.slots[i] = s.catalog.Layouts.At(0).Create(&rec.Layout, true)
			repaired = true
			continue
		}

		f, ok := s.catalog.Layouts.Lookup(rec.LayoutName)
		init := false
		if !ok {
			fallback := s.catalog.Layouts.At(0)
			logging.LogFactoryMissing("layout", rec.LayoutName, fallback.Name())
			rec.LayoutName = storage.TruncateName(fallback.Name())
			f, init = fallback, true
			repaired = true
		}

		layout := f.Create(&rec.Layout, init)
		for _, name := range layout.LoadWidgets(s.catalog.Widgets) {
			logging.LogFactoryMissing("widget", name, "")
		}
		s.slots[i] = layout
	}

	if repaired {
		s.markDirty("screens repaired on load")
	}
	return nil
}

// compactRecords moves used records down over unused ones.
func (s *Set) compactRecords() bool {
	moved := false
	next := 0
	for i := range s.model.Screens {
		if !s.model.Screens[i].Used() {
			continue
		}
		if i != next {
			s.model.Screens[next] = s.model.Screens[i]
			s.model.Screens[i].Reset()
			moved = true
		}
		next++
	}
	return moved
}

// Screen returns the layout of slot i, or nil for an unused slot.
func (s *Set) Screen(i int) Layout {
	if i < 0 || i >= len(s.slots) {
		return nil
	}
	return s.slots[i]
}

// Record returns the persisted record of slot i.
func (s *Set) Record(i int) *storage.ScreenData {
	return &s.model.Screens[i]
}

// Used reports whether slot i holds a screen
func (s *Set) Used(i int) bool {
	return s.Screen(i) != nil
}

// Count returns the number of used slots.
func (s *Set) Count() int {
	n := 0
	for _, l := range s.slots {
		if l != nil {
			n++
		}
	}
	return n
}

// FirstFree returns the first unused slot, or -1 when the set is full.
func (s *Set) FirstFree() int {
	for i, l := range s.slots {
		if l == nil {
			return i
		}
	}
	return -1
}

// Add creates a screen with the first registered layout in the first free
// slot and returns the slot, or -1 when the set is full.
func (s *Set) Add() int {
	i := s.FirstFree()
	if i < 0 || s.catalog.Layouts.Len() == 0 {
		return -1
	}
	f := s.catalog.Layouts.At(0)
	rec := &s.model.Screens[i]
	rec.Reset()
	rec.LayoutName = storage.TruncateName(f.Name())
	s.slots[i] = f.Create(&rec.Layout, true)

	logging.LogScreenChange("add", i, f.Name())
	s.markDirty("screen added")
	return i
}

// SetLayout replaces the layout of slot i with one from f on the same
// record. Zone widget records are kept and re-instantiated; layout options
// are reset to f's defaults.
func (s *Set) SetLayout(i int, f LayoutFactory) Layout {
	old := s.Screen(i)
	if old == nil {
		panic(fmt.Sprintf("screens: SetLayout on unused slot %d", i))
	}
	old.Close()

	rec := &s.model.Screens[i]
	rec.LayoutName = storage.TruncateName(f.Name())
	rec.Layout.Options = [storage.MaxLayoutOptions]options.Value{}
	layout := f.Create(&rec.Layout, true)
	layout.LoadWidgets(s.catalog.Widgets)
	s.slots[i] = layout

	logging.LogScreenChange("layout", i, f.Name())
	s.markDirty("layout changed")
	return layout
}

// Remove deletes screen k and shifts the following screens down by one.
// It returns the slot to show next. Removing slot 0 or an unused slot
// is a caller bug and panics.
func (s *Set) Remove(k int) int {
	if k < 1 || k >= len(s.slots) || s.slots[k] == nil {
		panic(fmt.Sprintf("screens: cannot remove slot %d", k))
	}
	logging.LogScreenChange("remove", k, s.model.Screens[k].LayoutName)

	s.slots[k].Close()
	last := len(s.slots) - 1
	for i := k; i < last; i++ {
		s.model.Screens[i] = s.model.Screens[i+1]
		s.slots[i] = s.slots[i+1]
		if s.slots[i] != nil {
			s.slots[i].Rebind(&s.model.Screens[i].Layout)
		}
	}
	s.model.Screens[last].Reset()
	s.slots[last] = nil

	s.markDirty("screen removed")
	return max(k-1, 0)
}

// Move swaps screen from with its neighbour to, which must both be used and
// adjacent, and neither may be slot 0. It reports whether anything moved.
func (s *Set) Move(from, to int) bool {
	if from < 1 || to < 1 || from >= len(s.slots) || to >= len(s.slots) {
		return false
	}
	if from-to != 1 && to-from != 1 {
		return false
	}
	if s.slots[from] == nil || s.slots[to] == nil {
		return false
	}

	s.model.Screens[from], s.model.Screens[to] = s.model.Screens[to], s.model.Screens[from]
	s.slots[from], s.slots[to] = s.slots[to], s.slots[from]
	s.slots[from].Rebind(&s.model.Screens[from].Layout)
	s.slots[to].Rebind(&s.model.Screens[to].Layout)

	logging.LogScreenChange("move", to, s.model.Screens[to].LayoutName)
	s.markDirty("screen moved")
	return true
}

// Close destroys every layout instance. Records are untouched.
func (s *Set) Close() {
	for i, l := range s.slots {
		if l != nil {
			l.Close()
			s.slots[i] = nil
		}
	}
}

func (s *Set) markDirty(reason string) {
	logging.LogDirty(storage.ScopeModel.String(), reason)
	if s.dirty != nil {
		s.dirty.MarkDirty(storage.ScopeModel)
	}
}
