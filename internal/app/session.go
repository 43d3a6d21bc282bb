package app

import (
	"fmt"
	"time"

	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/layouts"
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/logging"
	"github.com/muurk/mainviews/internal/menu"
	"github.com/muurk/mainviews/internal/screens"
	"github.com/muurk/mainviews/internal/storage"
	"github.com/muurk/mainviews/internal/themes"
	"github.com/muurk/mainviews/internal/widgets"
	"go.uber.org/zap"
)

// DefaultModelName names a model created from scratch.
const DefaultModelName = "Model01"

// Options configures a Session.
type Options struct {
	ModelPath   string
	GeneralPath string
	// ModelName is used when the model file does not exist yet
	ModelName string
	// Simulate animates widget values on every Tick
	Simulate bool
	// FlushDelay is how long records may stay dirty before Step writes them
	FlushDelay time.Duration
	// Now defaults to time.Now
	Now func() time.Time
}

// Session is one editor instance bound to a pair of record files.
type Session struct {
	store   *storage.Store
	catalog *screens.Catalog
	set     *screens.Set
	ctrl    *menu.Controller
	grid    *lcd.Grid
	sim     *widgets.Simulated

	flushDelay time.Duration
	now        func() time.Time
	dirtySince time.Time
	frames     uint64
}

// NewCatalog registers every built-in widget, layout and theme and seals
// the result.
func NewCatalog(env widgets.Env) (*screens.Catalog, error) {
	catalog := screens.NewCatalog()
	if err := widgets.Register(catalog.Widgets, env); err != nil {
		return nil, fmt.Errorf("failed to register widgets: %w", err)
	}
	if err := layouts.Register(catalog.Layouts); err != nil {
		return nil, fmt.Errorf("failed to register layouts: %w", err)
	}
	if err := themes.Register(catalog.Themes); err != nil {
		return nil, fmt.Errorf("failed to register themes: %w", err)
	}
	catalog.Seal()
	return catalog, nil
}

// New loads the records and builds the screens, the theme and the menu.
func New(opts Options) (*Session, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	store := storage.NewStore(opts.ModelPath, opts.GeneralPath)
	if err := store.Load(); err != nil {
		return nil, err
	}
	if store.Model.Name == "" {
		store.Model.Name = opts.ModelName
		if store.Model.Name == "" {
			store.Model.Name = DefaultModelName
		}
	}

	s := &Session{
		store:      store,
		grid:       lcd.NewGrid(),
		flushDelay: opts.FlushDelay,
		now:        opts.Now,
	}

	var telemetry widgets.Telemetry = widgets.Static{Model: store.Model.Name}
	if opts.Simulate {
		s.sim = &widgets.Simulated{Model: store.Model.Name}
		telemetry = s.sim
	}

	catalog, err := NewCatalog(widgets.Env{Telemetry: telemetry})
	if err != nil {
		return nil, err
	}
	s.catalog = catalog

	dirty := storage.DirtyFunc(s.markDirty)
	s.set = screens.NewSet(catalog, store.Model, dirty)
	if err := s.set.Load(); err != nil {
		return nil, fmt.Errorf("failed to build screens: %w", err)
	}

	s.ctrl = menu.NewController(menu.Config{
		Catalog: catalog,
		Set:     s.set,
		General: store.General,
		Dirty:   dirty,
		Surface: s.grid,
	})

	logging.Info("Session started",
		zap.String("model", store.Model.Name),
		zap.Int("screens", s.set.Count()),
		zap.String("theme", s.ctrl.Theme().Factory().Name()),
	)
	return s, nil
}

func (s *Session) markDirty(scope storage.Scope) {
	s.store.MarkDirty(scope)
	if s.dirtySince.IsZero() {
		s.dirtySince = s.now()
	}
}

// Step renders one frame with ev and flushes records that have been dirty
// for longer than the flush delay.
func (s *Session) Step(ev event.Event) error {
	s.grid.Clear(lcd.ColorBackground)
	s.ctrl.Run(ev)
	s.frames++

	if s.dirtySince.IsZero() || s.now().Sub(s.dirtySince) < s.flushDelay {
		return nil
	}
	return s.Flush()
}

// Tick advances simulated telemetry by one frame and renders a frame
// without input.
func (s *Session) Tick() error {
	if s.sim != nil {
		s.sim.Advance(1)
	}
	return s.Step(event.None)
}

// Flush writes the dirty records now.
func (s *Session) Flush() error {
	if err := s.store.Flush(); err != nil {
		logging.Error("Failed to flush records", zap.Error(err))
		return fmt.Errorf("failed to flush records: %w", err)
	}
	s.dirtySince = time.Time{}
	return nil
}

// Close flushes pending changes and destroys every screen and the theme.
func (s *Session) Close() error {
	err := s.Flush()
	s.Discard()
	return err
}

// Grid returns the raster of the last frame.
func (s *Session) Grid() *lcd.Grid { return s.grid }

// Palette returns the palette of the active theme.
func (s *Session) Palette() lcd.Palette { return s.ctrl.Palette() }

// Controller returns the menu controller.
func (s *Session) Controller() *menu.Controller { return s.ctrl }

// Catalog returns the sealed factory catalog.
func (s *Session) Catalog() *screens.Catalog { return s.catalog }

// Screens returns the screen set.
func (s *Session) Screens() *screens.Set { return s.set }

// Store returns the record store.
func (s *Session) Store() *storage.Store { return s.store }

// Frames returns the number of frames rendered so far.
func (s *Session) Frames() uint64 { return s.frames }

// Discard destroys the session without writing pending changes.
func (s *Session) Discard() {
	s.set.Close()
	s.ctrl.Theme().Close()
}
