package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/muurk/mainviews/internal/options"
)

const fileVersion = 1

// Store owns the persisted model and general records and their dirty flags.
//
// Model and General are allocated once and never replaced, so references
// handed to layout and widget instances stay valid across Load. After Load
// the caller must rebuild any instances, since the content changed under them.
type Store struct {
	ModelPath   string
	GeneralPath string

	Model   *ModelData
	General *GeneralData

	mu           sync.Mutex
	dirtyModel   bool
	dirtyGeneral bool
}

// NewStore creates a store for the given files with empty records.
func NewStore(modelPath, generalPath string) *Store {
	return &Store{
		ModelPath:   modelPath,
		GeneralPath: generalPath,
		Model:       &ModelData{},
		General:     &GeneralData{},
	}
}

// MarkDirty flags scope for the next Flush.
func (s *Store) MarkDirty(scope Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch scope {
	case ScopeModel:
		s.dirtyModel = true
	case ScopeGeneral:
		s.dirtyGeneral = true
	}
}

// Dirty reports whether any scope has unflushed changes.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirtyModel || s.dirtyGeneral
}

// DirtyScope reports whether scope has unflushed changes.
func (s *Store) DirtyScope(scope Scope) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if scope == ScopeGeneral {
		return s.dirtyGeneral
	}
	return s.dirtyModel
}

// Load reads both files. Missing files leave the records empty.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadModel(); err != nil {
		return err
	}
	if err := s.loadGeneral(); err != nil {
		return err
	}
	s.dirtyModel = false
	s.dirtyGeneral = false
	return nil
}

func (s *Store) loadModel() error {
	data, err := readIfExists(s.ModelPath)
	if err != nil || data == nil {
		return err
	}

	var f modelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return newStoreError(ErrTypeParse, s.ModelPath, "failed to parse model file", err)
	}
	if f.Version != fileVersion {
		return newStoreError(ErrTypeVersion, s.ModelPath,
			fmt.Sprintf("unsupported model file version %d (expected %d)", f.Version, fileVersion), nil)
	}

	m, err := f.decode()
	if err != nil {
		return newStoreError(ErrTypeInvalid, s.ModelPath, "invalid model file", err)
	}
	*s.Model = m
	return nil
}

func (s *Store) loadGeneral() error {
	data, err := readIfExists(s.GeneralPath)
	if err != nil || data == nil {
		return err
	}

	var f generalFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return newStoreError(ErrTypeParse, s.GeneralPath, "failed to parse general settings file", err)
	}
	if f.Version != fileVersion {
		return newStoreError(ErrTypeVersion, s.GeneralPath,
			fmt.Sprintf("unsupported general settings version %d (expected %d)", f.Version, fileVersion), nil)
	}

	g, err := f.decode()
	if err != nil {
		return newStoreError(ErrTypeInvalid, s.GeneralPath, "invalid general settings file", err)
	}
	*s.General = g
	return nil
}

func readIfExists(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, newStoreError(ErrTypeRead, path, "failed to read file", err)
	}
	return data, nil
}

// Flush writes every dirty scope and clears its flag on success.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dirtyModel {
		if err := s.writeModel(); err != nil {
			return err
		}
		s.dirtyModel = false
	}
	if s.dirtyGeneral {
		if err := s.writeGeneral(); err != nil {
			return err
		}
		s.dirtyGeneral = false
	}
	return nil
}

// Save writes both files regardless of dirty state.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeModel(); err != nil {
		return err
	}
	if err := s.writeGeneral(); err != nil {
		return err
	}
	s.dirtyModel = false
	s.dirtyGeneral = false
	return nil
}

func (s *Store) writeModel() error {
	data, err := yaml.Marshal(encodeModel(s.Model))
	if err != nil {
		return newStoreError(ErrTypeWrite, s.ModelPath, "failed to marshal model", err)
	}
	header := "# Main view configuration for model " + s.Model.Name + "\n\n"
	return writeAtomic(s.ModelPath, append([]byte(header), data...))
}

func (s *Store) writeGeneral() error {
	data, err := yaml.Marshal(encodeGeneral(s.General))
	if err != nil {
		return newStoreError(ErrTypeWrite, s.GeneralPath, "failed to marshal general settings", err)
	}
	return writeAtomic(s.GeneralPath, data)
}

// writeAtomic writes through a temporary file and renames it into place.
func writeAtomic(path string, data []byte) error {
	if path == "" {
		return newStoreError(ErrTypeWrite, path, "no file path configured", nil)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return newStoreError(ErrTypeWrite, path, "failed to create directory", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return newStoreError(ErrTypeWrite, path, "failed to write temporary file", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return newStoreError(ErrTypeWrite, path, "failed to rename temporary file", err)
	}
	return nil
}

// File formats. Only used slots and zones are written, keyed by index, and
// option lists drop trailing zero values.

type modelFile struct {
	Version int          `yaml:"version"`
	Name    string       `yaml:"name,omitempty"`
	Screens []screenFile `yaml:"screens,omitempty"`
}

type screenFile struct {
	Slot    int             `yaml:"slot"`
	Layout  string          `yaml:"layout"`
	Options []options.Value `yaml:"options,omitempty"`
	Zones   []zoneFile      `yaml:"zones,omitempty"`
}

type zoneFile struct {
	Zone    int             `yaml:"zone"`
	Widget  string          `yaml:"widget"`
	Options []options.Value `yaml:"options,omitempty"`
}

type generalFile struct {
	Version      int             `yaml:"version"`
	Theme        string          `yaml:"theme,omitempty"`
	ThemeOptions []options.Value `yaml:"theme_options,omitempty"`
}

func trimValues(values []options.Value) []options.Value {
	n := len(values)
	for n > 0 && values[n-1] == (options.Value{}) {
		n--
	}
	if n == 0 {
		return nil
	}
	out := make([]options.Value, n)
	copy(out, values[:n])
	return out
}

func encodeModel(m *ModelData) modelFile {
	f := modelFile{Version: fileVersion, Name: m.Name}
	for slot := range m.Screens {
		screen := &m.Screens[slot]
		if !screen.Used() {
			continue
		}
		sf := screenFile{
			Slot:    slot,
			Layout:  screen.LayoutName,
			Options: trimValues(screen.Layout.Options[:]),
		}
		for z := range screen.Layout.Zones {
			zone := &screen.Layout.Zones[z]
			if !zone.Used() {
				continue
			}
			sf.Zones = append(sf.Zones, zoneFile{
				Zone:    z,
				Widget:  zone.WidgetName,
				Options: trimValues(zone.Widget.Options[:]),
			})
		}
		f.Screens = append(f.Screens, sf)
	}
	return f
}

func (f modelFile) decode() (ModelData, error) {
	m := ModelData{Name: f.Name}
	for _, sf := range f.Screens {
		if sf.Slot < 0 || sf.Slot >= MaxCustomScreens {
			return ModelData{}, fmt.Errorf("screen slot %d out of range [0, %d)", sf.Slot, MaxCustomScreens)
		}
		if len(sf.Options) > MaxLayoutOptions {
			return ModelData{}, fmt.Errorf("screen %d: %d layout options exceed capacity %d", sf.Slot, len(sf.Options), MaxLayoutOptions)
		}
		screen := &m.Screens[sf.Slot]
		screen.LayoutName = TruncateName(sf.Layout)
		copy(screen.Layout.Options[:], sf.Options)

		for _, zf := range sf.Zones {
			if zf.Zone < 0 || zf.Zone >= MaxLayoutZones {
				return ModelData{}, fmt.Errorf("screen %d: zone %d out of range [0, %d)", sf.Slot, zf.Zone, MaxLayoutZones)
			}
			if len(zf.Options) > MaxWidgetOptions {
				return ModelData{}, fmt.Errorf("screen %d zone %d: %d widget options exceed capacity %d", sf.Slot, zf.Zone, len(zf.Options), MaxWidgetOptions)
			}
			zone := &screen.Layout.Zones[zf.Zone]
			zone.WidgetName = TruncateName(zf.Widget)
			copy(zone.Widget.Options[:], zf.Options)
		}
	}
	return m, nil
}

func encodeGeneral(g *GeneralData) generalFile {
	return generalFile{
		Version:      fileVersion,
		Theme:        g.ThemeName,
		ThemeOptions: trimValues(g.Theme.Options[:]),
	}
}

func (f generalFile) decode() (GeneralData, error) {
	if len(f.ThemeOptions) > MaxThemeOptions {
		return GeneralData{}, fmt.Errorf("%d theme options exceed capacity %d", len(f.ThemeOptions), MaxThemeOptions)
	}
	g := GeneralData{ThemeName: TruncateName(f.Theme)}
	copy(g.Theme.Options[:], f.ThemeOptions)
	return g, nil
}
