package sim

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/logging"
	"github.com/muurk/mainviews/internal/version"
)

// Session is the editor the simulator drives.
type Session interface {
	Step(ev event.Event) error
	Tick() error
	Grid() *lcd.Grid
	Palette() lcd.Palette
}

// DefaultTick is the frame interval without input.
const DefaultTick = 100 * time.Millisecond

// Terminal size needed for the bordered display, status and help lines.
const (
	MinWidth  = lcd.Width/lcd.CellWidth + 2
	MinHeight = lcd.Height/lcd.CellHeight + 5
)

type tickMsg time.Time

var (
	screenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

// Model is the bubbletea model of the simulator.
type Model struct {
	session  Session
	keys     keyMap
	help     help.Model
	renderer *renderer
	tick     time.Duration

	lastEvent event.Event
	err       error

	Width  int
	Height int
}

// NewModel creates a simulator for session. tick <= 0 selects DefaultTick.
func NewModel(session Session, tick time.Duration) Model {
	if tick <= 0 {
		tick = DefaultTick
	}
	return Model{
		session:  session,
		keys:     defaultKeyMap(),
		help:     help.New(),
		renderer: newRenderer(),
		tick:     tick,
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init renders the first frame and starts the ticker.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles key, mouse, resize and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.err = m.session.Tick()
		return m, m.tickCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if ev, ok := m.keys.eventFor(msg); ok {
			return m.step(ev), nil
		}

	case tea.MouseMsg:
		if ev, ok := eventForMouse(msg); ok {
			return m.step(ev), nil
		}
	}
	return m, nil
}

func (m Model) step(ev event.Event) Model {
	logging.Debug("Simulator input", zap.String("event", ev.String()))
	m.lastEvent = ev
	m.err = m.session.Step(ev)
	return m
}

// View renders the display, a status line and the key help.
func (m Model) View() string {
	screen := screenStyle.Render(m.renderer.Render(m.session.Grid(), m.session.Palette()))

	status := statusStyle.Render(fmt.Sprintf("last event: %s", m.lastEvent))
	if m.err != nil {
		status = errorStyle.Render(m.err.Error())
	} else if m.Width > 0 && (m.Width < MinWidth || m.Height < MinHeight) {
		status = errorStyle.Render(fmt.Sprintf("terminal is %dx%d, the display needs %dx%d", m.Width, m.Height, MinWidth, MinHeight))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("mainviews "+version.Version),
		screen,
		status,
		m.help.View(m.keys),
	)
}

// Run starts the simulator on the terminal and blocks until the user quits.
func Run(session Session, tick time.Duration) error {
	p := tea.NewProgram(NewModel(session, tick), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("simulator failed: %w", err)
	}
	return nil
}
