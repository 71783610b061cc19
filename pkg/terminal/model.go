// Package terminal runs a widget scene in a terminal. Mouse and key
// messages from bubbletea are dispatched to the scene, and the scene is
// drawn as colored character cells with lipgloss.
package terminal

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/widgetkit/pkg/core"
	"github.com/go-drift/widgetkit/pkg/rendering"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)

// Model is a bubbletea model over a scene and the window attached to it.
type Model struct {
	scene  *rendering.Scene
	window *core.Window
	title  string
	cols   int
	rows   int

	tickEvery time.Duration
	onTick    func(time.Time)
}

// Option configures a Model.
type Option func(*Model)

// WithTicker calls fn every interval on the program's update loop, so timed
// scene changes run on the same goroutine as input dispatch.
func WithTicker(interval time.Duration, fn func(time.Time)) Option {
	return func(m *Model) {
		m.tickEvery = interval
		m.onTick = fn
	}
}

type tickMsg time.Time

// NewModel creates a model showing scene. window may be nil; when set, its
// state is shown in the status line.
func NewModel(scene *rendering.Scene, window *core.Window, title string, opts ...Option) Model {
	cols, rows := Grid(scene)
	m := Model{scene: scene, window: window, title: title, cols: cols, rows: rows}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	if m.onTick == nil || m.tickEvery <= 0 {
		return nil
	}
	return tea.Tick(m.tickEvery, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cols, rows := Grid(m.scene)
		m.cols = max(0, min(cols, msg.Width))
		// Leave a row for the status line.
		m.rows = max(0, min(rows, msg.Height-1))
	case tickMsg:
		if m.onTick != nil {
			m.onTick(time.Time(msg))
		}
		return m, m.tick()
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		if key := KeyName(msg); key != "" {
			m.scene.KeyUp(key)
		}
	}
	return m, nil
}

func (m Model) mouse(msg tea.MouseMsg) {
	p := CellCenter(msg.X, msg.Y)
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scene.KeyUp("ArrowUp")
		return
	case tea.MouseButtonWheelDown:
		m.scene.KeyUp("ArrowDown")
		return
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		m.scene.PointerMove(p)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.scene.PointerMove(p)
			m.scene.PointerDown(p)
		}
	case tea.MouseActionRelease:
		m.scene.PointerMove(p)
		m.scene.PointerUp(p)
	}
}

func (m Model) View() string {
	status := m.title
	if m.window != nil {
		status = fmt.Sprintf("%s  window: %s", m.title, m.window.State())
	}
	return Render(m.scene, m.cols, m.rows) + "\n" + statusStyle.Render(status+"  (q to quit)")
}

// KeyName converts a terminal key to the key name widgets expect, such as
// "ArrowUp", "Enter" or " ". It returns "" for keys with no equivalent.
func KeyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyUp:
		return "ArrowUp"
	case tea.KeyDown:
		return "ArrowDown"
	case tea.KeyLeft:
		return "ArrowLeft"
	case tea.KeyRight:
		return "ArrowRight"
	case tea.KeyEnter:
		return "Enter"
	case tea.KeySpace:
		return " "
	case tea.KeyEsc:
		return "Escape"
	case tea.KeyTab:
		return "Tab"
	case tea.KeyBackspace:
		return "Backspace"
	case tea.KeyRunes:
		return string(msg.Runes)
	}
	return ""
}

// Run shows the scene full screen with mouse tracking until the user quits.
func Run(scene *rendering.Scene, window *core.Window, title string, opts ...Option) error {
	p := tea.NewProgram(NewModel(scene, window, title, opts...), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
