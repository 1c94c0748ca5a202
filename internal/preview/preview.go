// Package preview is an interactive terminal preview of a mounted tree.
//
// Tab and shift+tab move focus between interactive elements. Enter or space
// presses the focused element. Arrow, home, end and page keys are sent to a
// focused slider: as keydown on web, as accessibility actions on native.
// Escape is sent as keydown to the focused element. q quits.
package preview

import (
	"context"
	"errors"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/render/termview"
	"github.com/vango-dev/primitives/pkg/runtime"
)

// webKeys maps terminal key names to DOM key values.
var webKeys = map[string]string{
	"up":     "ArrowUp",
	"down":   "ArrowDown",
	"left":   "ArrowLeft",
	"right":  "ArrowRight",
	"home":   "Home",
	"end":    "End",
	"pgup":   "PageUp",
	"pgdown": "PageDown",
	"esc":    "Escape",
}

// nativeActions maps terminal key names to accessibility actions.
var nativeActions = map[string]string{
	"up":    "increment",
	"right": "increment",
	"down":  "decrement",
	"left":  "decrement",
}

// pressEvents are tried in order when the focused element is pressed.
var pressEvents = []string{"click", "press", "pointerenter"}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	maxTrackLen = 48
)

// Model is the bubbletea model for one tree.
type Model struct {
	tree  *runtime.Tree
	os    platform.OS
	title string
	opts  termview.Options

	focus string
	err   error
}

// New returns a Model previewing tree, which was mounted for os.
func New(tree *runtime.Tree, os platform.OS, title string, opts termview.Options) Model {
	m := Model{tree: tree, os: os, title: title, opts: opts}
	if ids := m.focusable(); len(ids) > 0 {
		m.focus = ids[0]
	}
	return m
}

// Focus returns the hydration ID of the focused element.
func (m Model) Focus() string { return m.focus }

// Err returns the last dispatch error, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.opts.TrackWidth = min(max(msg.Width-12, 8), maxTrackLen)
		return m, nil
	case tea.KeyMsg:
		return m.key(msg.String())
	}
	return m, nil
}

func (m Model) key(k string) (tea.Model, tea.Cmd) {
	m.err = nil
	switch k {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.move(1)
	case "shift+tab":
		m.move(-1)
	case "enter", " ":
		for _, ev := range pressEvents {
			if m.handles(m.focus, ev) {
				m.dispatch(m.focus, ev, nil)
				break
			}
		}
	default:
		if m.os.IsNative() {
			if action, ok := nativeActions[k]; ok && m.handles(m.focus, "accessibilityaction") {
				m.dispatch(m.focus, "accessibilityaction", action)
			}
		} else if key, ok := webKeys[k]; ok && m.handles(m.focus, "keydown") {
			m.dispatch(m.focus, "keydown", key)
		}
	}
	m.settleFocus()
	return m, nil
}

// move shifts focus by delta, sending blur and focus events on web.
func (m *Model) move(delta int) {
	ids := m.focusable()
	if len(ids) == 0 {
		m.focus = ""
		return
	}
	i := slices.Index(ids, m.focus)
	var next string
	switch {
	case i >= 0:
		next = ids[(i+delta+len(ids))%len(ids)]
	case delta > 0:
		next = ids[0]
	default:
		next = ids[len(ids)-1]
	}
	if next == m.focus {
		return
	}
	prev := m.focus
	m.focus = next
	if m.handles(prev, "blur") {
		m.dispatch(prev, "blur", nil)
	}
	if m.handles(next, "focus") {
		m.dispatch(next, "focus", nil)
	}
}

// settleFocus keeps focus on an element that still exists.
func (m *Model) settleFocus() {
	ids := m.focusable()
	if slices.Contains(ids, m.focus) {
		return
	}
	m.focus = ""
	if len(ids) > 0 {
		m.focus = ids[0]
	}
}

func (m *Model) dispatch(hid, event string, value any) {
	if err := m.tree.Dispatch(hid, event, value); err != nil {
		m.err = err
	}
}

func (m Model) handles(hid, event string) bool {
	if hid == "" {
		return false
	}
	return slices.Contains(m.tree.Handlers(hid), event)
}

func (m Model) focusable() []string {
	return termview.Focusable(m.tree.Output())
}

func (m Model) View() string {
	opts := m.opts
	opts.Focus = m.focus
	parts := []string{
		titleStyle.Render(m.title + " (" + string(m.os) + ")"),
		"",
		termview.Render(m.tree.Output(), opts),
		"",
	}
	if m.err != nil {
		parts = append(parts, errorStyle.Render(m.err.Error()))
	}
	parts = append(parts, helpStyle.Render("tab focus • enter press • arrows adjust • esc close • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run runs the preview until the user quits or ctx is canceled.
func Run(ctx context.Context, tree *runtime.Tree, os platform.OS, title string, opts termview.Options, progOpts ...tea.ProgramOption) error {
	progOpts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, progOpts...)
	_, err := tea.NewProgram(New(tree, os, title, opts), progOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
