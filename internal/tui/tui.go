// Package tui provides a Bubble Tea terminal user interface for albumtag.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chrysplusplus/albumtag/internal/config"
	"github.com/chrysplusplus/albumtag/internal/match"
	"github.com/chrysplusplus/albumtag/internal/plan"
	"github.com/chrysplusplus/albumtag/internal/review"
	"github.com/chrysplusplus/albumtag/internal/tagging"
	"github.com/chrysplusplus/albumtag/internal/tags"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	matchedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	mismatchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	unmatchedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateInitializing
	StateSelecting
	StateChoosing
	StateApplying
	StateDone
	StateAborted
	StateError
)

// eventLog collects manager progress events across command goroutines.
type eventLog struct {
	mu      sync.Mutex
	entries []tagging.Event
}

func (l *eventLog) add(e tagging.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

func (l *eventLog) tail(n int) []tagging.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) <= n {
		return append([]tagging.Event(nil), l.entries...)
	}
	return append([]tagging.Event(nil), l.entries[len(l.entries)-n:]...)
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	settings  *config.Settings
	log       *eventLog
	err       error

	manager *tagging.Manager
	session *review.Session
	summary tagging.Summary
	notice  string

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "path/to/album-sheet.txt"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		settings:  settings,
		log:       &eventLog{},
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// InitDoneMsg is sent when sheet parsing and file matching complete.
	InitDoneMsg struct {
		Manager *tagging.Manager
		Err     error
	}

	// ApplyDoneMsg is sent when all files have been processed.
	ApplyDoneMsg struct {
		Summary tagging.Summary
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateInput:
				return m, tea.Quit
			case StateSelecting, StateChoosing:
				m.state = StateAborted
			}

		case "enter":
			return m.handleEnter()

		case "q":
			if m.state == StateDone || m.state == StateAborted || m.state == StateError {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case InitDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.manager = msg.Manager
			m.session = msg.Manager.Session()
			m.state = StateSelecting
			m.textInput.SetValue("")
		}

	case ApplyDoneMsg:
		m.summary = msg.Summary
		m.state = StateDone
	}

	if m.state == StateInput || m.state == StateSelecting || m.state == StateChoosing {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleEnter submits the text input for the current state.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateInput:
		if m.textInput.Value() == "" {
			return m, nil
		}
		m.state = StateInitializing
		return m, tea.Batch(m.initialize(m.textInput.Value()), m.spinner.Tick)

	case StateSelecting, StateChoosing:
		step := m.session.Input(m.textInput.Value())
		m.textInput.SetValue("")

		m.notice = ""
		if step.Event == review.EventOutOfRange {
			m.notice = "Selection is outside the available range"
		}

		switch step.Outcome {
		case review.OutcomeAborted:
			m.state = StateAborted
			return m, nil
		case review.OutcomeCommitted:
			m.state = StateApplying
			return m, tea.Batch(m.apply(), m.spinner.Tick)
		}

		if m.session.Phase() == review.PhaseChoosing {
			m.state = StateChoosing
		} else {
			m.state = StateSelecting
		}
		return m, nil
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("albumtag"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Match track titles onto audio files"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateInitializing:
		b.WriteString(m.spinner.View() + " " + subtitleStyle.Render("Reading album sheet and matching files..."))
	case StateSelecting, StateChoosing:
		b.WriteString(m.viewReview())
	case StateApplying:
		b.WriteString(m.spinner.View() + " " + subtitleStyle.Render("Writing tags..."))
		b.WriteString("\n\n")
		b.WriteString(m.renderLog())
	case StateDone:
		b.WriteString(m.viewDone())
	case StateAborted:
		b.WriteString(unmatchedStyle.Render("No changes were made to the files."))
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render("Enter album sheet path:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewReview() string {
	var b strings.Builder

	a := m.manager.Album()
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s - %s", a.Artist, a.Title)))
	b.WriteString("\n\n")

	for i, cand := range m.session.Candidates() {
		cursor := "  "
		if m.state == StateChoosing && i == m.session.Selected() {
			cursor = subtitleStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%d - %s\n", cursor, i+1, renderCandidate(cand, m.session.Tracklist())))
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(warningStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	if m.state == StateChoosing {
		b.WriteString(dimStyle.Render("0 - <remove track title>"))
		b.WriteString("\n")
		for i, title := range m.session.Tracklist() {
			b.WriteString(fmt.Sprintf("%d - %s\n", i+1, title))
		}
		b.WriteString("\n")
		b.WriteString("Select the new track number: ")
	} else {
		b.WriteString("Enter number of any selection you want to change: ")
	}
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewDone() string {
	box := boxStyle.Render(fmt.Sprintf(
		"Done!\n\nChanged:   %d\nUnchanged: %d\nFailed:    %d",
		m.summary.Changed,
		m.summary.Unchanged,
		m.summary.Failed,
	))
	return box + "\n\n" + m.renderLog()
}

func (m Model) viewError() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("Error:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString("  " + m.err.Error())
	}
	return b.String()
}

func (m Model) renderLog() string {
	var b strings.Builder
	for _, e := range m.log.tail(10) {
		var style lipgloss.Style
		switch e.Level {
		case tagging.LevelError:
			style = errorStyle
		case tagging.LevelWarning:
			style = warningStyle
		case tagging.LevelSuccess:
			style = successStyle
		case tagging.LevelInfo:
			style = infoStyle
		default:
			style = dimStyle
		}
		b.WriteString(style.Render("• " + e.Message))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateInput:
		return "enter: load sheet • esc: quit"
	case StateSelecting:
		return "number: edit a file • enter: finish • q: quit without changes"
	case StateChoosing:
		return "number: pick title • 0: unset • enter: cancel • q: quit without changes"
	case StateDone, StateAborted, StateError:
		return "q: quit"
	}
	return ""
}

// renderCandidate formats one candidate line with match highlighting.
func renderCandidate(cand review.Candidate, tracklist []string) string {
	name := filepath.Base(cand.Path)

	switch {
	case cand.Match.Kind == match.Manual && cand.Matched():
		return matchedStyle.Render(fmt.Sprintf("%s -> %s", name, cand.Title))

	case cand.Matched():
		var b strings.Builder
		for _, seg := range match.Segments(name, cand.Match, match.Normalize(name)) {
			switch seg.Kind {
			case match.SegmentMatched:
				b.WriteString(matchedStyle.Render(seg.Text))
			case match.SegmentMismatched:
				b.WriteString(mismatchStyle.Render(seg.Text))
			default:
				b.WriteString(seg.Text)
			}
		}
		return fmt.Sprintf("%s -> %s", b.String(), matchedStyle.Render(cand.Title))

	default:
		line := unmatchedStyle.Render(fmt.Sprintf("'%s' will remain unchanged", name))
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if closest, ok := match.Closest(stem, tracklist); ok {
			line += dimStyle.Render(fmt.Sprintf(" (closest: %s)", closest))
		}
		return line
	}
}

// initialize parses the sheet and auto-matches the files next to it.
func (m *Model) initialize(sheetPath string) tea.Cmd {
	log := m.log
	settings := m.settings
	return func() tea.Msg {
		manager := tagging.NewManager(settings, tags.NewStore(), log.add)
		if err := manager.Initialize(sheetPath, filepath.Dir(sheetPath), false); err != nil {
			return InitDoneMsg{Err: err}
		}
		return InitDoneMsg{Manager: manager}
	}
}

// apply writes the reviewed tags in the background.
func (m *Model) apply() tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		return ApplyDoneMsg{Summary: manager.Apply(plan.Options{})}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
