// Package tui is the interactive terminal front end for the queue engine:
// a single bubbletea model rendering the playback queue, recommendations,
// and prefix search over a manager.Manager, styled with lipgloss.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/rina-voss/soundqueue/internal/manager"
	"github.com/rina-voss/soundqueue/internal/store"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	searchStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).Padding(0, 1)
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
)

// Model is the bubbletea model driving the queue TUI.
type Model struct {
	mgr       *manager.Manager
	snapshot  *store.Store // nil when running without persistence
	sessionID string       // correlates this run's status lines and saved snapshot

	cursor  int
	mode    mode
	search  textinput.Model
	matches []int64
	status  string
}

// New creates a Model over mgr. snap may be nil if the session is not
// backed by a persisted snapshot. sessionID tags the status line and any
// snapshot this run saves; pass "" to leave it untagged.
func New(mgr *manager.Manager, snap *store.Store, sessionID string) Model {
	ti := textinput.New()
	ti.Placeholder = "search prefix"
	ti.CharLimit = 64

	status := ""
	if sessionID != "" {
		status = fmt.Sprintf("session %s started", sessionID)
	}

	return Model{
		mgr:       mgr,
		snapshot:  snap,
		sessionID: sessionID,
		search:    ti,
		status:    status,
	}
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeSearch {
			return m.updateSearch(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.persist()
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.mgr.QueueSize()-1 {
			m.cursor++
		}

	case "n":
		if m.mgr.SkipNext() {
			m.status = "skipped forward"
		}
	case "p":
		if m.mgr.SkipPrev() {
			m.status = "skipped back"
		}

	case "K":
		if id, ok := m.selectedID(); ok && m.mgr.MoveUp(id) {
			m.cursor--
			m.status = fmt.Sprintf("moved %d up", id)
		}
	case "J":
		if id, ok := m.selectedID(); ok && m.mgr.MoveDown(id) {
			m.cursor++
			m.status = fmt.Sprintf("moved %d down", id)
		}

	case "x":
		if id, ok := m.selectedID(); ok && m.mgr.RemoveSong(id) {
			m.status = fmt.Sprintf("removed %d", id)
		}

	case "u":
		if m.mgr.Undo() {
			m.status = "undone"
		} else {
			m.status = "nothing to undo"
		}
	case "R":
		if m.mgr.Redo() {
			m.status = "redone"
		} else {
			m.status = "nothing to redo"
		}

	case "/":
		m.mode = modeSearch
		m.search.SetValue("")
		m.search.Focus()
		m.matches = nil
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.search.Blur()
		return m, nil
	case "enter":
		prefix := m.search.Value()
		songs := m.mgr.SearchSongs(prefix)
		artists := m.mgr.SearchArtists(prefix)
		m.matches = dedupIDs(append(songs, artists...))
		m.status = fmt.Sprintf("%s matches for %q", humanize.Comma(int64(len(m.matches))), prefix)
		m.mode = modeNormal
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) persist() {
	if m.snapshot == nil {
		return
	}
	savedAt := time.Now().UnixMilli()
	_ = m.snapshot.Save(store.Snapshot{
		SongIDs:          m.mgr.QueueSnapshot(),
		CurrentSongID:    m.mgr.CurrentSong(),
		SessionID:        m.sessionID,
		SavedAtUnixMilli: &savedAt,
	})
}

func (m Model) selectedID() (int64, bool) {
	ids := m.mgr.QueueSnapshot()
	if m.cursor < 0 || m.cursor >= len(ids) {
		return 0, false
	}
	return ids[m.cursor], true
}

// View satisfies tea.Model.
func (m Model) View() string {
	var b strings.Builder

	header := "soundqueue"
	if m.sessionID != "" {
		header = fmt.Sprintf("soundqueue (session %s)", m.sessionID)
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")

	ids := m.mgr.QueueSnapshot()
	current := m.mgr.CurrentSong()
	if len(ids) == 0 {
		b.WriteString(dimStyle.Render("queue is empty"))
		b.WriteString("\n")
	}
	for i, id := range ids {
		line := fmt.Sprintf("%d", id)
		if id == current {
			line = currentStyle.Render(line + " (current)")
		}
		if i == m.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	top := m.mgr.Recommendations(5)
	b.WriteString(dimStyle.Render(fmt.Sprintf("top picks: %v", top)))
	b.WriteString("\n")

	if len(m.matches) > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("search matches: %v", m.matches)))
		b.WriteString("\n")
	}

	if m.mode == modeSearch {
		b.WriteString("\n")
		b.WriteString(searchStyle.Render(m.search.View()))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("\nj/k move  n/p skip  J/K reorder  x remove  u undo  R redo  / search  q quit"))
	return b.String()
}

func dedupIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
