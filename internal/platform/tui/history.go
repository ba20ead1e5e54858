package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/alcherk/snake-arena/internal/core"
	"github.com/alcherk/snake-arena/internal/registry"
)

// RoundRecord is one finished round kept in the session history.
type RoundRecord struct {
	ID      string
	Result  core.RoundResult
	EndedAt time.Time
}

// History keeps the rounds played in this session. Nothing is persisted.
type History struct {
	records []RoundRecord
	now     func() time.Time
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{now: time.Now}
}

// Add records a finished round under a fresh round ID.
func (h *History) Add(r core.RoundResult) RoundRecord {
	rec := RoundRecord{
		ID:      uuid.New().String(),
		Result:  r,
		EndedAt: h.now(),
	}
	h.records = append(h.records, rec)
	return rec
}

// Records returns the rounds for a variant, newest first. An empty variant
// matches every round.
func (h *History) Records(variant string) []RoundRecord {
	out := make([]RoundRecord, 0, len(h.records))
	for i := len(h.records) - 1; i >= 0; i-- {
		if variant == "" || h.records[i].Result.Variant == variant {
			out = append(out, h.records[i])
		}
	}
	return out
}

// Best returns the highest-scoring round for a variant. Ties go to the
// earlier round.
func (h *History) Best(variant string) (RoundRecord, bool) {
	var best RoundRecord
	found := false
	for _, rec := range h.records {
		if variant != "" && rec.Result.Variant != variant {
			continue
		}
		if !found || rec.Result.Score > best.Result.Score {
			best, found = rec, true
		}
	}
	return best, found
}

// Len returns the number of recorded rounds.
func (h *History) Len() int {
	return len(h.records)
}

// History layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the variant sidebar
	sidebarWidth       = 24
	shortIDLen         = 8
)

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Back    key.Binding
	Quit    key.Binding
	AllHelp key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Back, k.AllHelp}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Back, k.Quit, k.AllHelp},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next variant"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("tab/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		AllHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// historyFilter is one entry of the variant sidebar.
type historyFilter struct {
	variant string // Empty for all variants
	title   string
}

// HistoryModel is the Bubble Tea model for the round history screen.
type HistoryModel struct {
	history   *History
	filters   []historyFilter
	cursor    int
	records   []RoundRecord
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a history view over h.
func NewHistoryModel(h *History, width, height int) HistoryModel {
	filters := []historyFilter{{title: "All variants"}}
	for _, g := range registry.List() {
		filters = append(filters, historyFilter{variant: g.ID, title: g.Title})
	}

	m := HistoryModel{
		history: h,
		filters: filters,
		keys:    DefaultHistoryKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.Refresh()
	return m
}

func (m *HistoryModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

// createTable creates a table sized for the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Round", Width: shortIDLen},
		{Title: "Variant", Width: 12},
		{Title: "Score", Width: 6},
		{Title: "Len", Width: 4},
		{Title: "Cause", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "Ended", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads rows from the history.
func (m *HistoryModel) Refresh() {
	m.records = m.history.Records(m.filters[m.cursor].variant)

	rows := make([]table.Row, len(m.records))
	for i, rec := range m.records {
		r := rec.Result
		rows[i] = table.Row{
			rec.ID[:shortIDLen],
			r.Variant,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			r.Cause.String(),
			r.Duration.Truncate(100 * time.Millisecond).String(),
			rec.EndedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.cursor = (m.cursor + 1) % len(m.filters)
			m.Refresh()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.cursor = (m.cursor - 1 + len(m.filters)) % len(m.filters)
			m.Refresh()
			return m, nil

		case key.Matches(msg, m.keys.AllHelp):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Resize rebuilds the table for a new window size.
func (m *HistoryModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.help.Width = width
	m.Refresh()
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := fmt.Sprintf("ROUND HISTORY - %s", m.filters[m.cursor].title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.summary(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) summary() string {
	variant := m.filters[m.cursor].variant
	best, ok := m.history.Best(variant)
	if !ok {
		return "No rounds yet"
	}
	return fmt.Sprintf("%d rounds  Best: %d (%s)", len(m.records), best.Result.Score, best.ID[:shortIDLen])
}

func (m HistoryModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Variants\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, f := range m.filters {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + f.title))
		sidebar.WriteString("\n")
	}
	return sidebarStyle.Render(sidebar.String())
}

func (m HistoryModel) renderTableContent() string {
	if len(m.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rounds played yet.")
	}
	return m.table.View()
}

// IsGoingBack returns true if the user left the view without quitting.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory shows the history screen on its own.
// Returns true if the user wants to go back, false if quitting.
func RunHistory(h *History, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewHistoryModel(h, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("history view failed: %w", err)
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
