package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sandbox/internal/registry"
	"github.com/vovakirdan/tui-sandbox/internal/storage"
)

// Run history layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show level list sidebar
	sidebarWidth       = 22  // Width of level list sidebar
	maxRuns            = 100 // Max runs to load
)

// RunsKeyMap defines the key bindings for the run history.
type RunsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Clear     key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Clear, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Clear, k.Back, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "clear level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for browsing the run history.
type RunsModel struct {
	levels      []registry.GameInfo
	cursor      int
	store       *storage.Store
	runs        []storage.Run
	stats       *storage.LevelStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        RunsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewRunsModel creates a run history browser positioned on levelID,
// or on the first level when levelID is empty or unknown.
func NewRunsModel(store *storage.Store, levelID string, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		levels:      registry.List(),
		store:       store,
		keys:        DefaultRunsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, l := range m.levels {
		if l.ID == levelID {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Frames", Width: 8},
		{Title: "Sim", Width: 8},
		{Title: "Wall", Width: 8},
		{Title: "Source", Width: 9},
		{Title: "Date", Width: 13},
	}

	height := m.height - 10 // Header, stats, help and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *RunsModel) current() string {
	if len(m.levels) == 0 {
		return ""
	}
	return m.levels[m.cursor].ID
}

// load reads the runs and stats of the current level.
func (m *RunsModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil && len(m.levels) > 0 {
		m.runs, m.loadErr = m.store.RecentRuns(m.current(), maxRuns)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetLevelStats(m.current())
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.Frames),
			fmt.Sprintf("%.1fs", r.SimSeconds),
			fmt.Sprintf("%.1fs", r.WallSeconds),
			r.Source,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the run history model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run history.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + 1) % len(m.levels)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor - 1 + len(m.levels)) % len(m.levels)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			if m.store != nil && len(m.levels) > 0 {
				m.loadErr = m.store.ClearRuns(m.current())
				if m.loadErr == nil {
					m.load()
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run history.
func (m RunsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RUNS"
	if len(m.levels) > 0 {
		title = fmt.Sprintf("RUNS - %s", m.levels[m.cursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the current level.
func (m RunsModel) statsLine() string {
	switch {
	case m.loadErr != nil:
		return "error: " + m.loadErr.Error()
	case m.stats == nil || m.stats.Runs == 0:
		return ""
	}
	return fmt.Sprintf("%d runs  |  %d frames  |  %.1fs simulated  |  longest %.1fs",
		m.stats.Runs, m.stats.TotalFrames, m.stats.TotalSimTime, m.stats.LongestSimTime)
}

// renderWideLayout renders the level list beside the table.
func (m RunsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Levels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, l := range m.levels {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + truncate(l.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders level tabs above the table.
func (m RunsModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.levels) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.levels[m.cursor].Title), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m RunsModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.store == nil {
			return emptyStyle.Render("Run history is unavailable.")
		}
		return emptyStyle.Render("No runs recorded yet.\nPlay this level to record one!")
	}

	return m.table.View()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RunsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunsModel) IsQuitting() bool {
	return m.quitting
}

// RunRuns runs the run history browser.
// Returns true if user wants to go back to menu, false if quitting.
func RunRuns(store *storage.Store, levelID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewRunsModel(store, levelID, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RunsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
