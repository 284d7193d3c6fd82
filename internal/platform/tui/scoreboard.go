package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/power-crisis/internal/registry"
	"github.com/vovakirdan/power-crisis/internal/storage"
)

const (
	minWidthForDetails = 90 // narrower terminals hide the run details panel
	detailsWidth       = 26
	maxRuns            = 100
)

var (
	boardTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardPanelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	variantStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	activeVariantStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Variant key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Variant, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Variant: key.NewBinding(key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"), key.WithHelp("tab", "auto/manual")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs of one variant at a time, with the
// highlighted run broken down in a side panel.
type ScoreboardModel struct {
	variants  []registry.GameInfo
	current   int
	store     *storage.Store
	runs      []storage.Run
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) showDetails() bool {
	return m.width >= minWidthForDetails
}

// newTable builds the runs table for the current window size.
func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Time", Width: 8},
		{Title: "Repairs", Width: 7},
		{Title: "Failures", Width: 8},
		{Title: "Map", Width: 10},
		{Title: "Player", Width: 10},
	}
	if !m.showDetails() && m.width < 60 {
		columns = columns[:4] // map and player are in the details panel
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// reload fetches runs and stats of the current variant.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		if runs, err := m.store.TopRuns(id, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	cols := len(m.table.Columns())
	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprintf("%.1fs", r.Seconds),
			fmt.Sprint(r.Repairs),
			fmt.Sprint(r.Failures),
			r.Level,
			r.Player,
		}
		rows = append(rows, row[:cols])
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selected returns the highlighted run.
func (m ScoreboardModel) selected() (storage.Run, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.Run{}, false
	}
	return m.runs[i], true
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Variant):
			if n := len(m.variants); n > 0 {
				step := 1
				switch msg.String() {
				case "shift+tab", "left", "h":
					step = n - 1
				}
				m.current = (m.current + step) % n
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.fillTable()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("BEST RUNS"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.variantBar(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	body := boardPanelStyle.Render(m.runsView())
	if m.showDetails() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.detailsView())
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// variantBar shows which variant's runs are listed.
func (m ScoreboardModel) variantBar() string {
	parts := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			parts[i] = activeVariantStyle.Render(v.Title)
		} else {
			parts[i] = variantStyle.Render(v.Title)
		}
	}
	return strings.Join(parts, " ")
}

// statsLine summarizes every stored run of the current variant.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return boardDimStyle.Render("no runs yet")
	}
	return boardDimStyle.Render(fmt.Sprintf("%d runs  |  best %ds  |  avg %.1fs  |  %d repairs  |  %d failures",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalRepairs, m.stats.TotalFailures))
}

func (m ScoreboardModel) runsView() string {
	if len(m.runs) == 0 {
		return boardDimStyle.Italic(true).Padding(2, 4).
			Render("No runs recorded yet.\nSurvive a blackout to get on the board!")
	}
	return m.table.View()
}

// detailsView breaks down the highlighted run.
func (m ScoreboardModel) detailsView() string {
	style := boardPanelStyle.Width(detailsWidth)
	r, ok := m.selected()
	if !ok {
		return style.Render(boardDimStyle.Render("no run selected"))
	}

	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = "config"
	}
	player := r.Player
	if player == "" {
		player = "local"
	}

	lines := []string{
		boardTitleStyle.Render(fmt.Sprintf("Run #%d", m.table.Cursor()+1)),
		"",
		fmt.Sprintf("Survived   %.1fs", r.Seconds),
		fmt.Sprintf("Map        %s", r.Level),
		fmt.Sprintf("Difficulty %s", difficulty),
		fmt.Sprintf("Repairs    %d", r.Repairs),
		fmt.Sprintf("Failures   %d", r.Failures),
		fmt.Sprintf("Restocks   %d", r.Restocks),
		fmt.Sprintf("Puddles    %d", r.Hazards),
		fmt.Sprintf("Player     %s", player),
		boardDimStyle.Render(r.CreatedAt.Format("Jan 02 15:04")),
	}
	return style.Render(strings.Join(lines, "\n"))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
