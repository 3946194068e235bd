package tui

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/fitjournal/fitjournal/internal/errors"
	"github.com/fitjournal/fitjournal/internal/storage"
)

// tickMsg is sent when the refresh timer fires.
type tickMsg time.Time

// refreshMsg is sent when the history needs to be reloaded.
type refreshMsg struct{}

// chrome is the number of rows used by everything but the entry list.
const chrome = 8

// DashboardModel is the bubbletea model for the read-only history viewer.
type DashboardModel struct {
	ctx     context.Context
	history storage.History

	// Data
	lines     []string
	noHistory bool

	// UI state
	offset     int
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	refreshInterval time.Duration
}

// DashboardConfig holds configuration for the viewer.
type DashboardConfig struct {
	Context         context.Context
	History         storage.History
	RefreshInterval time.Duration
}

// NewDashboardModel creates a new viewer model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.Context == nil {
		config.Context = context.Background()
	}
	if config.RefreshInterval == 0 {
		config.RefreshInterval = 2 * time.Second
	}

	return &DashboardModel{
		ctx:             config.Context,
		history:         config.History,
		refreshInterval: config.RefreshInterval,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.refreshCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case tickMsg:
		if !m.messageExp.IsZero() && time.Time(msg).After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		m.loadData()
		return m, m.tickCmd()

	case refreshMsg:
		m.loadData()
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.offset--
		m.clampOffset()

	case "down", "j":
		m.offset++
		m.clampOffset()

	case "r":
		m.loadData()
		m.setMessage("Refreshed", time.Second)
	}

	return m, nil
}

// View renders the viewer.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sections := []string{m.renderHeader()}

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	sections = append(sections, m.renderEntries())
	if summary := m.renderSummary(); summary != "" {
		sections = append(sections, summary)
	}
	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Workout History")
	count := StyleSubtitle.Render(fmt.Sprintf("%d entries", len(m.lines)))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", count) + "\n"
}

func (m *DashboardModel) renderEntries() string {
	var content strings.Builder

	switch {
	case m.noHistory:
		content.WriteString(StyleSubtitle.Render("No workout history found."))
	case len(m.lines) == 0:
		content.WriteString(StyleSubtitle.Render("No workouts logged yet."))
	default:
		end := min(m.offset+m.visibleRows(), len(m.lines))
		for i := m.offset; i < end; i++ {
			if i > m.offset {
				content.WriteString("\n")
			}
			content.WriteString(StyleIndex.Render(fmt.Sprintf("%d.", i+1)))
			content.WriteString(" ")
			content.WriteString(strings.TrimSpace(m.lines[i]))
		}
	}

	return StyleBox.Width(max(m.width-4, 20)).Render(content.String())
}

// renderSummary shows how often each workout type was logged.
func (m *DashboardModel) renderSummary() string {
	counts := TypeCounts(m.lines)
	if len(counts) == 0 {
		return ""
	}

	var content strings.Builder
	for i, tc := range counts {
		if i > 0 {
			content.WriteString("\n")
		}
		pct := float64(tc.Count) * 100 / float64(len(m.lines))
		content.WriteString(fmt.Sprintf("%-12s %s %s",
			StyleType.Render(tc.Type), ProgressBar(pct, 20), StyleCount.Render(fmt.Sprint(tc.Count))))
	}
	return StyleBox.Width(max(m.width-4, 20)).Render(content.String())
}

// visibleRows is how many entries fit on screen.
func (m *DashboardModel) visibleRows() int {
	if m.height == 0 {
		return len(m.lines)
	}
	return max(m.height-chrome-len(TypeCounts(m.lines)), 1)
}

func (m *DashboardModel) clampOffset() {
	limit := max(len(m.lines)-m.visibleRows(), 0)
	m.offset = min(max(m.offset, 0), limit)
}

// loadData reloads the history lines.
func (m *DashboardModel) loadData() {
	lines, err := m.history.ReadAll(m.ctx)
	switch {
	case errors.Is(err, errors.ErrNoHistory):
		m.lines, m.noHistory, m.err = nil, true, nil
	case err != nil:
		m.err = err
		return
	default:
		m.lines, m.noHistory, m.err = lines, false, nil
	}
	m.clampOffset()
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

// TypeCount is the number of entries logged for one workout type.
type TypeCount struct {
	Type  string
	Count int
}

// TypeCounts tallies history lines by workout type, most frequent first.
// Lines that do not look like entries are skipped.
func TypeCounts(lines []string) []TypeCount {
	tally := make(map[string]int)
	for _, line := range lines {
		parts := strings.SplitN(strings.TrimSpace(line), " - ", 3)
		if len(parts) < 3 {
			continue
		}
		tally[parts[1]]++
	}

	counts := make([]TypeCount, 0, len(tally))
	for t, n := range tally {
		counts = append(counts, TypeCount{Type: t, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Type < counts[j].Type
	})
	return counts
}

// EnsureTerminal returns an error unless fd is an interactive terminal.
func EnsureTerminal(fd uintptr) error {
	if term.IsTerminal(int(fd)) {
		return nil
	}
	return errors.NewUserError("the dashboard needs an interactive terminal",
		"Use 'fitjournal history' to print the history instead.")
}

// Run starts the history viewer on the current terminal.
func Run(config DashboardConfig) error {
	if err := EnsureTerminal(os.Stdin.Fd()); err != nil {
		return err
	}

	model := NewDashboardModel(config)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(model.ctx))
	_, err := p.Run()
	return err
}
