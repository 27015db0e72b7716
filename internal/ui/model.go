// Package ui is the interactive terminal frontend: month, week and
// day views over the scheduling engine, with fuzzy search and live
// feed reload.
package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JulioGEP/ERP-GEP-sub004/internal/civil"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/config"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/event"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/feed"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/parser"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/schedule"
	"github.com/JulioGEP/ERP-GEP-sub004/internal/search"
)

// navDebounce is the trailing-edge delay between rapid navigation and
// the feed fetch it triggers.
const navDebounce = 250 * time.Millisecond

type promptKind int

const (
	promptNone promptKind = iota
	promptSearch
	promptGoto
)

type Model struct {
	// Collaborators
	config  *config.Config
	source  feed.Source
	clock   *civil.Clock
	indexer *schedule.Indexer
	parser  *parser.DateParser
	changes <-chan feed.Change

	// View state
	view    schedule.View
	refDate civil.Date
	today   civil.Date

	// Event state. loaded is the latest complete snapshot from the
	// feed; rows/events are derived from it on every filter change.
	loaded      []event.Event
	rows        []search.Row
	events      []event.Event
	loadedRange schedule.Range
	hasLoaded   bool

	// Generation counters: navGen collapses rapid navigation into one
	// fetch, loadGen discards stale fetch results.
	navGen  int
	loadGen int

	// Filter state
	query  string
	facets search.Facets

	// Prompt state
	prompt      promptKind
	promptInput string

	// UI state
	width       int
	height      int
	message     string
	helpVisible bool

	styles Styles
}

type Styles struct {
	Normal   lipgloss.Style
	Dim      lipgloss.Style
	Selected lipgloss.Style
	Today    lipgloss.Style
	Weekend  lipgloss.Style
	Header   lipgloss.Style
	Session  lipgloss.Style
	Variant  lipgloss.Style
	Help     lipgloss.Style
	Message  lipgloss.Style
	Border   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("220")).
			Bold(true),
		Today: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		Weekend: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true).
			Underline(true),
		Session: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")),
		Variant: lipgloss.NewStyle().
			Foreground(lipgloss.Color("171")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
	}
}

func NewModel(cfg *config.Config, source feed.Source, clock *civil.Clock, facets search.Facets) *Model {
	today := clock.Today()

	view := schedule.ViewMonth
	if v, err := schedule.ParseView(cfg.StartupView); err == nil {
		view = v
	}

	m := &Model{
		config:  cfg,
		source:  source,
		clock:   clock,
		indexer: schedule.NewIndexer(clock, schedule.NewWindow(cfg.DayStartMinute, cfg.DayEndMinute)),
		parser:  parser.NewDateParser(today),
		view:    view,
		refDate: today,
		today:   today,
		facets:  facets,
		styles:  DefaultStyles(),
	}

	if ch, err := source.Watch(); err == nil {
		m.changes = ch
	}

	return m
}

// Message types
type tickMsg struct{}
type debounceMsg struct{ gen int }
type feedChangedMsg struct{}
type eventsMsg struct {
	gen    int
	events []event.Event
	err    error
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCmd(), m.tickCmd()}
	if cmd := m.watchCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tickMsg:
		m.today = m.clock.Today()
		if m.config.AutoRefresh {
			return m, tea.Batch(m.loadCmd(), m.tickCmd())
		}
		return m, m.tickCmd()

	case debounceMsg:
		// Only the trailing navigation step fetches.
		if msg.gen != m.navGen {
			return m, nil
		}
		return m, m.loadCmd()

	case feedChangedMsg:
		return m, tea.Batch(m.loadCmd(), m.watchCmd())

	case eventsMsg:
		if msg.gen != m.loadGen {
			// A newer fetch is already in flight; this snapshot is
			// stale and must not replace the working set.
			return m, nil
		}
		if msg.err != nil {
			m.showMessage(fmt.Sprintf("Feed error: %v", msg.err))
			return m, nil
		}
		m.loaded = msg.events
		m.rows = search.BuildRows(msg.events)
		m.hasLoaded = true
		m.applyFilter()
		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.helpVisible {
		return m.viewHelp()
	}

	var body string
	switch m.view {
	case schedule.ViewMonth:
		body = m.viewMonth()
	case schedule.ViewWeek, schedule.ViewDay:
		body = m.viewTimeGrid()
	default:
		body = m.viewMonth()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt != promptNone {
		return m.handlePromptKeys(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.source.Close()
		return m, tea.Quit

	case "?":
		m.helpVisible = !m.helpVisible
		return m, nil

	case "m":
		m.view = schedule.ViewMonth
		return m, m.navigated()

	case "w":
		m.view = schedule.ViewWeek
		return m, m.navigated()

	case "d":
		m.view = schedule.ViewDay
		return m, m.navigated()

	case "l", "right", "n":
		m.refDate = schedule.Advance(m.view, m.refDate, 1)
		return m, m.navigated()

	case "h", "left", "p":
		m.refDate = schedule.Advance(m.view, m.refDate, -1)
		return m, m.navigated()

	case "j", "down":
		m.refDate = m.refDate.AddDays(7)
		return m, m.navigated()

	case "k", "up":
		m.refDate = m.refDate.AddDays(-7)
		return m, m.navigated()

	case "t":
		m.today = m.clock.Today()
		m.refDate = m.today
		return m, m.navigated()

	case "g":
		m.prompt = promptGoto
		m.promptInput = ""
		return m, nil

	case "/":
		m.prompt = promptSearch
		m.promptInput = m.query
		return m, nil

	case "esc":
		if m.query != "" {
			m.query = ""
			m.applyFilter()
			m.showMessage("Search cleared")
		}
		return m, nil

	case "r":
		m.showMessage("Reloading feeds")
		return m, m.loadCmd()
	}

	return m, nil
}

func (m *Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.prompt = promptNone
		m.promptInput = ""
		return m, nil

	case tea.KeyEnter:
		input := m.promptInput
		kind := m.prompt
		m.prompt = promptNone
		m.promptInput = ""

		switch kind {
		case promptSearch:
			m.query = input
			m.applyFilter()
		case promptGoto:
			m.parser.SetToday(m.today)
			date, err := m.parser.Parse(input)
			if err != nil {
				m.showMessage(fmt.Sprintf("Bad date: %v", err))
				return m, nil
			}
			m.refDate = date
			return m, m.navigated()
		}
		return m, nil

	case tea.KeyBackspace:
		if len(m.promptInput) > 0 {
			runes := []rune(m.promptInput)
			m.promptInput = string(runes[:len(runes)-1])
		}
		return m, nil

	case tea.KeyRunes, tea.KeySpace:
		if msg.Type == tea.KeySpace {
			m.promptInput += " "
		} else {
			m.promptInput += string(msg.Runes)
		}
		// Live narrowing while typing a search query.
		if m.prompt == promptSearch {
			m.query = m.promptInput
			m.applyFilter()
		}
		return m, nil
	}

	return m, nil
}

// navigated recomputes the view from data on hand and schedules a
// debounced fetch if the new range leaves the fetched window.
func (m *Model) navigated() tea.Cmd {
	if m.hasLoaded && m.rangeCovered() {
		return nil
	}
	m.navGen++
	gen := m.navGen
	return tea.Tick(navDebounce, func(time.Time) tea.Msg {
		return debounceMsg{gen: gen}
	})
}

// rangeCovered reports whether the currently visible days all sit
// inside the fetched window.
func (m *Model) rangeCovered() bool {
	r := schedule.Compute(m.view, m.refDate)
	return r.Start >= m.loadedRange.Start && r.End <= m.loadedRange.End
}

func (m *Model) loadCmd() tea.Cmd {
	r := schedule.Pad(schedule.Compute(m.view, m.refDate))
	m.loadedRange = r
	m.loadGen++
	gen := m.loadGen

	start := m.clock.DayStart(civil.FromJulian(r.Start))
	end := m.clock.DayStart(civil.FromJulian(r.End))
	source := m.source

	return func() tea.Msg {
		events, err := source.Events(start, end)
		return eventsMsg{gen: gen, events: events, err: err}
	}
}

func (m *Model) watchCmd() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return feedChangedMsg{}
	}
}

func (m *Model) applyFilter() {
	m.events = search.Filter(m.rows, m.facets, m.query)
}

func (m *Model) showMessage(msg string) {
	m.message = msg
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.config.RefreshRate, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
