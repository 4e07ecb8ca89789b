package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/babylog/internal/cli/formatter"
	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type timelineKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var timelineKeys = timelineKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Delete:  key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
	Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
	Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "cancel")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k timelineKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Refresh, k.Quit}
}

// timelineLoadedMsg carries a freshly loaded record list.
type timelineLoadedMsg struct {
	records []*domain.ActivityRecord
	err     error
}

// recordDeletedMsg reports the outcome of a confirmed delete.
type recordDeletedMsg struct {
	title string
	err   error
}

// timelineModel lists recent records grouped by day. Deleting takes two
// keys: d marks the row under the cursor, y confirms.
type timelineModel struct {
	app   *App
	ctx   context.Context
	limit int

	rows    []*domain.ActivityRecord
	cursor  int
	pending *domain.ActivityRecord
	status  string
	err     error
	loading bool
}

func newTimelineModel(ctx context.Context, app *App, limit int) *timelineModel {
	return &timelineModel{app: app, ctx: ctx, limit: limit, loading: true}
}

func (m *timelineModel) Init() tea.Cmd {
	return m.load()
}

func (m *timelineModel) load() tea.Cmd {
	return func() tea.Msg {
		recs, err := m.app.Records.ListRecords(m.ctx, m.limit)
		return timelineLoadedMsg{records: recs, err: err}
	}
}

func (m *timelineModel) deleteRecord(rec *domain.ActivityRecord) tea.Cmd {
	return func() tea.Msg {
		err := m.app.Records.DeleteRecord(m.ctx, rec.ID)
		return recordDeletedMsg{title: rec.Title(), err: err}
	}
}

func (m *timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timelineLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		// Flatten in display order so the cursor follows what is drawn.
		m.rows = m.rows[:0]
		for _, g := range formatter.GroupByDay(msg.records) {
			m.rows = append(m.rows, g.Records...)
		}
		m.cursor = min(m.cursor, max(len(m.rows)-1, 0))
		return m, nil

	case recordDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Deleted " + msg.title
		m.loading = true
		return m, m.load()

	case tea.KeyMsg:
		if m.pending != nil {
			switch {
			case key.Matches(msg, timelineKeys.Confirm):
				rec := m.pending
				m.pending = nil
				return m, m.deleteRecord(rec)
			case key.Matches(msg, timelineKeys.Cancel), key.Matches(msg, timelineKeys.Quit):
				m.pending = nil
				m.status = "Delete cancelled"
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, timelineKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, timelineKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, timelineKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, timelineKeys.Delete):
			if m.cursor < len(m.rows) {
				m.pending = m.rows[m.cursor]
				m.status = ""
			}
		case key.Matches(msg, timelineKeys.Refresh):
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m *timelineModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Timeline"))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.loading && len(m.rows) == 0:
		b.WriteString(formatter.Dim("Loading...") + "\n")
	case len(m.rows) == 0:
		b.WriteString(formatter.Dim("No activity logged yet.") + "\n")
	default:
		now := m.app.now()
		day := ""
		for i, r := range m.rows {
			if d := domain.DayKey(r.CreatedAt); d != day {
				day = d
				b.WriteString(formatter.StyleHeader.Render(formatter.DayHeader(d, now)) + "\n")
			}
			cursor := "  "
			if i == m.cursor {
				cursor = formatter.StyleHeader.Render("> ")
			}
			b.WriteString(cursor + formatter.FormatTimelineEntry(r) + "\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.pending != nil:
		b.WriteString(formatter.StyleYellow.Render(fmt.Sprintf("Delete %q? y/n", m.pending.Title())) + "\n")
	case m.status != "":
		b.WriteString(formatter.Dim(m.status) + "\n")
	}

	help := make([]string, 0, 5)
	for _, k := range timelineKeys.ShortHelp() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(formatter.Dim(strings.Join(help, " • ")))
	return b.String()
}
