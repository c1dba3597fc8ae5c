package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/paynote/paynote/internal/note"
)

type dashboardState int

const (
	dashboardStateBrowse dashboardState = iota
	dashboardStateConfirmDelete
)

// DashboardModel shows the owner's most recent notes in a table and lets
// them delete entries after an inline confirmation.
type DashboardModel struct {
	CommonModel
	noteService *note.Service
	owner       uuid.UUID

	state dashboardState
	table table.Model
	notes []*note.Note
	form  *huh.Form

	loading bool
	status  string

	confirmDelete bool
}

var _ View = DashboardModel{}

func NewDashboardModel(noteSvc *note.Service, owner uuid.UUID) DashboardModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Person", Width: 20},
		{Title: "Type", Width: 10},
		{Title: "Amount", Width: 12},
		{Title: "Purpose", Width: 30},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return DashboardModel{
		noteService: noteSvc,
		owner:       owner,
		table:       t,
		loading:     true,
	}
}

func (m DashboardModel) Title() string { return "Recent Notes" }

func (m DashboardModel) ShortHelp() string {
	switch m.state {
	case dashboardStateBrowse:
		return "Esc: back | d: delete | r: refresh"
	case dashboardStateConfirmDelete:
		return "Enter: choose"
	}

	return ""
}

type notesLoadedMsg struct {
	notes []*note.Note
	err   error
}

func (m DashboardModel) loadNotesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		notes, err := m.noteService.List(ctx, m.owner)

		return notesLoadedMsg{notes: notes, err: err}
	}
}

type deleteResultMsg struct {
	err error
}

func (m DashboardModel) deleteCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return deleteResultMsg{err: m.noteService.Delete(ctx, m.owner, id)}
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadNotesCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg)
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 6)

		return m, nil

	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.notes = msg.notes
		m.refreshRows()

		if len(msg.notes) == 0 {
			m.status = "No notes yet."
		} else {
			m.status = ""
		}

		return m, nil

	case deleteResultMsg:
		m.state = dashboardStateBrowse
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
			return m, nil
		}

		m.status = "Note deleted."

		return m, m.loadNotesCmd()

	case tea.KeyMsg:
		if m.state == dashboardStateBrowse {
			switch msg.String() {
			case "esc":
				return m, Back
			case "r":
				m.loading = true
				return m, m.loadNotesCmd()
			case "d":
				if selected := m.selectedNote(); selected != nil {
					m.state = dashboardStateConfirmDelete
					m.confirmDelete = false
					m.form = m.confirmForm(selected)

					return m, m.form.Init()
				}

				return m, nil
			}
		}
	}

	if m.state == dashboardStateConfirmDelete && m.form != nil {
		formModel, cmd := m.form.Update(msg)
		if f, ok := formModel.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State == huh.StateCompleted {
			selected := m.selectedNote()
			if m.confirmDelete && selected != nil {
				return m, m.deleteCmd(selected.ID)
			}

			m.state = dashboardStateBrowse

			return m, nil
		}

		return m, cmd
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *DashboardModel) confirmForm(n *note.Note) *huh.Form {
	prompt := fmt.Sprintf("Delete the %s note of %s for %s? This cannot be undone.",
		FormatDirection(n.Direction), FormatAmount(n.Amount), n.PersonName)

	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative("Delete").
			Negative("Keep").
			Value(&m.confirmDelete),
	))
}

func (m *DashboardModel) selectedNote() *note.Note {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.notes) {
		return nil
	}

	return m.notes[idx]
}

func (m *DashboardModel) refreshRows() {
	rows := make([]table.Row, len(m.notes))
	for i, n := range m.notes {
		rows[i] = table.Row{
			FormatDate(n.CreatedAt),
			n.PersonName,
			FormatDirection(n.Direction),
			FormatAmount(n.Amount),
			n.Purpose,
		}
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(1).Render("Loading notes...")
	}

	if m.state == dashboardStateConfirmDelete && m.form != nil {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	body := m.table.View()
	if m.status != "" {
		body += "\n" + lipgloss.NewStyle().Faint(true).Render(m.status)
	}

	body += "\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp())

	return lipgloss.NewStyle().Padding(1).Render(body)
}
