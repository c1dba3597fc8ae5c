package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/paynote/paynote/internal/note"
	"github.com/paynote/paynote/internal/summary"
)

var (
	receiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	giveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// BalancesModel renders the derived balance view: global totals plus the
// receivables and payables lists. It recomputes from the full note set
// every time it is opened or refreshed.
type BalancesModel struct {
	CommonModel
	noteService *note.Service
	owner       uuid.UUID

	global    summary.Global
	toReceive []summary.Entry
	toGive    []summary.Entry

	loading bool
	status  string
}

var _ View = BalancesModel{}

func NewBalancesModel(noteSvc *note.Service, owner uuid.UUID) BalancesModel {
	return BalancesModel{
		noteService: noteSvc,
		owner:       owner,
		loading:     true,
	}
}

func (m BalancesModel) Title() string { return "Balances" }

func (m BalancesModel) ShortHelp() string { return "Esc: back | r: refresh" }

type balancesLoadedMsg struct {
	global    summary.Global
	toReceive []summary.Entry
	toGive    []summary.Entry
	err       error
}

func (m BalancesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		notes, err := m.noteService.ListAll(ctx, m.owner)
		if err != nil {
			return balancesLoadedMsg{err: err}
		}

		toReceive, toGive := summary.Classify(summary.GroupByPerson(notes))

		return balancesLoadedMsg{
			global:    summary.ForOwner(notes),
			toReceive: toReceive,
			toGive:    toGive,
		}
	}
}

func (m BalancesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BalancesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg)
		return m, nil

	case balancesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.global = msg.global
		m.toReceive = msg.toReceive
		m.toGive = msg.toGive
		m.status = ""

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m BalancesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(1).Render("Computing balances...")
	}

	if m.status != "" {
		return lipgloss.NewStyle().Padding(1).Render(m.status)
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("Balances") + "\n\n")
	b.WriteString(fmt.Sprintf("To receive: %s\n", receiveStyle.Render(FormatAmount(m.global.TotalToReceive))))
	b.WriteString(fmt.Sprintf("To give:    %s\n", giveStyle.Render(FormatAmount(m.global.TotalToGive))))
	b.WriteString(fmt.Sprintf("Net:        %s\n\n", FormatAmount(m.global.NetBalance)))

	b.WriteString(headerStyle.Render("Owes you") + "\n")
	if len(m.toReceive) == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("nobody") + "\n")
	}

	for _, e := range m.toReceive {
		b.WriteString(fmt.Sprintf("  %s  %s  (%d notes)\n",
			e.Name, receiveStyle.Render(FormatAmount(e.Amount)), e.Count))
	}

	b.WriteString("\n" + headerStyle.Render("You owe") + "\n")
	if len(m.toGive) == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("nobody") + "\n")
	}

	for _, e := range m.toGive {
		b.WriteString(fmt.Sprintf("  %s  %s  (%d notes)\n",
			e.Name, giveStyle.Render(FormatAmount(e.Amount)), e.Count))
	}

	b.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()))

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}
