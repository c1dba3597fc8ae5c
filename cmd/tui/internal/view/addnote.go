package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/paynote/paynote/internal/note"
)

// AddNoteModel is the entry form for a new payment note. Field validation
// mirrors the server rules so bad input never reaches the service.
type AddNoteModel struct {
	CommonModel
	noteService *note.Service
	owner       uuid.UUID

	form   *huh.Form
	saving bool
	status string

	// Form field bindings
	formPerson    string
	formAmount    string
	formPurpose   string
	formDirection string
}

var _ View = AddNoteModel{}

func NewAddNoteModel(noteSvc *note.Service, owner uuid.UUID) AddNoteModel {
	m := AddNoteModel{
		noteService:   noteSvc,
		owner:         owner,
		formDirection: string(note.DirectionGiven),
	}
	m.form = m.newForm()

	return m
}

func (m *AddNoteModel) newForm() *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Person").
			Value(&m.formPerson).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("person name is required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Amount").
			Description("Whole units; fractions are floored").
			Value(&m.formAmount).
			Validate(func(s string) error {
				f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
				if err != nil {
					return fmt.Errorf("amount must be a valid number greater than 0")
				}
				if _, err := note.ParseAmount(f); err != nil {
					return err
				}
				return nil
			}),
		huh.NewInput().
			Title("Purpose").
			Value(&m.formPurpose),
		huh.NewSelect[string]().
			Title("Direction").
			Options(
				huh.NewOption("Given (they owe you)", string(note.DirectionGiven)),
				huh.NewOption("Received (you owe them)", string(note.DirectionReceived)),
			).
			Value(&m.formDirection),
	))
}

func (m AddNoteModel) Title() string { return "Add Note" }

func (m AddNoteModel) ShortHelp() string { return "Esc: back | Enter/Tab: navigate form" }

type saveNoteResultMsg struct {
	saved *note.Note
	err   error
}

func (m AddNoteModel) saveCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		amount, _ := strconv.ParseFloat(strings.TrimSpace(m.formAmount), 64)

		saved, err := m.noteService.Create(ctx, m.owner, note.Params{
			PersonName: m.formPerson,
			Amount:     amount,
			Purpose:    m.formPurpose,
			Direction:  m.formDirection,
		})

		return saveNoteResultMsg{saved: saved, err: err}
	}
}

func (m AddNoteModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AddNoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Record the size, then let the message continue on to the form.
		m.SetSize(msg)

	case saveNoteResultMsg:
		m.saving = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Saved: %s %s to %s.",
			FormatDirection(msg.saved.Direction), FormatAmount(msg.saved.Amount), msg.saved.PersonName)

		// Reset bindings for the next entry.
		m.formPerson = ""
		m.formAmount = ""
		m.formPurpose = ""
		m.formDirection = string(note.DirectionGiven)
		m.form = m.newForm()

		return m, m.form.Init()

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, Back
		}
	}

	if m.saving {
		return m, nil
	}

	formModel, cmd := m.form.Update(msg)
	if f, ok := formModel.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.saving = true
		return m, m.saveCmd()
	}

	return m, cmd
}

func (m AddNoteModel) View() string {
	if m.saving {
		return lipgloss.NewStyle().Padding(1).Render("Saving...")
	}

	body := m.form.View()
	if m.status != "" {
		body += "\n" + lipgloss.NewStyle().Faint(true).Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(body)
}
