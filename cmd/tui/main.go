package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/paynote/paynote/cmd/tui/internal/view"
	"github.com/paynote/paynote/internal/auth"
	authStore "github.com/paynote/paynote/internal/auth/store"
	"github.com/paynote/paynote/internal/config"
	"github.com/paynote/paynote/internal/database"
	"github.com/paynote/paynote/internal/note"
	noteStore "github.com/paynote/paynote/internal/note/store"
)

type model struct {
	noteService *note.Service
	owner       *auth.User

	currentView View

	dashboardView view.DashboardModel
	balancesView  view.BalancesModel
	addView       view.AddNoteModel

	width  int
	height int
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewBalances  View = 2
	ViewAdd       View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.TUI.Email == "" {
		slog.Error("TUI_EMAIL is not set; the terminal client needs an account to act as")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	authSvc := auth.NewService(authStore.New(db), cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)

	owner, err := authSvc.GetUserByEmail(ctx, cfg.TUI.Email)
	if err != nil {
		slog.Error("failed to resolve account", "email", cfg.TUI.Email, "error", err)
		os.Exit(1)
	}

	noteSvc := note.NewService(noteStore.New(db))

	return model{
		noteService:   noteSvc,
		owner:         owner,
		currentView:   ViewMenu,
		dashboardView: view.NewDashboardModel(noteSvc, owner.ID),
		balancesView:  view.NewBalancesModel(noteSvc, owner.ID),
		addView:       view.NewAddNoteModel(noteSvc, owner.ID),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// replaySize re-delivers the last known terminal size so a freshly created
// view can lay itself out before the next real resize.
func (m model) replaySize() tea.Cmd {
	if m.width == 0 {
		return nil
	}

	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: m.width, Height: m.height}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.noteService, m.owner.ID)

				return m, tea.Batch(m.dashboardView.Init(), m.replaySize())
			case "2":
				m.currentView = ViewBalances
				m.balancesView = view.NewBalancesModel(m.noteService, m.owner.ID)

				return m, tea.Batch(m.balancesView.Init(), m.replaySize())
			case "3":
				m.currentView = ViewAdd
				m.addView = view.NewAddNoteModel(m.noteService, m.owner.ID)

				return m, tea.Batch(m.addView.Init(), m.replaySize())
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewBalances:
		var newModel tea.Model
		newModel, cmd = m.balancesView.Update(msg)
		m.balancesView = newModel.(view.BalancesModel)
	case ViewAdd:
		var newModel tea.Model
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddNoteModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"PayNote (" + m.owner.Name + ")\n\n" +
				"1. Recent Notes\n" +
				"2. Balances\n" +
				"3. Add Note\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewBalances:
		return m.balancesView.View()
	case ViewAdd:
		return m.addView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
