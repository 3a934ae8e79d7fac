package tui

import (
	"context"
	"errors"

	"football-quiz/internal/app"
	"football-quiz/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model renders one player's game in the terminal using Bubble Tea.
type Model struct {
	service  *app.QuizService
	playerID string
	views    <-chan domain.GameView
	view     domain.GameView
	outcome  *domain.AnswerOutcome
	err      error
	noColor  bool
}

// Options configures the terminal UI model.
type Options struct {
	NoColor bool
}

// NewModel constructs a model for a player already entered in service. views
// is the player's subscription; the model quits when it is closed.
func NewModel(service *app.QuizService, playerID string, views <-chan domain.GameView, opts Options) Model {
	m := Model{
		service:  service,
		playerID: playerID,
		views:    views,
		noColor:  opts.NoColor,
	}
	if view, err := service.View(context.Background(), playerID); err == nil {
		m.view = view
	}
	return m
}

// Init waits for the first view.
func (m Model) Init() tea.Cmd {
	return waitForView(m.views)
}

// Update consumes key presses and view updates.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case ViewMsg:
		m = m.apply(typed.View)
		return m, waitForView(m.views)
	case tea.KeyMsg:
		return m.handleKey(typed.String())
	}
	return m, nil
}

// View renders the current screen.
func (m Model) View() string {
	var body string
	switch m.view.Screen {
	case domain.ScreenPlaying:
		body = renderPlaying(m.view.Session, m.outcome, m.noColor)
	case domain.ScreenResults:
		body = renderResults(m.view.Summary, m.noColor)
	default:
		body = renderWelcome(m.noColor)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, renderError(m.err, m.noColor))
}

// ViewMsg wraps a game view for Bubble Tea.
type ViewMsg struct {
	View domain.GameView
}

// waitForView blocks until the game publishes a view.
func waitForView(views <-chan domain.GameView) tea.Cmd {
	return func() tea.Msg {
		if views == nil {
			return nil
		}
		view, ok := <-views
		if !ok {
			return tea.Quit()
		}
		return ViewMsg{View: view}
	}
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	m.err = nil

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if m.view.Screen == domain.ScreenPlaying {
			return m, nil
		}
		return m.act(m.service.Start(ctx, m.playerID))
	case "r":
		if m.view.Screen == domain.ScreenWelcome {
			return m, nil
		}
		return m.act(m.service.Restart(ctx, m.playerID))
	case "h":
		return m.act(m.service.Home(ctx, m.playerID))
	}

	option, ok := optionForKey(key)
	if !ok || m.view.Screen != domain.ScreenPlaying {
		return m, nil
	}
	outcome, err := m.service.Answer(ctx, m.playerID, option)
	if err != nil {
		if !errors.Is(err, domain.ErrNotPlaying) {
			m.err = err
		}
		return m, nil
	}
	if outcome.Accepted {
		m.outcome = &outcome
	}
	if view, err := m.service.View(ctx, m.playerID); err == nil {
		m = m.apply(view)
	}
	return m, nil
}

func (m Model) act(view domain.GameView, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.err = err
		return m, nil
	}
	return m.apply(view), nil
}

// apply keeps the last outcome only while its question is still on screen.
func (m Model) apply(view domain.GameView) Model {
	if view.Screen != domain.ScreenPlaying || view.Session == nil || !view.Session.Answered {
		m.outcome = nil
	}
	m.view = view
	return m
}

// optionForKey maps 1-4 and a-d to option indices.
func optionForKey(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	switch c := key[0]; {
	case c >= '1' && c <= '4':
		return int(c - '1'), true
	case c >= 'a' && c <= 'd':
		return int(c - 'a'), true
	}
	return 0, false
}

// Run starts the terminal UI for playerID and blocks until it exits.
func Run(ctx context.Context, service *app.QuizService, playerID string, opts Options, programOpts ...tea.ProgramOption) error {
	if _, err := service.Enter(ctx, playerID); err != nil {
		return err
	}
	defer service.Leave(context.Background(), playerID)

	views, cancel, err := service.Subscribe(ctx, playerID)
	if err != nil {
		return err
	}
	defer cancel()

	programOpts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, programOpts...)
	program := tea.NewProgram(NewModel(service, playerID, views, opts), programOpts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
