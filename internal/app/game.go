package app

import (
	"sync"
	"time"

	"football-quiz/internal/domain"
)

// GameOptions configures the sessions a Game creates.
type GameOptions struct {
	Timing    Timing
	Scheduler Scheduler
	Now       func() time.Time
	// OnFinish is told about every completed session.
	OnFinish func(playerID string, summary domain.Summary)
}

// Game is the host shell around quiz sessions: it owns the welcome, playing
// and results screens, creates a session on start, and throws it away on
// restart or when the player goes home.
//
// Lock order is Game, then QuizSession, then the subscriber hub.
type Game struct {
	playerID string
	quiz     domain.Quiz
	opts     GameOptions
	hub      *hub

	mu      sync.Mutex
	closed  bool
	screen  domain.Screen
	session *QuizSession
	summary *domain.Summary
}

// NewGame returns a game for playerID sitting on the welcome screen.
func NewGame(playerID string, quiz domain.Quiz, opts GameOptions) *Game {
	if opts.Scheduler == nil {
		opts.Scheduler = WallClock()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Game{
		playerID: playerID,
		quiz:     quiz,
		opts:     opts,
		hub:      newHub(),
		screen:   domain.ScreenWelcome,
	}
}

// Start begins a fresh session from any screen.
func (g *Game) Start() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.discardLocked()
	g.summary = nil
	g.screen = domain.ScreenPlaying

	var session *QuizSession
	session = NewQuizSession(g.quiz.Questions, SessionOptions{
		Timing:    g.opts.Timing,
		Scheduler: g.opts.Scheduler,
		OnChange: func(state domain.SessionState) {
			g.hub.publish(g.playingView(state))
		},
		OnFinish: func(result domain.Result) {
			g.finish(session, result)
		},
	})
	g.session = session
	g.mu.Unlock()

	// Started outside the game lock: a session that finishes on Start
	// reports back through finish, which takes the lock.
	session.Start()
}

// Restart discards the current session and plays again from question 0.
func (g *Game) Restart() {
	g.Start()
}

// GoHome discards the current session and returns to the welcome screen.
func (g *Game) GoHome() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.discardLocked()
	g.summary = nil
	g.screen = domain.ScreenWelcome
	g.hub.publish(g.viewLocked())
}

// SelectAnswer forwards the player's choice to the running session.
func (g *Game) SelectAnswer(option int) (domain.AnswerOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed || g.screen != domain.ScreenPlaying || g.session == nil {
		return domain.AnswerOutcome{}, domain.ErrNotPlaying
	}
	return g.session.SelectAnswer(option), nil
}

// View returns the current screen and whatever it needs to render.
func (g *Game) View() domain.GameView {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.viewLocked()
}

// Subscribe returns a channel of views, starting with the current one. The
// caller must invoke cancel to release it.
func (g *Game) Subscribe() (<-chan domain.GameView, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.screen == domain.ScreenPlaying && g.session != nil {
		var (
			ch     <-chan domain.GameView
			cancel func()
		)
		g.session.observe(func(state domain.SessionState) {
			ch, cancel = g.hub.add(g.playingView(state))
		})
		return ch, cancel
	}
	return g.hub.add(g.viewLocked())
}

// Close tears the game down and closes every subscriber channel.
func (g *Game) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.closed = true
	g.discardLocked()
	g.hub.closeAll()
}

func (g *Game) finish(session *QuizSession, result domain.Result) {
	g.mu.Lock()
	if g.closed || g.session != session {
		g.mu.Unlock()
		return
	}
	summary := Summarize(result)
	g.summary = &summary
	g.screen = domain.ScreenResults
	g.discardLocked()
	g.hub.publish(g.viewLocked())
	g.mu.Unlock()

	if g.opts.OnFinish != nil {
		g.opts.OnFinish(g.playerID, summary)
	}
}

func (g *Game) discardLocked() {
	if g.session != nil {
		g.session.Close()
		g.session = nil
	}
}

func (g *Game) playingView(state domain.SessionState) domain.GameView {
	return domain.GameView{
		PlayerID:  g.playerID,
		Screen:    domain.ScreenPlaying,
		Session:   &state,
		UpdatedAt: g.opts.Now(),
	}
}

func (g *Game) viewLocked() domain.GameView {
	if g.screen == domain.ScreenPlaying && g.session != nil {
		return g.playingView(g.session.State())
	}
	view := domain.GameView{
		PlayerID:  g.playerID,
		Screen:    g.screen,
		UpdatedAt: g.opts.Now(),
	}
	if g.summary != nil {
		summary := *g.summary
		view.Summary = &summary
	}
	return view
}
