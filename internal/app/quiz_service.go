package app

import (
	"context"
	"log/slog"
	"sync"

	"football-quiz/internal/domain"
)

// GameRepository abstracts where live games are kept (in-memory, Redis-tracked, etc).
type GameRepository interface {
	GetOrCreate(playerID string, create func() *Game) *Game
	Get(playerID string) (*Game, bool)
	Delete(playerID string)
}

// QuizRepository loads quiz content (from cache/backing store).
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// ServiceOptions configures the games a QuizService hands out.
type ServiceOptions struct {
	QuizID    string
	Timing    Timing
	Scheduler Scheduler
	Logger    *slog.Logger
}

// QuizService contains the quiz use cases, one independent game per player.
// A player may hold several connections at once; the game lives until the
// last of them leaves.
type QuizService struct {
	games   GameRepository
	quizzes QuizRepository
	quizID  string
	timing  Timing
	sched   Scheduler
	logger  *slog.Logger

	mu    sync.Mutex
	conns map[string]int
}

func NewQuizService(games GameRepository, quizzes QuizRepository, opts ServiceOptions) *QuizService {
	if opts.QuizID == "" {
		opts.QuizID = domain.FootballQuizID
	}
	if opts.Scheduler == nil {
		opts.Scheduler = WallClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &QuizService{
		games:   games,
		quizzes: quizzes,
		quizID:  opts.QuizID,
		timing:  opts.Timing,
		sched:   opts.Scheduler,
		logger:  opts.Logger,
		conns:   make(map[string]int),
	}
}

// Enter registers a player on the welcome screen, or returns their current
// view. Every successful Enter must be paired with a Leave.
func (s *QuizService) Enter(ctx context.Context, playerID string) (domain.GameView, error) {
	// Load before creating the game; players cannot enter an unknown or broken quiz.
	quiz, err := s.quizzes.GetQuiz(ctx, s.quizID)
	if err != nil {
		return domain.GameView{}, err
	}
	if err := domain.ValidateQuiz(quiz); err != nil {
		return domain.GameView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	game := s.games.GetOrCreate(playerID, func() *Game {
		s.logger.Debug("game created", "player", playerID, "quiz", quiz.ID)
		return NewGame(playerID, quiz, GameOptions{
			Timing:    s.timing,
			Scheduler: s.sched,
			OnFinish:  s.logFinish,
		})
	})
	s.conns[playerID]++
	return game.View(), nil
}

// Start begins (or restarts) the player's quiz.
func (s *QuizService) Start(_ context.Context, playerID string) (domain.GameView, error) {
	game, ok := s.games.Get(playerID)
	if !ok {
		return domain.GameView{}, domain.ErrGameNotFound
	}
	game.Start()
	return game.View(), nil
}

// Restart discards the player's session and plays again.
func (s *QuizService) Restart(_ context.Context, playerID string) (domain.GameView, error) {
	game, ok := s.games.Get(playerID)
	if !ok {
		return domain.GameView{}, domain.ErrGameNotFound
	}
	game.Restart()
	return game.View(), nil
}

// Home discards the player's session and returns to the welcome screen.
func (s *QuizService) Home(_ context.Context, playerID string) (domain.GameView, error) {
	game, ok := s.games.Get(playerID)
	if !ok {
		return domain.GameView{}, domain.ErrGameNotFound
	}
	game.GoHome()
	return game.View(), nil
}

// Answer records the player's choice for the current question.
func (s *QuizService) Answer(_ context.Context, playerID string, option int) (domain.AnswerOutcome, error) {
	game, ok := s.games.Get(playerID)
	if !ok {
		return domain.AnswerOutcome{}, domain.ErrGameNotFound
	}
	return game.SelectAnswer(option)
}

// View returns the player's current screen.
func (s *QuizService) View(_ context.Context, playerID string) (domain.GameView, error) {
	game, ok := s.games.Get(playerID)
	if !ok {
		return domain.GameView{}, domain.ErrGameNotFound
	}
	return game.View(), nil
}

// Subscribe returns a channel that receives view updates for a player.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *QuizService) Subscribe(_ context.Context, playerID string) (<-chan domain.GameView, func(), error) {
	game, ok := s.games.Get(playerID)
	if !ok {
		return nil, nil, domain.ErrGameNotFound
	}
	ch, cancel := game.Subscribe()
	return ch, cancel, nil
}

// Leave releases one of the player's connections. The game is closed and
// forgotten when the last one leaves.
func (s *QuizService) Leave(_ context.Context, playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := s.conns[playerID]; n > 1 {
		s.conns[playerID] = n - 1
		return
	}
	delete(s.conns, playerID)
	game, ok := s.games.Get(playerID)
	if !ok {
		return
	}
	game.Close()
	s.games.Delete(playerID)
}

func (s *QuizService) logFinish(playerID string, summary domain.Summary) {
	s.logger.Info("quiz finished",
		"player", playerID,
		"score", summary.Score,
		"total", summary.Total,
		"level", summary.Level,
	)
}
