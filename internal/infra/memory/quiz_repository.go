package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"football-quiz/internal/domain"
	"golang.org/x/sync/singleflight"
)

// QuizLoader fetches quiz content from a backing store (static list, Postgres).
type QuizLoader interface {
	LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// QuizRepository keeps loaded quizzes in process for ttl so every new game
// does not go back to the loader.
type QuizRepository struct {
	loader QuizLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex

	mu    sync.RWMutex
	cache map[string]cachedQuiz
}

type cachedQuiz struct {
	quiz      domain.Quiz
	expiresAt time.Time
}

func NewQuizRepository(loader QuizLoader, ttl time.Duration) *QuizRepository {
	return &QuizRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedQuiz),
	}
}

func (r *QuizRepository) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	if quiz, ok := r.cached(quizID); ok {
		return quiz, nil
	}

	result, err, _ := r.sf.Do(quizID, func() (interface{}, error) {
		// Another caller may have filled the entry while we waited.
		if quiz, ok := r.cached(quizID); ok {
			return quiz, nil
		}
		quiz, err := r.loader.LoadQuiz(ctx, quizID)
		if err != nil {
			return domain.Quiz{}, err
		}
		r.mu.Lock()
		r.cache[quizID] = cachedQuiz{quiz: quiz, expiresAt: r.clock().Add(r.ttlWithJitter())}
		r.mu.Unlock()
		return quiz, nil
	})
	if err != nil {
		return domain.Quiz{}, err
	}
	return result.(domain.Quiz), nil
}

func (r *QuizRepository) cached(quizID string) (domain.Quiz, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.cache[quizID]
	if !ok || !entry.expiresAt.After(r.clock()) {
		return domain.Quiz{}, false
	}
	return entry.quiz, true
}

func (r *QuizRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// up to 10% extra so entries loaded together do not expire together
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(int64(r.ttl)/10+1))
}

// StaticQuizLoader serves quizzes compiled into the binary.
type StaticQuizLoader struct {
	quizzes map[string]domain.Quiz
}

// NewStaticQuizLoader indexes quizzes by ID.
func NewStaticQuizLoader(quizzes ...domain.Quiz) *StaticQuizLoader {
	byID := make(map[string]domain.Quiz, len(quizzes))
	for _, quiz := range quizzes {
		byID[quiz.ID] = quiz
	}
	return &StaticQuizLoader{quizzes: byID}
}

// NewFootballLoader serves only the built-in football quiz.
func NewFootballLoader() *StaticQuizLoader {
	return NewStaticQuizLoader(domain.FootballQuiz())
}

func (l *StaticQuizLoader) LoadQuiz(_ context.Context, quizID string) (domain.Quiz, error) {
	quiz, ok := l.quizzes[quizID]
	if !ok {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	return cloneQuiz(quiz), nil
}

// cloneQuiz copies the question slices so callers cannot edit the source.
func cloneQuiz(quiz domain.Quiz) domain.Quiz {
	questions := make([]domain.Question, len(quiz.Questions))
	for i, q := range quiz.Questions {
		q.Options = append([]string(nil), q.Options...)
		questions[i] = q
	}
	quiz.Questions = questions
	return quiz
}
