package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"football-quiz/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// QuizLoader loads quiz JSONB from Postgres.
type QuizLoader struct {
	pool *pgxpool.Pool
}

func NewQuizLoader(pool *pgxpool.Pool) *QuizLoader {
	return &QuizLoader{pool: pool}
}

func (l *QuizLoader) LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM quizzes WHERE id=$1`, quizID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("load quiz %s: %w", quizID, err)
	}
	return decodeQuiz(quizID, raw)
}

func decodeQuiz(quizID string, raw []byte) (domain.Quiz, error) {
	var quiz domain.Quiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return domain.Quiz{}, fmt.Errorf("unmarshal quiz %s: %w", quizID, err)
	}
	if quiz.ID == "" {
		quiz.ID = quizID
	}
	if err := domain.ValidateQuiz(quiz); err != nil {
		return domain.Quiz{}, err
	}
	return quiz, nil
}
