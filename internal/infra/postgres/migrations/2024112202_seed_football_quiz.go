package migrations

import (
	"context"
	"encoding/json"

	"football-quiz/internal/domain"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			data, err := json.Marshal(domain.FootballQuiz())
			if err != nil {
				return err
			}
			_, err = db.ExecContext(ctx,
				`INSERT INTO quizzes (id, data) VALUES (?, ?::jsonb)
				 ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
				domain.FootballQuizID, string(data))
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = ?`, domain.FootballQuizID)
			return err
		},
	)
}
