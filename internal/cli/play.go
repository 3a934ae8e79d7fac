package cli

import (
	"context"
	"io"
	"time"

	"football-quiz/internal/app"
	"football-quiz/internal/config"
	"football-quiz/internal/infra/memory"
	"football-quiz/internal/logging"
	"football-quiz/internal/tui"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewPlayCmd runs a local game in the terminal.
func NewPlayCmd(configPath *string) *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath, noColor)
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

func runPlay(ctx context.Context, configPath string, noColor bool) error {
	cfg, err := config.LoadOptional(configPath)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// The alternate screen owns the terminal; logs would corrupt it.
	logger := logging.New(io.Discard, cfg.Log.Level, cfg.Log.Format)
	quizRepo := memory.NewQuizRepository(memory.NewFootballLoader(), config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute))
	service := app.NewQuizService(memory.NewGameStore(), quizRepo, app.ServiceOptions{
		Timing: cfg.Timing(),
		Logger: logger,
	})
	return tui.Run(ctx, service, uuid.NewString(), tui.Options{NoColor: noColor})
}
