package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// PlayerCounter reports how many players currently hold a game.
type PlayerCounter interface {
	LivePlayers(ctx context.Context) (int, error)
}

type healthResponse struct {
	Status      string `json:"status"`
	LivePlayers int    `json:"livePlayers"`
}

// HealthHandler serves /healthz with the live player count. A failing
// counter reports 503.
func HealthHandler(players PlayerCounter, logger *slog.Logger) http.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok"}
		code := http.StatusOK
		n, err := players.LivePlayers(ctx)
		if err != nil {
			logger.Warn("health check failed", "error", err)
			resp.Status = "degraded"
			code = http.StatusServiceUnavailable
		}
		resp.LivePlayers = n

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
