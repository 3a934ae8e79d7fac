package memory

import (
	"context"
	"sync"

	"football-quiz/internal/app"
)

// GameStore is an in-memory implementation of app.GameRepository.
type GameStore struct {
	mu    sync.RWMutex
	games map[string]*app.Game
}

func NewGameStore() *GameStore {
	return &GameStore{games: make(map[string]*app.Game)}
}

func (s *GameStore) GetOrCreate(playerID string, create func() *app.Game) *app.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	if game, ok := s.games[playerID]; ok {
		return game
	}
	game := create()
	s.games[playerID] = game
	return game
}

func (s *GameStore) Get(playerID string) (*app.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[playerID]
	return game, ok
}

func (s *GameStore) Delete(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, playerID)
}

// LivePlayers reports how many games are live.
func (s *GameStore) LivePlayers(context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games), nil
}
