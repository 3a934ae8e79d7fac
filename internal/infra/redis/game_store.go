package redis

import (
	"context"
	"sync"
	"time"

	"football-quiz/internal/app"
	"github.com/redis/go-redis/v9"
)

// GameStore is a Redis-aware implementation of app.GameRepository.
// Games and their timers live in this process; Redis only carries a liveness
// marker per connected player so operators can see who is playing.
type GameStore struct {
	client *redis.Client
	ttl    time.Duration
	mu     sync.RWMutex
	games  map[string]*app.Game
}

func NewGameStore(client *redis.Client, ttl time.Duration) *GameStore {
	return &GameStore{
		client: client,
		ttl:    ttl,
		games:  make(map[string]*app.Game),
	}
}

func (s *GameStore) GetOrCreate(playerID string, create func() *app.Game) *app.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	if game, ok := s.games[playerID]; ok {
		return game
	}
	game := create()
	s.games[playerID] = game
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(playerID), time.Now().UTC().Format(time.RFC3339), s.ttl).Err()
	return game
}

// Get returns the player's game and refreshes its liveness marker.
func (s *GameStore) Get(playerID string) (*app.Game, bool) {
	s.mu.RLock()
	game, ok := s.games[playerID]
	s.mu.RUnlock()
	if ok && s.ttl > 0 {
		_ = s.client.Expire(context.Background(), s.key(playerID), s.ttl).Err()
	}
	return game, ok
}

func (s *GameStore) Delete(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[playerID]; !ok {
		return
	}
	delete(s.games, playerID)
	_ = s.client.Del(context.Background(), s.key(playerID)).Err()
}

// LivePlayers counts liveness markers, including those of other instances.
func (s *GameStore) LivePlayers(ctx context.Context) (int, error) {
	var (
		cursor uint64
		count  int
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, "quiz:player:*", 100).Result()
		if err != nil {
			return 0, err
		}
		count += len(keys)
		if next == 0 {
			return count, nil
		}
		cursor = next
	}
}

func (s *GameStore) key(playerID string) string {
	return "quiz:player:" + playerID
}
