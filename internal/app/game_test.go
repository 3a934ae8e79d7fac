package app_test

import (
	"testing"
	"time"

	"football-quiz/internal/app"
	"football-quiz/internal/domain"
	"football-quiz/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGameUnderTest(t *testing.T) (*app.Game, *testutil.FakeScheduler, *[]domain.Summary) {
	t.Helper()
	sched := testutil.NewFakeScheduler()
	var finished []domain.Summary
	game := app.NewGame("p1", domain.FootballQuiz(), app.GameOptions{
		Scheduler: sched,
		OnFinish:  func(_ string, s domain.Summary) { finished = append(finished, s) },
	})
	t.Cleanup(game.Close)
	return game, sched, &finished
}

func TestGameStartsOnWelcome(t *testing.T) {
	game, _, _ := newGameUnderTest(t)

	view := game.View()
	assert.Equal(t, domain.ScreenWelcome, view.Screen)
	assert.Nil(t, view.Session)
	assert.Nil(t, view.Summary)

	_, err := game.SelectAnswer(0)
	assert.ErrorIs(t, err, domain.ErrNotPlaying)
}

func TestGameFinishShowsResults(t *testing.T) {
	game, sched, finished := newGameUnderTest(t)

	game.Start()
	require.Equal(t, domain.ScreenPlaying, game.View().Screen)

	outcome, err := game.SelectAnswer(correctAnswer(t, 0))
	require.NoError(t, err)
	assert.True(t, outcome.Correct)
	sched.Advance(reveal)
	sched.Advance(7 * question)

	view := game.View()
	require.Equal(t, domain.ScreenResults, view.Screen)
	require.NotNil(t, view.Summary)
	assert.Equal(t, 1, view.Summary.Score)
	assert.Equal(t, 8, view.Summary.Total)
	require.Len(t, *finished, 1)
	assert.Equal(t, 0, sched.Pending())

	_, err = game.SelectAnswer(0)
	assert.ErrorIs(t, err, domain.ErrNotPlaying)
}

func TestGameRestartIsolatesOldTimers(t *testing.T) {
	game, sched, finished := newGameUnderTest(t)

	game.Start()
	game.SelectAnswer(correctAnswer(t, 0))
	sched.Advance(reveal)
	sched.Advance(5 * time.Second)

	game.Restart()
	view := game.View()
	require.NotNil(t, view.Session)
	assert.Equal(t, 0, view.Session.Score)
	assert.Equal(t, 0, view.Session.CurrentIndex)
	assert.Equal(t, 20, view.Session.TimeRemaining)
	assert.Equal(t, 1, sched.Pending(), "the old session's countdown must be gone")

	sched.Advance(time.Second)
	assert.Equal(t, 19, game.View().Session.TimeRemaining)

	sched.Advance(8 * question)
	assert.Equal(t, domain.ScreenResults, game.View().Screen)
	require.Len(t, *finished, 1)
	assert.Equal(t, 0, (*finished)[0].Score)
}

func TestGameRestartAfterResults(t *testing.T) {
	game, sched, _ := newGameUnderTest(t)

	game.Start()
	sched.Advance(8 * question)
	require.Equal(t, domain.ScreenResults, game.View().Screen)

	game.Restart()
	view := game.View()
	assert.Equal(t, domain.ScreenPlaying, view.Screen)
	assert.Nil(t, view.Summary)
	require.NotNil(t, view.Session)
	assert.Equal(t, 0, view.Session.CurrentIndex)
}

func TestGameGoHomeCancelsRevealDelay(t *testing.T) {
	game, sched, finished := newGameUnderTest(t)

	game.Start()
	game.SelectAnswer(correctAnswer(t, 0))
	game.GoHome()

	assert.Equal(t, 0, sched.Pending())
	sched.Advance(time.Hour)
	assert.Equal(t, domain.ScreenWelcome, game.View().Screen)
	assert.Empty(t, *finished)
}

func TestGameSubscribeStreamsViews(t *testing.T) {
	game, sched, _ := newGameUnderTest(t)

	views, cancel := game.Subscribe()
	defer cancel()
	initial := <-views
	assert.Equal(t, domain.ScreenWelcome, initial.Screen)

	game.Start()
	started := <-views
	require.Equal(t, domain.ScreenPlaying, started.Screen)
	require.NotNil(t, started.Session)
	assert.Equal(t, 20, started.Session.TimeRemaining)

	sched.Advance(time.Second)
	ticked := <-views
	assert.Equal(t, 19, ticked.Session.TimeRemaining)
}

func TestGameSubscribeKeepsNewestForSlowReaders(t *testing.T) {
	game, sched, _ := newGameUnderTest(t)

	game.Start()
	views, cancel := game.Subscribe()
	defer cancel()

	sched.Advance(8 * question)

	var last domain.GameView
	for {
		select {
		case v := <-views:
			last = v
			continue
		default:
		}
		break
	}
	assert.Equal(t, domain.ScreenResults, last.Screen)
}

func TestGameCloseClosesSubscribers(t *testing.T) {
	game, sched, _ := newGameUnderTest(t)

	views, cancel := game.Subscribe()
	<-views
	game.Start()
	game.Close()
	cancel()

	for range views {
	}
	assert.Equal(t, 0, sched.Pending())
	game.Start()
	assert.Equal(t, 0, sched.Pending(), "closed game must not start new sessions")
}
