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

const (
	reveal   = 1500 * time.Millisecond
	question = 20 * time.Second
)

type recorder struct {
	states  []domain.SessionState
	results []domain.Result
}

func newSessionUnderTest(t *testing.T) (*app.QuizSession, *testutil.FakeScheduler, *recorder) {
	t.Helper()
	sched := testutil.NewFakeScheduler()
	rec := &recorder{}
	session := app.NewQuizSession(domain.FootballQuiz().Questions, app.SessionOptions{
		Timing:    app.DefaultTiming(),
		Scheduler: sched,
		OnChange:  func(s domain.SessionState) { rec.states = append(rec.states, s) },
		OnFinish:  func(r domain.Result) { rec.results = append(rec.results, r) },
	})
	session.Start()
	return session, sched, rec
}

func correctAnswer(t *testing.T, index int) int {
	t.Helper()
	return domain.FootballQuiz().Questions[index].CorrectAnswer
}

func TestStartInitialState(t *testing.T) {
	session, sched, _ := newSessionUnderTest(t)

	state := session.State()
	assert.Equal(t, domain.PhaseInProgress, state.Phase)
	assert.Equal(t, 0, state.CurrentIndex)
	assert.Equal(t, 0, state.Score)
	assert.Equal(t, 20, state.TimeRemaining)
	assert.False(t, state.Answered)
	assert.Nil(t, state.SelectedAnswer)
	assert.Nil(t, state.Question.CorrectAnswer, "correct answer must stay hidden until locked")
	assert.Equal(t, 0, state.Accuracy)
	assert.Equal(t, domain.SpeedFast, state.Speed)
	assert.Equal(t, 1, sched.Pending())
}

func TestAllCorrectFinishesWithFullScore(t *testing.T) {
	session, sched, rec := newSessionUnderTest(t)

	for i := 0; i < 8; i++ {
		outcome := session.SelectAnswer(correctAnswer(t, i))
		require.True(t, outcome.Accepted)
		require.True(t, outcome.Correct)
		assert.Equal(t, i+1, outcome.Score)
		sched.Advance(reveal)
	}

	require.Equal(t, []domain.Result{{Score: 8, TotalQuestions: 8}}, rec.results)
	state := session.State()
	assert.Equal(t, domain.PhaseFinished, state.Phase)
	assert.Equal(t, 100, state.Accuracy)
	assert.Equal(t, 0, sched.Pending())
}

func TestAlwaysTimingOutScoresZero(t *testing.T) {
	session, sched, rec := newSessionUnderTest(t)

	sched.Advance(8 * question)

	require.Equal(t, []domain.Result{{Score: 0, TotalQuestions: 8}}, rec.results)
	result, ok := session.Result()
	require.True(t, ok)
	assert.Equal(t, domain.Result{Score: 0, TotalQuestions: 8}, result)
}

func TestFirstCorrectThenTimeouts(t *testing.T) {
	session, sched, rec := newSessionUnderTest(t)

	session.SelectAnswer(correctAnswer(t, 0))
	sched.Advance(reveal)
	sched.Advance(7 * question)

	require.Equal(t, []domain.Result{{Score: 1, TotalQuestions: 8}}, rec.results)
}

func TestTimeoutLocksAndAdvancesImmediately(t *testing.T) {
	session, sched, rec := newSessionUnderTest(t)

	sched.Advance(question - time.Second)
	assert.Equal(t, 1, session.State().TimeRemaining)

	sched.Advance(time.Second)
	state := session.State()
	assert.Equal(t, 1, state.CurrentIndex, "timeout must advance with no reveal delay")
	assert.Equal(t, 20, state.TimeRemaining)
	assert.False(t, state.Answered)

	var locked *domain.SessionState
	for i := range rec.states {
		if rec.states[i].CurrentIndex == 0 && rec.states[i].Answered {
			locked = &rec.states[i]
		}
	}
	require.NotNil(t, locked, "expected a locked snapshot for the timed-out question")
	assert.True(t, locked.TimedOut)
	assert.Nil(t, locked.SelectedAnswer)
	assert.Equal(t, 0, locked.Score)
}

func TestLockingIsIdempotent(t *testing.T) {
	session, _, _ := newSessionUnderTest(t)

	wrong := (correctAnswer(t, 0) + 1) % 4
	first := session.SelectAnswer(wrong)
	require.True(t, first.Accepted)
	assert.False(t, first.Correct)

	second := session.SelectAnswer(correctAnswer(t, 0))
	assert.False(t, second.Accepted)

	state := session.State()
	assert.Equal(t, 0, state.Score)
	require.NotNil(t, state.SelectedAnswer)
	assert.Equal(t, wrong, *state.SelectedAnswer)
	require.NotNil(t, state.Question.CorrectAnswer)
	assert.Equal(t, correctAnswer(t, 0), *state.Question.CorrectAnswer)
}

func TestOutOfRangeOptionLocksWithoutScoring(t *testing.T) {
	for _, option := range []int{-1, 4, 99} {
		session, sched, _ := newSessionUnderTest(t)

		outcome := session.SelectAnswer(option)
		assert.True(t, outcome.Accepted)
		assert.False(t, outcome.Correct)

		state := session.State()
		assert.True(t, state.Answered)
		assert.Equal(t, 0, state.Score)

		sched.Advance(reveal)
		assert.Equal(t, 1, session.State().CurrentIndex)
	}
}

func TestAnsweringStopsCountdown(t *testing.T) {
	session, sched, _ := newSessionUnderTest(t)

	sched.Advance(5 * time.Second)
	session.SelectAnswer(correctAnswer(t, 0))
	assert.Equal(t, 1, sched.Pending(), "only the reveal delay should remain")

	sched.Advance(time.Second)
	state := session.State()
	assert.Equal(t, 15, state.TimeRemaining, "clock must freeze once answered")
	assert.Equal(t, 0, state.CurrentIndex)

	sched.Advance(reveal - time.Second)
	state = session.State()
	assert.Equal(t, 1, state.CurrentIndex)
	assert.Equal(t, 20, state.TimeRemaining)

	sched.Advance(time.Second)
	assert.Equal(t, 19, session.State().TimeRemaining, "exactly one countdown per question")
	assert.Equal(t, 1, sched.Pending())
}

func TestFinishEmittedExactlyOnce(t *testing.T) {
	session, sched, rec := newSessionUnderTest(t)

	sched.Advance(7 * question)
	session.SelectAnswer(correctAnswer(t, 7))
	sched.Advance(reveal)

	require.Len(t, rec.results, 1)
	assert.Equal(t, domain.Result{Score: 1, TotalQuestions: 8}, rec.results[0], "last answer must be counted")

	session.Advance()
	session.Tick()
	assert.Equal(t, domain.AnswerOutcome{Score: 1}, session.SelectAnswer(0))
	sched.Advance(time.Minute)
	assert.Len(t, rec.results, 1)
}

func TestAdvanceBeforeRevealDoesNotDoubleAdvance(t *testing.T) {
	session, sched, _ := newSessionUnderTest(t)

	session.SelectAnswer(correctAnswer(t, 0))
	session.Advance()
	assert.Equal(t, 1, session.State().CurrentIndex)

	sched.Advance(reveal)
	assert.Equal(t, 1, session.State().CurrentIndex, "stale reveal must not fire into the next question")
	assert.Equal(t, 1, session.State().Score)
}

func TestManualTickKeepsSingleCountdown(t *testing.T) {
	session, sched, _ := newSessionUnderTest(t)

	session.Tick()
	session.Tick()
	assert.Equal(t, 18, session.State().TimeRemaining)
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(time.Second)
	assert.Equal(t, 17, session.State().TimeRemaining)
}

func TestCloseCancelsPendingCallbacks(t *testing.T) {
	session, sched, rec := newSessionUnderTest(t)

	session.SelectAnswer(correctAnswer(t, 0))
	session.Close()
	assert.Equal(t, 0, sched.Pending())

	sched.Advance(time.Minute)
	assert.Equal(t, 0, session.State().CurrentIndex)
	assert.Empty(t, rec.results)
	assert.False(t, session.SelectAnswer(0).Accepted)
}

func TestScoreStaysWithinBounds(t *testing.T) {
	session, sched, rec := newSessionUnderTest(t)

	for i := 0; i < 8; i++ {
		session.SelectAnswer(correctAnswer(t, i))
		session.SelectAnswer(correctAnswer(t, i))
		sched.Advance(reveal)
	}
	for _, state := range rec.states {
		assert.GreaterOrEqual(t, state.Score, 0)
		assert.LessOrEqual(t, state.Score, state.TotalQuestions)
	}
	require.Equal(t, []domain.Result{{Score: 8, TotalQuestions: 8}}, rec.results)
}

func TestAccuracyTracksCompletedQuestions(t *testing.T) {
	session, sched, _ := newSessionUnderTest(t)

	session.SelectAnswer(correctAnswer(t, 0))
	assert.Equal(t, 100, session.State().Accuracy)
	sched.Advance(reveal)
	assert.Equal(t, 100, session.State().Accuracy)

	sched.Advance(question)
	state := session.State()
	assert.Equal(t, 2, state.CurrentIndex)
	assert.Equal(t, 50, state.Accuracy)
}

func TestStartOverResetsSession(t *testing.T) {
	session, sched, _ := newSessionUnderTest(t)

	session.SelectAnswer(correctAnswer(t, 0))
	sched.Advance(reveal)
	session.Start()

	state := session.State()
	assert.Equal(t, 0, state.CurrentIndex)
	assert.Equal(t, 0, state.Score)
	assert.Equal(t, 20, state.TimeRemaining)
	assert.Equal(t, 1, sched.Pending())
}

func TestEmptyQuestionListFinishesOnStart(t *testing.T) {
	var results []domain.Result
	session := app.NewQuizSession(nil, app.SessionOptions{
		Scheduler: testutil.NewFakeScheduler(),
		OnFinish:  func(r domain.Result) { results = append(results, r) },
	})
	session.Start()
	assert.Equal(t, []domain.Result{{}}, results)
	assert.Equal(t, domain.PhaseFinished, session.State().Phase)
}
