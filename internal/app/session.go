package app

import (
	"sync"

	"football-quiz/internal/domain"
)

// SessionOptions wires a session to its clock and listeners.
type SessionOptions struct {
	Timing    Timing
	Scheduler Scheduler
	// OnChange runs under the session lock after every state change.
	// It must not call back into the session.
	OnChange func(domain.SessionState)
	// OnFinish runs once, outside the lock, after the last question is passed.
	OnFinish func(domain.Result)
}

// QuizSession walks a player through a fixed question list: one question at
// a time, a countdown per question, one answer per question.
//
// Two callbacks may be pending at any time: the countdown tick while the
// current question is unanswered, and the reveal delay once it is answered.
// Both are stamped with the round that armed them and are dropped if the
// session has moved on by the time they fire.
type QuizSession struct {
	mu        sync.Mutex
	questions []domain.Question
	timing    Timing
	scheduler Scheduler
	onChange  func(domain.SessionState)
	onFinish  func(domain.Result)

	started bool
	closed  bool
	round   int

	phase         domain.Phase
	currentIndex  int
	score         int
	selected      int
	hasSelection  bool
	answered      bool
	timedOut      bool
	timeRemaining int

	countdown    Timer
	countdownSeq int
	reveal       Timer
}

// NewQuizSession builds a session over questions. Nothing runs until Start.
func NewQuizSession(questions []domain.Question, opts SessionOptions) *QuizSession {
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = WallClock()
	}
	s := &QuizSession{
		questions: questions,
		timing:    opts.Timing.withDefaults(),
		scheduler: scheduler,
		onChange:  opts.OnChange,
		onFinish:  opts.OnFinish,
	}
	s.resetLocked()
	return s
}

// Start puts the session on question 0 and begins its countdown. Calling it
// again starts over.
func (s *QuizSession) Start() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.stopTimersLocked()
	s.started = true
	s.round++
	s.resetLocked()

	var result *domain.Result
	if len(s.questions) == 0 {
		s.phase = domain.PhaseFinished
		result = &domain.Result{}
	} else {
		s.armCountdownLocked()
	}
	s.changedLocked()
	s.mu.Unlock()
	s.finish(result)
}

// SelectAnswer records option for the current question and locks it. Locked
// questions and finished sessions ignore the call. An option outside the
// question's range locks the question as a wrong answer.
func (s *QuizSession) SelectAnswer(option int) domain.AnswerOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.activeLocked() || s.answered {
		return domain.AnswerOutcome{Score: s.score}
	}

	question := s.questions[s.currentIndex]
	correct := option >= 0 && option < len(question.Options) && option == question.CorrectAnswer

	s.stopCountdownLocked()
	s.answered = true
	s.selected = option
	s.hasSelection = true
	if correct {
		s.score++
	}

	round := s.round
	s.reveal = s.scheduler.AfterFunc(s.timing.RevealDelay, func() {
		s.advanceRound(round)
	})
	s.changedLocked()

	return domain.AnswerOutcome{Accepted: true, Correct: correct, Score: s.score}
}

// Tick consumes one second of the current question's clock. When the clock
// runs out the question is locked as timed out and the session advances at
// once. Tick re-arms the countdown, so at most one tick is ever pending.
func (s *QuizSession) Tick() {
	s.mu.Lock()
	result := s.tickLocked()
	s.mu.Unlock()
	s.finish(result)
}

// Advance moves to the next question, or finishes the session from the last one.
func (s *QuizSession) Advance() {
	s.mu.Lock()
	result := s.advanceLocked()
	s.mu.Unlock()
	s.finish(result)
}

// Close cancels pending callbacks. The session ignores every call afterwards.
func (s *QuizSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.round++
	s.stopTimersLocked()
}

// State returns a snapshot for presentation layers.
func (s *QuizSession) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Result reports the final tally once the session has finished.
func (s *QuizSession) Result() (domain.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseFinished {
		return domain.Result{}, false
	}
	return domain.Result{Score: s.score, TotalQuestions: len(s.questions)}, true
}

func (s *QuizSession) onCountdown(round, seq int) {
	s.mu.Lock()
	if round != s.round || seq != s.countdownSeq {
		s.mu.Unlock()
		return
	}
	s.countdown = nil
	result := s.tickLocked()
	s.mu.Unlock()
	s.finish(result)
}

func (s *QuizSession) advanceRound(round int) {
	s.mu.Lock()
	if round != s.round {
		s.mu.Unlock()
		return
	}
	s.reveal = nil
	result := s.advanceLocked()
	s.mu.Unlock()
	s.finish(result)
}

func (s *QuizSession) tickLocked() *domain.Result {
	if !s.activeLocked() || s.answered {
		return nil
	}
	s.stopCountdownLocked()
	if s.timeRemaining > 0 {
		s.timeRemaining--
	}
	if s.timeRemaining > 0 {
		s.armCountdownLocked()
		s.changedLocked()
		return nil
	}

	// Out of time: lock with no selection and move on without the reveal delay.
	s.answered = true
	s.timedOut = true
	s.changedLocked()
	return s.advanceLocked()
}

func (s *QuizSession) advanceLocked() *domain.Result {
	if !s.activeLocked() {
		return nil
	}
	s.stopTimersLocked()
	s.round++

	if s.currentIndex < len(s.questions)-1 {
		s.currentIndex++
		s.resetQuestionLocked()
		s.armCountdownLocked()
		s.changedLocked()
		return nil
	}

	s.phase = domain.PhaseFinished
	s.changedLocked()
	return &domain.Result{Score: s.score, TotalQuestions: len(s.questions)}
}

func (s *QuizSession) finish(result *domain.Result) {
	if result != nil && s.onFinish != nil {
		s.onFinish(*result)
	}
}

func (s *QuizSession) activeLocked() bool {
	return s.started && !s.closed && s.phase == domain.PhaseInProgress
}

func (s *QuizSession) resetLocked() {
	s.phase = domain.PhaseInProgress
	s.currentIndex = 0
	s.score = 0
	s.resetQuestionLocked()
}

func (s *QuizSession) resetQuestionLocked() {
	s.timeRemaining = s.timing.QuestionSeconds
	s.answered = false
	s.timedOut = false
	s.selected = 0
	s.hasSelection = false
}

func (s *QuizSession) armCountdownLocked() {
	s.countdownSeq++
	round, seq := s.round, s.countdownSeq
	s.countdown = s.scheduler.AfterFunc(s.timing.TickInterval, func() {
		s.onCountdown(round, seq)
	})
}

func (s *QuizSession) stopCountdownLocked() {
	if s.countdown != nil {
		s.countdown.Stop()
		s.countdown = nil
	}
}

func (s *QuizSession) stopTimersLocked() {
	s.stopCountdownLocked()
	if s.reveal != nil {
		s.reveal.Stop()
		s.reveal = nil
	}
}

func (s *QuizSession) changedLocked() {
	if s.onChange != nil {
		s.onChange(s.stateLocked())
	}
}

func (s *QuizSession) stateLocked() domain.SessionState {
	total := len(s.questions)
	state := domain.SessionState{
		Phase:          s.phase,
		CurrentIndex:   s.currentIndex,
		TotalQuestions: total,
		Score:          s.score,
		TimeRemaining:  s.timeRemaining,
		Answered:       s.answered,
		TimedOut:       s.timedOut,
		Speed:          SpeedFor(s.timeRemaining),
	}
	if total == 0 {
		return state
	}

	locked := s.answered || s.phase == domain.PhaseFinished
	question := s.questions[s.currentIndex]
	state.Question = domain.QuestionView{
		ID:         question.ID,
		Prompt:     question.Prompt,
		Options:    append([]string(nil), question.Options...),
		Difficulty: question.Difficulty,
	}
	if locked {
		correct := question.CorrectAnswer
		state.Question.CorrectAnswer = &correct
	}
	if s.hasSelection {
		selected := s.selected
		state.SelectedAnswer = &selected
	}

	// Locked questions count as completed; see SessionState.Accuracy.
	completed := s.currentIndex
	if locked {
		completed++
	}
	state.Accuracy = Accuracy(s.score, completed)
	state.Progress = Percentage(s.currentIndex+1, total)
	return state
}

// observe runs f with the current state while holding the session lock, so
// nothing published through OnChange can slip in between.
func (s *QuizSession) observe(f func(domain.SessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.stateLocked())
}
