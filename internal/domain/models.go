package domain

import "time"

// Difficulty tags a question for display.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question models an MCQ question with exactly one correct option.
type Question struct {
	ID            int        `json:"id" validate:"required"`
	Prompt        string     `json:"prompt" validate:"required"`
	Options       []string   `json:"options" validate:"len=4,dive,required"`
	CorrectAnswer int        `json:"correctAnswer" validate:"gte=0,lt=4"`
	Difficulty    Difficulty `json:"difficulty" validate:"oneof=easy medium hard"`
}

// Quiz is an ordered collection of questions; order is presentation order.
type Quiz struct {
	ID        string     `json:"id" validate:"required"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions" validate:"min=1,dive"`
}

// Phase is the top-level lifecycle stage of a quiz session.
type Phase string

const (
	PhaseInProgress Phase = "in-progress"
	PhaseFinished   Phase = "finished"
)

// Screen selects which presentation collaborator is active.
type Screen string

const (
	ScreenWelcome Screen = "welcome"
	ScreenPlaying Screen = "playing"
	ScreenResults Screen = "results"
)

// Speed is a coarse label derived from the time left on the clock.
type Speed string

const (
	SpeedFast   Speed = "fast"
	SpeedMedium Speed = "medium"
	SpeedSlow   Speed = "slow"
)

// Result is emitted once when a session finishes.
type Result struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"totalQuestions"`
}

// QuestionView is what presentation layers may show for the current question.
// CorrectAnswer stays nil until the question is locked.
type QuestionView struct {
	ID            int        `json:"id"`
	Prompt        string     `json:"prompt"`
	Options       []string   `json:"options"`
	Difficulty    Difficulty `json:"difficulty"`
	CorrectAnswer *int       `json:"correctAnswer,omitempty"`
}

// SessionState is a read-only snapshot of a quiz session.
type SessionState struct {
	Phase          Phase        `json:"phase"`
	CurrentIndex   int          `json:"currentIndex"`
	TotalQuestions int          `json:"totalQuestions"`
	Question       QuestionView `json:"question"`
	Score          int          `json:"score"`
	TimeRemaining  int          `json:"timeRemaining"`
	Answered       bool         `json:"answered"`
	SelectedAnswer *int         `json:"selectedAnswer,omitempty"`
	TimedOut       bool         `json:"timedOut"`
	// Accuracy is score over completed questions, where the current question
	// counts once locked. It is not score over currentIndex: a correct first
	// answer reads 100, not 0, and a perfect run ends at 100 instead of 114.
	Accuracy       int          `json:"accuracy"`
	Speed          Speed        `json:"speed"`
	Progress       int          `json:"progress"`
}

// AnswerOutcome summarizes what a selection did to the session.
type AnswerOutcome struct {
	Accepted bool `json:"accepted"`
	Correct  bool `json:"correct"`
	Score    int  `json:"score"`
}

// Level is the qualitative grade shown on the results screen.
type Level string

const (
	LevelLegendary Level = "legendary"
	LevelExpert    Level = "expert"
	LevelGood      Level = "good"
	LevelAverage   Level = "average"
	LevelBeginner  Level = "beginner"
)

// Summary is the results-screen view of a finished session.
type Summary struct {
	Score      int      `json:"score"`
	Total      int      `json:"total"`
	Incorrect  int      `json:"incorrect"`
	Percentage int      `json:"percentage"`
	Level      Level    `json:"level"`
	LevelLabel string   `json:"levelLabel"`
	Message    string   `json:"message"`
	Tips       []string `json:"tips"`
	ShareText  string   `json:"shareText"`
	Celebrate  bool     `json:"celebrate"`
}

// GameView is the host-level snapshot pushed to presentation subscribers.
type GameView struct {
	PlayerID  string        `json:"playerId"`
	Screen    Screen        `json:"screen"`
	Session   *SessionState `json:"session,omitempty"`
	Summary   *Summary      `json:"summary,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
