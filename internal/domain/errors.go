package domain

import "errors"

var (
	// ErrGameNotFound is returned when a player acts before entering the quiz.
	ErrGameNotFound = errors.New("game not found")
	// ErrNotPlaying is returned when an answer arrives outside the playing screen.
	ErrNotPlaying = errors.New("no quiz in progress")
	// ErrQuizNotFound indicates the quiz content could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrInvalidQuiz indicates loaded quiz content failed validation.
	ErrInvalidQuiz = errors.New("invalid quiz")
)
