package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateQuiz checks that quiz content is playable: every question has four
// options and a correct index that points at one of them.
func ValidateQuiz(quiz Quiz) error {
	if err := validate.Struct(quiz); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidQuiz, quiz.ID, err)
	}
	return nil
}
