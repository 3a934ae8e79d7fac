package app

import (
	"fmt"
	"math"

	"football-quiz/internal/domain"
)

// Percentage returns part/whole as a rounded percentage, 0 when whole is 0.
func Percentage(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// Accuracy is the share of completed questions answered correctly.
func Accuracy(score, completed int) int {
	return Percentage(score, completed)
}

// SpeedFor labels how quickly the player is moving through a question.
func SpeedFor(timeRemaining int) domain.Speed {
	switch {
	case timeRemaining > 15:
		return domain.SpeedFast
	case timeRemaining > 10:
		return domain.SpeedMedium
	default:
		return domain.SpeedSlow
	}
}

type grade struct {
	min     int
	level   domain.Level
	label   string
	message string
}

var grades = []grade{
	{90, domain.LevelLegendary, "Légendaire", "Incroyable ! Vous êtes un vrai expert du football !"},
	{75, domain.LevelExpert, "Expert", "Excellent ! Vous maîtrisez bien le football !"},
	{60, domain.LevelGood, "Bon", "Bien joué ! Vous avez de bonnes connaissances !"},
	{40, domain.LevelAverage, "Moyen", "Pas mal ! Continuez à apprendre !"},
	{0, domain.LevelBeginner, "Débutant", "Bon début ! Le football n'a plus de secrets, continuez !"},
}

func gradeFor(percentage int) grade {
	for _, g := range grades {
		if percentage >= g.min {
			return g
		}
	}
	return grades[len(grades)-1]
}

func tipsFor(percentage int) []string {
	switch {
	case percentage >= 90:
		return []string{"Performance exceptionnelle !", "Vous maîtrisez le football", "Partagez votre score !"}
	case percentage >= 75:
		return []string{"Très bon niveau !", "Quelques détails à peaufiner", "Visez la perfection !"}
	default:
		return []string{"Continuez à apprendre", "Regardez plus de matches", "Réessayez pour vous améliorer"}
	}
}

// Summarize turns a finished session's result into results-screen feedback.
func Summarize(result domain.Result) domain.Summary {
	percentage := Percentage(result.Score, result.TotalQuestions)
	g := gradeFor(percentage)
	return domain.Summary{
		Score:      result.Score,
		Total:      result.TotalQuestions,
		Incorrect:  result.TotalQuestions - result.Score,
		Percentage: percentage,
		Level:      g.level,
		LevelLabel: g.label,
		Message:    g.message,
		Tips:       tipsFor(percentage),
		ShareText:  fmt.Sprintf("J'ai obtenu %d/%d (%d%%) au Football Quiz Mania !", result.Score, result.TotalQuestions, percentage),
		Celebrate:  percentage >= 75,
	}
}
