package tui

import (
	"fmt"
	"strings"

	"football-quiz/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 24

var optionLetters = []string{"A", "B", "C", "D"}

func renderWelcome(noColor bool) string {
	lines := []string{
		stylize("⚽ Football Quiz Mania", noColor, lipgloss.Color("33"), true),
		"",
		"8 questions sur le football, 20 secondes par question.",
		"Choisis ta réponse avec 1-4 ou a-d.",
		"",
		stylize("Entrée pour commencer · q pour quitter", noColor, lipgloss.Color("242"), false),
	}
	return strings.Join(lines, "\n")
}

func renderPlaying(state *domain.SessionState, outcome *domain.AnswerOutcome, noColor bool) string {
	if state == nil || state.TotalQuestions == 0 {
		return renderWelcome(noColor)
	}
	header := fmt.Sprintf("Question %d/%d | Score %d | %s",
		state.CurrentIndex+1, state.TotalQuestions, state.Score,
		renderTimer(state.TimeRemaining, noColor))
	lines := []string{
		stylize(header, noColor, lipgloss.Color("33"), true),
		renderProgress(state.Progress),
		"",
		stylize(string(state.Question.Difficulty), noColor, difficultyColor(state.Question.Difficulty), false),
		state.Question.Prompt,
		"",
	}
	for i, option := range state.Question.Options {
		lines = append(lines, renderOption(i, option, state, noColor))
	}
	lines = append(lines, "", renderFeedback(state, outcome, noColor))
	lines = append(lines, stylize(
		fmt.Sprintf("Précision %d%% | Vitesse %s | r recommencer · h accueil · q quitter", state.Accuracy, speedLabel(state.Speed)),
		noColor, lipgloss.Color("242"), false))
	return strings.Join(lines, "\n")
}

func renderOption(i int, text string, state *domain.SessionState, noColor bool) string {
	letter := fmt.Sprintf("%d", i+1)
	if i < len(optionLetters) {
		letter = optionLetters[i]
	}
	line := fmt.Sprintf("  %s. %s", letter, text)
	correct := state.Question.CorrectAnswer
	if correct == nil {
		return line
	}
	switch {
	case i == *correct:
		return stylize(line+" ✓", noColor, lipgloss.Color("42"), true)
	case state.SelectedAnswer != nil && i == *state.SelectedAnswer:
		return stylize(line+" ✗", noColor, lipgloss.Color("196"), false)
	}
	return stylize(line, noColor, lipgloss.Color("240"), false)
}

func renderFeedback(state *domain.SessionState, outcome *domain.AnswerOutcome, noColor bool) string {
	switch {
	case state.TimedOut:
		return stylize("Temps écoulé !", noColor, lipgloss.Color("214"), true)
	case outcome != nil && outcome.Correct:
		return stylize("Bonne réponse !", noColor, lipgloss.Color("42"), true)
	case state.Answered:
		return stylize("Mauvaise réponse.", noColor, lipgloss.Color("196"), true)
	}
	return ""
}

func renderResults(summary *domain.Summary, noColor bool) string {
	if summary == nil {
		return renderWelcome(noColor)
	}
	title := "Résultats"
	if summary.Celebrate {
		title = "🏆 " + title
	}
	lines := []string{
		stylize(title, noColor, lipgloss.Color("33"), true),
		"",
		fmt.Sprintf("Score : %d/%d (%d%%)", summary.Score, summary.Total, summary.Percentage),
		fmt.Sprintf("Bonnes réponses : %d | Mauvaises réponses : %d", summary.Score, summary.Incorrect),
		renderProgress(summary.Percentage),
		"",
		stylize(summary.LevelLabel, noColor, levelColor(summary.Level), true),
		summary.Message,
		"",
	}
	for _, tip := range summary.Tips {
		lines = append(lines, "  • "+tip)
	}
	lines = append(lines,
		"",
		stylize(summary.ShareText, noColor, lipgloss.Color("244"), false),
		"",
		stylize("r rejouer · h accueil · q quitter", noColor, lipgloss.Color("242"), false),
	)
	return strings.Join(lines, "\n")
}

func renderError(err error, noColor bool) string {
	if err == nil {
		return ""
	}
	return stylize("Erreur : "+err.Error(), noColor, lipgloss.Color("196"), false)
}

func renderTimer(seconds int, noColor bool) string {
	text := fmt.Sprintf("%2ds", seconds)
	switch {
	case seconds <= 5:
		return stylize(text, noColor, lipgloss.Color("196"), true)
	case seconds <= 10:
		return stylize(text, noColor, lipgloss.Color("214"), false)
	}
	return text
}

// renderProgress draws a fixed-width bar for a 0-100 percentage.
func renderProgress(percent int) string {
	percent = max(0, min(percent, 100))
	filled := percent * progressWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", progressWidth-filled) + "]"
}

func speedLabel(speed domain.Speed) string {
	switch speed {
	case domain.SpeedFast:
		return "rapide"
	case domain.SpeedMedium:
		return "moyenne"
	}
	return "lente"
}

func difficultyColor(d domain.Difficulty) lipgloss.Color {
	switch d {
	case domain.DifficultyEasy:
		return lipgloss.Color("42")
	case domain.DifficultyMedium:
		return lipgloss.Color("214")
	}
	return lipgloss.Color("196")
}

func levelColor(level domain.Level) lipgloss.Color {
	switch level {
	case domain.LevelLegendary, domain.LevelExpert:
		return lipgloss.Color("42")
	case domain.LevelGood:
		return lipgloss.Color("33")
	case domain.LevelAverage:
		return lipgloss.Color("214")
	}
	return lipgloss.Color("196")
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color, bold bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold).Render(text)
}
