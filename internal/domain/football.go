package domain

// FootballQuizID identifies the built-in question set.
const FootballQuizID = "football"

// FootballQuiz returns the fixed, ordered football question set.
func FootballQuiz() Quiz {
	return Quiz{
		ID:    FootballQuizID,
		Title: "Football Quiz Mania",
		Questions: []Question{
			{
				ID:            1,
				Prompt:        "Qui a remporté le Ballon d'Or 2023 ?",
				Options:       []string{"Lionel Messi", "Erling Haaland", "Kylian Mbappé", "Karim Benzema"},
				CorrectAnswer: 0,
				Difficulty:    DifficultyEasy,
			},
			{
				ID:            2,
				Prompt:        "Quelle équipe a gagné la Coupe du Monde 2022 ?",
				Options:       []string{"France", "Argentine", "Brésil", "Espagne"},
				CorrectAnswer: 1,
				Difficulty:    DifficultyEasy,
			},
			{
				ID:            3,
				Prompt:        "Dans quel club Cristiano Ronaldo a-t-il marqué le plus de buts ?",
				Options:       []string{"Manchester United", "Juventus", "Real Madrid", "Al-Nassr"},
				CorrectAnswer: 2,
				Difficulty:    DifficultyMedium,
			},
			{
				ID:            4,
				Prompt:        "Qui détient le record du plus grand nombre de buts en Ligue des Champions ?",
				Options:       []string{"Lionel Messi", "Cristiano Ronaldo", "Robert Lewandowski", "Karim Benzema"},
				CorrectAnswer: 1,
				Difficulty:    DifficultyMedium,
			},
			{
				ID:            5,
				Prompt:        "En quelle année le FC Barcelone a-t-il remporté son premier 'sextuplé' ?",
				Options:       []string{"2008", "2009", "2010", "2011"},
				CorrectAnswer: 1,
				Difficulty:    DifficultyHard,
			},
			{
				ID:            6,
				Prompt:        "Quel joueur a marqué le but le plus rapide en Coupe du Monde ?",
				Options:       []string{"Hakan Şükür", "Clint Dempsey", "Tim Cahill", "Robbie Keane"},
				CorrectAnswer: 0,
				Difficulty:    DifficultyHard,
			},
			{
				ID:            7,
				Prompt:        "Combien de fois le Brésil a-t-il remporté la Coupe du Monde ?",
				Options:       []string{"4", "5", "6", "3"},
				CorrectAnswer: 1,
				Difficulty:    DifficultyMedium,
			},
			{
				ID:            8,
				Prompt:        "Qui est le meilleur buteur de l'histoire de l'équipe de France ?",
				Options:       []string{"Thierry Henry", "Olivier Giroud", "Antoine Griezmann", "Michel Platini"},
				CorrectAnswer: 1,
				Difficulty:    DifficultyEasy,
			},
		},
	}
}
