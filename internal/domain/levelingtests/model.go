package levelingtests

import "time"

// LevelingTest es una prueba de nivel tomada por un estudiante.
type LevelingTest struct {
	ID        string
	StudentID string
	Date      time.Time

	Questions []TestQuestion
}

type TestQuestion struct {
	ID     string
	TestID string

	QuestionText   string
	ExpectedAnswer string
	GivenAnswer    string
	Score          int
}

// TotalScore suma el puntaje de todas las preguntas.
func (t LevelingTest) TotalScore() int {
	total := 0
	for _, q := range t.Questions {
		total += q.Score
	}
	return total
}
