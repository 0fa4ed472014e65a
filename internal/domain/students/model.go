package students

import "time"

// Student es el registro principal; es dueño de intereses, mascotas y lecciones.
type Student struct {
	ID string

	Name      string
	Gender    string
	Birthdate time.Time // solo fecha (medianoche UTC)
	HairColor string
	HairType  string

	Interests []Interest
	Pets      []Pet
	Lessons   []Lesson
}

type Interest struct {
	ID        string
	StudentID string
	Interest  string
}

type Pet struct {
	ID        string
	StudentID string

	Type  string
	Breed *string // opcional
	Name  string
}

type Lesson struct {
	ID        string
	StudentID string

	Content string
	Date    time.Time

	Questions []LessonQuestion
}

type LessonQuestion struct {
	ID       string
	LessonID string

	QuestionText   string
	ExpectedAnswer string
	GivenAnswer    string
	Score          int
}

// ensureCollections deja las colecciones en slices vacíos (nunca nil),
// así la respuesta JSON siempre trae arrays.
func (s *Student) ensureCollections() {
	if s.Interests == nil {
		s.Interests = []Interest{}
	}
	if s.Pets == nil {
		s.Pets = []Pet{}
	}
	if s.Lessons == nil {
		s.Lessons = []Lesson{}
	}
	for i := range s.Lessons {
		if s.Lessons[i].Questions == nil {
			s.Lessons[i].Questions = []LessonQuestion{}
		}
	}
}
