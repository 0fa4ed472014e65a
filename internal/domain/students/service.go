package students

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("student not found")

	// Violaciones de FK: el padre no existe al momento del insert.
	ErrStudentMissing = errors.New("student does not exist")
	ErrLessonMissing  = errors.New("lesson does not exist")
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

type StudentInput struct {
	Name      string
	Gender    string
	Birthdate time.Time
	HairColor string
	HairType  string
}

type InterestInput struct {
	Interest string
}

type PetInput struct {
	Type  string
	Breed *string
	Name  string
}

type LessonInput struct {
	Content string
	Date    time.Time
}

type LessonQuestionInput struct {
	QuestionText   string
	ExpectedAnswer string
	GivenAnswer    string
	Score          int
}

// Create guarda los valores tal cual llegan; solo la fecha se reduce a día.
func (s *Service) Create(ctx context.Context, in StudentInput) (Student, error) {
	st := Student{
		ID:        s.newID(),
		Name:      in.Name,
		Gender:    in.Gender,
		Birthdate: dateOnly(in.Birthdate),
		HairColor: in.HairColor,
		HairType:  in.HairType,
	}

	if err := s.repo.CreateStudent(ctx, st); err != nil {
		return Student{}, err
	}
	st.ensureCollections()
	return st, nil
}

func (s *Service) Get(ctx context.Context, id string) (Student, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Student{}, ErrNotFound
	}

	st, err := s.repo.GetStudent(ctx, id)
	if err != nil {
		return Student{}, err
	}
	st.ensureCollections()
	return st, nil
}

// Delete borra el estudiante con todas sus dependencias.
// Devuelve false si no existía.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, nil
	}
	return s.repo.DeleteStudent(ctx, id)
}

func (s *Service) AddInterests(ctx context.Context, studentID string, in []InterestInput) error {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return ErrInvalidInput
	}
	if len(in) == 0 {
		return nil
	}

	items := make([]Interest, 0, len(in))
	for _, it := range in {
		items = append(items, Interest{
			ID:        s.newID(),
			StudentID: studentID,
			Interest:  it.Interest,
		})
	}
	return s.repo.AddInterests(ctx, studentID, items)
}

func (s *Service) AddPets(ctx context.Context, studentID string, in []PetInput) error {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return ErrInvalidInput
	}
	if len(in) == 0 {
		return nil
	}

	items := make([]Pet, 0, len(in))
	for _, p := range in {
		items = append(items, Pet{
			ID:        s.newID(),
			StudentID: studentID,
			Type:      p.Type,
			Breed:     p.Breed,
			Name:      p.Name,
		})
	}
	return s.repo.AddPets(ctx, studentID, items)
}

func (s *Service) AddLessons(ctx context.Context, studentID string, in []LessonInput) error {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return ErrInvalidInput
	}
	if len(in) == 0 {
		return nil
	}

	items := make([]Lesson, 0, len(in))
	for _, l := range in {
		items = append(items, Lesson{
			ID:        s.newID(),
			StudentID: studentID,
			Content:   l.Content,
			Date:      l.Date.UTC(),
		})
	}
	return s.repo.AddLessons(ctx, studentID, items)
}

// AddLessonQuestions no tiene endpoint propio; las preguntas las carga
// quien corrige la lección.
func (s *Service) AddLessonQuestions(ctx context.Context, lessonID string, in []LessonQuestionInput) error {
	lessonID = strings.TrimSpace(lessonID)
	if lessonID == "" {
		return ErrInvalidInput
	}
	if len(in) == 0 {
		return nil
	}

	items := make([]LessonQuestion, 0, len(in))
	for _, q := range in {
		items = append(items, LessonQuestion{
			ID:             s.newID(),
			LessonID:       lessonID,
			QuestionText:   q.QuestionText,
			ExpectedAnswer: q.ExpectedAnswer,
			GivenAnswer:    q.GivenAnswer,
			Score:          q.Score,
		})
	}
	return s.repo.AddLessonQuestions(ctx, lessonID, items)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
