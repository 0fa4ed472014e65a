package levelingtests

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("leveling test not found")
	ErrStudentMissing = errors.New("student does not exist")
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

type CreateInput struct {
	StudentID string
	Date      time.Time
	Questions []QuestionInput
}

type QuestionInput struct {
	QuestionText   string
	ExpectedAnswer string
	GivenAnswer    string
	Score          int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (LevelingTest, error) {
	studentID := strings.TrimSpace(in.StudentID)
	if studentID == "" {
		return LevelingTest{}, ErrInvalidInput
	}

	t := LevelingTest{
		ID:        s.newID(),
		StudentID: studentID,
		Date:      in.Date.UTC(),
		Questions: make([]TestQuestion, 0, len(in.Questions)),
	}
	for _, q := range in.Questions {
		t.Questions = append(t.Questions, TestQuestion{
			ID:             s.newID(),
			TestID:         t.ID,
			QuestionText:   q.QuestionText,
			ExpectedAnswer: q.ExpectedAnswer,
			GivenAnswer:    q.GivenAnswer,
			Score:          q.Score,
		})
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return LevelingTest{}, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id string) (LevelingTest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return LevelingTest{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListByStudent devuelve las pruebas del estudiante, la más reciente primero.
func (s *Service) ListByStudent(ctx context.Context, studentID string) ([]LevelingTest, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, ErrInvalidInput
	}

	items, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items, nil
}
