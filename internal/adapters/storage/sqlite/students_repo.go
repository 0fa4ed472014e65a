package sqlite

import (
	"context"
	"errors"
	"strings"

	"aikiddo-api/internal/domain/students"

	"gorm.io/gorm"
)

type StudentsRepo struct {
	db *gorm.DB
}

func NewStudentsRepo(db *gorm.DB) *StudentsRepo {
	return &StudentsRepo{db: db}
}

func (r *StudentsRepo) CreateStudent(ctx context.Context, s students.Student) error {
	row := studentRow{
		ID:        s.ID,
		Name:      s.Name,
		Gender:    s.Gender,
		Birthdate: s.Birthdate,
		HairColor: s.HairColor,
		HairType:  s.HairType,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *StudentsRepo) GetStudent(ctx context.Context, id string) (students.Student, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return students.Student{}, students.ErrNotFound
	}

	var row studentRow
	err := r.db.WithContext(ctx).
		Preload("Interests").
		Preload("Pets").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Preload("Lessons.Questions").
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return students.Student{}, students.ErrNotFound
		}
		return students.Student{}, err
	}

	return toStudent(row), nil
}

// DeleteStudent borra la fila; las hijas caen por ON DELETE CASCADE.
func (r *StudentsRepo) DeleteStudent(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&studentRow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *StudentsRepo) AddInterests(ctx context.Context, studentID string, items []students.Interest) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]interestRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, interestRow{ID: it.ID, StudentID: studentID, Interest: it.Interest})
	}
	return classifyFK(r.insertAll(ctx, &rows), students.ErrStudentMissing)
}

func (r *StudentsRepo) AddPets(ctx context.Context, studentID string, items []students.Pet) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]petRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, petRow{
			ID:        p.ID,
			StudentID: studentID,
			PetType:   p.Type,
			PetBreed:  p.Breed,
			PetName:   p.Name,
		})
	}
	return classifyFK(r.insertAll(ctx, &rows), students.ErrStudentMissing)
}

func (r *StudentsRepo) AddLessons(ctx context.Context, studentID string, items []students.Lesson) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]lessonRow, 0, len(items))
	for _, l := range items {
		rows = append(rows, lessonRow{
			ID:        l.ID,
			StudentID: studentID,
			Content:   l.Content,
			Date:      l.Date,
		})
	}
	return classifyFK(r.insertAll(ctx, &rows), students.ErrStudentMissing)
}

func (r *StudentsRepo) AddLessonQuestions(ctx context.Context, lessonID string, items []students.LessonQuestion) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]lessonQuestionRow, 0, len(items))
	for _, q := range items {
		rows = append(rows, lessonQuestionRow{
			ID:             q.ID,
			LessonID:       lessonID,
			QuestionText:   q.QuestionText,
			ExpectedAnswer: q.ExpectedAnswer,
			GivenAnswer:    q.GivenAnswer,
			Score:          q.Score,
		})
	}
	return classifyFK(r.insertAll(ctx, &rows), students.ErrLessonMissing)
}

// insertAll inserta el lote en una transacción: o entran todos o ninguno.
func (r *StudentsRepo) insertAll(ctx context.Context, rows any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(rows).Error
	})
}

func toStudent(row studentRow) students.Student {
	s := students.Student{
		ID:        row.ID,
		Name:      row.Name,
		Gender:    row.Gender,
		Birthdate: row.Birthdate.UTC(),
		HairColor: row.HairColor,
		HairType:  row.HairType,
		Interests: make([]students.Interest, 0, len(row.Interests)),
		Pets:      make([]students.Pet, 0, len(row.Pets)),
		Lessons:   make([]students.Lesson, 0, len(row.Lessons)),
	}

	for _, it := range row.Interests {
		s.Interests = append(s.Interests, students.Interest{
			ID:        it.ID,
			StudentID: it.StudentID,
			Interest:  it.Interest,
		})
	}
	for _, p := range row.Pets {
		s.Pets = append(s.Pets, students.Pet{
			ID:        p.ID,
			StudentID: p.StudentID,
			Type:      p.PetType,
			Breed:     p.PetBreed,
			Name:      p.PetName,
		})
	}
	for _, l := range row.Lessons {
		lesson := students.Lesson{
			ID:        l.ID,
			StudentID: l.StudentID,
			Content:   l.Content,
			Date:      l.Date.UTC(),
			Questions: make([]students.LessonQuestion, 0, len(l.Questions)),
		}
		for _, q := range l.Questions {
			lesson.Questions = append(lesson.Questions, students.LessonQuestion{
				ID:             q.ID,
				LessonID:       q.LessonID,
				QuestionText:   q.QuestionText,
				ExpectedAnswer: q.ExpectedAnswer,
				GivenAnswer:    q.GivenAnswer,
				Score:          q.Score,
			})
		}
		s.Lessons = append(s.Lessons, lesson)
	}

	return s
}
