package sqlite

import (
	"context"
	"errors"
	"strings"

	"aikiddo-api/internal/domain/levelingtests"

	"gorm.io/gorm"
)

type LevelingTestsRepo struct {
	db *gorm.DB
}

func NewLevelingTestsRepo(db *gorm.DB) *LevelingTestsRepo {
	return &LevelingTestsRepo{db: db}
}

// Create inserta la prueba y sus preguntas en la misma transacción
// (gorm crea la asociación Questions junto con el padre).
func (r *LevelingTestsRepo) Create(ctx context.Context, t levelingtests.LevelingTest) error {
	row := levelingTestRow{
		ID:        t.ID,
		StudentID: t.StudentID,
		Date:      t.Date,
		Questions: make([]testQuestionRow, 0, len(t.Questions)),
	}
	for _, q := range t.Questions {
		row.Questions = append(row.Questions, testQuestionRow{
			ID:             q.ID,
			TestID:         t.ID,
			QuestionText:   q.QuestionText,
			ExpectedAnswer: q.ExpectedAnswer,
			GivenAnswer:    q.GivenAnswer,
			Score:          q.Score,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	return classifyFK(err, levelingtests.ErrStudentMissing)
}

func (r *LevelingTestsRepo) GetByID(ctx context.Context, id string) (levelingtests.LevelingTest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return levelingtests.LevelingTest{}, levelingtests.ErrNotFound
	}

	var row levelingTestRow
	err := r.db.WithContext(ctx).Preload("Questions").Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return levelingtests.LevelingTest{}, levelingtests.ErrNotFound
		}
		return levelingtests.LevelingTest{}, err
	}
	return toLevelingTest(row), nil
}

func (r *LevelingTestsRepo) ListByStudent(ctx context.Context, studentID string) ([]levelingtests.LevelingTest, error) {
	var rows []levelingTestRow
	err := r.db.WithContext(ctx).
		Preload("Questions").
		Where("student_id = ?", studentID).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]levelingtests.LevelingTest, 0, len(rows))
	for _, row := range rows {
		out = append(out, toLevelingTest(row))
	}
	return out, nil
}

func toLevelingTest(row levelingTestRow) levelingtests.LevelingTest {
	t := levelingtests.LevelingTest{
		ID:        row.ID,
		StudentID: row.StudentID,
		Date:      row.Date.UTC(),
		Questions: make([]levelingtests.TestQuestion, 0, len(row.Questions)),
	}
	for _, q := range row.Questions {
		t.Questions = append(t.Questions, levelingtests.TestQuestion{
			ID:             q.ID,
			TestID:         q.TestID,
			QuestionText:   q.QuestionText,
			ExpectedAnswer: q.ExpectedAnswer,
			GivenAnswer:    q.GivenAnswer,
			Score:          q.Score,
		})
	}
	return t
}
