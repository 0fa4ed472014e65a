package sqlite

import (
	"context"
	"testing"
	"time"

	"aikiddo-api/internal/domain/levelingtests"
	"aikiddo-api/internal/domain/students"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelingTestsRepo_CreateGetList(t *testing.T) {
	db := setupTestDB(t)
	st := seedStudent(t, students.NewService(NewStudentsRepo(db)))
	svc := levelingtests.NewService(NewLevelingTestsRepo(db))
	ctx := context.Background()

	older, err := svc.Create(ctx, levelingtests.CreateInput{
		StudentID: st.ID,
		Date:      time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		Questions: []levelingtests.QuestionInput{
			{QuestionText: "red?", ExpectedAnswer: "rojo", GivenAnswer: "rojo", Score: 3},
			{QuestionText: "blue?", ExpectedAnswer: "azul", GivenAnswer: "verde", Score: 0},
		},
	})
	require.NoError(t, err)

	newer, err := svc.Create(ctx, levelingtests.CreateInput{
		StudentID: st.ID,
		Date:      time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, st.ID, got.StudentID)
	assert.Len(t, got.Questions, 2)
	assert.Equal(t, 3, got.TotalScore())

	list, err := svc.ListByStudent(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
	assert.Empty(t, list[0].Questions)
}

func TestLevelingTestsRepo_MissingStudentAndTest(t *testing.T) {
	db := setupTestDB(t)
	svc := levelingtests.NewService(NewLevelingTestsRepo(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, levelingtests.CreateInput{
		StudentID: uuid.NewString(),
		Date:      time.Now(),
		Questions: []levelingtests.QuestionInput{{QuestionText: "q"}},
	})
	assert.ErrorIs(t, err, levelingtests.ErrStudentMissing)
	assert.Zero(t, countRows(t, db, "test_questions", "1 = 1"))

	_, err = svc.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, levelingtests.ErrNotFound)
}
