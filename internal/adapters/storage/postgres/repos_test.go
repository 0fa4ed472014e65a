package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"aikiddo-api/internal/domain/levelingtests"
	"aikiddo-api/internal/domain/students"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB usa TEST_DATABASE_URL; sin ella los tests contra Postgres se saltan.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, EnsureSchema(ctx, db))
	return db
}

func countWhere(t *testing.T, db *sql.DB, query string, arg string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(query, arg).Scan(&n))
	return n
}

func TestStudentsRepo_RoundTripAndCascade(t *testing.T) {
	db := openTestDB(t)
	svc := students.NewService(NewStudentsRepo(db))
	tests := levelingtests.NewService(NewLevelingTestsRepo(db))
	ctx := context.Background()

	st, err := svc.Create(ctx, students.StudentInput{
		Name:      "Ana",
		Gender:    "Female",
		Birthdate: time.Date(2015, 3, 2, 0, 0, 0, 0, time.UTC),
		HairColor: "Black",
		HairType:  "Curly",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = svc.Delete(context.Background(), st.ID) })

	require.NoError(t, svc.AddInterests(ctx, st.ID, []students.InterestInput{{Interest: "Space"}}))
	require.NoError(t, svc.AddPets(ctx, st.ID, []students.PetInput{{Type: "Cat", Name: "Mia"}}))
	require.NoError(t, svc.AddLessons(ctx, st.ID, []students.LessonInput{
		{Content: "ABC", Date: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
	}))

	got, err := svc.Get(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, got.Lessons, 1)
	assert.Equal(t, time.UTC, got.Lessons[0].Date.Location())
	assert.True(t, got.Lessons[0].Date.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
	assert.Len(t, got.Interests, 1)
	require.Len(t, got.Pets, 1)
	assert.Nil(t, got.Pets[0].Breed)
	assert.Equal(t, "2015-03-02", got.Birthdate.Format("2006-01-02"))

	lessonID := got.Lessons[0].ID
	require.NoError(t, svc.AddLessonQuestions(ctx, lessonID, []students.LessonQuestionInput{{QuestionText: "A?", Score: 1}}))

	lt, err := tests.Create(ctx, levelingtests.CreateInput{
		StudentID: st.ID,
		Date:      time.Now(),
		Questions: []levelingtests.QuestionInput{{QuestionText: "cat?", ExpectedAnswer: "gato", GivenAnswer: "gato", Score: 5}},
	})
	require.NoError(t, err)

	list, err := tests.ListByStudent(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5, list[0].TotalScore())
	assert.Equal(t, time.UTC, list[0].Date.Location())

	removed, err := svc.Delete(ctx, st.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	assert.Zero(t, countWhere(t, db, `SELECT count(*) FROM interests WHERE student_id = $1`, st.ID))
	assert.Zero(t, countWhere(t, db, `SELECT count(*) FROM lesson_questions WHERE lesson_id = $1`, lessonID))
	assert.Zero(t, countWhere(t, db, `SELECT count(*) FROM test_questions WHERE test_id = $1`, lt.ID))

	_, err = tests.Get(ctx, lt.ID)
	assert.ErrorIs(t, err, levelingtests.ErrNotFound)
}

func TestStudentsRepo_ForeignKeyAndAtomicity(t *testing.T) {
	db := openTestDB(t)
	repo := NewStudentsRepo(db)
	ctx := context.Background()
	missing := uuid.NewString()

	err := repo.AddPets(ctx, missing, []students.Pet{
		{ID: uuid.NewString(), Type: "Dog", Name: "Rex"},
		{ID: uuid.NewString(), Type: "Cat", Name: "Mia"},
	})
	assert.ErrorIs(t, err, students.ErrStudentMissing)
	assert.Zero(t, countWhere(t, db, `SELECT count(*) FROM pets WHERE student_id = $1`, missing))

	err = repo.AddLessonQuestions(ctx, missing, []students.LessonQuestion{{ID: uuid.NewString()}})
	assert.ErrorIs(t, err, students.ErrLessonMissing)

	_, err = repo.GetStudent(ctx, missing)
	assert.ErrorIs(t, err, students.ErrNotFound)
}
