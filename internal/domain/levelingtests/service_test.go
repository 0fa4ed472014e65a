package levelingtests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	students map[string]bool
	byID     map[string]LevelingTest
}

func newTestRepo(studentIDs ...string) *testRepo {
	r := &testRepo{students: map[string]bool{}, byID: map[string]LevelingTest{}}
	for _, id := range studentIDs {
		r.students[id] = true
	}
	return r
}

func (r *testRepo) Create(ctx context.Context, t LevelingTest) error {
	if !r.students[t.StudentID] {
		return fmt.Errorf("%w: %s", ErrStudentMissing, t.StudentID)
	}
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (LevelingTest, error) {
	t, ok := r.byID[id]
	if !ok {
		return LevelingTest{}, ErrNotFound
	}
	return t, nil
}

func (r *testRepo) ListByStudent(ctx context.Context, studentID string) ([]LevelingTest, error) {
	out := make([]LevelingTest, 0)
	for _, t := range r.byID {
		if t.StudentID == studentID {
			out = append(out, t)
		}
	}
	return out, nil
}

func newTestService(studentIDs ...string) (*Service, *testRepo) {
	repo := newTestRepo(studentIDs...)
	svc := NewService(repo)

	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return svc, repo
}

func TestCreate_LinksQuestionsToTest(t *testing.T) {
	svc, repo := newTestService("s-1")

	lt, err := svc.Create(context.Background(), CreateInput{
		StudentID: " s-1 ",
		Date:      time.Date(2024, 2, 1, 9, 0, 0, 0, time.FixedZone("x", 2*3600)),
		Questions: []QuestionInput{
			{QuestionText: "dog?", ExpectedAnswer: "perro", GivenAnswer: "perro", Score: 4},
			{QuestionText: "cat?", ExpectedAnswer: "gato", GivenAnswer: "", Score: 0},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "id-1", lt.ID)
	assert.Equal(t, "s-1", lt.StudentID)
	assert.Equal(t, time.UTC, lt.Date.Location())
	require.Len(t, lt.Questions, 2)
	for _, q := range lt.Questions {
		assert.Equal(t, "id-1", q.TestID)
	}
	assert.Equal(t, "id-2", lt.Questions[0].ID)
	assert.Equal(t, 4, lt.TotalScore())
	assert.Contains(t, repo.byID, "id-1")
}

func TestCreate_RejectsBlankOrUnknownStudent(t *testing.T) {
	svc, _ := newTestService("s-1")
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{StudentID: "", Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, CreateInput{StudentID: "ghost", Date: time.Now()})
	assert.ErrorIs(t, err, ErrStudentMissing)
}

func TestCreate_WithoutQuestions(t *testing.T) {
	svc, _ := newTestService("s-1")

	lt, err := svc.Create(context.Background(), CreateInput{StudentID: "s-1", Date: time.Now()})
	require.NoError(t, err)
	assert.NotNil(t, lt.Questions)
	assert.Zero(t, lt.TotalScore())
}

func TestGet(t *testing.T) {
	svc, _ := newTestService("s-1")
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{StudentID: "s-1", Date: time.Now()})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get(ctx, " ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByStudent_NewestFirst(t *testing.T) {
	svc, _ := newTestService("s-1", "s-2")
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, d := range []int{3, 1, 2} {
		_, err := svc.Create(ctx, CreateInput{StudentID: "s-1", Date: base.AddDate(0, d, 0)})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, CreateInput{StudentID: "s-2", Date: base})
	require.NoError(t, err)

	list, err := svc.ListByStudent(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, base.AddDate(0, 3, 0), list[0].Date)
	assert.Equal(t, base.AddDate(0, 1, 0), list[2].Date)

	_, err = svc.ListByStudent(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_AcceptsYearOneDate(t *testing.T) {
	svc, _ := newTestService("s-1")

	lt, err := svc.Create(context.Background(), CreateInput{StudentID: "s-1", Date: time.Time{}})
	require.NoError(t, err)
	assert.Equal(t, 1, lt.Date.Year())
}
