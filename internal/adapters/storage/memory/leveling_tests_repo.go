package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"aikiddo-api/internal/domain/levelingtests"
)

type levelingTestRepo struct {
	s *Store
}

func (r *levelingTestRepo) Create(ctx context.Context, t levelingtests.LevelingTest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("leveling test id required")
	}
	if _, exists := r.s.tests[t.ID]; exists {
		return errors.New("leveling test already exists")
	}
	if _, ok := r.s.students[t.StudentID]; !ok {
		return fkError(levelingtests.ErrStudentMissing, "leveling_tests", "student_id", t.StudentID)
	}

	t.Questions = append([]levelingtests.TestQuestion{}, t.Questions...)
	r.s.tests[t.ID] = t
	return nil
}

func (r *levelingTestRepo) GetByID(ctx context.Context, id string) (levelingtests.LevelingTest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tests[id]
	if !ok {
		return levelingtests.LevelingTest{}, levelingtests.ErrNotFound
	}
	t.Questions = append([]levelingtests.TestQuestion{}, t.Questions...)
	return t, nil
}

func (r *levelingTestRepo) ListByStudent(ctx context.Context, studentID string) ([]levelingtests.LevelingTest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]levelingtests.LevelingTest, 0)
	for _, t := range r.s.tests {
		if t.StudentID != studentID {
			continue
		}
		t.Questions = append([]levelingtests.TestQuestion{}, t.Questions...)
		out = append(out, t)
	}

	// Orden estable por fecha asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}
