package memory

import (
	"context"
	"errors"
	"strings"

	"aikiddo-api/internal/domain/students"
)

type studentRepo struct {
	s *Store
}

func NewStudentRepo() students.Repository {
	return NewStore().Students()
}

func (r *studentRepo) CreateStudent(ctx context.Context, st students.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(st.ID) == "" {
		return errors.New("student id required")
	}
	if _, exists := r.s.students[st.ID]; exists {
		return errors.New("student already exists")
	}

	st.Interests, st.Pets, st.Lessons = nil, nil, nil
	r.s.students[st.ID] = st
	return nil
}

func (r *studentRepo) GetStudent(ctx context.Context, id string) (students.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st, ok := r.s.students[id]
	if !ok {
		return students.Student{}, students.ErrNotFound
	}

	st.Interests = append([]students.Interest{}, r.s.interests[id]...)
	st.Pets = append([]students.Pet{}, r.s.pets[id]...)

	st.Lessons = make([]students.Lesson, 0, len(r.s.lessons[id]))
	for _, l := range r.s.lessons[id] {
		l.Questions = append([]students.LessonQuestion{}, r.s.questions[l.ID]...)
		st.Lessons = append(st.Lessons, l)
	}
	return st, nil
}

func (r *studentRepo) DeleteStudent(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.students[id]; !ok {
		return false, nil
	}

	for _, l := range r.s.lessons[id] {
		delete(r.s.questions, l.ID)
		delete(r.s.lessonOwner, l.ID)
	}
	delete(r.s.lessons, id)
	delete(r.s.interests, id)
	delete(r.s.pets, id)

	for tid, t := range r.s.tests {
		if t.StudentID == id {
			delete(r.s.tests, tid)
		}
	}

	delete(r.s.students, id)
	return true, nil
}

func (r *studentRepo) AddInterests(ctx context.Context, studentID string, items []students.Interest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.students[studentID]; !ok {
		return fkError(students.ErrStudentMissing, "interests", "student_id", studentID)
	}
	for _, it := range items {
		it.StudentID = studentID
		r.s.interests[studentID] = append(r.s.interests[studentID], it)
	}
	return nil
}

func (r *studentRepo) AddPets(ctx context.Context, studentID string, items []students.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.students[studentID]; !ok {
		return fkError(students.ErrStudentMissing, "pets", "student_id", studentID)
	}
	for _, p := range items {
		p.StudentID = studentID
		r.s.pets[studentID] = append(r.s.pets[studentID], p)
	}
	return nil
}

func (r *studentRepo) AddLessons(ctx context.Context, studentID string, items []students.Lesson) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.students[studentID]; !ok {
		return fkError(students.ErrStudentMissing, "lessons", "student_id", studentID)
	}
	for _, l := range items {
		l.StudentID = studentID
		l.Questions = nil
		r.s.lessons[studentID] = append(r.s.lessons[studentID], l)
		r.s.lessonOwner[l.ID] = studentID
	}
	return nil
}

func (r *studentRepo) AddLessonQuestions(ctx context.Context, lessonID string, items []students.LessonQuestion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.lessonOwner[lessonID]; !ok {
		return fkError(students.ErrLessonMissing, "lesson_questions", "lesson_id", lessonID)
	}
	for _, q := range items {
		q.LessonID = lessonID
		r.s.questions[lessonID] = append(r.s.questions[lessonID], q)
	}
	return nil
}
