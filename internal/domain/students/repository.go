package students

import "context"

// Repository es el acceso a datos de estudiantes y sus dependencias.
// Cada método abre y libera su propia sesión/transacción.
//
// Los Add* son atómicos por llamada: si un item falla, no queda ninguno.
// Si el padre no existe deben devolver un error que envuelva
// ErrStudentMissing (o ErrLessonMissing).
type Repository interface {
	CreateStudent(ctx context.Context, s Student) error
	GetStudent(ctx context.Context, id string) (Student, error)
	DeleteStudent(ctx context.Context, id string) (bool, error)

	AddInterests(ctx context.Context, studentID string, items []Interest) error
	AddPets(ctx context.Context, studentID string, items []Pet) error
	AddLessons(ctx context.Context, studentID string, items []Lesson) error
	AddLessonQuestions(ctx context.Context, lessonID string, items []LessonQuestion) error
}
