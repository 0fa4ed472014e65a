package memory

import (
	"fmt"
	"sync"

	"aikiddo-api/internal/domain/levelingtests"
	"aikiddo-api/internal/domain/students"
)

// Store guarda todo en mapas y emula las FKs y el borrado en cascada
// de la base real. Pensado para modo dev y tests.
type Store struct {
	mu sync.RWMutex

	students  map[string]students.Student // sin colecciones
	interests map[string][]students.Interest
	pets      map[string][]students.Pet
	lessons   map[string][]students.Lesson // sin preguntas
	questions map[string][]students.LessonQuestion

	lessonOwner map[string]string // lessonID -> studentID

	tests map[string]levelingtests.LevelingTest
}

func NewStore() *Store {
	return &Store{
		students:    make(map[string]students.Student),
		interests:   make(map[string][]students.Interest),
		pets:        make(map[string][]students.Pet),
		lessons:     make(map[string][]students.Lesson),
		questions:   make(map[string][]students.LessonQuestion),
		lessonOwner: make(map[string]string),
		tests:       make(map[string]levelingtests.LevelingTest),
	}
}

func (s *Store) Students() students.Repository {
	return &studentRepo{s: s}
}

func (s *Store) LevelingTests() levelingtests.Repository {
	return &levelingTestRepo{s: s}
}

// fkError imita el mensaje de Postgres para una violación de FK.
func fkError(sentinel error, table, key, value string) error {
	return fmt.Errorf("%w: insert on %q violates foreign key constraint (%s=%s)", sentinel, table, key, value)
}
