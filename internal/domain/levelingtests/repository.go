package levelingtests

import "context"

// Repository persiste pruebas de nivel junto con sus preguntas.
// Create es atómico: la prueba y sus preguntas se insertan juntas o nada.
type Repository interface {
	Create(ctx context.Context, t LevelingTest) error
	GetByID(ctx context.Context, id string) (LevelingTest, error)
	ListByStudent(ctx context.Context, studentID string) ([]LevelingTest, error)
}
