package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema crea las tablas si no existen. Las FKs llevan ON DELETE CASCADE:
// borrar un estudiante arrastra todo lo que cuelga de él.
const Schema = `
CREATE TABLE IF NOT EXISTS students (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	gender     TEXT NOT NULL,
	birthdate  DATE NOT NULL,
	hair_color TEXT NOT NULL,
	hair_type  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_students_name ON students(name);

CREATE TABLE IF NOT EXISTS interests (
	id         TEXT PRIMARY KEY,
	student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
	interest   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_interests_student_id ON interests(student_id);

CREATE TABLE IF NOT EXISTS pets (
	id         TEXT PRIMARY KEY,
	student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
	pet_type   TEXT NOT NULL,
	pet_breed  TEXT,
	pet_name   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_pets_student_id ON pets(student_id);

CREATE TABLE IF NOT EXISTS lessons (
	id         TEXT PRIMARY KEY,
	student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
	content    TEXT NOT NULL,
	date       TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_lessons_student_id ON lessons(student_id);

CREATE TABLE IF NOT EXISTS lesson_questions (
	id              TEXT PRIMARY KEY,
	lesson_id       TEXT NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
	question_text   TEXT NOT NULL,
	expected_answer TEXT NOT NULL,
	given_answer    TEXT NOT NULL,
	score           INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_lesson_questions_lesson_id ON lesson_questions(lesson_id);

CREATE TABLE IF NOT EXISTS leveling_tests (
	id         TEXT PRIMARY KEY,
	student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
	date       TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_leveling_tests_student_id ON leveling_tests(student_id);

CREATE TABLE IF NOT EXISTS test_questions (
	id              TEXT PRIMARY KEY,
	test_id         TEXT NOT NULL REFERENCES leveling_tests(id) ON DELETE CASCADE,
	question_text   TEXT NOT NULL,
	expected_answer TEXT NOT NULL,
	given_answer    TEXT NOT NULL,
	score           INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_test_questions_test_id ON test_questions(test_id);
`

// EnsureSchema aplica Schema. Es idempotente; no reemplaza un sistema de migraciones.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("postgres: ensure schema: %w", err)
	}
	return nil
}
