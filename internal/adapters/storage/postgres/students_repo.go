package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"aikiddo-api/internal/domain/students"
)

type StudentsRepo struct {
	db *sql.DB
}

func NewStudentsRepo(db *sql.DB) *StudentsRepo {
	return &StudentsRepo{db: db}
}

func (r *StudentsRepo) CreateStudent(ctx context.Context, s students.Student) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO students (
			id, name, gender, birthdate, hair_color, hair_type
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		s.ID,
		s.Name,
		s.Gender,
		s.Birthdate,
		s.HairColor,
		s.HairType,
	)
	return err
}

// GetStudent lee el estudiante y sus dependencias en una transacción
// read-only, así todo sale del mismo snapshot.
func (r *StudentsRepo) GetStudent(ctx context.Context, id string) (students.Student, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return students.Student{}, students.ErrNotFound
	}

	var s students.Student
	err := withTx(ctx, r.db, readOnly, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			SELECT id, name, gender, birthdate, hair_color, hair_type
			FROM students
			WHERE id = $1
		`, id)
		if err := row.Scan(
			&s.ID,
			&s.Name,
			&s.Gender,
			&s.Birthdate,
			&s.HairColor,
			&s.HairType,
		); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return students.ErrNotFound
			}
			return err
		}

		var err error
		if s.Interests, err = listInterests(ctx, tx, id); err != nil {
			return err
		}
		if s.Pets, err = listPets(ctx, tx, id); err != nil {
			return err
		}
		s.Lessons, err = listLessons(ctx, tx, id)
		return err
	})
	if err != nil {
		return students.Student{}, err
	}
	return s, nil
}

// DeleteStudent depende del ON DELETE CASCADE del esquema.
func (r *StudentsRepo) DeleteStudent(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *StudentsRepo) AddInterests(ctx context.Context, studentID string, items []students.Interest) error {
	err := withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		for _, it := range items {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO interests (id, student_id, interest)
				VALUES ($1,$2,$3)
			`, it.ID, studentID, it.Interest); err != nil {
				return err
			}
		}
		return nil
	})
	return classifyFK(err, students.ErrStudentMissing)
}

func (r *StudentsRepo) AddPets(ctx context.Context, studentID string, items []students.Pet) error {
	err := withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		for _, p := range items {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO pets (id, student_id, pet_type, pet_breed, pet_name)
				VALUES ($1,$2,$3,$4,$5)
			`, p.ID, studentID, p.Type, toNullString(p.Breed), p.Name); err != nil {
				return err
			}
		}
		return nil
	})
	return classifyFK(err, students.ErrStudentMissing)
}

func (r *StudentsRepo) AddLessons(ctx context.Context, studentID string, items []students.Lesson) error {
	err := withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		for _, l := range items {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO lessons (id, student_id, content, date)
				VALUES ($1,$2,$3,$4)
			`, l.ID, studentID, l.Content, l.Date); err != nil {
				return err
			}
		}
		return nil
	})
	return classifyFK(err, students.ErrStudentMissing)
}

func (r *StudentsRepo) AddLessonQuestions(ctx context.Context, lessonID string, items []students.LessonQuestion) error {
	err := withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		for _, q := range items {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO lesson_questions (
					id, lesson_id, question_text, expected_answer, given_answer, score
				) VALUES ($1,$2,$3,$4,$5,$6)
			`, q.ID, lessonID, q.QuestionText, q.ExpectedAnswer, q.GivenAnswer, q.Score); err != nil {
				return err
			}
		}
		return nil
	})
	return classifyFK(err, students.ErrLessonMissing)
}

func listInterests(ctx context.Context, tx *sql.Tx, studentID string) ([]students.Interest, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, student_id, interest
		FROM interests
		WHERE student_id = $1
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]students.Interest, 0)
	for rows.Next() {
		var it students.Interest
		if err := rows.Scan(&it.ID, &it.StudentID, &it.Interest); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func listPets(ctx context.Context, tx *sql.Tx, studentID string) ([]students.Pet, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, student_id, pet_type, pet_breed, pet_name
		FROM pets
		WHERE student_id = $1
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]students.Pet, 0)
	for rows.Next() {
		var p students.Pet
		var breed sql.NullString
		if err := rows.Scan(&p.ID, &p.StudentID, &p.Type, &breed, &p.Name); err != nil {
			return nil, err
		}
		if breed.Valid {
			b := breed.String
			p.Breed = &b
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// listLessons trae las lecciones y después todas sus preguntas en una sola query.
func listLessons(ctx context.Context, tx *sql.Tx, studentID string) ([]students.Lesson, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, student_id, content, date
		FROM lessons
		WHERE student_id = $1
		ORDER BY date ASC
	`, studentID)
	if err != nil {
		return nil, err
	}

	out := make([]students.Lesson, 0)
	index := map[string]int{}
	for rows.Next() {
		var l students.Lesson
		if err := rows.Scan(&l.ID, &l.StudentID, &l.Content, &l.Date); err != nil {
			rows.Close()
			return nil, err
		}
		// pgx devuelve TIMESTAMPTZ en la zona local del proceso.
		l.Date = l.Date.UTC()
		l.Questions = make([]students.LessonQuestion, 0)
		index[l.ID] = len(out)
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if len(out) == 0 {
		return out, nil
	}

	qrows, err := tx.QueryContext(ctx, `
		SELECT q.id, q.lesson_id, q.question_text, q.expected_answer, q.given_answer, q.score
		FROM lesson_questions q
		JOIN lessons l ON l.id = q.lesson_id
		WHERE l.student_id = $1
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer qrows.Close()

	for qrows.Next() {
		var q students.LessonQuestion
		if err := qrows.Scan(
			&q.ID,
			&q.LessonID,
			&q.QuestionText,
			&q.ExpectedAnswer,
			&q.GivenAnswer,
			&q.Score,
		); err != nil {
			return nil, err
		}
		if i, ok := index[q.LessonID]; ok {
			out[i].Questions = append(out[i].Questions, q)
		}
	}
	return out, qrows.Err()
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}
