package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"aikiddo-api/internal/domain/levelingtests"
)

type LevelingTestsRepo struct {
	db *sql.DB
}

func NewLevelingTestsRepo(db *sql.DB) *LevelingTestsRepo {
	return &LevelingTestsRepo{db: db}
}

func (r *LevelingTestsRepo) Create(ctx context.Context, t levelingtests.LevelingTest) error {
	err := withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO leveling_tests (id, student_id, date)
			VALUES ($1,$2,$3)
		`, t.ID, t.StudentID, t.Date); err != nil {
			return err
		}

		for _, q := range t.Questions {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO test_questions (
					id, test_id, question_text, expected_answer, given_answer, score
				) VALUES ($1,$2,$3,$4,$5,$6)
			`, q.ID, t.ID, q.QuestionText, q.ExpectedAnswer, q.GivenAnswer, q.Score); err != nil {
				return err
			}
		}
		return nil
	})
	return classifyFK(err, levelingtests.ErrStudentMissing)
}

func (r *LevelingTestsRepo) GetByID(ctx context.Context, id string) (levelingtests.LevelingTest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return levelingtests.LevelingTest{}, levelingtests.ErrNotFound
	}

	var t levelingtests.LevelingTest
	err := withTx(ctx, r.db, readOnly, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			SELECT id, student_id, date
			FROM leveling_tests
			WHERE id = $1
		`, id)
		if err := row.Scan(&t.ID, &t.StudentID, &t.Date); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return levelingtests.ErrNotFound
			}
			return err
		}
		t.Date = t.Date.UTC()

		qs, err := listTestQuestions(ctx, tx, `WHERE q.test_id = $1`, id)
		if err != nil {
			return err
		}
		t.Questions = qs[id]
		if t.Questions == nil {
			t.Questions = make([]levelingtests.TestQuestion, 0)
		}
		return nil
	})
	if err != nil {
		return levelingtests.LevelingTest{}, err
	}
	return t, nil
}

func (r *LevelingTestsRepo) ListByStudent(ctx context.Context, studentID string) ([]levelingtests.LevelingTest, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, nil
	}

	out := make([]levelingtests.LevelingTest, 0)
	err := withTx(ctx, r.db, readOnly, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT id, student_id, date
			FROM leveling_tests
			WHERE student_id = $1
			ORDER BY date ASC
		`, studentID)
		if err != nil {
			return err
		}
		for rows.Next() {
			var t levelingtests.LevelingTest
			if err := rows.Scan(&t.ID, &t.StudentID, &t.Date); err != nil {
				rows.Close()
				return err
			}
			t.Date = t.Date.UTC()
			out = append(out, t)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()

		qs, err := listTestQuestions(ctx, tx, `JOIN leveling_tests t ON t.id = q.test_id WHERE t.student_id = $1`, studentID)
		if err != nil {
			return err
		}
		for i := range out {
			out[i].Questions = qs[out[i].ID]
			if out[i].Questions == nil {
				out[i].Questions = make([]levelingtests.TestQuestion, 0)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// listTestQuestions agrupa por test_id. where es SQL fijo (nunca input del usuario).
func listTestQuestions(ctx context.Context, tx *sql.Tx, where string, arg string) (map[string][]levelingtests.TestQuestion, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT q.id, q.test_id, q.question_text, q.expected_answer, q.given_answer, q.score
		FROM test_questions q
	`+where, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]levelingtests.TestQuestion{}
	for rows.Next() {
		var q levelingtests.TestQuestion
		if err := rows.Scan(
			&q.ID,
			&q.TestID,
			&q.QuestionText,
			&q.ExpectedAnswer,
			&q.GivenAnswer,
			&q.Score,
		); err != nil {
			return nil, err
		}
		out[q.TestID] = append(out[q.TestID], q)
	}
	return out, rows.Err()
}
