package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/liftlog/internal/db"
	"github.com/alexanderramin/liftlog/internal/domain"
)

// SQLiteSetRepo implements SetRepo using a SQLite database.
type SQLiteSetRepo struct {
	db db.DBTX
}

// NewSQLiteSetRepo creates a new SQLiteSetRepo.
func NewSQLiteSetRepo(conn db.DBTX) *SQLiteSetRepo {
	return &SQLiteSetRepo{db: conn}
}

const setColumns = `id, exercise_id, reps, weight, one_rm`

func (r *SQLiteSetRepo) Save(ctx context.Context, s *domain.ExerciseSet) error {
	query := `INSERT INTO exercise_sets (id, exercise_id, reps, weight, one_rm, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			exercise_id = excluded.exercise_id,
			reps = excluded.reps,
			weight = excluded.weight,
			one_rm = excluded.one_rm`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ExerciseID,
		nullableIntToValue(s.Reps),
		nullableFloatToValue(s.Weight),
		nullableFloatToValue(s.OneRM),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("saving exercise set: %w", err)
	}
	return nil
}

func (r *SQLiteSetRepo) GetByID(ctx context.Context, id string) (*domain.ExerciseSet, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+setColumns+` FROM exercise_sets WHERE id = ?`, id)
	s, err := scanSet(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("exercise set: %w", ErrNotFound)
	}
	return s, err
}

func (r *SQLiteSetRepo) ListByExercise(ctx context.Context, exerciseID string) ([]*domain.ExerciseSet, error) {
	query := `SELECT ` + setColumns + ` FROM exercise_sets
		WHERE exercise_id = ?
		ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("listing sets by exercise: %w", err)
	}
	defer rows.Close()

	var sets []*domain.ExerciseSet
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sets: %w", err)
	}
	return sets, nil
}

func (r *SQLiteSetRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM exercise_sets WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting exercise set: %w", err)
	}
	return nil
}

// scanSet returns sql.ErrNoRows unwrapped so GetByID can map it.
func scanSet(row interface{ Scan(dest ...any) error }) (*domain.ExerciseSet, error) {
	var s domain.ExerciseSet
	var reps sql.NullInt64
	var weight, oneRM sql.NullFloat64

	if err := row.Scan(&s.ID, &s.ExerciseID, &reps, &weight, &oneRM); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning exercise set: %w", err)
	}
	s.Reps = intFromNull(reps)
	s.Weight = floatFromNull(weight)
	s.OneRM = floatFromNull(oneRM)
	return &s, nil
}
