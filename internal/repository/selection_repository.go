package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chayachobi/summercamp-backend/internal/model"
)

// SelectionRepository handles selected-class data access.
type SelectionRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewSelectionRepository creates a new SelectionRepository.
func NewSelectionRepository(pool *pgxpool.Pool, timeout time.Duration) *SelectionRepository {
	return &SelectionRepository{pool: pool, timeout: timeout}
}

// Create records a student's intent to enroll in a class.
func (r *SelectionRepository) Create(ctx context.Context, s *model.SelectedClass) error {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	return r.pool.QueryRow(ctx,
		`INSERT INTO selected_classes (student_email, class_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		s.StudentEmail, s.ClassID,
	).Scan(&s.ID, &s.CreatedAt)
}

// ListByStudent retrieves a student's pending selections, newest first.
func (r *SelectionRepository) ListByStudent(ctx context.Context, email string) ([]model.SelectedClass, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT id, student_email, class_id, created_at
		 FROM selected_classes WHERE student_email = $1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var selections []model.SelectedClass
	for rows.Next() {
		var s model.SelectedClass
		if err := rows.Scan(&s.ID, &s.StudentEmail, &s.ClassID, &s.CreatedAt); err != nil {
			return nil, err
		}
		selections = append(selections, s)
	}
	return selections, rows.Err()
}

// Delete removes a selection by its ID. Reports how many rows were removed
// so callers can distinguish a missing record.
func (r *SelectionRepository) Delete(ctx context.Context, id int) (int64, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM selected_classes WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
