package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chayachobi/summercamp-backend/internal/model"
)

// ClassRepository handles class data access.
type ClassRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool, timeout time.Duration) *ClassRepository {
	return &ClassRepository{pool: pool, timeout: timeout}
}

const classColumns = `id, name, image, instructor_name, instructor_email, price,
	available_seats, enrolled_students_quantity, status, feedback, created_at`

// Create inserts a new class in pending status.
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) error {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	return r.pool.QueryRow(ctx,
		`INSERT INTO classes (name, image, instructor_name, instructor_email, price, available_seats, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, enrolled_students_quantity, created_at`,
		c.Name, c.Image, c.InstructorName, c.InstructorEmail, c.Price, c.AvailableSeats, c.Status,
	).Scan(&c.ID, &c.EnrolledStudentsQuantity, &c.CreatedAt)
}

// GetByID retrieves a class by its ID.
func (r *ClassRepository) GetByID(ctx context.Context, id int) (*model.Class, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	c := &model.Class{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+classColumns+` FROM classes WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Image, &c.InstructorName, &c.InstructorEmail, &c.Price,
		&c.AvailableSeats, &c.EnrolledStudentsQuantity, &c.Status, &c.Feedback, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return c, nil
}

// List retrieves all classes, newest first.
func (r *ClassRepository) List(ctx context.Context) ([]model.Class, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT `+classColumns+` FROM classes ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClasses(rows)
}

// ListByStatus retrieves classes in a review state.
func (r *ClassRepository) ListByStatus(ctx context.Context, status model.ClassStatus) ([]model.Class, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT `+classColumns+` FROM classes WHERE status = $1 ORDER BY created_at DESC`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClasses(rows)
}

// ListByInstructor retrieves an instructor's classes in every status.
func (r *ClassRepository) ListByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT `+classColumns+` FROM classes WHERE instructor_email = $1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClasses(rows)
}

// ListPopular retrieves approved classes ordered by enrollment count.
func (r *ClassRepository) ListPopular(ctx context.Context, limit int) ([]model.Class, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT `+classColumns+` FROM classes
		 WHERE status = $1 ORDER BY enrolled_students_quantity DESC LIMIT $2`,
		model.ClassStatusApproved, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClasses(rows)
}

// UpdateStatus sets the review status of a class.
func (r *ClassRepository) UpdateStatus(ctx context.Context, id int, status model.ClassStatus) error {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx,
		`UPDATE classes SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrClassNotFound
	}
	return nil
}

// UpdateFeedback attaches admin feedback to a class.
func (r *ClassRepository) UpdateFeedback(ctx context.Context, id int, feedback string) error {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx,
		`UPDATE classes SET feedback = $1 WHERE id = $2`, feedback, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrClassNotFound
	}
	return nil
}

func scanClasses(rows pgx.Rows) ([]model.Class, error) {
	var classes []model.Class
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.Image, &c.InstructorName, &c.InstructorEmail,
			&c.Price, &c.AvailableSeats, &c.EnrolledStudentsQuantity, &c.Status, &c.Feedback,
			&c.CreatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}
