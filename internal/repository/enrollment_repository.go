package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chayachobi/summercamp-backend/internal/model"
)

// uniqueViolation is the Postgres error code raised when a uniqueness
// constraint rejects a duplicate row.
const uniqueViolation = "23505"

// EnrollmentRepository handles enrolled-class data access, including the
// enrollment transition itself.
type EnrollmentRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool, timeout time.Duration) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool, timeout: timeout}
}

// Enroll performs the enrollment transition as a single transaction:
// insert the enrollment record, take one seat from the class, and consume
// any matching selection. Either every write lands or none does.
//
// Returns ErrAlreadyEnrolled for a duplicate (student, class) pair,
// ErrNoSeats when the class is sold out, and ErrClassNotFound when the
// class does not exist.
func (r *EnrollmentRepository) Enroll(ctx context.Context, e *model.EnrolledClass) error {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO enrolled_classes (student_email, class_id, payment_reference)
			 VALUES ($1, $2, $3)
			 RETURNING id, date`,
			e.StudentEmail, e.ClassID, e.PaymentReference,
		).Scan(&e.ID, &e.Date)
		if err != nil {
			return err
		}

		// Conditional update: the seat guard and the counter move are one
		// statement, so concurrent enrollments serialize on the class row.
		tag, err := tx.Exec(ctx,
			`UPDATE classes
			 SET available_seats = available_seats - 1,
			     enrolled_students_quantity = enrolled_students_quantity + 1
			 WHERE id = $1 AND available_seats > 0`, e.ClassID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM classes WHERE id = $1)`, e.ClassID,
			).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return ErrClassNotFound
			}
			return ErrNoSeats
		}

		// The selection is implicitly consumed by enrolling.
		_, err = tx.Exec(ctx,
			`DELETE FROM selected_classes WHERE student_email = $1 AND class_id = $2`,
			e.StudentEmail, e.ClassID)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrAlreadyEnrolled
		}
		return err
	}
	return nil
}

// ListByStudent retrieves a student's enrollments, newest first.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, email string) ([]model.EnrolledClass, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT id, student_email, class_id, date, payment_reference
		 FROM enrolled_classes WHERE student_email = $1 ORDER BY id DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEnrollments(rows)
}

// PayHistory retrieves a student's enrollments sorted by payment date,
// most recent first.
func (r *EnrollmentRepository) PayHistory(ctx context.Context, email string) ([]model.EnrolledClass, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT id, student_email, class_id, date, payment_reference
		 FROM enrolled_classes WHERE student_email = $1 ORDER BY date DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEnrollments(rows)
}

func scanEnrollments(rows pgx.Rows) ([]model.EnrolledClass, error) {
	var enrollments []model.EnrolledClass
	for rows.Next() {
		var e model.EnrolledClass
		if err := rows.Scan(&e.ID, &e.StudentEmail, &e.ClassID, &e.Date, &e.PaymentReference); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}
