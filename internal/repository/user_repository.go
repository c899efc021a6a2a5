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

// UserRepository handles user data access.
type UserRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool, timeout time.Duration) *UserRepository {
	return &UserRepository{pool: pool, timeout: timeout}
}

// GetByEmail retrieves a user by email, the unique account key.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, photo_url, role, created_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PhotoURL, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// RoleOf returns the stored role for an email. Single key-equality read,
// no caching.
func (r *UserRepository) RoleOf(ctx context.Context, email string) (model.Role, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	var role model.Role
	err := r.pool.QueryRow(ctx,
		`SELECT role FROM users WHERE email = $1`, email,
	).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return role, nil
}

// Create inserts a new user with the student role. Returns ErrUserExists
// when the email is already taken, so concurrent first registrations both
// resolve to the same account.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, photo_url, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.Name, u.Email, u.PhotoURL, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrUserExists
		}
		return err
	}
	return nil
}

// List retrieves all users, newest first.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, photo_url, role, created_at
		 FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

// ListByRole retrieves users holding a role. A limit of 0 means no limit.
func (r *UserRepository) ListByRole(ctx context.Context, role model.Role, limit int) ([]model.User, error) {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	query := `SELECT id, name, email, photo_url, role, created_at
		 FROM users WHERE role = $1 ORDER BY created_at DESC`
	args := []any{role}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

// UpdateRole sets a user's role by email.
func (r *UserRepository) UpdateRole(ctx context.Context, email string, role model.Role) error {
	ctx, cancel := withDeadline(ctx, r.timeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET role = $1 WHERE email = $2`, role, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUsers(rows pgx.Rows) ([]model.User, error) {
	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PhotoURL, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
