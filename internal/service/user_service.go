package service

import (
	"context"
	"errors"

	"github.com/chayachobi/summercamp-backend/internal/model"
	"github.com/chayachobi/summercamp-backend/internal/repository"
)

// popularInstructorLimit caps the public popular-instructors listing.
const popularInstructorLimit = 6

// UserStore is the user persistence boundary. Satisfied by
// repository.UserRepository; tests substitute an in-memory fake.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	RoleOf(ctx context.Context, email string) (model.Role, error)
	Create(ctx context.Context, u *model.User) error
	List(ctx context.Context) ([]model.User, error)
	ListByRole(ctx context.Context, role model.Role, limit int) ([]model.User, error)
	UpdateRole(ctx context.Context, email string, role model.Role) error
}

// UserService handles account registration, directory reads, and role
// management.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Register stores a new account with the student role. Registration is
// idempotent: a repeat call with a known email returns the existing user
// with created=false and never touches the stored role.
func (s *UserService) Register(ctx context.Context, req model.RegisterUserRequest) (*model.User, bool, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, err
	}

	u := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     model.RoleStudent,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// A concurrent registration can win the insert between the lookup
		// and here; resolve to the row that won.
		if errors.Is(err, repository.ErrUserExists) {
			return s.existing(ctx, req.Email)
		}
		return nil, false, err
	}
	return u, true, nil
}

func (s *UserService) existing(ctx context.Context, email string) (*model.User, bool, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	return u, false, nil
}

// List retrieves every registered user.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Instructors retrieves every user holding the instructor role.
func (s *UserService) Instructors(ctx context.Context) ([]model.User, error) {
	return s.users.ListByRole(ctx, model.RoleInstructor, 0)
}

// PopularInstructors retrieves a short public list of instructors.
// TODO: order by total enrolled students once the join is worth it; the
// original listing was unordered too.
func (s *UserService) PopularInstructors(ctx context.Context) ([]model.User, error) {
	return s.users.ListByRole(ctx, model.RoleInstructor, popularInstructorLimit)
}

// RoleOf resolves the stored role for an email.
func (s *UserService) RoleOf(ctx context.Context, email string) (model.Role, error) {
	return s.users.RoleOf(ctx, email)
}

// HasRole reports whether the account holds the given role. An unknown
// email is not an error here — it simply does not hold the role.
func (s *UserService) HasRole(ctx context.Context, email string, role model.Role) (bool, error) {
	stored, err := s.users.RoleOf(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return stored == role, nil
}

// Promote raises an account to the given role.
func (s *UserService) Promote(ctx context.Context, email string, role model.Role) error {
	return s.users.UpdateRole(ctx, email, role)
}
