package service

import (
	"context"
	"testing"

	"github.com/chayachobi/summercamp-backend/internal/model"
	"github.com/chayachobi/summercamp-backend/internal/repository"
)

type fakeUserStore struct {
	users       map[string]*model.User
	createCalls int
	updateCalls int
}

func newFakeUserStore(users ...*model.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]*model.User)}
	for _, u := range users {
		s.users[u.Email] = u
	}
	return s
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) RoleOf(_ context.Context, email string) (model.Role, error) {
	u, ok := s.users[email]
	if !ok {
		return "", repository.ErrUserNotFound
	}
	return u.Role, nil
}

func (s *fakeUserStore) Create(_ context.Context, u *model.User) error {
	s.createCalls++
	u.ID = len(s.users) + 1
	s.users[u.Email] = u
	return nil
}

func (s *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	var users []model.User
	for _, u := range s.users {
		users = append(users, *u)
	}
	return users, nil
}

func (s *fakeUserStore) ListByRole(_ context.Context, role model.Role, limit int) ([]model.User, error) {
	var users []model.User
	for _, u := range s.users {
		if u.Role == role {
			users = append(users, *u)
		}
		if limit > 0 && len(users) == limit {
			break
		}
	}
	return users, nil
}

func (s *fakeUserStore) UpdateRole(_ context.Context, email string, role model.Role) error {
	s.updateCalls++
	u, ok := s.users[email]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func TestRegisterIsIdempotent(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)
	ctx := context.Background()

	req := model.RegisterUserRequest{Name: "Student A", Email: "a@x.com"}

	first, created, err := svc.Register(ctx, req)
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	if !created {
		t.Fatal("expected first registration to create the user")
	}
	if first.Role != model.RoleStudent {
		t.Errorf("expected student role, got %q", first.Role)
	}

	// Promote, then register again: the stored role must survive.
	if err := svc.Promote(ctx, "a@x.com", model.RoleAdmin); err != nil {
		t.Fatalf("promote: %v", err)
	}

	second, created, err := svc.Register(ctx, req)
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if created {
		t.Fatal("expected second registration to be a no-op")
	}
	if second.Role != model.RoleAdmin {
		t.Errorf("repeat registration mutated role: got %q", second.Role)
	}
	if store.createCalls != 1 {
		t.Errorf("expected exactly one create, got %d", store.createCalls)
	}
	if len(store.users) != 1 {
		t.Errorf("expected exactly one user record, got %d", len(store.users))
	}
}

// racingUserStore simulates a rival registration committing between the
// lookup and the insert: the lookup misses, then the unique email
// constraint rejects our create.
type racingUserStore struct {
	*fakeUserStore
	winner *model.User
}

func (s *racingUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if _, ok := s.users[email]; !ok {
		s.users[s.winner.Email] = s.winner
		return nil, repository.ErrUserNotFound
	}
	return s.fakeUserStore.GetByEmail(ctx, email)
}

func (s *racingUserStore) Create(_ context.Context, u *model.User) error {
	s.createCalls++
	if _, ok := s.users[u.Email]; ok {
		return repository.ErrUserExists
	}
	s.users[u.Email] = u
	return nil
}

func TestRegisterLosingRaceResolvesToWinner(t *testing.T) {
	winner := &model.User{ID: 7, Name: "Rival Session", Email: "a@x.com", Role: model.RoleStudent}
	store := &racingUserStore{fakeUserStore: newFakeUserStore(), winner: winner}
	svc := NewUserService(store)

	got, created, err := svc.Register(context.Background(), model.RegisterUserRequest{
		Name:  "Losing Session",
		Email: "a@x.com",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created {
		t.Fatal("expected the lost race to resolve as an existing account")
	}
	if got.ID != winner.ID || got.Name != winner.Name {
		t.Errorf("expected the winner's record back, got %+v", got)
	}
	if len(store.users) != 1 {
		t.Errorf("expected exactly one user record, got %d", len(store.users))
	}
}

func TestHasRole(t *testing.T) {
	store := newFakeUserStore(
		&model.User{Email: "admin@x.com", Role: model.RoleAdmin},
		&model.User{Email: "student@x.com", Role: model.RoleStudent},
	)
	svc := NewUserService(store)
	ctx := context.Background()

	tests := []struct {
		email string
		role  model.Role
		want  bool
	}{
		{"admin@x.com", model.RoleAdmin, true},
		{"admin@x.com", model.RoleInstructor, false},
		{"student@x.com", model.RoleStudent, true},
		{"student@x.com", model.RoleAdmin, false},
		{"ghost@x.com", model.RoleAdmin, false}, // Unknown email is not an error
	}
	for _, tt := range tests {
		got, err := svc.HasRole(ctx, tt.email, tt.role)
		if err != nil {
			t.Fatalf("HasRole(%s, %s): %v", tt.email, tt.role, err)
		}
		if got != tt.want {
			t.Errorf("HasRole(%s, %s) = %t, want %t", tt.email, tt.role, got, tt.want)
		}
	}
}
