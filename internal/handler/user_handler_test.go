package handler_test

import (
	"net/http"
	"testing"

	"github.com/chayachobi/summercamp-backend/internal/model"
)

func TestIssueToken(t *testing.T) {
	e := newEnv()

	w := e.do(t, http.MethodPost, "/jwt", "", map[string]string{"email": "a@x.com", "name": "Student A"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, w, &data)
	if data.Token == "" {
		t.Fatal("expected a signed token")
	}

	claims, err := e.auth.ValidateToken(data.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("expected email claim a@x.com, got %q", claims.Email)
	}
}

func TestIssueTokenRejectsBadPayload(t *testing.T) {
	e := newEnv()

	w := e.do(t, http.MethodPost, "/jwt", "", map[string]string{"email": "not-an-email"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRegisterTwiceKeepsOneRecord(t *testing.T) {
	e := newEnv()
	body := map[string]string{"name": "Student A", "email": "a@x.com"}

	w := e.do(t, http.MethodPost, "/users", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("first registration: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = e.do(t, http.MethodPost, "/users", "", body)
	if w.Code != http.StatusOK {
		t.Fatalf("second registration: expected 200, got %d", w.Code)
	}
	var data struct {
		Message string `json:"message"`
	}
	decodeData(t, w, &data)
	if data.Message != "user already exists" {
		t.Errorf("expected already-exists marker, got %q", data.Message)
	}
	if len(e.users.users) != 1 {
		t.Errorf("expected one user record, got %d", len(e.users.users))
	}
	if got := e.users.users["a@x.com"].Role; got != model.RoleStudent {
		t.Errorf("repeat registration mutated role: %q", got)
	}
}

func TestListUsersRequiresAdmin(t *testing.T) {
	e := newEnv(student("s@x.com"), admin("boss@x.com"))

	// No credential.
	w := e.do(t, http.MethodGet, "/allusers", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	// Student credential.
	w = e.do(t, http.MethodGet, "/allusers", e.token(t, "s@x.com"), nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	// Admin credential.
	w = e.do(t, http.MethodGet, "/allusers", e.token(t, "boss@x.com"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var data struct {
		Users []model.User `json:"users"`
	}
	decodeData(t, w, &data)
	if len(data.Users) != 2 {
		t.Errorf("expected 2 users, got %d", len(data.Users))
	}
}

func TestCheckRoleSelf(t *testing.T) {
	e := newEnv(admin("boss@x.com"))

	w := e.do(t, http.MethodGet, "/users/admin/boss@x.com", e.token(t, "boss@x.com"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var data map[string]bool
	decodeData(t, w, &data)
	if !data["admin"] {
		t.Error("expected admin=true for own admin account")
	}
}

func TestCheckRoleMismatchHardStop(t *testing.T) {
	e := newEnv(student("s@x.com"), admin("boss@x.com"))

	// A student asks about the admin's account: the mismatch returns the
	// negative result immediately, without reading the path account's role.
	w := e.do(t, http.MethodGet, "/users/admin/boss@x.com", e.token(t, "s@x.com"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var data map[string]bool
	decodeData(t, w, &data)
	if data["admin"] {
		t.Error("mismatched caller must get admin=false even though the path account is an admin")
	}
}

func TestCheckRoleUnknownRole(t *testing.T) {
	e := newEnv(student("s@x.com"))

	w := e.do(t, http.MethodGet, "/users/superuser/s@x.com", e.token(t, "s@x.com"), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPromoteRequiresAdmin(t *testing.T) {
	e := newEnv(student("s@x.com"), student("t@x.com"), admin("boss@x.com"))

	w := e.do(t, http.MethodPatch, "/user/instructor/t@x.com", e.token(t, "s@x.com"), nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if got := e.users.users["t@x.com"].Role; got != model.RoleStudent {
		t.Errorf("forbidden request mutated role to %q", got)
	}

	w = e.do(t, http.MethodPatch, "/user/instructor/t@x.com", e.token(t, "boss@x.com"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := e.users.users["t@x.com"].Role; got != model.RoleInstructor {
		t.Errorf("expected instructor role, got %q", got)
	}
}

func TestPromoteToStudentRejected(t *testing.T) {
	e := newEnv(instructor("i@x.com"), admin("boss@x.com"))

	w := e.do(t, http.MethodPatch, "/user/student/i@x.com", e.token(t, "boss@x.com"), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPromoteUnknownUser(t *testing.T) {
	e := newEnv(admin("boss@x.com"))

	w := e.do(t, http.MethodPatch, "/user/admin/ghost@x.com", e.token(t, "boss@x.com"), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListInstructorsIsPublic(t *testing.T) {
	e := newEnv(instructor("i@x.com"), student("s@x.com"))

	w := e.do(t, http.MethodGet, "/allinstructors", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var data struct {
		Instructors []model.User `json:"instructors"`
	}
	decodeData(t, w, &data)
	if len(data.Instructors) != 1 {
		t.Errorf("expected 1 instructor, got %d", len(data.Instructors))
	}
}
