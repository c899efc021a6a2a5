package handler_test

import (
	"net/http"
	"testing"

	"github.com/chayachobi/summercamp-backend/internal/model"
)

func pendingClass(id int, instructorEmail string) *model.Class {
	return &model.Class{
		ID:              id,
		Name:            "Landscape Photography",
		InstructorName:  "Instructor",
		InstructorEmail: instructorEmail,
		Price:           49.99,
		AvailableSeats:  10,
		Status:          model.ClassStatusPending,
	}
}

func TestAddClassRequiresInstructor(t *testing.T) {
	e := newEnv(student("s@x.com"), instructor("i@x.com"))
	body := map[string]interface{}{
		"name":             "Portrait Basics",
		"instructor_name":  "Instructor",
		"instructor_email": "i@x.com",
		"price":            19.99,
		"available_seats":  12,
	}

	w := e.do(t, http.MethodPost, "/addclass", e.token(t, "s@x.com"), body)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if e.classes.mutations != 0 {
		t.Fatal("forbidden request reached the class store")
	}

	w = e.do(t, http.MethodPost, "/addclass", e.token(t, "i@x.com"), body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var data struct {
		Class model.Class `json:"class"`
	}
	decodeData(t, w, &data)
	if data.Class.Status != model.ClassStatusPending {
		t.Errorf("new class must start pending, got %q", data.Class.Status)
	}
}

func TestApproveAndDenyClass(t *testing.T) {
	e := newEnv(admin("boss@x.com"))
	e.classes.classes[1] = pendingClass(1, "i@x.com")
	e.classes.classes[2] = pendingClass(2, "i@x.com")

	w := e.do(t, http.MethodPatch, "/class/approve/1", e.token(t, "boss@x.com"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d", w.Code)
	}
	if e.classes.classes[1].Status != model.ClassStatusApproved {
		t.Errorf("expected approved, got %q", e.classes.classes[1].Status)
	}

	w = e.do(t, http.MethodPatch, "/class/deny/2", e.token(t, "boss@x.com"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("deny: expected 200, got %d", w.Code)
	}
	if e.classes.classes[2].Status != model.ClassStatusDenied {
		t.Errorf("expected denied, got %q", e.classes.classes[2].Status)
	}
}

func TestApproveUnknownClass(t *testing.T) {
	e := newEnv(admin("boss@x.com"))

	w := e.do(t, http.MethodPatch, "/class/approve/99", e.token(t, "boss@x.com"), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestApproveRequiresAdmin(t *testing.T) {
	e := newEnv(instructor("i@x.com"))
	e.classes.classes[1] = pendingClass(1, "i@x.com")

	w := e.do(t, http.MethodPatch, "/class/approve/1", e.token(t, "i@x.com"), nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if e.classes.classes[1].Status != model.ClassStatusPending {
		t.Error("forbidden request changed the class status")
	}
}

func TestFeedback(t *testing.T) {
	e := newEnv(admin("boss@x.com"))
	e.classes.classes[1] = pendingClass(1, "i@x.com")

	w := e.do(t, http.MethodPatch, "/classes/feedback/1", e.token(t, "boss@x.com"),
		map[string]string{"feedback": "Please add a syllabus."})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if fb := e.classes.classes[1].Feedback; fb == nil || *fb != "Please add a syllabus." {
		t.Error("feedback was not stored")
	}
}

func TestApprovedClassesIsPublicAndIdempotent(t *testing.T) {
	e := newEnv()
	approved := pendingClass(1, "i@x.com")
	approved.Status = model.ClassStatusApproved
	e.classes.classes[1] = approved
	e.classes.classes[2] = pendingClass(2, "i@x.com")

	var first, second struct {
		Classes []model.Class `json:"classes"`
	}

	w := e.do(t, http.MethodGet, "/approvedclasses", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decodeData(t, w, &first)

	w = e.do(t, http.MethodGet, "/approvedclasses", "", nil)
	decodeData(t, w, &second)

	if len(first.Classes) != 1 || len(second.Classes) != 1 {
		t.Fatalf("expected 1 approved class in both reads, got %d and %d",
			len(first.Classes), len(second.Classes))
	}
	if first.Classes[0].ID != second.Classes[0].ID {
		t.Error("two reads with no writes returned different sets")
	}
}

func TestMyClassesRequiresInstructor(t *testing.T) {
	e := newEnv(student("s@x.com"), instructor("i@x.com"))
	e.classes.classes[1] = pendingClass(1, "i@x.com")

	w := e.do(t, http.MethodGet, "/myclasses/i@x.com", e.token(t, "s@x.com"), nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	w = e.do(t, http.MethodGet, "/myclasses/i@x.com", e.token(t, "i@x.com"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var data struct {
		Classes []model.Class `json:"classes"`
	}
	decodeData(t, w, &data)
	if len(data.Classes) != 1 {
		t.Errorf("expected 1 class, got %d", len(data.Classes))
	}
}
