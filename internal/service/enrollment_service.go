package service

import (
	"context"

	"github.com/chayachobi/summercamp-backend/internal/model"
)

// SelectionStore is the selected-class persistence boundary. Satisfied by
// repository.SelectionRepository.
type SelectionStore interface {
	Create(ctx context.Context, s *model.SelectedClass) error
	ListByStudent(ctx context.Context, email string) ([]model.SelectedClass, error)
	Delete(ctx context.Context, id int) (int64, error)
}

// EnrollmentStore is the enrolled-class persistence boundary. Enroll must be
// atomic: the record insert, the seat counters, and the selection cleanup
// all land or none do. Satisfied by repository.EnrollmentRepository.
type EnrollmentStore interface {
	Enroll(ctx context.Context, e *model.EnrolledClass) error
	ListByStudent(ctx context.Context, email string) ([]model.EnrolledClass, error)
	PayHistory(ctx context.Context, email string) ([]model.EnrolledClass, error)
}

// EnrollmentService handles the selection workflow and the enrollment
// transition.
type EnrollmentService struct {
	selections  SelectionStore
	enrollments EnrollmentStore
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(selections SelectionStore, enrollments EnrollmentStore) *EnrollmentService {
	return &EnrollmentService{selections: selections, enrollments: enrollments}
}

// Select records a pending intent to enroll.
func (s *EnrollmentService) Select(ctx context.Context, req model.SelectClassRequest) (*model.SelectedClass, error) {
	sel := &model.SelectedClass{
		StudentEmail: req.StudentEmail,
		ClassID:      req.ClassID,
	}
	if err := s.selections.Create(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

// SelectionsFor lists a student's pending selections.
func (s *EnrollmentService) SelectionsFor(ctx context.Context, email string) ([]model.SelectedClass, error) {
	return s.selections.ListByStudent(ctx, email)
}

// RemoveSelection deletes a selection explicitly. Returns the number of rows
// removed (0 when the selection was already gone).
func (s *EnrollmentService) RemoveSelection(ctx context.Context, id int) (int64, error) {
	return s.selections.Delete(ctx, id)
}

// Enroll converts a selection into a paid, seat-counted enrollment. The
// store guarantees the counters and the record move together; duplicate and
// sold-out attempts surface as repository sentinel errors.
func (s *EnrollmentService) Enroll(ctx context.Context, req model.EnrollRequest) (*model.EnrolledClass, error) {
	e := &model.EnrolledClass{
		StudentEmail:     req.StudentEmail,
		ClassID:          req.ClassID,
		PaymentReference: req.PaymentReference,
	}
	if err := s.enrollments.Enroll(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// EnrollmentsFor lists a student's enrollments.
func (s *EnrollmentService) EnrollmentsFor(ctx context.Context, email string) ([]model.EnrolledClass, error) {
	return s.enrollments.ListByStudent(ctx, email)
}

// PayHistoryFor lists a student's enrollments by payment date, most recent
// first.
func (s *EnrollmentService) PayHistoryFor(ctx context.Context, email string) ([]model.EnrolledClass, error) {
	return s.enrollments.PayHistory(ctx, email)
}
