package service

import (
	"context"

	"github.com/chayachobi/summercamp-backend/internal/model"
)

// popularClassLimit caps the public popular-classes listing.
const popularClassLimit = 6

// ClassStore is the class persistence boundary. Satisfied by
// repository.ClassRepository; tests substitute an in-memory fake.
type ClassStore interface {
	Create(ctx context.Context, c *model.Class) error
	GetByID(ctx context.Context, id int) (*model.Class, error)
	List(ctx context.Context) ([]model.Class, error)
	ListByStatus(ctx context.Context, status model.ClassStatus) ([]model.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]model.Class, error)
	ListPopular(ctx context.Context, limit int) ([]model.Class, error)
	UpdateStatus(ctx context.Context, id int, status model.ClassStatus) error
	UpdateFeedback(ctx context.Context, id int, feedback string) error
}

// ClassService handles the class catalog.
type ClassService struct {
	classes ClassStore
}

// NewClassService creates a new ClassService.
func NewClassService(classes ClassStore) *ClassService {
	return &ClassService{classes: classes}
}

// Add submits a new class for review. Status always starts pending; only an
// admin moves it from there.
func (s *ClassService) Add(ctx context.Context, req model.AddClassRequest) (*model.Class, error) {
	c := &model.Class{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		Price:           req.Price,
		AvailableSeats:  req.AvailableSeats,
		Status:          model.ClassStatusPending,
	}
	if err := s.classes.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// All retrieves every class regardless of status.
func (s *ClassService) All(ctx context.Context) ([]model.Class, error) {
	return s.classes.List(ctx)
}

// Approved retrieves the publicly visible catalog.
func (s *ClassService) Approved(ctx context.Context) ([]model.Class, error) {
	return s.classes.ListByStatus(ctx, model.ClassStatusApproved)
}

// Popular retrieves approved classes with the most enrollments.
func (s *ClassService) Popular(ctx context.Context) ([]model.Class, error) {
	return s.classes.ListPopular(ctx, popularClassLimit)
}

// ByInstructor retrieves an instructor's own classes.
func (s *ClassService) ByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	return s.classes.ListByInstructor(ctx, email)
}

// Approve moves a class to approved status.
func (s *ClassService) Approve(ctx context.Context, id int) error {
	return s.classes.UpdateStatus(ctx, id, model.ClassStatusApproved)
}

// Deny moves a class to denied status.
func (s *ClassService) Deny(ctx context.Context, id int) error {
	return s.classes.UpdateStatus(ctx, id, model.ClassStatusDenied)
}

// Feedback attaches admin feedback to a class.
func (s *ClassService) Feedback(ctx context.Context, id int, feedback string) error {
	return s.classes.UpdateFeedback(ctx, id, feedback)
}
