package model

import "time"

// ClassStatus is the admin review state of a class.
type ClassStatus string

const (
	ClassStatusPending  ClassStatus = "pending"
	ClassStatusApproved ClassStatus = "approved"
	ClassStatusDenied   ClassStatus = "denied"
)

// Class is a course offered by an instructor. Seat counters are only moved
// by the enrollment transition, inside a single transaction.
type Class struct {
	ID                       int         `json:"id"`
	Name                     string      `json:"name"`
	Image                    string      `json:"image,omitempty"`
	InstructorName           string      `json:"instructor_name"`
	InstructorEmail          string      `json:"instructor_email"`
	Price                    float64     `json:"price"`
	AvailableSeats           int         `json:"available_seats"`
	EnrolledStudentsQuantity int         `json:"enrolled_students_quantity"`
	Status                   ClassStatus `json:"status"`
	Feedback                 *string     `json:"feedback,omitempty"`
	CreatedAt                time.Time   `json:"created_at"`
}

// AddClassRequest is the payload an instructor submits for a new class.
// The class always starts in pending status.
type AddClassRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=200"`
	Image           string  `json:"image" binding:"omitempty,url,max=2048"`
	InstructorName  string  `json:"instructor_name" binding:"required,min=1,max=100"`
	InstructorEmail string  `json:"instructor_email" binding:"required,email,max=254"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	AvailableSeats  int     `json:"available_seats" binding:"required,min=1"`
}

// FeedbackRequest attaches admin feedback to a class.
type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required,min=1,max=2000"`
}
