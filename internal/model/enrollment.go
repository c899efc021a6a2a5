package model

import "time"

// SelectedClass is a student's pending intent to enroll. It is removed either
// explicitly or when the enrollment transition consumes it.
type SelectedClass struct {
	ID           int       `json:"id"`
	StudentEmail string    `json:"student_email"`
	ClassID      int       `json:"class_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// SelectClassRequest is the payload for adding a class to a student's
// selection.
type SelectClassRequest struct {
	StudentEmail string `json:"student_email" binding:"required,email,max=254"`
	ClassID      int    `json:"class_id" binding:"required,min=1"`
}

// EnrolledClass is the append-only record of a completed, paid enrollment.
type EnrolledClass struct {
	ID               int       `json:"id"`
	StudentEmail     string    `json:"student_email"`
	ClassID          int       `json:"class_id"`
	Date             time.Time `json:"date"`
	PaymentReference string    `json:"payment_reference"`
}

// EnrollRequest is the payload for the enrollment transition.
type EnrollRequest struct {
	StudentEmail     string `json:"student_email" binding:"required,email,max=254"`
	ClassID          int    `json:"class_id" binding:"required,min=1"`
	PaymentReference string `json:"payment_reference" binding:"required,min=1,max=255"`
}

// PaymentIntentRequest carries the decimal price to convert into
// currency-minor units.
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// PaymentIntentResponse returns the provider's client-usable secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
