package repository

import "errors"

// Sentinel errors shared by the store implementations so callers can branch
// without inspecting driver error codes.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrClassNotFound   = errors.New("class not found")
	ErrNoSeats         = errors.New("no seats available")
	ErrAlreadyEnrolled = errors.New("student already enrolled in class")
)
