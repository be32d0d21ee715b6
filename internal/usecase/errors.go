package usecase

import (
	"errors"

	"hotel-booking/pkg/utils"
)

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrMissingBookingReference = errors.New("bookingId or bookingDraft is required")
	ErrPaymentProvider         = errors.New("payment provider error")
	ErrEmailTransport          = errors.New("email transport error")
	ErrHotelNotFound           = errors.New("hotel not found")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrAlreadyRegistered       = errors.New("email or username already registered")
	ErrInvalidToken            = errors.New("invalid or expired token")
)

// ValidationError carries per-field messages and matches ErrInvalidInput.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// validate runs struct validation and wraps failures as *ValidationError.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func fieldError(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
