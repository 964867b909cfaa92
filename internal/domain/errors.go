package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrVariantRateNotFound   = errors.New("variant rate not found")
	ErrDisplayedRateNotFound = errors.New("displayed rate not found")
	ErrEnquiryNotFound       = errors.New("enquiry not found")
	ErrActivityNotFound      = errors.New("activity not found")
	ErrProjectNotFound       = errors.New("project not found")
	ErrAssociateNotFound     = errors.New("associate not found")
	ErrStatusNotFound        = errors.New("status not found")
)

// ValidationError marks missing or malformed input. Surfaced as a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// CooldownError rejects a non-admin rate edit attempted outside both the
// cooling window and the duration cycle. Surfaced as a 409.
type CooldownError struct {
	RateID     string
	NextEditAt time.Time
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("rate %s is locked: wait for the next duration cycle (next edit at %s)",
		e.RateID, e.NextEditAt.Format(time.RFC3339))
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsCooldown(err error) bool {
	var ce *CooldownError
	return errors.As(err, &ce)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrVariantRateNotFound) ||
		errors.Is(err, ErrDisplayedRateNotFound) ||
		errors.Is(err, ErrEnquiryNotFound) ||
		errors.Is(err, ErrActivityNotFound) ||
		errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrAssociateNotFound) ||
		errors.Is(err, ErrStatusNotFound)
}
