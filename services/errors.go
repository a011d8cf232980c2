package services

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrInvalidStayRange = errors.New("check-out date must be after check-in date")
)

// ValidationError reports malformed input, rejected before any storage read.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports insufficient capacity on a specific date of the
// requested stay. The attempt is terminal; the caller must resubmit with
// adjusted parameters.
type ConflictError struct {
	Date      time.Time
	Available int
	Requested int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room not available on %s: %d available, %d requested",
		e.Date.Format("2006-01-02"), e.Available, e.Requested)
}
