package payment

import "errors"

var (
	ErrInvalidBookingID  = errors.New("invalid booking id")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrNotAllowed        = errors.New("actor not allowed for this payment operation")
	ErrAlreadyPaid       = errors.New("booking is already paid")
	ErrBookingClosed     = errors.New("booking is cancelled or no-show")
	ErrInvalidService    = errors.New("service is invalid or has no price")
	ErrNoPendingTransfer = errors.New("no pending transfer payment for this booking")
)
