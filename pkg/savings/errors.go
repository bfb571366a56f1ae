package savings

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrValidation           = errors.New("validation error")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientSavings  = errors.New("insufficient savings")
	ErrContributionTooLarge = errors.New("contribution too large")
	ErrAlreadyRedeemed      = errors.New("already redeemed")
	ErrNotEligible          = errors.New("not eligible")
	ErrStateConflict        = errors.New("state conflict")
	ErrAlreadyRecorded      = errors.New("already recorded")
)

// Error is a business rule failure. It carries one of the kinds above and a
// message meant for the caller.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

var codes = map[error]string{
	ErrValidation:           "validation_error",
	ErrNotFound:             "not_found",
	ErrForbidden:            "forbidden",
	ErrInsufficientFunds:    "insufficient_funds",
	ErrInsufficientSavings:  "insufficient_savings",
	ErrContributionTooLarge: "contribution_too_large",
	ErrAlreadyRedeemed:      "already_redeemed",
	ErrNotEligible:          "not_eligible",
	ErrStateConflict:        "state_conflict",
	ErrAlreadyRecorded:      "already_recorded",
}

// Code returns a stable machine-readable code for err, or "internal_error"
// when err is not a business rule failure.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if code, ok := codes[e.Kind]; ok {
			return code
		}
	}
	return "internal_error"
}
