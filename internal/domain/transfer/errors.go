package domain_transfer

import (
	"errors"
	"fmt"
)

var ErrMissingParameter = errors.New("transfer: missing required parameter")

var (
	ErrInvalidAccountID = errors.New("transfer: source_account_id and destination_account_id are required")
	ErrSameAccount      = errors.New("transfer: source_account_id equals destination_account_id")
	ErrInvalidAmount    = errors.New("transfer: amount must be > 0")
	ErrInvalidCurrency  = errors.New("transfer: currency must be 3-letter ISO-like code")
)

// MissingParameterError reports the first required parameter absent from a call.
type MissingParameterError struct {
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s is required", e.Param)
}

func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}
