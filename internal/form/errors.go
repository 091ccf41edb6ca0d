package form

import "errors"

var (
	ErrTypeRequired    = errors.New("transaction type is required")
	ErrUnknownType     = errors.New("unknown transaction type")
	ErrAmountRequired  = errors.New("amount is required")
	ErrInvalidAmount   = errors.New("amount must be a number")
	ErrUnknownCategory = errors.New("unknown category")
	ErrWrongStep       = errors.New("not available at this step")
)
