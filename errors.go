package planner

import "errors"

var (
	// ErrInvalidNumber is returned when a text input cannot be read as a number.
	ErrInvalidNumber = errors.New("not a valid number")
	// ErrIndexOutOfRange is returned when a 1-based selection does not match any record.
	ErrIndexOutOfRange = errors.New("invalid selection")
	// ErrNegativeDeposit is returned when a deposit would decrease a savings goal.
	ErrNegativeDeposit = errors.New("deposit amount must not be negative")
	// ErrNotFound is returned when the ledger file does not exist.
	ErrNotFound = errors.New("no data file found")
	// ErrInvalidText is returned when a category or a description could not be written to the ledger file.
	ErrInvalidText = errors.New("must not contain '|' or line breaks")
	// ErrMalformedAmount is returned when a persisted amount cannot be read back.
	ErrMalformedAmount = errors.New("malformed amount")
)
