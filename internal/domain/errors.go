package domain

import "errors"

// Error taxonomy surfaced by the engine. Call sites wrap these with context;
// callers match with errors.Is.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownTaxYear = errors.New("unknown tax year")
	ErrInvalidHorizon = errors.New("invalid horizon")
)
