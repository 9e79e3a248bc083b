package domain

import "fmt"

// ValidationCode is the machine-readable classification of a rejected input.
type ValidationCode string

const (
	CodeAmountOutOfRange     ValidationCode = "amount_out_of_range"
	CodePartyCountOutOfRange ValidationCode = "party_count_out_of_range"
	CodeFileCountOutOfRange  ValidationCode = "file_count_out_of_range"
	CodeUnsupportedYear      ValidationCode = "unsupported_tariff_year"
	CodeMissingField         ValidationCode = "missing_required_field"
	CodeUnknownKey           ValidationCode = "unknown_enumerated_key"
)

// ValidationError is a typed validation failure. MessageKey is a stable
// identifier the presentation layer localizes; the engine never produces
// user-facing prose. Calculators return these as values and never panic
// for expected bad input.
type ValidationError struct {
	Code       ValidationCode `json:"code"`
	Field      string         `json:"field"`
	MessageKey string         `json:"message_key"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Field, e.MessageKey)
}

func amountError(field string) *ValidationError {
	return &ValidationError{Code: CodeAmountOutOfRange, Field: field, MessageKey: "validation.amount_out_of_range"}
}

func partyCountError(field string) *ValidationError {
	return &ValidationError{Code: CodePartyCountOutOfRange, Field: field, MessageKey: "validation.party_count_out_of_range"}
}

func fileCountError(field string) *ValidationError {
	return &ValidationError{Code: CodeFileCountOutOfRange, Field: field, MessageKey: "validation.file_count_out_of_range"}
}

// UnsupportedYearError reports a tariff year absent from the registry.
func UnsupportedYearError(field string) *ValidationError {
	return &ValidationError{Code: CodeUnsupportedYear, Field: field, MessageKey: "validation.unsupported_tariff_year"}
}

func missingFieldError(field string) *ValidationError {
	return &ValidationError{Code: CodeMissingField, Field: field, MessageKey: "validation.missing_required_field"}
}

func unknownKeyError(field string) *ValidationError {
	return &ValidationError{Code: CodeUnknownKey, Field: field, MessageKey: "validation.unknown_enumerated_key"}
}

// YearSet is the supported-tariff-year surface the tariff registry exposes
// to input validation.
type YearSet interface {
	IsSupported(year int) bool
}
