// internal/cpf/errors.go
//
// Sentinel errors returned by the validator. Returned errors wrap one of these
// together with the offending input, so callers compare with errors.Is.

package cpf

import "errors"

var (
	// ErrFormat means the candidate does not have the XXX.XXX.XXX-XX shape.
	ErrFormat = errors.New("CPF fora do formato XXX.XXX.XXX-XX")

	// ErrNonDigit means something other than digits remained after removing
	// the '.' and '-' separators.
	ErrNonDigit = errors.New("CPF deve conter apenas números")

	// ErrLength means the cleaned candidate does not have exactly 11 digits
	// (9 for CheckDigits).
	ErrLength = errors.New("CPF com quantidade de dígitos incorreta")

	// ErrType means a value outside 0-9 reached the checksum arithmetic.
	// Validate and ValidateDigits reject such input earlier, so seeing it
	// from them indicates a bug.
	ErrType = errors.New("o cálculo do dígito verificador aceita apenas dígitos de 0 a 9")

	// ErrInvalid means the check digits do not match. Only Normalize returns it;
	// Validate reports a mismatch as (false, nil).
	ErrInvalid = errors.New("CPF inválido")
)
