// internal/cpf/cpf.go

package cpf

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// Length is the number of digits in a cleaned CPF.
	Length = 11

	prefixLength = 9
)

var (
	// permissivePattern is the historical input mask. The dots are unescaped,
	// so any character is accepted in those two positions.
	permissivePattern = regexp.MustCompile(`^\d{3}.\d{3}.\d{3}-\d{2}$`)
	strictPattern     = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

	separators = strings.NewReplacer(".", "", "-", "")
)

// Validator checks CPF numbers. The zero value uses the permissive mask;
// it carries configuration only and is safe to copy and share.
type Validator struct {
	strict bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithStrictSeparators requires literal dots in the punctuated form instead of
// accepting any character in the dot positions.
func WithStrictSeparators() Option {
	return func(v *Validator) { v.strict = true }
}

// New returns a Validator configured by opts.
func New(opts ...Option) Validator {
	var v Validator
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// Strict reports whether the validator requires literal dots.
func (v Validator) Strict() bool { return v.strict }

// Validate checks a punctuated CPF (XXX.XXX.XXX-XX).
//
// Checks run in this order and stop at the first failure:
//  1. after removing '.' and '-', only digits remain (ErrNonDigit)
//  2. exactly 11 digits remain (ErrLength)
//  3. the input matches the punctuated mask (ErrFormat)
//  4. both check digits match; a mismatch returns (false, nil)
func (v Validator) Validate(candidate string) (bool, error) {
	cleaned := Clean(candidate)
	if err := checkContent(cleaned, Length); err != nil {
		return false, err
	}
	if !v.pattern().MatchString(candidate) {
		return false, fmt.Errorf("%w: %q", ErrFormat, candidate)
	}
	return verify(cleaned)
}

// ValidateDigits checks a CPF that is already stripped of punctuation.
func (v Validator) ValidateDigits(cleaned string) (bool, error) {
	if err := checkContent(cleaned, Length); err != nil {
		return false, err
	}
	return verify(cleaned)
}

// Normalize accepts either shape, validates it and returns the 11 bare digits.
// Input containing '.' or '-' goes through Validate, anything else through
// ValidateDigits. A checksum mismatch is returned as ErrInvalid.
func (v Validator) Normalize(input string) (string, error) {
	input = strings.TrimSpace(input)

	var (
		ok  bool
		err error
	)
	if strings.ContainsAny(input, ".-") {
		ok, err = v.Validate(input)
	} else {
		ok, err = v.ValidateDigits(input)
	}
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalid, input)
	}
	return Clean(input), nil
}

func (v Validator) pattern() *regexp.Regexp {
	if v.strict {
		return strictPattern
	}
	return permissivePattern
}

var std Validator

// Validate checks a punctuated CPF with the default (permissive) validator.
func Validate(candidate string) (bool, error) { return std.Validate(candidate) }

// ValidateDigits checks an 11-digit CPF with the default validator.
func ValidateDigits(cleaned string) (bool, error) { return std.ValidateDigits(cleaned) }

// Normalize validates either shape with the default validator and returns the
// bare digits.
func Normalize(input string) (string, error) { return std.Normalize(input) }

// Clean removes the '.' and '-' separators. Nothing else is touched.
func Clean(candidate string) string {
	return separators.Replace(candidate)
}

// Format renders 11 bare digits as XXX.XXX.XXX-XX.
func Format(cleaned string) (string, error) {
	if err := checkContent(cleaned, Length); err != nil {
		return "", err
	}
	return cleaned[0:3] + "." + cleaned[3:6] + "." + cleaned[6:9] + "-" + cleaned[9:], nil
}

// checkContent reports ErrNonDigit before ErrLength, so a short string with
// letters is a digit problem first.
func checkContent(s string, want int) error {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("%w: %q", ErrNonDigit, s)
		}
	}
	if len(s) != want {
		return fmt.Errorf("%w: %q tem %d, esperado %d", ErrLength, s, len(s), want)
	}
	return nil
}
