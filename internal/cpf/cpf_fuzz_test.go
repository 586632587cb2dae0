package cpf

import (
	"errors"
	"testing"
)

// FuzzValidate checks that arbitrary input never panics, that a result is
// either an answer or an error, and that accepted numbers round-trip through
// Clean and Format.
func FuzzValidate(f *testing.F) {
	f.Add("529.982.247-25")
	f.Add("123.456.789-00")
	f.Add("12345678900")
	f.Add("123.abc.789-00")
	f.Add("")
	f.Add("...........--")
	f.Add("529\n982.247-25")
	f.Add(string([]byte{0xff, 0xfe, '1'}))

	f.Fuzz(func(t *testing.T, input string) {
		ok, err := Validate(input)
		if err != nil {
			if ok {
				t.Fatalf("Validate(%q) returned true with error %v", input, err)
			}
			if errors.Is(err, ErrType) {
				t.Fatalf("Validate(%q) reached checksum arithmetic with bad digits", input)
			}
			return
		}

		cleaned := Clean(input)
		if len(cleaned) != Length {
			t.Fatalf("Validate(%q) accepted %d digits", input, len(cleaned))
		}
		digitsOK, digitsErr := ValidateDigits(cleaned)
		if digitsErr != nil || digitsOK != ok {
			t.Fatalf("ValidateDigits(%q) = %v, %v; Validate gave %v", cleaned, digitsOK, digitsErr, ok)
		}
		if !ok {
			return
		}

		formatted, err := Format(cleaned)
		if err != nil {
			t.Fatalf("Format(%q): %v", cleaned, err)
		}
		if again, err := Validate(formatted); err != nil || !again {
			t.Fatalf("Validate(Format(%q)) = %v, %v", cleaned, again, err)
		}
	})
}
