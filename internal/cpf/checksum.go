// internal/cpf/checksum.go

package cpf

import "fmt"

// WeightedSum multiplies each digit by a descending weight starting at
// len(digits)+1 and returns the sum of the products.
//
//	WeightedSum([]int{2, 6, 4}) // 2*4 + 6*3 + 4*2 = 32
//
// Every element must be a single decimal digit; the whole slice is checked
// before any arithmetic and a violation returns ErrType.
func WeightedSum(digits []int) (int, error) {
	for i, d := range digits {
		if d < 0 || d > 9 {
			return 0, fmt.Errorf("%w: posição %d contém %d", ErrType, i, d)
		}
	}

	total := 0
	weight := len(digits) + 1
	for _, d := range digits {
		total += d * weight
		weight--
	}
	return total, nil
}

// CheckDigit turns a weighted sum into a check digit: 0 when total mod 11 is
// below 2, otherwise 11 minus the remainder.
func CheckDigit(total int) int {
	rem := total % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

// CheckDigits computes the two check digits for a 9-digit prefix.
func CheckDigits(prefix string) (string, error) {
	if err := checkContent(prefix, prefixLength); err != nil {
		return "", err
	}
	digits := toDigits(prefix)
	for n := prefixLength; n < Length; n++ {
		total, err := WeightedSum(digits[:n])
		if err != nil {
			return "", err
		}
		digits = append(digits, CheckDigit(total))
	}
	return fmt.Sprintf("%d%d", digits[prefixLength], digits[prefixLength+1]), nil
}

// verify compares both computed check digits with the trailing digits of a
// cleaned 11-digit CPF.
func verify(cleaned string) (bool, error) {
	digits := toDigits(cleaned)
	for n := prefixLength; n < Length; n++ {
		total, err := WeightedSum(digits[:n])
		if err != nil {
			return false, err
		}
		if CheckDigit(total) != digits[n] {
			return false, nil
		}
	}
	return true, nil
}

// toDigits converts ASCII digits to their values. It does not validate;
// WeightedSum rejects anything outside 0-9.
func toDigits(s string) []int {
	out := make([]int, len(s), len(s)+2)
	for i := 0; i < len(s); i++ {
		out[i] = int(s[i]) - '0'
	}
	return out
}
