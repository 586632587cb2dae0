// internal/bank/user.go
//
// Customer registry rules: CPF uniqueness, birth date and state (UF) checks,
// and the normalization applied to what the customer typed.

package bank

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BirthDateLayout is the dd-mm-aaaa layout used for birth dates.
const BirthDateLayout = "02-01-2006"

var federativeUnits = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA",
	"MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN",
	"RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// ValidUF reports whether uf is one of the 27 federative units. The check is
// case-sensitive; RegisterUser upper-cases before calling it.
func ValidUF(uf string) bool {
	return slices.Contains(federativeUnits, uf)
}

// ParseBirthDate reads a dd-mm-aaaa date.
func ParseBirthDate(s string) (time.Time, error) {
	t, err := time.Parse(BirthDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (use dd-mm-aaaa)", ErrBirthDate, s)
	}
	return t, nil
}

// nameParticles stay lower-case inside a title-cased name ("Maria da Silva").
var nameParticles = []string{"da", "das", "de", "do", "dos", "e"}

// normalizeUser trims every field, title-cases name, neighbourhood and city
// and upper-cases the UF.
func normalizeUser(u User) User {
	title := cases.Title(language.BrazilianPortuguese)
	upper := cases.Upper(language.BrazilianPortuguese)

	u.Name = titleName(u.Name)
	u.Address = strings.TrimSpace(u.Address)
	u.HouseNumber = strings.TrimSpace(u.HouseNumber)
	u.Neighbourhood = title.String(strings.TrimSpace(u.Neighbourhood))
	u.City = title.String(strings.TrimSpace(u.City))
	u.UF = upper.String(strings.TrimSpace(u.UF))
	return u
}

// titleName collapses inner spaces and title-cases each word except the
// connecting particles; the first word is always capitalized.
func titleName(name string) string {
	title := cases.Title(language.BrazilianPortuguese)
	lower := cases.Lower(language.BrazilianPortuguese)

	words := strings.Fields(name)
	for i, w := range words {
		if i > 0 && slices.Contains(nameParticles, lower.String(w)) {
			words[i] = lower.String(w)
			continue
		}
		words[i] = title.String(w)
	}
	return strings.Join(words, " ")
}
