// internal/bank/input_test.go
//
// Parsing of what the customer types: amounts, birth dates, state codes and
// the normalization applied before a user is stored.

package bank

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "500", want: "500"},
		{in: "500.50", want: "500.5"},
		{in: "500,50", want: "500.5"},
		{in: " 10,5 ", want: "10.5"},
		{in: "-5", want: "-5"},
		{in: "0", want: "0"},
		{in: "1.000,00", err: true},
		{in: "10.555", err: true},
		{in: "dez", err: true},
		{in: "", err: true},
		{in: "1e3", err: true},
		{in: "5E2", err: true},
		{in: "1e-2", err: true},
		{in: "1e20000000", err: true},
		{in: "5.", err: true},
		{in: ",5", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, ErrBadAmountFormat)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1500.90", FormatBRL(decimal.RequireFromString("1500.9")))
	assert.Equal(t, "R$ 0.00", FormatBRL(decimal.Zero))
}

func TestParseBirthDate(t *testing.T) {
	got, err := ParseBirthDate("01-02-1990")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 2, 1, 0, 0, 0, 0, time.UTC), got)

	for _, in := range []string{"1990-02-01", "31-02-1990", "01/02/1990", ""} {
		_, err := ParseBirthDate(in)
		assert.ErrorIs(t, err, ErrBirthDate, in)
	}
}

func TestValidUF(t *testing.T) {
	assert.True(t, ValidUF("PE"))
	assert.True(t, ValidUF("DF"))
	assert.False(t, ValidUF("pe"))
	assert.False(t, ValidUF("XX"))
	assert.Len(t, federativeUnits, 27)
}

func TestNormalizeUser(t *testing.T) {
	u := normalizeUser(User{
		Name:          "  maria   DA  silva ",
		Address:       " Rua das Flores ",
		HouseNumber:   " 10 ",
		Neighbourhood: "boa viagem",
		City:          "são paulo",
		UF:            " sp ",
	})
	assert.Equal(t, "Maria da Silva", u.Name)
	assert.Equal(t, "Rua das Flores", u.Address)
	assert.Equal(t, "10", u.HouseNumber)
	assert.Equal(t, "Boa Viagem", u.Neighbourhood)
	assert.Equal(t, "São Paulo", u.City)
	assert.Equal(t, "SP", u.UF)
}

func TestTitleName(t *testing.T) {
	tests := map[string]string{
		"maria da silva":          "Maria da Silva",
		"  JOÃO   DOS  SANTOS ":   "João dos Santos",
		"ana de souza e oliveira": "Ana de Souza e Oliveira",
		"da costa":                "Da Costa",
		"josé":                    "José",
		"":                        "",
	}
	for in, want := range tests {
		assert.Equal(t, want, titleName(in), in)
	}
}
