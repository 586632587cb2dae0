package logger

import (
	"log/slog"
	"strings"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Operation records a menu option or bank operation under the key "operation".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// AccountID records the account identifier under the key "account_id".
func AccountID(id int) slog.Attr {
	return slog.Int("account_id", id)
}

// Amount records a monetary amount, already formatted, under the key "amount".
func Amount(v string) slog.Attr {
	return slog.String("amount", v)
}

// CPF records a taxpayer number with the first three and last two digits
// hidden, e.g. "***.982.247-**". Input in any other shape is fully masked.
func CPF(value string) slog.Attr {
	digits := strings.NewReplacer(".", "", "-", "").Replace(value)
	if len(digits) != 11 {
		return slog.String("cpf", "***")
	}
	return slog.String("cpf", "***."+digits[3:6]+"."+digits[6:9]+"-**")
}
