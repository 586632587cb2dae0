// Package bank holds the domain model and business rules.
// This file defines User, Account and statement Entry; no terminal or
// serialization details live here.

package bank

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Operation is the kind of a statement entry.
type Operation string

const (
	OpDeposit    Operation = "deposit"
	OpWithdrawal Operation = "withdrawal"
)

// Label returns the Portuguese name shown in statements.
func (o Operation) Label() string {
	switch o {
	case OpDeposit:
		return "depósito"
	case OpWithdrawal:
		return "saque"
	default:
		return "N/A"
	}
}

// User represents a bank customer, identified by CPF (11 bare digits).
type User struct {
	CPF           string
	Name          string
	BirthDate     time.Time
	Address       string // logradouro
	HouseNumber   string
	Neighbourhood string // bairro
	City          string
	UF            string
}

// FullAddress formats the address as "street - number - neighbourhood - city/UF".
func (u User) FullAddress() string {
	return fmt.Sprintf("%s - %s - %s - %s/%s", u.Address, u.HouseNumber, u.Neighbourhood, u.City, u.UF)
}

// Account represents a bank account owned by a registered user.
type Account struct {
	ID       int
	Agency   string
	OwnerCPF string
	Balance  decimal.Decimal
	Entries  []Entry
}

// clone copies the account including its entries, so callers never share the
// internal slice.
func (a *Account) clone() *Account {
	cp := *a
	cp.Entries = append([]Entry(nil), a.Entries...)
	return &cp
}

// Entry represents one statement line.
type Entry struct {
	ID           string
	Time         time.Time
	Operation    Operation
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
}
