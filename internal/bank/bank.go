// internal/bank/bank.go

// Package bank defines the core business rules: user and account
// registration, deposits, withdrawals with fixed limits, and statements.
// A single mutex serializes every state change. Money is decimal.Decimal so
// balances carry no float error.
package bank

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankcli/internal/cpf"
	"bankcli/internal/export"
	"bankcli/internal/platform/logger"
)

const (
	DefaultAgency           = "0001"
	DefaultDailyWithdrawals = 3
)

// DefaultWithdrawalLimit is the largest amount a single withdrawal may take.
var DefaultWithdrawalLimit = decimal.NewFromInt(500)

// Bank is the aggregate root holding users and accounts.
//   - mu: serializes reads and writes.
//   - users / accts: kept in registration order; account IDs are positions + 1.
//   - byCPF: index over users, keyed by bare 11-digit CPF.
type Bank struct {
	mu     sync.Mutex
	users  []*User
	byCPF  map[string]*User
	accts  []*Account
	limits limits

	cpf   cpf.Validator
	now   func() time.Time
	newID func() string
	log   *slog.Logger
}

type limits struct {
	agency           string
	withdrawal       decimal.Decimal
	dailyWithdrawals int
}

// Option configures a Bank.
type Option func(*Bank)

// WithAgency sets the agency number given to new accounts.
func WithAgency(agency string) Option {
	return func(b *Bank) { b.limits.agency = agency }
}

// WithWithdrawalLimit sets the maximum amount per withdrawal.
func WithWithdrawalLimit(limit decimal.Decimal) Option {
	return func(b *Bank) { b.limits.withdrawal = limit }
}

// WithDailyWithdrawals sets how many withdrawals an account may make per day.
func WithDailyWithdrawals(n int) Option {
	return func(b *Bank) { b.limits.dailyWithdrawals = n }
}

// WithCPFValidator replaces the default (permissive) CPF validator.
func WithCPFValidator(v cpf.Validator) Option {
	return func(b *Bank) { b.cpf = v }
}

// WithClock overrides time.Now; the daily withdrawal count uses its calendar day.
func WithClock(now func() time.Time) Option {
	return func(b *Bank) {
		if now != nil {
			b.now = now
		}
	}
}

// WithIDGenerator overrides the UUID generator for statement entries.
func WithIDGenerator(gen func() string) Option {
	return func(b *Bank) {
		if gen != nil {
			b.newID = gen
		}
	}
}

// WithLogger sets the logger; state changes are logged at Info.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bank) {
		if l != nil {
			b.log = l
		}
	}
}

// NewBank creates an empty in-memory bank.
func NewBank(opts ...Option) *Bank {
	b := &Bank{
		byCPF: make(map[string]*User),
		limits: limits{
			agency:           DefaultAgency,
			withdrawal:       DefaultWithdrawalLimit,
			dailyWithdrawals: DefaultDailyWithdrawals,
		},
		now:   time.Now,
		newID: uuid.NewString,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.With(logger.Component("bank"))
	return b
}

// WithdrawalLimit returns the configured per-withdrawal limit.
func (b *Bank) WithdrawalLimit() decimal.Decimal { return b.limits.withdrawal }

// ────────────────
// Users
// ────────────────

// RegisterUser validates and stores a new user. Checks, in order:
//  1. the CPF is valid in either shape (cpf.Normalize errors pass through)
//  2. no user has that CPF yet (ErrUserExists)
//  3. the name is not blank (ErrEmptyName)
//  4. the birth date is set and not in the future (ErrBirthDate)
//  5. the UF is a federative unit (ErrInvalidUF)
//
// The stored copy has the bare CPF and normalized fields.
func (b *Bank) RegisterUser(u User) (*User, error) {
	id, err := b.cpf.Normalize(u.CPF)
	if err != nil {
		return nil, err
	}
	u.CPF = id
	u = normalizeUser(u)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.byCPF[id]; ok {
		return nil, ErrUserExists
	}
	if u.Name == "" {
		return nil, ErrEmptyName
	}
	if u.BirthDate.IsZero() || u.BirthDate.After(b.now()) {
		return nil, ErrBirthDate
	}
	if !ValidUF(u.UF) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUF, u.UF)
	}

	stored := u
	b.users = append(b.users, &stored)
	b.byCPF[id] = &stored
	b.log.Info("user registered", logger.CPF(id))

	cp := stored
	return &cp, nil
}

// CheckNewUser reports whether a user with this CPF could be registered: the
// CPF is valid and not taken. It lets the terminal session fail fast before
// asking for the remaining fields.
func (b *Bank) CheckNewUser(candidate string) (string, error) {
	id, err := b.cpf.Normalize(candidate)
	if err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.byCPF[id]; ok {
		return "", ErrUserExists
	}
	return id, nil
}

// FindUser looks a user up by CPF in either shape.
func (b *Bank) FindUser(candidate string) (*User, error) {
	id, err := b.cpf.Normalize(candidate)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.byCPF[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// Users returns copies of all users in registration order.
func (b *Bank) Users() []*User {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*User, 0, len(b.users))
	for _, u := range b.users {
		cp := *u
		out = append(out, &cp)
	}
	return out
}

// ────────────────
// Accounts
// ────────────────

// RegisterAccount opens an account for a registered user. The CPF may be
// punctuated or bare; an unknown owner returns ErrUserNotFound.
func (b *Bank) RegisterAccount(ownerCPF string) (*Account, error) {
	id, err := b.cpf.Normalize(ownerCPF)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.byCPF[id]; !ok {
		return nil, ErrUserNotFound
	}
	a := &Account{
		ID:       len(b.accts) + 1,
		Agency:   b.limits.agency,
		OwnerCPF: id,
		Balance:  decimal.Zero,
	}
	b.accts = append(b.accts, a)
	b.log.Info("account registered", logger.AccountID(a.ID), logger.CPF(id))
	return a.clone(), nil
}

// Get returns a copy of the account; ErrNotFound if the ID is unknown.
func (b *Bank) Get(id int) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, err := b.account(id)
	if err != nil {
		return nil, err
	}
	return a.clone(), nil
}

// Accounts returns copies of all accounts in ID order.
func (b *Bank) Accounts() []*Account {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Account, 0, len(b.accts))
	for _, a := range b.accts {
		out = append(out, a.clone())
	}
	return out
}

// Owner returns the user owning the account.
func (b *Bank) Owner(id int) (*User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, err := b.account(id)
	if err != nil {
		return nil, err
	}
	u, ok := b.byCPF[a.OwnerCPF]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// account must be called with mu held.
func (b *Bank) account(id int) (*Account, error) {
	if id < 1 || id > len(b.accts) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return b.accts[id-1], nil
}

// ────────────────
// Money movement
// ────────────────

// Deposit adds amt (> 0) to the account and records a deposit entry.
// Balance and statement are updated together inside the critical section.
func (b *Bank) Deposit(id int, amt decimal.Decimal) (*Account, error) {
	if !amt.IsPositive() {
		return nil, ErrBadAmount
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	a, err := b.account(id)
	if err != nil {
		return nil, err
	}
	a.Balance = a.Balance.Add(amt)
	b.record(a, OpDeposit, amt)
	b.log.Info("deposit", logger.AccountID(id), logger.Amount(amt.StringFixed(2)))
	return a.clone(), nil
}

// Withdraw takes amt from the account. Checks, in order:
//  1. amt > 0 (ErrBadAmount)
//  2. fewer withdrawals today than the daily limit (ErrDailyLimit)
//  3. amt within the per-withdrawal limit (ErrWithdrawalLimit)
//  4. balance covers amt (ErrInsufficient)
//
// A failed check leaves the account untouched.
func (b *Bank) Withdraw(id int, amt decimal.Decimal) (*Account, error) {
	if !amt.IsPositive() {
		return nil, ErrBadAmount
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	a, err := b.account(id)
	if err != nil {
		return nil, err
	}
	if b.withdrawalsToday(a) >= b.limits.dailyWithdrawals {
		return nil, fmt.Errorf("%w (%d por dia)", ErrDailyLimit, b.limits.dailyWithdrawals)
	}
	if amt.GreaterThan(b.limits.withdrawal) {
		return nil, fmt.Errorf("%w de %s", ErrWithdrawalLimit, FormatBRL(b.limits.withdrawal))
	}
	if a.Balance.LessThan(amt) {
		return nil, ErrInsufficient
	}
	a.Balance = a.Balance.Sub(amt)
	b.record(a, OpWithdrawal, amt)
	b.log.Info("withdrawal", logger.AccountID(id), logger.Amount(amt.StringFixed(2)))
	return a.clone(), nil
}

// WithdrawalsLeft returns how many withdrawals the account may still make today.
func (b *Bank) WithdrawalsLeft(id int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, err := b.account(id)
	if err != nil {
		return 0, err
	}
	return max(b.limits.dailyWithdrawals-b.withdrawalsToday(a), 0), nil
}

// Statement returns a copy of the account's entries, oldest first.
func (b *Bank) Statement(id int) ([]Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, err := b.account(id)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, len(a.Entries))
	copy(out, a.Entries)
	return out, nil
}

// record appends an entry carrying the post-operation balance; mu must be held.
func (b *Bank) record(a *Account, op Operation, amt decimal.Decimal) {
	a.Entries = append(a.Entries, Entry{
		ID:           b.newID(),
		Time:         b.now(),
		Operation:    op,
		Amount:       amt,
		BalanceAfter: a.Balance,
	})
}

// withdrawalsToday counts withdrawals on the clock's current calendar day.
func (b *Bank) withdrawalsToday(a *Account) int {
	now := b.now()
	y, m, d := now.Date()
	n := 0
	for _, e := range a.Entries {
		if e.Operation != OpWithdrawal {
			continue
		}
		ey, em, ed := e.Time.In(now.Location()).Date()
		if ey == y && em == m && ed == d {
			n++
		}
	}
	return n
}

// ────────────────
// Export
// ────────────────

// Snapshot exports users and accounts for display. CPFs are punctuated and
// amounts carry two decimals.
func (b *Bank) Snapshot() export.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := export.Snapshot{
		Meta: export.Meta{
			Timestamp: b.now(),
			Note:      "Agência " + b.limits.agency,
		},
		Users:    make([]export.User, 0, len(b.users)),
		Accounts: make([]export.Account, 0, len(b.accts)),
	}
	for _, u := range b.users {
		s.Users = append(s.Users, export.User{
			CPF:       displayCPF(u.CPF),
			Name:      u.Name,
			BirthDate: u.BirthDate.Format(BirthDateLayout),
			Address:   u.FullAddress(),
		})
	}
	for _, a := range b.accts {
		ea := export.Account{
			ID:       a.ID,
			Agency:   a.Agency,
			OwnerCPF: displayCPF(a.OwnerCPF),
			Balance:  a.Balance.StringFixed(2),
			Entries:  make([]export.Entry, 0, len(a.Entries)),
		}
		if u, ok := b.byCPF[a.OwnerCPF]; ok {
			ea.OwnerName = u.Name
		}
		for _, e := range a.Entries {
			ea.Entries = append(ea.Entries, export.Entry{
				ID:           e.ID,
				Time:         e.Time,
				Operation:    string(e.Operation),
				Amount:       e.Amount.StringFixed(2),
				BalanceAfter: e.BalanceAfter.StringFixed(2),
			})
		}
		s.Accounts = append(s.Accounts, ea)
	}
	return s
}

// displayCPF punctuates a stored CPF; stored values are always 11 digits.
func displayCPF(id string) string {
	if s, err := cpf.Format(id); err == nil {
		return s
	}
	return id
}
