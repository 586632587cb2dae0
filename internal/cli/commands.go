// internal/cli/commands.go
//
// One function per menu option. Each one:
//  1. asks for its inputs, re-asking on invalid answers (askUntil)
//  2. calls the bank
//  3. prints the result through output.go
//
// Business rule violations (limits, balance) are returned to the menu loop,
// which prints them; they are not retried.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"bankcli/internal/bank"
	"bankcli/internal/export"
	"bankcli/internal/platform/logger"
)

var (
	// ErrBadAccountID means the typed account number is not a positive integer.
	ErrBadAccountID = errors.New("número de conta inválido")

	// ErrUFLength means the typed state code does not have two letters.
	ErrUFLength = errors.New("UF deve conter dois caracteres")

	// ErrRequired means a mandatory answer was left blank.
	ErrRequired = errors.New("campo obrigatório")
)

func (s *Session) deposit(ctx context.Context) error {
	if len(s.bank.Accounts()) == 0 {
		s.println(msgNoAccounts)
		return nil
	}
	id, err := askUntil(ctx, s, "Insira o número da conta: ", s.parseAccountID)
	if err != nil {
		return err
	}
	amt, err := askUntil(ctx, s, "Insira o valor que será depositado: ", parsePositiveAmount)
	if err != nil {
		return err
	}
	a, err := s.bank.Deposit(id, amt)
	if err != nil {
		return err
	}
	s.println(msgDepositOK)
	s.println("Saldo atual: " + bank.FormatBRL(a.Balance))
	return nil
}

func (s *Session) withdraw(ctx context.Context) error {
	if len(s.bank.Accounts()) == 0 {
		s.println(msgNoAccounts)
		return nil
	}
	id, err := askUntil(ctx, s, "Insira o número da conta: ", s.parseAccountID)
	if err != nil {
		return err
	}
	label := fmt.Sprintf("Insira o valor que será sacado (limite %s): ", bank.FormatBRL(s.bank.WithdrawalLimit()))
	amt, err := askUntil(ctx, s, label, parsePositiveAmount)
	if err != nil {
		return err
	}
	a, err := s.bank.Withdraw(id, amt)
	if err != nil {
		return err
	}
	s.println(msgWithdrawOK)
	s.println("Saldo atual: " + bank.FormatBRL(a.Balance))
	return nil
}

func (s *Session) statement(ctx context.Context) error {
	if len(s.bank.Accounts()) == 0 {
		s.println(msgNoAccounts)
		return nil
	}
	id, err := askUntil(ctx, s, "Insira o número da conta: ", s.parseAccountID)
	if err != nil {
		return err
	}
	entries, err := s.bank.Statement(id)
	if err != nil {
		return err
	}
	a, err := s.bank.Get(id)
	if err != nil {
		return err
	}
	s.println(formatStatement(entries))
	s.println("Saldo: " + bank.FormatBRL(a.Balance))
	return nil
}

func (s *Session) newUser(ctx context.Context) error {
	id, err := askUntil(ctx, s, "Insira o CPF do usuário que deseja cadastrar: ", s.bank.CheckNewUser)
	if err != nil {
		return err
	}
	u := bank.User{CPF: id}

	if u.Name, err = askUntil(ctx, s, "Informe o nome completo: ", required); err != nil {
		return err
	}
	if u.BirthDate, err = askUntil(ctx, s, "Informe a data de nascimento (dd-mm-aaaa): ", bank.ParseBirthDate); err != nil {
		return err
	}
	if u.Address, err = askUntil(ctx, s, "Informe o logradouro de residência: ", required); err != nil {
		return err
	}
	if u.HouseNumber, err = askUntil(ctx, s, "Informe o número da casa: ", required); err != nil {
		return err
	}
	if u.Neighbourhood, err = askUntil(ctx, s, "Informe o bairro de residência: ", required); err != nil {
		return err
	}
	if u.City, err = askUntil(ctx, s, "Informe a cidade de residência: ", required); err != nil {
		return err
	}
	if u.UF, err = askUntil(ctx, s, "Informe o Estado de residência (UF, apenas dois caracteres): ", parseUF); err != nil {
		return err
	}

	if _, err := s.bank.RegisterUser(u); err != nil {
		return err
	}
	s.println(msgUserRegistered)
	return nil
}

func (s *Session) newAccount(ctx context.Context) error {
	owner, err := askUntil(ctx, s, "Insira o CPF do dono da conta a ser criada: ", s.bank.FindUser)
	if err != nil {
		return err
	}
	a, err := s.bank.RegisterAccount(owner.CPF)
	if err != nil {
		return err
	}
	s.println(fmt.Sprintf("Conta de ID %d foi criada para o usuário de CPF %s", a.ID, displayCPF(owner.CPF)))
	return nil
}

func (s *Session) listUsers(context.Context) error {
	s.println(formatUsers(s.bank.Users()))
	return nil
}

func (s *Session) listAccounts(context.Context) error {
	accts := s.bank.Accounts()
	lines := make([]accountLine, 0, len(accts))
	for _, a := range accts {
		owner, err := s.bank.Owner(a.ID)
		if err != nil {
			return err
		}
		lines = append(lines, accountLine{account: a, owner: owner.Name})
	}
	s.println(formatAccounts(lines))
	return nil
}

func (s *Session) export(context.Context) error {
	if err := export.Encode(s.out, s.bank.Snapshot(), s.format); err != nil {
		return err
	}
	s.log.Info("snapshot exported", logger.Operation("export"), slog.String("format", string(s.format)))
	return nil
}

// ────────────────
// Answer parsers
// ────────────────

// parseAccountID accepts the number of an existing account.
func (s *Session) parseAccountID(in string) (int, error) {
	id, err := strconv.Atoi(in)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrBadAccountID, in)
	}
	if _, err := s.bank.Get(id); err != nil {
		return 0, err
	}
	return id, nil
}

// parsePositiveAmount accepts amounts like "500", "500.50" or "500,50" above zero.
func parsePositiveAmount(in string) (decimal.Decimal, error) {
	amt, err := bank.ParseAmount(in)
	if err != nil {
		return decimal.Zero, err
	}
	if !amt.IsPositive() {
		return decimal.Zero, bank.ErrBadAmount
	}
	return amt, nil
}

func parseUF(in string) (string, error) {
	uf := strings.ToUpper(in)
	if len(uf) != 2 {
		return "", ErrUFLength
	}
	if !bank.ValidUF(uf) {
		return "", fmt.Errorf("%w: %q", bank.ErrInvalidUF, in)
	}
	return uf, nil
}

func required(in string) (string, error) {
	if in == "" {
		return "", ErrRequired
	}
	return in, nil
}
