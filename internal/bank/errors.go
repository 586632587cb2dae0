// internal/bank/errors.go
//
// Domain errors of the bank. They describe broken business rules, not system
// failures; the terminal session prints them and lets the customer try again.
// Returned errors may wrap these with detail, so compare with errors.Is.

package bank

import "errors"

var (
	// ErrNotFound means no account has the given ID.
	ErrNotFound = errors.New("conta não encontrada")

	// ErrBadAmount means the amount is zero or negative.
	ErrBadAmount = errors.New("o valor deve ser maior que zero")

	// ErrBadAmountFormat means the typed amount is not a number with at most
	// two decimals, separated by comma or dot.
	ErrBadAmountFormat = errors.New("valor não aceito: insira apenas números, separando as casas decimais por vírgula ou ponto")

	// ErrInsufficient means the balance does not cover the withdrawal.
	ErrInsufficient = errors.New("o saldo disponível na conta é insuficiente para realizar o saque")

	// ErrWithdrawalLimit means the amount exceeds the per-withdrawal limit.
	ErrWithdrawalLimit = errors.New("o valor excede o limite por saque")

	// ErrDailyLimit means the account already used all withdrawals for today.
	ErrDailyLimit = errors.New("você já excedeu o número máximo de saques diários")

	// ErrUserExists means a user with the same CPF is already registered.
	ErrUserExists = errors.New("um usuário com este CPF já existe na base de dados")

	// ErrUserNotFound means no user has the given CPF.
	ErrUserNotFound = errors.New("um usuário com este CPF não existe na base de dados")

	// ErrInvalidUF means the state code is not one of the 27 federative units.
	ErrInvalidUF = errors.New("os caracteres inseridos não correspondem a nenhum Estado brasileiro")

	// ErrEmptyName means the user's name is blank.
	ErrEmptyName = errors.New("o nome não pode ser vazio")

	// ErrBirthDate means the birth date is not a valid dd-mm-aaaa date in the past.
	ErrBirthDate = errors.New("a data de nascimento é inválida")
)
