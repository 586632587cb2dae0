// internal/cli/output.go
//
// Everything the customer reads is produced here, so wording and layout stay
// consistent across options.
package cli

import (
	"fmt"
	"strings"

	"bankcli/internal/bank"
	"bankcli/internal/cpf"
)

const (
	msgInvalidOption  = "Opção inválida, por favor, selecione novamente a operação desejada"
	msgGoodbye        = "Agradecemos a preferência!"
	msgTryAgain       = "Tente novamente:"
	msgNoOperations   = "Nenhuma operação feita até o momento"
	msgNoUsers        = "Nenhum usuário cadastrado até o momento"
	msgNoAccounts     = "Nenhuma conta registrada até o momento"
	msgDepositOK      = "O depósito foi realizado com sucesso!"
	msgWithdrawOK     = "O saque foi realizado com sucesso!"
	msgUserRegistered = "Usuário cadastrado com sucesso!"
)

// formatStatement renders one line per entry:
//
//	Operação: depósito, Valor da operação: R$ 500.00, Saldo após a operação: R$ 1000.00
func formatStatement(entries []bank.Entry) string {
	if len(entries) == 0 {
		return msgNoOperations
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("Operação: %s, Valor da operação: %s, Saldo após a operação: %s",
			e.Operation.Label(), bank.FormatBRL(e.Amount), bank.FormatBRL(e.BalanceAfter)))
	}
	return strings.Join(lines, "\n")
}

// formatUsers renders name, punctuated CPF and address of each user.
func formatUsers(users []*bank.User) string {
	if len(users) == 0 {
		return msgNoUsers
	}
	blocks := make([]string, 0, len(users))
	for _, u := range users {
		blocks = append(blocks, fmt.Sprintf("Nome:\t%s\nCPF:\t%s\nEndereço:\t%s",
			u.Name, displayCPF(u.CPF), u.FullAddress()))
	}
	return strings.Join(blocks, "\n")
}

// accountLine pairs an account with its owner's name for display.
type accountLine struct {
	account *bank.Account
	owner   string
}

// formatAccounts renders ID, agency and owner name of each account.
func formatAccounts(lines []accountLine) string {
	if len(lines) == 0 {
		return msgNoAccounts
	}
	blocks := make([]string, 0, len(lines))
	for _, l := range lines {
		blocks = append(blocks, fmt.Sprintf("Identificador único:\t%d\nAgência:\t%s\nNome do usuário:\t%s",
			l.account.ID, l.account.Agency, l.owner))
	}
	return strings.Join(blocks, "\n")
}

func displayCPF(id string) string {
	if s, err := cpf.Format(id); err == nil {
		return s
	}
	return id
}
