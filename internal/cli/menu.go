// internal/cli/menu.go
//
// Option table of the menu. Options are registered explicitly, in display
// order; adding an option means adding one row here and one function in
// commands.go.
package cli

import (
	"context"
	"fmt"
	"strings"
)

// command is one menu option.
type command struct {
	key   string
	label string // shown in the menu
	title string // printed when the option starts
	run   func(ctx context.Context) error
	exit  bool
}

func (s *Session) routes() []command {
	return []command{
		{key: "d", label: "Depositar", title: "Depósito", run: s.deposit},
		{key: "s", label: "Sacar", title: "Saque", run: s.withdraw},
		{key: "x", label: "Extrato", title: "Extrato", run: s.statement},
		{key: "u", label: "Novo usuário", title: "Cadastro de usuário", run: s.newUser},
		{key: "c", label: "Nova conta", title: "Cadastro de conta", run: s.newAccount},
		{key: "lu", label: "Listar usuários", title: "Usuários", run: s.listUsers},
		{key: "lc", label: "Listar contas", title: "Contas", run: s.listAccounts},
		{key: "r", label: "Exportar dados", title: "Exportação", run: s.export},
		{key: "e", label: "Sair", exit: true},
	}
}

// lookup finds the option for a key, ignoring case.
func (s *Session) lookup(key string) (command, bool) {
	key = strings.ToLower(key)
	for _, c := range s.commands {
		if c.key == key {
			return c, true
		}
	}
	return command{}, false
}

// menu renders the option table followed by the input marker.
func (s *Session) menu() string {
	var b strings.Builder
	b.WriteString("\n\n")
	for _, c := range s.commands {
		fmt.Fprintf(&b, "[%s] %s\n", c.key, c.label)
	}
	b.WriteString("\n=> ")
	return b.String()
}
