// internal/cli/session_test.go
//
// End-to-end tests of the terminal session: a scripted stdin drives the menu
// against a real in-memory bank and the transcript written to stdout is
// checked. No terminal is needed.
package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankcli/internal/bank"
	"bankcli/internal/export"
	"bankcli/internal/platform/logger"
)

// script joins input lines the way a person would type them.
func script(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// run executes a session over the given input and returns the transcript.
func run(t *testing.T, b *bank.Bank, in io.Reader, opts ...Option) string {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(b, in, &out, opts...)
	require.NoError(t, s.Run(context.Background()))
	return out.String()
}

// seeded returns a bank with maria registered and account 1 holding balance.
func seeded(t *testing.T, balance string) *bank.Bank {
	t.Helper()
	b := bank.NewBank()
	_, err := b.RegisterUser(bank.User{
		CPF: "529.982.247-25", Name: "Maria da Silva",
		BirthDate: time.Date(1990, 2, 1, 0, 0, 0, 0, time.UTC),
		Address:   "Rua das Flores", HouseNumber: "10", Neighbourhood: "Boa Viagem", City: "Recife", UF: "PE",
	})
	require.NoError(t, err)
	a, err := b.RegisterAccount("52998224725")
	require.NoError(t, err)
	if balance != "0" {
		_, err = b.Deposit(a.ID, decimal.RequireFromString(balance))
		require.NoError(t, err)
	}
	return b
}

func TestSessionFullFlow(t *testing.T) {
	b := bank.NewBank()
	out := run(t, b, script(
		"u", "529.982.247-25", "Maria da Silva", "01-02-1990", "Rua das Flores", "10", "boa viagem", "recife", "pe",
		"c", "52998224725",
		"d", "1", "1000",
		"s", "1", "300,50",
		"x", "1",
		"lu",
		"lc",
		"e",
	))

	assert.Contains(t, out, "[d] Depositar\n")
	assert.Contains(t, out, "[lc] Listar contas\n")
	assert.Contains(t, out, msgUserRegistered)
	assert.Contains(t, out, "Conta de ID 1 foi criada para o usuário de CPF 529.982.247-25")
	assert.Contains(t, out, msgDepositOK)
	assert.Contains(t, out, msgWithdrawOK)
	assert.Contains(t, out, "Saldo atual: R$ 699.50")
	assert.Contains(t, out,
		"Operação: depósito, Valor da operação: R$ 1000.00, Saldo após a operação: R$ 1000.00\n"+
			"Operação: saque, Valor da operação: R$ 300.50, Saldo após a operação: R$ 699.50\n"+
			"Saldo: R$ 699.50")
	assert.Contains(t, out, "Nome:\tMaria da Silva\nCPF:\t529.982.247-25\nEndereço:\tRua das Flores - 10 - Boa Viagem - Recife/PE")
	assert.Contains(t, out, "Identificador único:\t1\nAgência:\t0001\nNome do usuário:\tMaria da Silva")
	assert.True(t, strings.HasSuffix(out, msgGoodbye+"\n"))
	assert.NotContains(t, out, "Erro:")

	a, err := b.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "699.50", a.Balance.StringFixed(2))
}

func TestSessionRetriesThenGivesUp(t *testing.T) {
	b := bank.NewBank()
	out := run(t, b, script("u", "123.456.789-00", "12345678900", "abc", "e"))

	assert.Equal(t, 2, strings.Count(out, msgTryAgain))
	assert.Contains(t, out, "Erro: CPF inválido")
	assert.Contains(t, out, "Erro: número máximo de tentativas excedido: CPF deve conter apenas números")
	assert.Contains(t, out, msgGoodbye)
	assert.Empty(t, b.Users())
}

func TestSessionRetryRecovers(t *testing.T) {
	b := seeded(t, "100")
	out := run(t, b, script("d", "7", "1", "dez", "-5", "10,5", "e"), WithMaxAttempts(5))

	assert.Contains(t, out, "Erro: conta não encontrada")
	assert.Contains(t, out, "Erro: valor não aceito")
	assert.Contains(t, out, "Erro: o valor deve ser maior que zero")
	assert.Contains(t, out, "Saldo atual: R$ 110.50")
}

func TestSessionMaxAttempts(t *testing.T) {
	b := bank.NewBank()
	out := run(t, b, script("u", "x", "e"), WithMaxAttempts(1))

	assert.NotContains(t, out, msgTryAgain)
	assert.Contains(t, out, "número máximo de tentativas excedido")
}

func TestSessionDuplicateUser(t *testing.T) {
	b := seeded(t, "0")
	out := run(t, b, script("u", "52998224725", "111.444.777-35", "", "João", "31-12-1985", "Av. Brasil", "1", "Centro", "Rio de Janeiro", "RJJ", "rj", "e"))

	assert.Contains(t, out, "Erro: um usuário com este CPF já existe na base de dados")
	assert.Contains(t, out, "Erro: campo obrigatório")
	assert.Contains(t, out, "Erro: UF deve conter dois caracteres")
	assert.Contains(t, out, msgUserRegistered)
	require.Len(t, b.Users(), 2)
	assert.Equal(t, "RJ", b.Users()[1].UF)
}

func TestSessionNewAccountUnknownOwner(t *testing.T) {
	b := seeded(t, "0")
	out := run(t, b, script("c", "111.444.777-35", "111.444.777-35", "111.444.777-35", "e"))

	assert.Contains(t, out, "Erro: um usuário com este CPF não existe na base de dados")
	assert.Len(t, b.Accounts(), 1)
}

func TestSessionWithdrawRules(t *testing.T) {
	var logs bytes.Buffer
	log := logger.New(logger.WithOutput(&logs), logger.WithLevel(slog.LevelDebug))

	b := seeded(t, "5000")
	out := run(t, b, script(
		"s", "1", "600",
		"s", "1", "500",
		"s", "1", "500",
		"s", "1", "500",
		"s", "1", "1",
		"e",
	), WithLogger(log))

	assert.Contains(t, out, "Erro: o valor excede o limite por saque de R$ 500.00")
	assert.Equal(t, 3, strings.Count(out, msgWithdrawOK))
	assert.Contains(t, out, "Erro: você já excedeu o número máximo de saques diários (3 por dia)")
	assert.Contains(t, logs.String(), "operation rejected")
	assert.Contains(t, logs.String(), "component=cli")
}

func TestSessionEmptyBank(t *testing.T) {
	out := run(t, bank.NewBank(), script("d", "s", "x", "lu", "lc", "zz", "E"))

	assert.Equal(t, 4, strings.Count(out, msgNoAccounts))
	assert.Contains(t, out, msgNoUsers)
	assert.Contains(t, out, msgInvalidOption)
	assert.Contains(t, out, msgGoodbye)
}

func TestSessionExport(t *testing.T) {
	b := seeded(t, "250")
	out := run(t, b, script("r", "e"), WithExportFormat(export.FormatYAML))

	assert.Contains(t, out, "owner_cpf: 529.982.247-25")
	assert.Contains(t, out, "balance: \"250.00\"")
}

func TestSessionEndOfInput(t *testing.T) {
	b := bank.NewBank()
	out := run(t, b, script("u", "529.982.247-25"))

	assert.Contains(t, out, "Informe o nome completo: ")
	assert.Empty(t, b.Users())
}

func TestSessionCancel(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	s := NewSession(bank.NewBank(), pr, io.Discard)

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestFormatStatement(t *testing.T) {
	entries := []bank.Entry{
		{Operation: bank.OpDeposit, Amount: decimal.RequireFromString("500"), BalanceAfter: decimal.RequireFromString("1000")},
		{Operation: bank.OpDeposit, Amount: decimal.RequireFromString("1500.90"), BalanceAfter: decimal.RequireFromString("2500.90")},
	}
	want := "Operação: depósito, Valor da operação: R$ 500.00, Saldo após a operação: R$ 1000.00\n" +
		"Operação: depósito, Valor da operação: R$ 1500.90, Saldo após a operação: R$ 2500.90"
	assert.Equal(t, want, formatStatement(entries))
	assert.Equal(t, msgNoOperations, formatStatement(nil))
}
