// internal/export/model.go
//
// Data shapes of an exported bank snapshot. The export is a read-only view
// written to the terminal on demand; nothing is loaded back, so the model only
// carries what a person inspecting the bank would want to see. Amounts are
// pre-formatted strings with two decimals so the document does not depend on
// the money type used inside the bank.
package export

import "time"

// Version is the current snapshot layout version.
const Version = 1

// Meta describes the export itself.
type Meta struct {
	Format    Format    `json:"format" yaml:"format"`
	Version   int       `json:"version" yaml:"version"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Note      string    `json:"note,omitempty" yaml:"note,omitempty"`
}

// User is a registered customer.
type User struct {
	CPF       string `json:"cpf" yaml:"cpf"`
	Name      string `json:"name" yaml:"name"`
	BirthDate string `json:"birth_date" yaml:"birth_date"` // dd-mm-aaaa
	Address   string `json:"address" yaml:"address"`
}

// Entry is one statement line.
type Entry struct {
	ID           string    `json:"id" yaml:"id"`
	Time         time.Time `json:"time" yaml:"time"`
	Operation    string    `json:"operation" yaml:"operation"`
	Amount       string    `json:"amount" yaml:"amount"`
	BalanceAfter string    `json:"balance_after" yaml:"balance_after"`
}

// Account is a bank account with its statement.
type Account struct {
	ID        int     `json:"id" yaml:"id"`
	Agency    string  `json:"agency" yaml:"agency"`
	OwnerCPF  string  `json:"owner_cpf" yaml:"owner_cpf"`
	OwnerName string  `json:"owner_name" yaml:"owner_name"`
	Balance   string  `json:"balance" yaml:"balance"`
	Entries   []Entry `json:"entries" yaml:"entries"`
}

// Snapshot is the whole bank at one point in time.
type Snapshot struct {
	Meta     Meta      `json:"_meta" yaml:"_meta"`
	Users    []User    `json:"users" yaml:"users"`
	Accounts []Account `json:"accounts" yaml:"accounts"`
}
