package shared

// Currency is an ISO-like currency code. The set of codes is open: accounts and
// holdings may introduce new codes at runtime, so this is a string newtype
// validated against the active rate table at conversion time, not an enum.
type Currency string

// Codes used as defaults and in tests. The set is not closed.
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// TransactionType classifies the effect of a transaction on account balances.
type TransactionType string

const (
	Income   TransactionType = "Income"
	Expense  TransactionType = "Expense"
	Transfer TransactionType = "Transfer"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case Income, Expense, Transfer:
		return true
	}
	return false
}
