package planner

import "github.com/etnz/planner/date"

// Transaction is a single signed monetary record.
//
// The sign of the amount is the only category discriminator: positive amounts
// are incomes, negative amounts are expenses, zero is neither.
type Transaction struct {
	Date        date.Date
	Category    string
	Description string
	Amount      Money
}

// NewTransaction creates a transaction dated today.
func NewTransaction(amount Money, category, description string) Transaction {
	return Transaction{
		Date:        date.Today(),
		Category:    category,
		Description: description,
		Amount:      amount,
	}
}

// NewIncome creates an income transaction dated today, the amount is stored as given.
func NewIncome(amount Money, category, description string) Transaction {
	return NewTransaction(amount, category, description)
}

// NewExpense creates an expense transaction dated today. Whatever the sign of
// amount, it is stored as a negative value.
func NewExpense(amount Money, category, description string) Transaction {
	return NewTransaction(amount.Abs().Neg(), category, description)
}

// IsIncome reports whether the transaction adds money.
func (t Transaction) IsIncome() bool { return t.Amount.IsPositive() }

// IsExpense reports whether the transaction takes money out.
func (t Transaction) IsExpense() bool { return t.Amount.IsNegative() }

// String returns the transaction in the same layout as the ledger file.
func (t Transaction) String() string {
	return t.Date.String() + separator + t.Category + separator + t.Description + separator + t.Amount.Plain()
}
