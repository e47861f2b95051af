package domain

import "github.com/shopspring/decimal"

// Transaction is a transient command carrying a fixed amount. It is never
// stored itself; applying it successfully produces exactly one ledger
// record of its kind. Account deposit/withdraw never append to the ledger,
// so the transaction is the single recording point.
type Transaction struct {
	kind   TransactionKind
	amount decimal.Decimal
}

// NewDeposit builds a deposit transaction.
func NewDeposit(amount decimal.Decimal) Transaction {
	return Transaction{kind: TransactionDeposit, amount: amount}
}

// NewWithdrawal builds a withdrawal transaction.
func NewWithdrawal(amount decimal.Decimal) Transaction {
	return Transaction{kind: TransactionWithdrawal, amount: amount}
}

// Kind returns the transaction kind.
func (t Transaction) Kind() TransactionKind { return t.kind }

// Amount returns the transaction amount.
func (t Transaction) Amount() decimal.Decimal { return t.amount }

// apply runs the account primitive for the transaction's kind and, if and
// only if it succeeds, records the fact in the account's ledger. Callers
// must hold a.mu.
func (t Transaction) apply(a *Account) error {
	var err error
	switch t.kind {
	case TransactionDeposit:
		err = a.deposit(t.amount)
	case TransactionWithdrawal:
		err = a.withdraw(t.amount)
	default:
		err = ErrUnknownTransactionKind
	}
	if err != nil {
		return err
	}

	a.ledger.Append(t.kind, t.amount)
	return nil
}
