package domain

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind identifies the account variant. Each kind carries its own
// withdrawal rule; deposits behave the same for every kind.
type AccountKind string

const (
	AccountChecking AccountKind = "checking"
	AccountSavings  AccountKind = "savings"
)

// BranchCode is the single branch all accounts belong to.
const BranchCode = "0001"

// DefaultMaxWithdrawals is the lifetime withdrawal-count cap for checking
// accounts, measured by withdrawal records in the ledger.
const DefaultMaxWithdrawals = 3

// DefaultWithdrawCeiling is the per-withdrawal amount cap for checking
// accounts.
var DefaultWithdrawCeiling = decimal.NewFromInt(500)

// AccountConfig carries the kind-specific limit parameters. Zero values fall
// back to the defaults (ceiling 500 and three withdrawals for checking, no
// overdraft for savings).
type AccountConfig struct {
	WithdrawCeiling decimal.Decimal
	MaxWithdrawals  int
	Overdraft       decimal.Decimal
}

// Account represents one bank account. The balance is only ever mutated
// through deposits and withdrawals applied via the owning client, and the
// daily-count check plus the mutation it gates run as one atomic unit under
// the account's lock.
type Account struct {
	mu       sync.Mutex
	number   int
	branch   string
	kind     AccountKind
	balance  decimal.Decimal
	owner    *Client
	ledger   *Ledger
	openedAt time.Time

	withdrawCeiling decimal.Decimal
	maxWithdrawals  int
	overdraft       decimal.Decimal
}

// OpenAccount creates an account for owner with the given number, attaches
// it to the owner's collection and returns it. The balance starts at zero
// and the ledger starts empty.
func OpenAccount(owner *Client, number int, kind AccountKind, cfg AccountConfig) (*Account, error) {
	if owner == nil {
		return nil, ErrClientNotFound
	}
	if kind != AccountChecking && kind != AccountSavings {
		return nil, ErrUnknownAccountKind
	}

	if cfg.WithdrawCeiling.IsZero() {
		cfg.WithdrawCeiling = DefaultWithdrawCeiling
	}
	if cfg.MaxWithdrawals <= 0 {
		cfg.MaxWithdrawals = DefaultMaxWithdrawals
	}

	a := &Account{
		number:          number,
		branch:          BranchCode,
		kind:            kind,
		balance:         decimal.Zero,
		owner:           owner,
		ledger:          NewLedger(),
		openedAt:        time.Now().UTC(),
		withdrawCeiling: cfg.WithdrawCeiling,
		maxWithdrawals:  cfg.MaxWithdrawals,
		overdraft:       cfg.Overdraft,
	}
	owner.attach(a)
	return a, nil
}

// Number returns the sequentially assigned account number.
func (a *Account) Number() int { return a.number }

// Branch returns the branch code.
func (a *Account) Branch() string { return a.branch }

// Kind returns the account variant.
func (a *Account) Kind() AccountKind { return a.kind }

// Owner returns the owning client.
func (a *Account) Owner() *Client { return a.owner }

// OpenedAt returns when the account was opened.
func (a *Account) OpenedAt() time.Time { return a.openedAt }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Records returns a copy of the ledger records, optionally filtered by kind
// name (case-insensitive).
func (a *Account) Records(kindFilter string) []Record {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ledger.Records(kindFilter)
}

// Statement returns the balance together with the filtered ledger records,
// read under one lock so the pair is consistent.
func (a *Account) Statement(kindFilter string) (decimal.Decimal, []Record) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance, a.ledger.Records(kindFilter)
}

// deposit applies a credit. Callers must hold a.mu. Recording in the
// ledger is the transaction's responsibility, not the account's.
func (a *Account) deposit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// withdraw applies a debit according to the account kind's rule. Callers
// must hold a.mu.
//
// Checking: the amount must not exceed the per-withdrawal ceiling, the
// lifetime withdrawal count must be below the cap, and the balance must
// cover the amount. Savings: the amount must not exceed balance plus the
// overdraft allowance; the overdraft check is authoritative, so the balance
// may go negative down to -overdraft.
func (a *Account) withdraw(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	switch a.kind {
	case AccountChecking:
		if amount.GreaterThan(a.withdrawCeiling) {
			return ErrWithdrawalLimitExceeded
		}
		if a.ledger.Count(TransactionWithdrawal) >= a.maxWithdrawals {
			return ErrWithdrawalCountExceeded
		}
		if amount.GreaterThan(a.balance) {
			return ErrInsufficientFunds
		}
	case AccountSavings:
		if amount.GreaterThan(a.balance.Add(a.overdraft)) {
			return ErrExceedsOverdraft
		}
	default:
		return ErrUnknownAccountKind
	}

	a.balance = a.balance.Sub(amount)
	return nil
}
