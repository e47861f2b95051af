package domain

import (
	"sync"
	"time"
)

// DailyTransactionLimit is the default per-account, per-day cap on applied
// transactions, deposits and withdrawals combined. It is independent of the
// checking account's lifetime withdrawal-count cap.
const DailyTransactionLimit = 10

// Client is an individual holding zero or more accounts, in opening order.
// It is the single entry point through which a transaction reaches an
// account: Apply enforces the daily transaction cap before delegating.
type Client struct {
	mu       sync.Mutex
	accounts []*Account

	ID        string
	Name      string
	BirthDate string
	TaxID     string
	Address   string
	CreatedAt time.Time

	// DailyLimit overrides DailyTransactionLimit when positive.
	DailyLimit int
}

// NewClient creates a client after validating its name and tax identifier.
// Uniqueness of the tax identifier is the registry's job, not the client's.
func NewClient(id, name, birthDate, taxID, address string) (*Client, error) {
	if err := ValidateClientName(name); err != nil {
		return nil, err
	}
	if err := ValidateTaxID(taxID); err != nil {
		return nil, err
	}

	return &Client{
		ID:        id,
		Name:      name,
		BirthDate: birthDate,
		TaxID:     taxID,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// attach adds an account to the client's collection.
func (c *Client) attach(a *Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = append(c.accounts, a)
}

// Accounts returns a copy of the client's accounts in opening order.
func (c *Client) Accounts() []*Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Apply submits a transaction to one of the client's accounts. The account
// must belong to the client. When the account already carries the daily
// cap of records for the current date, the transaction is rejected and
// never reaches the account. The check and the mutation it gates run under
// the account's lock.
func (c *Client) Apply(a *Account, tx Transaction) error {
	if a == nil {
		return ErrAccountNotFound
	}

	c.mu.Lock()
	n := len(c.accounts)
	c.mu.Unlock()
	if n == 0 {
		return ErrClientHasNoAccounts
	}
	if a.owner != c {
		return ErrAccountNotOwned
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	limit := c.DailyLimit
	if limit <= 0 {
		limit = DailyTransactionLimit
	}
	if a.ledger.CountToday() >= limit {
		return ErrDailyTransactionLimitExceeded
	}

	return tx.apply(a)
}
