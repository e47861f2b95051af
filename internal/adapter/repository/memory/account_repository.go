package memory

import (
	"context"

	"github.com/iho/gobank/internal/domain"
)

// AccountRepository implements usecase.AccountRepository over a Store.
type AccountRepository struct {
	store *Store
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

// Open assigns the next sequential account number, builds the account
// through the factory and registers it. Number assignment and registration
// happen under one lock, so concurrent opens never collide.
func (r *AccountRepository) Open(ctx context.Context, factory func(number int) (*domain.Account, error)) (*domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	number := len(r.store.accountOrder) + 1
	account, err := factory(number)
	if err != nil {
		return nil, err
	}

	r.store.accounts[account.Number()] = account
	r.store.accountOrder = append(r.store.accountOrder, account)
	return account, nil
}

// GetByNumber retrieves an account by number.
func (r *AccountRepository) GetByNumber(ctx context.Context, number int) (*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// ListByClient returns the accounts owned by the tax identifier's client in
// opening order.
func (r *AccountRepository) ListByClient(ctx context.Context, taxID string) ([]*domain.Account, error) {
	r.store.mu.RLock()
	client, ok := r.store.clients[taxID]
	r.store.mu.RUnlock()

	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return client.Accounts(), nil
}

// List returns accounts in opening order.
func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if offset < 0 || offset >= len(r.store.accountOrder) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.store.accountOrder) {
		end = len(r.store.accountOrder)
	}

	out := make([]*domain.Account, end-offset)
	copy(out, r.store.accountOrder[offset:end])
	return out, nil
}
