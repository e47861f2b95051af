package usecase

import (
	"context"

	"github.com/iho/gobank/internal/domain"
)

// ClientRepository defines registry access for clients. Tax-identifier
// uniqueness is enforced here, not by the domain.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByTaxID(ctx context.Context, taxID string) (*domain.Client, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Client, error)
}

// AccountRepository defines registry access for accounts.
type AccountRepository interface {
	// Open atomically assigns the next sequential account number (count of
	// previously opened accounts + 1, starting at 1), builds the account
	// through the factory and registers it.
	Open(ctx context.Context, factory func(number int) (*domain.Account, error)) (*domain.Account, error)
	GetByNumber(ctx context.Context, number int) (*domain.Account, error)
	ListByClient(ctx context.Context, taxID string) ([]*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
