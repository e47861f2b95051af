package usecase

import (
	"context"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// AccountUseCase handles account opening and lookup.
type AccountUseCase struct {
	clientRepo  ClientRepository
	accountRepo AccountRepository
	limits      domain.AccountConfig
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase. limits carries the
// configured kind-specific parameters; m may be nil.
func NewAccountUseCase(clientRepo ClientRepository, accountRepo AccountRepository, limits domain.AccountConfig, m *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		clientRepo:  clientRepo,
		accountRepo: accountRepo,
		limits:      limits,
		metrics:     m,
	}
}

// OpenAccountInput represents input for opening an account.
type OpenAccountInput struct {
	TaxID string
	Kind  string
}

// OpenAccount opens an account of the requested kind for an existing client
// and attaches it to the client's collection. The registry assigns the next
// sequential number.
func (uc *AccountUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	kind, err := domain.ParseAccountKind(input.Kind)
	if err != nil {
		return nil, err
	}

	client, err := uc.clientRepo.GetByTaxID(ctx, domain.NormalizeTaxID(input.TaxID))
	if err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.Open(ctx, func(number int) (*domain.Account, error) {
		return domain.OpenAccount(client, number, kind, uc.limits)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsOpened.WithLabelValues(string(kind)).Inc()
	}
	return account, nil
}

// GetAccount retrieves an account by number.
func (uc *AccountUseCase) GetAccount(ctx context.Context, number int) (*domain.Account, error) {
	return uc.accountRepo.GetByNumber(ctx, number)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts in opening order with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	return uc.accountRepo.List(ctx, input.Limit, input.Offset)
}

// ListClientAccounts lists the accounts owned by one client in opening
// order.
func (uc *AccountUseCase) ListClientAccounts(ctx context.Context, taxID string) ([]*domain.Account, error) {
	return uc.accountRepo.ListByClient(ctx, domain.NormalizeTaxID(taxID))
}
