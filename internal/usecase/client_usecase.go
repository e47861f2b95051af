package usecase

import (
	"context"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// ClientUseCase handles client registration and lookup.
type ClientUseCase struct {
	clientRepo ClientRepository
	idGen      IDGenerator
	dailyLimit int
	metrics    *metrics.Metrics
}

// NewClientUseCase creates a new ClientUseCase. dailyLimit overrides the
// default per-account daily transaction cap when positive; m may be nil.
func NewClientUseCase(clientRepo ClientRepository, idGen IDGenerator, dailyLimit int, m *metrics.Metrics) *ClientUseCase {
	return &ClientUseCase{
		clientRepo: clientRepo,
		idGen:      idGen,
		dailyLimit: dailyLimit,
		metrics:    m,
	}
}

// RegisterClientInput represents input for registering a client.
type RegisterClientInput struct {
	Name      string
	BirthDate string
	TaxID     string
	Address   string
}

// RegisterClient registers a new client. The tax identifier is stored in
// its normalized digits-only form.
func (uc *ClientUseCase) RegisterClient(ctx context.Context, input RegisterClientInput) (*domain.Client, error) {
	client, err := domain.NewClient(
		uc.idGen.Generate(),
		input.Name,
		input.BirthDate,
		domain.NormalizeTaxID(input.TaxID),
		input.Address,
	)
	if err != nil {
		return nil, err
	}
	if uc.dailyLimit > 0 {
		client.DailyLimit = uc.dailyLimit
	}

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ClientsRegistered.Inc()
	}
	return client, nil
}

// GetClient retrieves a client by tax identifier.
func (uc *ClientUseCase) GetClient(ctx context.Context, taxID string) (*domain.Client, error) {
	return uc.clientRepo.GetByTaxID(ctx, domain.NormalizeTaxID(taxID))
}

// ListClientsInput represents input for listing clients.
type ListClientsInput struct {
	Limit  int
	Offset int
}

// ListClients lists clients in registration order with pagination.
func (uc *ClientUseCase) ListClients(ctx context.Context, input ListClientsInput) ([]*domain.Client, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	return uc.clientRepo.List(ctx, input.Limit, input.Offset)
}
