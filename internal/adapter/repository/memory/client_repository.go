package memory

import (
	"context"

	"github.com/iho/gobank/internal/domain"
)

// ClientRepository implements usecase.ClientRepository over a Store.
type ClientRepository struct {
	store *Store
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

// Create registers a client, rejecting duplicate tax identifiers.
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.clients[client.TaxID]; ok {
		return domain.ErrClientAlreadyExists
	}

	r.store.clients[client.TaxID] = client
	r.store.clientOrder = append(r.store.clientOrder, client)
	return nil
}

// GetByTaxID retrieves a client by tax identifier.
func (r *ClientRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	client, ok := r.store.clients[taxID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

// List returns clients in registration order.
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if offset < 0 || offset >= len(r.store.clientOrder) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.store.clientOrder) {
		end = len(r.store.clientOrder)
	}

	out := make([]*domain.Client, end-offset)
	copy(out, r.store.clientOrder[offset:end])
	return out, nil
}
