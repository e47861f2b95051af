package mocks

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/iho/gobank/internal/domain"
)

// MockClientRepository is a mock implementation of ClientRepository.
type MockClientRepository struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client
	order   []*domain.Client

	CreateFunc     func(ctx context.Context, client *domain.Client) error
	GetByTaxIDFunc func(ctx context.Context, taxID string) (*domain.Client, error)
	ListFunc       func(ctx context.Context, limit, offset int) ([]*domain.Client, error)
}

func NewMockClientRepository() *MockClientRepository {
	return &MockClientRepository{
		clients: make(map[string]*domain.Client),
	}
}

func (m *MockClientRepository) Create(ctx context.Context, client *domain.Client) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, client)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[client.TaxID]; ok {
		return domain.ErrClientAlreadyExists
	}
	m.clients[client.TaxID] = client
	m.order = append(m.order, client)
	return nil
}

func (m *MockClientRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Client, error) {
	if m.GetByTaxIDFunc != nil {
		return m.GetByTaxIDFunc(ctx, taxID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if client, ok := m.clients[taxID]; ok {
		return client, nil
	}
	return nil, domain.ErrClientNotFound
}

func (m *MockClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if offset >= len(m.order) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.order) {
		end = len(m.order)
	}
	out := make([]*domain.Client, end-offset)
	copy(out, m.order[offset:end])
	return out, nil
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[int]*domain.Account
	order    []*domain.Account

	OpenFunc         func(ctx context.Context, factory func(number int) (*domain.Account, error)) (*domain.Account, error)
	GetByNumberFunc  func(ctx context.Context, number int) (*domain.Account, error)
	ListByClientFunc func(ctx context.Context, taxID string) ([]*domain.Account, error)
	ListFunc         func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[int]*domain.Account),
	}
}

func (m *MockAccountRepository) Open(ctx context.Context, factory func(number int) (*domain.Account, error)) (*domain.Account, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, factory)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	account, err := factory(len(m.order) + 1)
	if err != nil {
		return nil, err
	}
	m.accounts[account.Number()] = account
	m.order = append(m.order, account)
	return account, nil
}

func (m *MockAccountRepository) GetByNumber(ctx context.Context, number int) (*domain.Account, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if account, ok := m.accounts[number]; ok {
		return account, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) ListByClient(ctx context.Context, taxID string) ([]*domain.Account, error) {
	if m.ListByClientFunc != nil {
		return m.ListByClientFunc(ctx, taxID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Account
	for _, account := range m.order {
		if owner := account.Owner(); owner != nil && owner.TaxID == taxID {
			out = append(out, account)
		}
	}
	return out, nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if offset >= len(m.order) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.order) {
		end = len(m.order)
	}
	out := make([]*domain.Account, end-offset)
	copy(out, m.order[offset:end])
	return out, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	counter int64

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return fmt.Sprintf("test-id-%d", atomic.AddInt64(&m.counter, 1))
}
