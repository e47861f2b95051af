// Package memory holds the process-wide registry of clients and accounts.
// All state lives in memory and is lost at process exit by design.
package memory

import (
	"sync"

	"github.com/iho/gobank/internal/domain"
)

// Store is the shared in-memory state behind the client and account
// repositories. A single RWMutex serializes registry mutations; per-account
// balance mutations are serialized by the account's own lock.
type Store struct {
	mu           sync.RWMutex
	clients      map[string]*domain.Client
	clientOrder  []*domain.Client
	accounts     map[int]*domain.Account
	accountOrder []*domain.Account
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		clients:  make(map[string]*domain.Client),
		accounts: make(map[int]*domain.Account),
	}
}
