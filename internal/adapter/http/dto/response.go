package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	BirthDate   string    `json:"birth_date,omitempty"`
	TaxID       string    `json:"tax_id"`
	Address     string    `json:"address,omitempty"`
	DailyLimit  int       `json:"daily_limit"`
	NumAccounts int       `json:"num_accounts"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClientFromDomain converts a domain client to a response.
func ClientFromDomain(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		BirthDate:   c.BirthDate,
		TaxID:       c.TaxID,
		Address:     c.Address,
		DailyLimit:  c.DailyLimit,
		NumAccounts: len(c.Accounts()),
		CreatedAt:   c.CreatedAt,
	}
}

// ClientsFromDomain converts domain clients to responses.
func ClientsFromDomain(clients []*domain.Client) []*ClientResponse {
	result := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		result[i] = ClientFromDomain(c)
	}
	return result
}

// ListClientsResponse wraps a page of clients.
type ListClientsResponse struct {
	Clients []*ClientResponse `json:"clients"`
	Total   int64             `json:"total"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	Number   int             `json:"number"`
	Branch   string          `json:"branch"`
	Kind     string          `json:"kind"`
	Balance  decimal.Decimal `json:"balance"`
	Holder   string          `json:"holder,omitempty"`
	TaxID    string          `json:"tax_id,omitempty"`
	OpenedAt time.Time       `json:"opened_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	resp := &AccountResponse{
		Number:   a.Number(),
		Branch:   a.Branch(),
		Kind:     string(a.Kind()),
		Balance:  a.Balance(),
		OpenedAt: a.OpenedAt(),
	}
	if owner := a.Owner(); owner != nil {
		resp.Holder = owner.Name
		resp.TaxID = owner.TaxID
	}
	return resp
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// RecordResponse represents a ledger record in API responses.
type RecordResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// RecordFromDomain converts a domain record to a response.
func RecordFromDomain(rec domain.Record) RecordResponse {
	return RecordResponse{
		ID:        rec.ID,
		Kind:      string(rec.Kind),
		Amount:    rec.Amount,
		CreatedAt: rec.CreatedAt,
	}
}

// RecordsFromDomain converts domain records to responses.
func RecordsFromDomain(records []domain.Record) []RecordResponse {
	result := make([]RecordResponse, len(records))
	for i, rec := range records {
		result[i] = RecordFromDomain(rec)
	}
	return result
}

// StatementResponse represents an account statement in API responses.
type StatementResponse struct {
	AccountNumber int              `json:"account_number"`
	Branch        string           `json:"branch"`
	Kind          string           `json:"kind"`
	Holder        string           `json:"holder,omitempty"`
	TaxID         string           `json:"tax_id,omitempty"`
	Balance       decimal.Decimal  `json:"balance"`
	GeneratedAt   time.Time        `json:"generated_at"`
	Records       []RecordResponse `json:"records"`
}

// StatementFromUseCase converts a statement to a response.
func StatementFromUseCase(s *usecase.Statement) *StatementResponse {
	return &StatementResponse{
		AccountNumber: s.AccountNumber,
		Branch:        s.Branch,
		Kind:          string(s.Kind),
		Holder:        s.Holder,
		TaxID:         s.TaxID,
		Balance:       s.Balance,
		GeneratedAt:   s.GeneratedAt,
		Records:       RecordsFromDomain(s.Records),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
