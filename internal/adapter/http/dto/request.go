package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/usecase"
)

// RegisterClientRequest represents a request to register a client.
type RegisterClientRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	TaxID     string `json:"tax_id"`
	Address   string `json:"address"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterClientRequest) ToUseCaseInput() usecase.RegisterClientInput {
	return usecase.RegisterClientInput{
		Name:      r.Name,
		BirthDate: r.BirthDate,
		TaxID:     r.TaxID,
		Address:   r.Address,
	}
}

// OpenAccountRequest represents a request to open an account.
type OpenAccountRequest struct {
	TaxID string `json:"tax_id"`
	Kind  string `json:"kind"`
}

// ToUseCaseInput converts to use case input.
func (r *OpenAccountRequest) ToUseCaseInput() usecase.OpenAccountInput {
	return usecase.OpenAccountInput{
		TaxID: r.TaxID,
		Kind:  r.Kind,
	}
}

// TransactionRequest represents a deposit or withdrawal request.
type TransactionRequest struct {
	AccountNumber int             `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
