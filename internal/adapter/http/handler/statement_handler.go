package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/usecase"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	Statement(ctx context.Context, number int, kindFilter string) (*usecase.Statement, error)
}

// StatementHandler handles statement HTTP requests.
type StatementHandler struct {
	statementUC StatementService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// Get returns the statement for an account. The optional "kind" query
// parameter restricts the records to deposits or withdrawals.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	number, err := parseAccountNumber(chi.URLParam(r, "number"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account number", err.Error())
		return
	}

	kindFilter := r.URL.Query().Get("kind")

	stmt, err := h.statementUC.Statement(r.Context(), number, kindFilter)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to build statement", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(stmt))
}
