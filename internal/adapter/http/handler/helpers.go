package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes. Lookups that
// miss are 404, malformed input is 400, a duplicate registration is 409,
// and rejected business rules are 422.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrClientAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidClientName):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTaxID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownAccountKind):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownTransactionKind):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrWithdrawalLimitExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrWithdrawalCountExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrExceedsOverdraft):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDailyTransactionLimitExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrClientHasNoAccounts):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAccountNotOwned):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseAccountNumber parses the account number path parameter.
func parseAccountNumber(raw string) (int, error) {
	number, err := strconv.Atoi(raw)
	if err != nil || number <= 0 {
		return 0, errors.New("account number must be a positive integer")
	}
	return number, nil
}
