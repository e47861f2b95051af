package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

type accountServiceStub struct {
	openFn         func(ctx context.Context, input usecase.OpenAccountInput) (*domain.Account, error)
	getFn          func(ctx context.Context, number int) (*domain.Account, error)
	listFn         func(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error)
	listByClientFn func(ctx context.Context, taxID string) ([]*domain.Account, error)
}

func (s *accountServiceStub) OpenAccount(ctx context.Context, input usecase.OpenAccountInput) (*domain.Account, error) {
	return s.openFn(ctx, input)
}

func (s *accountServiceStub) GetAccount(ctx context.Context, number int) (*domain.Account, error) {
	return s.getFn(ctx, number)
}

func (s *accountServiceStub) ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error) {
	return s.listFn(ctx, input)
}

func (s *accountServiceStub) ListClientAccounts(ctx context.Context, taxID string) ([]*domain.Account, error) {
	return s.listByClientFn(ctx, taxID)
}

func newTestAccount(t *testing.T, number int, kind domain.AccountKind) *domain.Account {
	t.Helper()

	account, err := domain.OpenAccount(newTestClient(t), number, kind, domain.AccountConfig{})
	if err != nil {
		t.Fatalf("failed to open account: %v", err)
	}
	return account
}

func TestAccountHandler_Open_Success(t *testing.T) {
	account := newTestAccount(t, 1, domain.AccountChecking)

	var captured usecase.OpenAccountInput
	handler := NewAccountHandler(&accountServiceStub{
		openFn: func(ctx context.Context, input usecase.OpenAccountInput) (*domain.Account, error) {
			captured = input
			return account, nil
		},
	})

	body, _ := json.Marshal(dto.OpenAccountRequest{TaxID: "12345678901", Kind: "checking"})
	req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Open(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.TaxID != "12345678901" || captured.Kind != "checking" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Number != 1 || resp.Branch != domain.BranchCode || resp.Kind != "checking" {
		t.Fatalf("unexpected account response: %+v", resp)
	}
	if resp.Holder != "Ana Souza" {
		t.Fatalf("expected holder name, got %s", resp.Holder)
	}
}

func TestAccountHandler_Open_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown kind", domain.ErrUnknownAccountKind, http.StatusBadRequest},
		{"client missing", domain.ErrClientNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAccountHandler(&accountServiceStub{
				openFn: func(ctx context.Context, input usecase.OpenAccountInput) (*domain.Account, error) {
					return nil, tt.err
				},
			})

			body, _ := json.Marshal(dto.OpenAccountRequest{TaxID: "12345678901", Kind: "checking"})
			req := httptest.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.Open(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestAccountHandler_Get(t *testing.T) {
	account := newTestAccount(t, 7, domain.AccountSavings)

	handler := NewAccountHandler(&accountServiceStub{
		getFn: func(ctx context.Context, number int) (*domain.Account, error) {
			if number != 7 {
				return nil, domain.ErrAccountNotFound
			}
			return account, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/7", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("number", "7")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Number != 7 || resp.Kind != "savings" {
		t.Fatalf("unexpected account response: %+v", resp)
	}
}

func TestAccountHandler_Get_BadNumber(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		getFn: func(ctx context.Context, number int) (*domain.Account, error) {
			t.Fatal("GetAccount should not be called for a malformed number")
			return nil, nil
		},
	})

	for _, raw := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest(http.MethodGet, "/accounts/"+raw, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("number", raw)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d", raw, rec.Code)
		}
	}
}

func TestAccountHandler_ListByClient(t *testing.T) {
	account := newTestAccount(t, 1, domain.AccountChecking)

	handler := NewAccountHandler(&accountServiceStub{
		listByClientFn: func(ctx context.Context, taxID string) ([]*domain.Account, error) {
			return []*domain.Account{account}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/clients/12345678901/accounts", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("taxID", "12345678901")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.ListByClient(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListAccountsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Accounts) != 1 {
		t.Fatalf("expected one account, got %+v", resp)
	}
}
