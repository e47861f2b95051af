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

type clientServiceStub struct {
	registerFn func(ctx context.Context, input usecase.RegisterClientInput) (*domain.Client, error)
	getFn      func(ctx context.Context, taxID string) (*domain.Client, error)
	listFn     func(ctx context.Context, input usecase.ListClientsInput) ([]*domain.Client, error)
}

func (s *clientServiceStub) RegisterClient(ctx context.Context, input usecase.RegisterClientInput) (*domain.Client, error) {
	return s.registerFn(ctx, input)
}

func (s *clientServiceStub) GetClient(ctx context.Context, taxID string) (*domain.Client, error) {
	return s.getFn(ctx, taxID)
}

func (s *clientServiceStub) ListClients(ctx context.Context, input usecase.ListClientsInput) ([]*domain.Client, error) {
	return s.listFn(ctx, input)
}

func newTestClient(t *testing.T) *domain.Client {
	t.Helper()

	client, err := domain.NewClient("cli-1", "Ana Souza", "1990-04-12", "12345678901", "Rua A, 10")
	if err != nil {
		t.Fatalf("failed to build client: %v", err)
	}
	return client
}

func TestClientHandler_Register_Success(t *testing.T) {
	client := newTestClient(t)

	var captured usecase.RegisterClientInput
	handler := NewClientHandler(&clientServiceStub{
		registerFn: func(ctx context.Context, input usecase.RegisterClientInput) (*domain.Client, error) {
			captured = input
			return client, nil
		},
	})

	body, _ := json.Marshal(dto.RegisterClientRequest{
		Name:      "Ana Souza",
		BirthDate: "1990-04-12",
		TaxID:     "123.456.789-01",
		Address:   "Rua A, 10",
	})

	req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Name != "Ana Souza" || captured.TaxID != "123.456.789-01" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.ClientResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TaxID != "12345678901" {
		t.Fatalf("expected normalized tax ID, got %s", resp.TaxID)
	}
}

func TestClientHandler_Register_InvalidJSON(t *testing.T) {
	handler := NewClientHandler(&clientServiceStub{
		registerFn: func(ctx context.Context, input usecase.RegisterClientInput) (*domain.Client, error) {
			t.Fatal("RegisterClient should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestClientHandler_Register_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"duplicate", domain.ErrClientAlreadyExists, http.StatusConflict},
		{"bad name", domain.ErrInvalidClientName, http.StatusBadRequest},
		{"bad tax id", domain.ErrInvalidTaxID, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewClientHandler(&clientServiceStub{
				registerFn: func(ctx context.Context, input usecase.RegisterClientInput) (*domain.Client, error) {
					return nil, tt.err
				},
			})

			body, _ := json.Marshal(dto.RegisterClientRequest{Name: "Ana", TaxID: "12345678901"})
			req := httptest.NewRequest(http.MethodPost, "/clients", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.Register(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestClientHandler_Get(t *testing.T) {
	client := newTestClient(t)

	handler := NewClientHandler(&clientServiceStub{
		getFn: func(ctx context.Context, taxID string) (*domain.Client, error) {
			if taxID != "12345678901" {
				return nil, domain.ErrClientNotFound
			}
			return client, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/clients/12345678901", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("taxID", "12345678901")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ClientResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Name != "Ana Souza" {
		t.Fatalf("expected client name, got %s", resp.Name)
	}
}

func TestClientHandler_Get_NotFound(t *testing.T) {
	handler := NewClientHandler(&clientServiceStub{
		getFn: func(ctx context.Context, taxID string) (*domain.Client, error) {
			return nil, domain.ErrClientNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/clients/00000000000", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("taxID", "00000000000")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestClientHandler_List(t *testing.T) {
	client := newTestClient(t)

	var captured usecase.ListClientsInput
	handler := NewClientHandler(&clientServiceStub{
		listFn: func(ctx context.Context, input usecase.ListClientsInput) ([]*domain.Client, error) {
			captured = input
			return []*domain.Client{client}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/clients?limit=5&offset=10", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Limit != 5 || captured.Offset != 10 {
		t.Fatalf("expected pagination to be forwarded, got %+v", captured)
	}

	var resp dto.ListClientsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Clients) != 1 {
		t.Fatalf("expected one client, got %+v", resp)
	}
}
