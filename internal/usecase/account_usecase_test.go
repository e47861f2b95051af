package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
	"github.com/iho/gobank/internal/usecase/mocks"
)

func registerTestClient(t *testing.T, repo *mocks.MockClientRepository, taxID string) *domain.Client {
	t.Helper()
	uc := usecase.NewClientUseCase(repo, mocks.NewMockIDGenerator(), 0, nil)
	client, err := uc.RegisterClient(context.Background(), usecase.RegisterClientInput{
		Name:      "Maria Souza",
		BirthDate: "1990-04-12",
		TaxID:     taxID,
		Address:   "Rua das Flores 100, Recife",
	})
	if err != nil {
		t.Fatalf("unexpected error registering client: %v", err)
	}
	return client
}

func TestAccountUseCase_OpenAccount(t *testing.T) {
	clientRepo := mocks.NewMockClientRepository()
	accountRepo := mocks.NewMockAccountRepository()
	client := registerTestClient(t, clientRepo, "12345678901")

	uc := usecase.NewAccountUseCase(clientRepo, accountRepo, domain.AccountConfig{}, nil)

	first, err := uc.OpenAccount(context.Background(), usecase.OpenAccountInput{
		TaxID: "12345678901",
		Kind:  "checking",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.OpenAccount(context.Background(), usecase.OpenAccountInput{
		TaxID: "123.456.789-01",
		Kind:  "Savings",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Number() != 1 || second.Number() != 2 {
		t.Errorf("expected sequential numbers 1 and 2, got %d and %d", first.Number(), second.Number())
	}
	if first.Kind() != domain.AccountChecking || second.Kind() != domain.AccountSavings {
		t.Errorf("unexpected kinds %s and %s", first.Kind(), second.Kind())
	}
	if got := client.Accounts(); len(got) != 2 {
		t.Errorf("expected both accounts attached to the client, got %d", len(got))
	}
}

func TestAccountUseCase_OpenAccountErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.OpenAccountInput
		wantErr error
	}{
		{
			name:    "unknown kind",
			input:   usecase.OpenAccountInput{TaxID: "12345678901", Kind: "payroll"},
			wantErr: domain.ErrUnknownAccountKind,
		},
		{
			name:    "client not registered",
			input:   usecase.OpenAccountInput{TaxID: "00000000000", Kind: "checking"},
			wantErr: domain.ErrClientNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clientRepo := mocks.NewMockClientRepository()
			registerTestClient(t, clientRepo, "12345678901")
			uc := usecase.NewAccountUseCase(clientRepo, mocks.NewMockAccountRepository(), domain.AccountConfig{}, nil)

			_, err := uc.OpenAccount(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAccountUseCase_OpenAccountUsesConfiguredLimits(t *testing.T) {
	clientRepo := mocks.NewMockClientRepository()
	client := registerTestClient(t, clientRepo, "12345678901")

	limits := domain.AccountConfig{Overdraft: decimal.NewFromInt(100)}
	uc := usecase.NewAccountUseCase(clientRepo, mocks.NewMockAccountRepository(), limits, nil)

	account, err := uc.OpenAccount(context.Background(), usecase.OpenAccountInput{
		TaxID: "12345678901",
		Kind:  "savings",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A zero-balance savings account honors the configured overdraft.
	if err := client.Apply(account, domain.NewWithdrawal(decimal.NewFromInt(100))); err != nil {
		t.Fatalf("expected overdraft withdrawal to succeed, got %v", err)
	}
	if !account.Balance().Equal(decimal.NewFromInt(-100)) {
		t.Errorf("expected balance -100, got %s", account.Balance())
	}
}

func TestAccountUseCase_GetAccount(t *testing.T) {
	clientRepo := mocks.NewMockClientRepository()
	accountRepo := mocks.NewMockAccountRepository()
	registerTestClient(t, clientRepo, "12345678901")
	uc := usecase.NewAccountUseCase(clientRepo, accountRepo, domain.AccountConfig{}, nil)

	opened, err := uc.OpenAccount(context.Background(), usecase.OpenAccountInput{
		TaxID: "12345678901",
		Kind:  "checking",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := uc.GetAccount(context.Background(), opened.Number())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != opened {
		t.Error("expected the opened account")
	}

	if _, err := uc.GetAccount(context.Background(), 99); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountUseCase_ListClientAccounts(t *testing.T) {
	clientRepo := mocks.NewMockClientRepository()
	accountRepo := mocks.NewMockAccountRepository()
	registerTestClient(t, clientRepo, "12345678901")
	registerTestClient(t, clientRepo, "98765432100")
	uc := usecase.NewAccountUseCase(clientRepo, accountRepo, domain.AccountConfig{}, nil)

	for _, in := range []usecase.OpenAccountInput{
		{TaxID: "12345678901", Kind: "checking"},
		{TaxID: "98765432100", Kind: "checking"},
		{TaxID: "12345678901", Kind: "savings"},
	} {
		if _, err := uc.OpenAccount(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	accounts, err := uc.ListClientAccounts(context.Background(), "123.456.789-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].Number() != 1 || accounts[1].Number() != 3 {
		t.Errorf("expected accounts 1 and 3 in opening order, got %d and %d",
			accounts[0].Number(), accounts[1].Number())
	}
}
