package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// Statement is an account extract: the current balance together with the
// full ordered ledger, read as one consistent snapshot.
type Statement struct {
	AccountNumber int
	Branch        string
	Kind          domain.AccountKind
	Holder        string
	TaxID         string
	Balance       decimal.Decimal
	GeneratedAt   time.Time
	Records       []domain.Record
}

// StatementUseCase produces account statements.
type StatementUseCase struct {
	accountRepo AccountRepository
	metrics     *metrics.Metrics
}

// NewStatementUseCase creates a new StatementUseCase; m may be nil.
func NewStatementUseCase(accountRepo AccountRepository, m *metrics.Metrics) *StatementUseCase {
	return &StatementUseCase{
		accountRepo: accountRepo,
		metrics:     m,
	}
}

// Statement builds the statement for the numbered account. kindFilter
// optionally restricts the records to one transaction kind
// (case-insensitive); empty means all records.
func (uc *StatementUseCase) Statement(ctx context.Context, number int, kindFilter string) (*Statement, error) {
	if kindFilter != "" {
		if _, err := domain.ParseTransactionKind(kindFilter); err != nil {
			return nil, err
		}
	}

	account, err := uc.accountRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	balance, records := account.Statement(kindFilter)
	owner := account.Owner()

	stmt := &Statement{
		AccountNumber: account.Number(),
		Branch:        account.Branch(),
		Kind:          account.Kind(),
		Balance:       balance,
		GeneratedAt:   time.Now().UTC(),
		Records:       records,
	}
	if owner != nil {
		stmt.Holder = owner.Name
		stmt.TaxID = owner.TaxID
	}

	if uc.metrics != nil {
		uc.metrics.StatementsGenerated.Inc()
	}
	return stmt, nil
}
