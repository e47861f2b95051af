package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// TransactionUseCase applies deposits and withdrawals. Every transaction is
// submitted through the owning client, which enforces the daily cap before
// the account mutates.
type TransactionUseCase struct {
	accountRepo AccountRepository
	metrics     *metrics.Metrics
}

// NewTransactionUseCase creates a new TransactionUseCase; m may be nil.
func NewTransactionUseCase(accountRepo AccountRepository, m *metrics.Metrics) *TransactionUseCase {
	return &TransactionUseCase{
		accountRepo: accountRepo,
		metrics:     m,
	}
}

// Deposit applies a deposit to the numbered account and returns the account
// with its updated balance.
func (uc *TransactionUseCase) Deposit(ctx context.Context, number int, amount decimal.Decimal) (*domain.Account, error) {
	return uc.apply(ctx, number, domain.NewDeposit(amount))
}

// Withdraw applies a withdrawal to the numbered account and returns the
// account with its updated balance.
func (uc *TransactionUseCase) Withdraw(ctx context.Context, number int, amount decimal.Decimal) (*domain.Account, error) {
	return uc.apply(ctx, number, domain.NewWithdrawal(amount))
}

func (uc *TransactionUseCase) apply(ctx context.Context, number int, tx domain.Transaction) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	owner := account.Owner()
	if owner == nil {
		return nil, domain.ErrClientNotFound
	}

	if err := owner.Apply(account, tx); err != nil {
		if uc.metrics != nil {
			uc.metrics.TransactionsRejected.WithLabelValues(string(tx.Kind()), rejectionReason(err)).Inc()
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsApplied.WithLabelValues(string(tx.Kind())).Inc()
		amount, _ := tx.Amount().Float64()
		uc.metrics.TransactionAmount.Observe(amount)
	}
	return account, nil
}

// rejectionReason keeps the metric label set bounded.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrAmountTooLarge):
		return "amount_too_large"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrWithdrawalLimitExceeded):
		return "withdrawal_limit"
	case errors.Is(err, domain.ErrWithdrawalCountExceeded):
		return "withdrawal_count"
	case errors.Is(err, domain.ErrExceedsOverdraft):
		return "overdraft_exceeded"
	case errors.Is(err, domain.ErrDailyTransactionLimitExceeded):
		return "daily_limit"
	default:
		return "other"
	}
}
