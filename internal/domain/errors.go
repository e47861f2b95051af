package domain

import "errors"

var (
	// Account errors
	ErrInvalidAmount                 = errors.New("amount must be positive")
	ErrInsufficientFunds             = errors.New("insufficient funds")
	ErrWithdrawalLimitExceeded       = errors.New("amount exceeds the per-withdrawal limit")
	ErrWithdrawalCountExceeded       = errors.New("withdrawal count limit reached")
	ErrExceedsOverdraft              = errors.New("amount exceeds balance plus overdraft allowance")
	ErrDailyTransactionLimitExceeded = errors.New("daily transaction limit reached")
	ErrAccountNotFound               = errors.New("account not found")
	ErrAccountNotOwned               = errors.New("account does not belong to client")
	ErrUnknownAccountKind            = errors.New("unknown account kind")
	ErrUnknownTransactionKind        = errors.New("unknown transaction kind")

	// Client errors
	ErrClientNotFound      = errors.New("client not found")
	ErrClientAlreadyExists = errors.New("client already registered")
	ErrClientHasNoAccounts = errors.New("client has no accounts")
)
