package domain

import "errors"

var (
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrNegativeDeposit    = errors.New("initial deposit cannot be negative")
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrInvalidAccountType = errors.New("account type must be savings or checking")
)
