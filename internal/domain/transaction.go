package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeDeposit    TransactionType = "Deposit"
	TypeWithdrawal TransactionType = "Withdrawal"
)

// Transaction is one balance-changing entry of an account ledger. Entries are
// never modified once appended.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	Type         TransactionType `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}

func NewTransaction(t TransactionType, amount, balanceAfter decimal.Decimal, at time.Time) Transaction {
	return Transaction{
		ID:           uuid.New(),
		Type:         t,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		CreatedAt:    at,
	}
}

// Delta is the signed effect of the transaction on the balance.
func (tx Transaction) Delta() decimal.Decimal {
	if tx.Type == TypeWithdrawal {
		return tx.Amount.Neg()
	}
	return tx.Amount
}
