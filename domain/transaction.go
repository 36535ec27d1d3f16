package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"networth-ledger/shared"
)

// Transaction is one entry of the append-only log. Amount is a magnitude; its
// sign is implied by Type when folded into a balance.
type Transaction struct {
	ID string `json:"id"`

	// Date is a calendar date (midnight UTC); time-of-day carries no meaning.
	Date time.Time `json:"date"`

	Amount decimal.Decimal        `json:"amount"`
	Type   shared.TransactionType `json:"type"`

	// Category is free text, ignored for transfers.
	Category string `json:"category,omitempty"`

	SourceAccountID string `json:"sourceAccountId"`

	// DestinationAccountID is set only for transfers.
	DestinationAccountID string `json:"destinationAccountId,omitempty"`

	// DestinationAmount is the amount actually credited to the destination
	// account of a cross-currency transfer, in the destination account's
	// currency. When nil the destination is credited with Amount.
	DestinationAmount *decimal.Decimal `json:"destinationAmount,omitempty"`

	Note string `json:"note,omitempty"`
}

// DestinationLeg returns the amount credited to the destination account of a
// transfer: the explicit destination amount when one was recorded, the source
// amount otherwise.
func (t Transaction) DestinationLeg() decimal.Decimal {
	if t.DestinationAmount != nil {
		return *t.DestinationAmount
	}
	return t.Amount
}

// SelfTransfer reports whether a transfer debits and credits the same account.
// Such transactions fold to zero net effect.
func (t Transaction) SelfTransfer() bool {
	return t.Type == shared.Transfer && t.SourceAccountID == t.DestinationAccountID
}
