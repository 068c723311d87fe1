package domain

import (
	"time"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PaymentMethod represents the payment method type
type PaymentMethod string

const (
	PaymentMethodWallet       PaymentMethod = "wallet"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodSubscription PaymentMethod = "subscription"
)

// PaymentRecord is the immutable record of a completed purchase. It links to
// exactly one of a subscription or a swap transaction.
type PaymentRecord struct {
	ID             string        `json:"id" gorm:"primaryKey"`
	UserID         string        `json:"user_id" gorm:"index"`
	SubscriptionID *string       `json:"subscription_id,omitempty" gorm:"index"`
	TransactionID  *string       `json:"transaction_id,omitempty" gorm:"index"`
	Method         PaymentMethod `json:"method"`
	Status         PaymentStatus `json:"status"`
	Amount         int64         `json:"amount"` // Minor currency units
	Currency       string        `json:"currency"`
	Description    string        `json:"description,omitempty"`
	PaidAt         time.Time     `json:"paid_at"`
	CreatedAt      time.Time     `json:"created_at"`
}

// LinkedToOne verifies the subscription-XOR-transaction link invariant.
func (p *PaymentRecord) LinkedToOne() bool {
	return (p.SubscriptionID != nil) != (p.TransactionID != nil)
}

// Wallet represents a user's prepaid balance. Balance is held in minor
// currency units and never goes negative: debits are conditional updates
// executed by the storage layer.
type Wallet struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex"`
	Balance   int64     `json:"balance"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WalletEntryType string

const (
	WalletEntryCredit WalletEntryType = "credit"
	WalletEntryDebit  WalletEntryType = "debit"
)

// WalletTransaction is one immutable ledger line of a wallet.
type WalletTransaction struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	WalletID    string          `json:"wallet_id" gorm:"index"`
	UserID      string          `json:"user_id" gorm:"index"`
	Type        WalletEntryType `json:"type"`
	Amount      int64           `json:"amount"`
	Balance     int64           `json:"balance"` // Balance after the movement
	Description string          `json:"description"`
	ReferenceID string          `json:"reference_id,omitempty"` // Payment, subscription or swap ID
	CreatedAt   time.Time       `json:"created_at"`
}
