package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types
const (
	TxTypeBuy  = "buy"
	TxTypeSell = "sell"
)

// Transaction statuses
const (
	TxStatusPending   = "pending"
	TxStatusConfirmed = "confirmed"
	TxStatusFailed    = "failed"
)

// TransactionDB represents a buy/sell transaction row in the database.
// The Submitter fields are a frozen snapshot of the user at creation time.
type TransactionDB struct {
	TransactionID uuid.UUID `json:"transaction_id" db:"transaction_id"` // Primary key
	Submitter               // Embedded identity snapshot (user_id, fullname, username, email)

	Coin       string  `json:"coin" db:"coin"`               // Coin ticker, e.g. BTC
	Amount     float64 `json:"amount" db:"amount"`           // Fiat amount
	CoinAmount float64 `json:"coin_amount" db:"coin_amount"` // Crypto quantity
	Txid       string  `json:"txid" db:"txid"`               // User-claimed transaction id, globally unique
	Type       string  `json:"type" db:"tx_type"`            // buy or sell
	Country    string  `json:"country" db:"country"`
	Status     string  `json:"status" db:"status"` // pending, confirmed or failed

	// Buy-only
	WalletAddressUsed *string `json:"wallet_address_used,omitempty" db:"wallet_address_used"`

	// Sell-only
	BankName      *string `json:"bank_name,omitempty" db:"bank_name"`
	AccountName   *string `json:"account_name,omitempty" db:"account_name"`
	AccountNumber *string `json:"account_number,omitempty" db:"account_number"`

	// Desk deposit address resolved at creation, immutable afterwards even
	// if the wallet directory changes.
	WalletAddressSentTo string `json:"wallet_address_sent_to" db:"wallet_address_sent_to"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// BuyDetails carries the buy-branch payload of a create request.
type BuyDetails struct {
	// Wallet address the user sent crypto from / will receive to
	// example: bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq
	WalletAddressUsed string `json:"wallet_address_used"`
}

// SellDetails carries the sell-branch payload of a create request.
type SellDetails struct {
	// example: First Bank
	BankName string `json:"bank_name"`
	// Exactly two alphabetic words
	// example: John Doe
	AccountName string `json:"account_name"`
	// Exactly 10 digits
	// example: 0123456789
	AccountNumber string `json:"account_number"`
}

// CreateTransactionRequest is the tagged-variant create payload: Type selects
// which of the two branch payloads must be present.
type CreateTransactionRequest struct {
	Coin       string  `json:"coin"`
	Amount     float64 `json:"amount"`
	CoinAmount float64 `json:"coin_amount"`
	Txid       string  `json:"txid"`
	Type       string  `json:"type"`
	Country    string  `json:"country"`

	Buy  *BuyDetails  `json:"buy,omitempty"`
	Sell *SellDetails `json:"sell,omitempty"`
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	Coin    string // empty matches all coins
	Type    string // empty matches both buy and sell
	SortAsc bool   // false sorts newest first
}
