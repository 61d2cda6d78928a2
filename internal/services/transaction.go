package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/nexapay/crypto-desk/internal/logger"
	"github.com/nexapay/crypto-desk/internal/models"
	"github.com/nexapay/crypto-desk/internal/repositories"
)

// Error variables
var (
	// ErrValidation wraps every user-fixable input problem.
	ErrValidation = errors.New("validation failed")
	// ErrTxidAlreadyExists is returned when a txid was already submitted.
	ErrTxidAlreadyExists = errors.New("transaction with this txid already exists")
)

var (
	accountNumberPattern = regexp.MustCompile(`^\d{10}$`)
	accountNamePattern   = regexp.MustCompile(`^[A-Za-z]+\s+[A-Za-z]+$`)
)

// TransactionReader defines read operations for transactions.
type TransactionReader interface {
	GetByTxid(ctx context.Context, txid string) (*models.TransactionDB, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter) ([]models.TransactionDB, error)
}

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	Save(ctx context.Context, txn *models.TransactionDB) error
}

// WalletAddressResolver resolves a coin ticker to a desk deposit address.
type WalletAddressResolver interface {
	Resolve(ctx context.Context, coin string) (string, error)
}

// TransactionService validates and creates buy/sell transactions.
type TransactionService struct {
	reader  TransactionReader
	writer  TransactionWriter
	wallets WalletAddressResolver
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader TransactionReader, writer TransactionWriter, wallets WalletAddressResolver) *TransactionService {
	return &TransactionService{
		reader:  reader,
		writer:  writer,
		wallets: wallets,
	}
}

// Create validates the request, resolves the desk deposit address and
// persists a pending transaction carrying the frozen submitter snapshot.
// It has no side effects beyond persistence.
func (s *TransactionService) Create(ctx context.Context, submitter models.Submitter, req models.CreateTransactionRequest) (*models.TransactionDB, error) {
	if err := validateRequired(req); err != nil {
		logger.Log.Warnw("transaction request rejected", "txid", req.Txid, "error", err)
		return nil, err
	}

	// Fast path only: the unique index on txid is what actually guarantees
	// at-most-once under concurrent submits.
	existing, err := s.reader.GetByTxid(ctx, req.Txid)
	if err != nil {
		logger.Log.Errorw("failed to check txid uniqueness", "txid", req.Txid, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrTxidAlreadyExists
	}

	if err := validateBranch(req); err != nil {
		logger.Log.Warnw("transaction request rejected", "txid", req.Txid, "error", err)
		return nil, err
	}

	address, err := s.wallets.Resolve(ctx, req.Coin)
	if err != nil {
		logger.Log.Errorw("failed to resolve wallet address", "coin", req.Coin, "error", err)
		return nil, err
	}

	txn := &models.TransactionDB{
		TransactionID: uuid.New(),
		Submitter:     submitter,
		Coin:          req.Coin,
		Amount:        req.Amount,
		CoinAmount:    req.CoinAmount,
		Txid:          req.Txid,
		Type:          req.Type,
		Country:       req.Country,
		Status:        models.TxStatusPending,

		WalletAddressSentTo: address,
	}
	switch req.Type {
	case models.TxTypeBuy:
		txn.WalletAddressUsed = &req.Buy.WalletAddressUsed
	case models.TxTypeSell:
		txn.BankName = &req.Sell.BankName
		txn.AccountName = &req.Sell.AccountName
		txn.AccountNumber = &req.Sell.AccountNumber
	}

	if err := s.writer.Save(ctx, txn); err != nil {
		if errors.Is(err, repositories.ErrUniqueTxidViolation) {
			return nil, ErrTxidAlreadyExists
		}
		logger.Log.Errorw("failed to save transaction", "txid", req.Txid, "error", err)
		return nil, err
	}

	return txn, nil
}

// List returns all transactions matching the filter (operator view).
func (s *TransactionService) List(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionDB, error) {
	return s.reader.List(ctx, filter)
}

// ListForUser returns a single user's transactions matching the filter.
func (s *TransactionService) ListForUser(ctx context.Context, userID uuid.UUID, filter models.TransactionFilter) ([]models.TransactionDB, error) {
	return s.reader.ListByUser(ctx, userID, filter)
}

// validateRequired checks the always-required fields and the type tag.
func validateRequired(req models.CreateTransactionRequest) error {
	switch {
	case req.Coin == "":
		return fmt.Errorf("%w: coin is required", ErrValidation)
	case req.Amount <= 0:
		return fmt.Errorf("%w: amount is required", ErrValidation)
	case req.CoinAmount <= 0:
		return fmt.Errorf("%w: coin_amount is required", ErrValidation)
	case req.Txid == "":
		return fmt.Errorf("%w: txid is required", ErrValidation)
	case req.Type == "":
		return fmt.Errorf("%w: type is required", ErrValidation)
	case req.Country == "":
		return fmt.Errorf("%w: country is required", ErrValidation)
	}

	if req.Type != models.TxTypeBuy && req.Type != models.TxTypeSell {
		return fmt.Errorf("%w: type must be buy or sell", ErrValidation)
	}
	return nil
}

// validateBranch checks the type-conditional payload.
func validateBranch(req models.CreateTransactionRequest) error {
	switch req.Type {
	case models.TxTypeBuy:
		if req.Buy == nil || req.Buy.WalletAddressUsed == "" {
			return fmt.Errorf("%w: wallet_address_used is required for buy transactions", ErrValidation)
		}
	case models.TxTypeSell:
		if req.Sell == nil {
			return fmt.Errorf("%w: bank details are required for sell transactions", ErrValidation)
		}
		switch {
		case req.Sell.BankName == "":
			return fmt.Errorf("%w: bank_name is required for sell transactions", ErrValidation)
		case req.Sell.AccountName == "":
			return fmt.Errorf("%w: account_name is required for sell transactions", ErrValidation)
		case req.Sell.AccountNumber == "":
			return fmt.Errorf("%w: account_number is required for sell transactions", ErrValidation)
		case !accountNumberPattern.MatchString(req.Sell.AccountNumber):
			return fmt.Errorf("%w: account_number must be exactly 10 digits", ErrValidation)
		case !accountNamePattern.MatchString(strings.TrimSpace(req.Sell.AccountName)):
			return fmt.Errorf("%w: account_name must be exactly two alphabetic words", ErrValidation)
		}
	}

	return nil
}
