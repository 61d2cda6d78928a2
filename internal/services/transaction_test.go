package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nexapay/crypto-desk/internal/models"
	"github.com/nexapay/crypto-desk/internal/repositories"
	"github.com/nexapay/crypto-desk/internal/services"
	"github.com/stretchr/testify/assert"
)

func validBuyRequest() models.CreateTransactionRequest {
	return models.CreateTransactionRequest{
		Coin:       "BTC",
		Amount:     150000,
		CoinAmount: 0.0025,
		Txid:       "tx_abc123",
		Type:       models.TxTypeBuy,
		Country:    "Nigeria",
		Buy:        &models.BuyDetails{WalletAddressUsed: "bc1qxyz"},
	}
}

func validSellRequest() models.CreateTransactionRequest {
	return models.CreateTransactionRequest{
		Coin:       "USDT",
		Amount:     50000,
		CoinAmount: 100,
		Txid:       "tx_sell_1",
		Type:       models.TxTypeSell,
		Country:    "Nigeria",
		Sell: &models.SellDetails{
			BankName:      "First Bank",
			AccountName:   "John Doe",
			AccountNumber: "1234567890",
		},
	}
}

func TestTransactionService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTransactionReader(ctrl)
	mockWriter := services.NewMockTransactionWriter(ctrl)
	mockWallets := services.NewMockWalletAddressResolver(ctrl)

	svc := services.NewTransactionService(mockReader, mockWriter, mockWallets)
	submitter := models.Submitter{UserID: uuid.New(), Fullname: "John Doe", Username: "johnd", Email: "john@example.com"}

	tests := []struct {
		name     string
		mutate   func(req *models.CreateTransactionRequest)
		precheck bool // whether the txid lookup is reached
	}{
		{name: "missing coin", mutate: func(r *models.CreateTransactionRequest) { r.Coin = "" }},
		{name: "missing amount", mutate: func(r *models.CreateTransactionRequest) { r.Amount = 0 }},
		{name: "missing coin amount", mutate: func(r *models.CreateTransactionRequest) { r.CoinAmount = 0 }},
		{name: "missing txid", mutate: func(r *models.CreateTransactionRequest) { r.Txid = "" }},
		{name: "missing country", mutate: func(r *models.CreateTransactionRequest) { r.Country = "" }},
		{name: "unknown type", mutate: func(r *models.CreateTransactionRequest) { r.Type = "transfer" }},
		{
			name:     "buy without wallet address used",
			mutate:   func(r *models.CreateTransactionRequest) { r.Buy = nil },
			precheck: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBuyRequest()
			tt.mutate(&req)

			if tt.precheck {
				mockReader.EXPECT().GetByTxid(gomock.Any(), req.Txid).Return(nil, nil)
			}

			txn, err := svc.Create(context.Background(), submitter, req)
			assert.ErrorIs(t, err, services.ErrValidation)
			assert.Nil(t, txn)
		})
	}
}

func TestTransactionService_Create_SellValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTransactionReader(ctrl)
	mockWriter := services.NewMockTransactionWriter(ctrl)
	mockWallets := services.NewMockWalletAddressResolver(ctrl)

	svc := services.NewTransactionService(mockReader, mockWriter, mockWallets)
	submitter := models.Submitter{UserID: uuid.New(), Fullname: "John Doe", Username: "johnd", Email: "john@example.com"}

	tests := []struct {
		name          string
		accountName   string
		accountNumber string
		bankName      string
		wantErr       bool
	}{
		{name: "valid", accountName: "John Doe", accountNumber: "1234567890", bankName: "First Bank"},
		{name: "lowercase account name passes", accountName: "john doe", accountNumber: "1234567890", bankName: "First Bank"},
		{name: "missing bank name", accountName: "John Doe", accountNumber: "1234567890", bankName: "", wantErr: true},
		{name: "missing account name", accountName: "", accountNumber: "1234567890", bankName: "First Bank", wantErr: true},
		{name: "missing account number", accountName: "John Doe", accountNumber: "", bankName: "First Bank", wantErr: true},
		{name: "short account number", accountName: "John Doe", accountNumber: "12345", bankName: "First Bank", wantErr: true},
		{name: "non numeric account number", accountName: "John Doe", accountNumber: "12345abcde", bankName: "First Bank", wantErr: true},
		{name: "single word account name", accountName: "John", accountNumber: "1234567890", bankName: "First Bank", wantErr: true},
		{name: "three word account name", accountName: "John Doe Smith", accountNumber: "1234567890", bankName: "First Bank", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSellRequest()
			req.Txid = "tx_" + uuid.NewString()
			req.Sell.BankName = tt.bankName
			req.Sell.AccountName = tt.accountName
			req.Sell.AccountNumber = tt.accountNumber

			mockReader.EXPECT().GetByTxid(gomock.Any(), req.Txid).Return(nil, nil)
			if !tt.wantErr {
				mockWallets.EXPECT().Resolve(gomock.Any(), "USDT").Return("TQ5addr", nil)
				mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			}

			txn, err := svc.Create(context.Background(), submitter, req)
			if tt.wantErr {
				assert.ErrorIs(t, err, services.ErrValidation)
				assert.Nil(t, txn)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, models.TxStatusPending, txn.Status)
			assert.Equal(t, "TQ5addr", txn.WalletAddressSentTo)
		})
	}
}

func TestTransactionService_Create_DuplicateTxid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTransactionReader(ctrl)
	mockWriter := services.NewMockTransactionWriter(ctrl)
	mockWallets := services.NewMockWalletAddressResolver(ctrl)

	svc := services.NewTransactionService(mockReader, mockWriter, mockWallets)
	submitter := models.Submitter{UserID: uuid.New(), Fullname: "John Doe", Username: "johnd", Email: "john@example.com"}

	t.Run("seen by pre-check", func(t *testing.T) {
		req := validBuyRequest()
		mockReader.EXPECT().GetByTxid(gomock.Any(), req.Txid).
			Return(&models.TransactionDB{Txid: req.Txid}, nil)

		txn, err := svc.Create(context.Background(), submitter, req)
		assert.ErrorIs(t, err, services.ErrTxidAlreadyExists)
		assert.Nil(t, txn)
	})

	t.Run("lost the insert race", func(t *testing.T) {
		req := validBuyRequest()
		mockReader.EXPECT().GetByTxid(gomock.Any(), req.Txid).Return(nil, nil)
		mockWallets.EXPECT().Resolve(gomock.Any(), req.Coin).Return("bc1qdesk", nil)
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(repositories.ErrUniqueTxidViolation)

		txn, err := svc.Create(context.Background(), submitter, req)
		assert.ErrorIs(t, err, services.ErrTxidAlreadyExists)
		assert.Nil(t, txn)
	})
}

func TestTransactionService_Create_WalletAndStoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTransactionReader(ctrl)
	mockWriter := services.NewMockTransactionWriter(ctrl)
	mockWallets := services.NewMockWalletAddressResolver(ctrl)

	svc := services.NewTransactionService(mockReader, mockWriter, mockWallets)
	submitter := models.Submitter{UserID: uuid.New(), Fullname: "John Doe", Username: "johnd", Email: "john@example.com"}

	t.Run("unresolvable coin", func(t *testing.T) {
		req := validBuyRequest()
		req.Coin = "ZZZ"
		mockReader.EXPECT().GetByTxid(gomock.Any(), req.Txid).Return(nil, nil)
		mockWallets.EXPECT().Resolve(gomock.Any(), "ZZZ").
			Return("", services.ErrWalletAddressNotFound)

		txn, err := svc.Create(context.Background(), submitter, req)
		assert.ErrorIs(t, err, services.ErrWalletAddressNotFound)
		assert.Nil(t, txn)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		req := validBuyRequest()
		storeErr := errors.New("connection reset")
		mockReader.EXPECT().GetByTxid(gomock.Any(), req.Txid).Return(nil, nil)
		mockWallets.EXPECT().Resolve(gomock.Any(), req.Coin).Return("bc1qdesk", nil)
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(storeErr)

		txn, err := svc.Create(context.Background(), submitter, req)
		assert.ErrorIs(t, err, storeErr)
		assert.Nil(t, txn)
	})
}

func TestTransactionService_Create_SnapshotAndResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTransactionReader(ctrl)
	mockWriter := services.NewMockTransactionWriter(ctrl)
	mockWallets := services.NewMockWalletAddressResolver(ctrl)

	svc := services.NewTransactionService(mockReader, mockWriter, mockWallets)
	submitter := models.Submitter{UserID: uuid.New(), Fullname: "John Doe", Username: "johnd", Email: "john@example.com"}

	req := validBuyRequest()
	mockReader.EXPECT().GetByTxid(gomock.Any(), req.Txid).Return(nil, nil)
	mockWallets.EXPECT().Resolve(gomock.Any(), "BTC").Return("bc1qoverride", nil)

	var saved *models.TransactionDB
	mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.TransactionDB) error {
			saved = txn
			return nil
		})

	txn, err := svc.Create(context.Background(), submitter, req)
	assert.NoError(t, err)
	assert.Equal(t, saved, txn)
	assert.Equal(t, submitter, txn.Submitter)
	assert.Equal(t, models.TxStatusPending, txn.Status)
	assert.Equal(t, "bc1qoverride", txn.WalletAddressSentTo)
	assert.NotNil(t, txn.WalletAddressUsed)
	assert.Equal(t, "bc1qxyz", *txn.WalletAddressUsed)
	assert.Nil(t, txn.BankName)
	assert.NotEqual(t, uuid.Nil, txn.TransactionID)
}

func TestTransactionService_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTransactionReader(ctrl)
	mockWriter := services.NewMockTransactionWriter(ctrl)
	mockWallets := services.NewMockWalletAddressResolver(ctrl)

	svc := services.NewTransactionService(mockReader, mockWriter, mockWallets)

	filter := models.TransactionFilter{Coin: "BTC", Type: models.TxTypeBuy}
	want := []models.TransactionDB{{Txid: "tx_1"}, {Txid: "tx_2"}}
	userID := uuid.New()

	mockReader.EXPECT().List(gomock.Any(), filter).Return(want, nil)
	got, err := svc.List(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	mockReader.EXPECT().ListByUser(gomock.Any(), userID, filter).Return(want[:1], nil)
	got, err = svc.ListForUser(context.Background(), userID, filter)
	assert.NoError(t, err)
	assert.Equal(t, want[:1], got)
}
