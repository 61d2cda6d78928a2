package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nexapay/crypto-desk/internal/models"
	"github.com/nexapay/crypto-desk/internal/services"
	"github.com/stretchr/testify/assert"
)

func pendingTransaction(txid string) *models.TransactionDB {
	return &models.TransactionDB{
		TransactionID: uuid.New(),
		Submitter: models.Submitter{
			UserID:   uuid.New(),
			Fullname: "John Doe",
			Username: "johnd",
			Email:    "john@example.com",
		},
		Coin:       "BTC",
		Amount:     150000,
		CoinAmount: 0.0025,
		Txid:       txid,
		Type:       models.TxTypeBuy,
		Status:     models.TxStatusPending,
	}
}

func confirmedCopy(txn *models.TransactionDB) *models.TransactionDB {
	out := *txn
	out.Status = models.TxStatusConfirmed
	return &out
}

func TestStatusService_SetStatus_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockStatusTransactionReader(ctrl)
	mockWriter := services.NewMockStatusTransactionWriter(ctrl)
	mockNotifications := services.NewMockNotificationCreator(ctrl)
	mockMailer := services.NewMockEmailSender(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewStatusService(mockReader, mockWriter, mockNotifications, mockMailer, mockKafka)

	confirmed := confirmedCopy(pendingTransaction("tx_abc123"))

	mockWriter.EXPECT().UpdateStatus(gomock.Any(), "tx_abc123", models.TxStatusConfirmed).Return(confirmed, nil)

	var savedNotification *models.NotificationDB
	mockNotifications.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.NotificationDB) error {
			savedNotification = n
			return nil
		})
	mockMailer.EXPECT().Send(gomock.Any(), "john@example.com", gomock.Any(), gomock.Any()).Return(nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.SetStatus(context.Background(), "tx_abc123", models.TxStatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, models.TxStatusConfirmed, got.Status)

	assert.Equal(t, confirmed.TransactionID, savedNotification.TransactionID)
	assert.Equal(t, confirmed.UserID, savedNotification.UserID)
	assert.Equal(t, "tx_abc123", savedNotification.Txid)
	assert.Equal(t, models.NotificationTypeTransactionConfirmed, savedNotification.Type)
	assert.Contains(t, savedNotification.Message, "tx_abc123")
	assert.Contains(t, savedNotification.Message, "BTC")
}

func TestStatusService_SetStatus_SideEffectsAreIsolated(t *testing.T) {
	tests := []struct {
		name            string
		notificationErr error
		emailErr        error
		kafkaErr        error
	}{
		{name: "email dispatcher down", emailErr: errors.New("smtp timeout")},
		{name: "notification store down", notificationErr: errors.New("insert failed")},
		{name: "kafka down", kafkaErr: errors.New("broker unreachable")},
		{
			name:            "everything down",
			notificationErr: errors.New("insert failed"),
			emailErr:        errors.New("smtp timeout"),
			kafkaErr:        errors.New("broker unreachable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockStatusTransactionReader(ctrl)
			mockWriter := services.NewMockStatusTransactionWriter(ctrl)
			mockNotifications := services.NewMockNotificationCreator(ctrl)
			mockMailer := services.NewMockEmailSender(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)

			svc := services.NewStatusService(mockReader, mockWriter, mockNotifications, mockMailer, mockKafka)

			confirmed := confirmedCopy(pendingTransaction("tx_abc123"))

			mockWriter.EXPECT().UpdateStatus(gomock.Any(), "tx_abc123", models.TxStatusConfirmed).Return(confirmed, nil)

			// Each side effect must be attempted exactly once no matter what
			// the others do.
			mockNotifications.EXPECT().Save(gomock.Any(), gomock.Any()).Return(tt.notificationErr).Times(1)
			mockMailer.EXPECT().Send(gomock.Any(), "john@example.com", gomock.Any(), gomock.Any()).Return(tt.emailErr).Times(1)
			mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(tt.kafkaErr).Times(1)

			got, err := svc.SetStatus(context.Background(), "tx_abc123", models.TxStatusConfirmed)
			assert.NoError(t, err)
			assert.Equal(t, models.TxStatusConfirmed, got.Status)
		})
	}
}

func TestStatusService_SetStatus_ConcurrentTransitionsCommitOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockStatusTransactionReader(ctrl)
	mockWriter := services.NewMockStatusTransactionWriter(ctrl)
	mockNotifications := services.NewMockNotificationCreator(ctrl)
	mockMailer := services.NewMockEmailSender(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewStatusService(mockReader, mockWriter, mockNotifications, mockMailer, mockKafka)

	pending := pendingTransaction("tx_race")

	// The writer behaves like the store: the first transition settles the row,
	// every later one finds no pending row and returns nil.
	var mu sync.Mutex
	var settled *models.TransactionDB
	mockWriter.EXPECT().UpdateStatus(gomock.Any(), "tx_race", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, status string) (*models.TransactionDB, error) {
			mu.Lock()
			defer mu.Unlock()
			if settled != nil {
				return nil, nil
			}
			out := *pending
			out.Status = status
			settled = &out
			return &out, nil
		}).Times(2)
	mockReader.EXPECT().GetByTxid(gomock.Any(), "tx_race").
		DoAndReturn(func(_ context.Context, _ string) (*models.TransactionDB, error) {
			mu.Lock()
			defer mu.Unlock()
			return settled, nil
		}).Times(1)

	// Side effects fire at most once, and only when the confirm wins the race.
	mockNotifications.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).MaxTimes(1)
	mockMailer.EXPECT().Send(gomock.Any(), "john@example.com", gomock.Any(), gomock.Any()).Return(nil).MaxTimes(1)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).MaxTimes(1)

	targets := []string{models.TxStatusConfirmed, models.TxStatusFailed}
	errs := make([]error, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target string) {
			defer wg.Done()
			_, errs[i] = svc.SetStatus(context.Background(), "tx_race", target)
		}(i, target)
	}
	wg.Wait()

	var committed, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			committed++
		case errors.Is(err, services.ErrTransactionNotPending):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, committed)
	assert.Equal(t, 1, rejected)
}

func TestStatusService_SetStatus_Failed_NoSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockStatusTransactionReader(ctrl)
	mockWriter := services.NewMockStatusTransactionWriter(ctrl)
	mockNotifications := services.NewMockNotificationCreator(ctrl)
	mockMailer := services.NewMockEmailSender(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewStatusService(mockReader, mockWriter, mockNotifications, mockMailer, mockKafka)

	failed := *pendingTransaction("tx_abc123")
	failed.Status = models.TxStatusFailed

	mockWriter.EXPECT().UpdateStatus(gomock.Any(), "tx_abc123", models.TxStatusFailed).Return(&failed, nil)

	got, err := svc.SetStatus(context.Background(), "tx_abc123", models.TxStatusFailed)
	assert.NoError(t, err)
	assert.Equal(t, models.TxStatusFailed, got.Status)
}

func TestStatusService_SetStatus_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockStatusTransactionReader(ctrl)
	mockWriter := services.NewMockStatusTransactionWriter(ctrl)
	mockNotifications := services.NewMockNotificationCreator(ctrl)
	mockMailer := services.NewMockEmailSender(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewStatusService(mockReader, mockWriter, mockNotifications, mockMailer, mockKafka)

	t.Run("invalid target status", func(t *testing.T) {
		_, err := svc.SetStatus(context.Background(), "tx_abc123", "pending")
		assert.ErrorIs(t, err, services.ErrInvalidStatus)
	})

	t.Run("unknown txid", func(t *testing.T) {
		mockWriter.EXPECT().UpdateStatus(gomock.Any(), "tx_missing", models.TxStatusConfirmed).Return(nil, nil)
		mockReader.EXPECT().GetByTxid(gomock.Any(), "tx_missing").Return(nil, nil)
		_, err := svc.SetStatus(context.Background(), "tx_missing", models.TxStatusConfirmed)
		assert.ErrorIs(t, err, services.ErrTransactionNotFound)
	})

	t.Run("already confirmed", func(t *testing.T) {
		confirmed := confirmedCopy(pendingTransaction("tx_done"))
		mockWriter.EXPECT().UpdateStatus(gomock.Any(), "tx_done", models.TxStatusFailed).Return(nil, nil)
		mockReader.EXPECT().GetByTxid(gomock.Any(), "tx_done").Return(confirmed, nil)
		_, err := svc.SetStatus(context.Background(), "tx_done", models.TxStatusFailed)
		assert.ErrorIs(t, err, services.ErrTransactionNotPending)
	})

	t.Run("store failure", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		mockWriter.EXPECT().UpdateStatus(gomock.Any(), "tx_abc123", models.TxStatusConfirmed).Return(nil, storeErr)
		_, err := svc.SetStatus(context.Background(), "tx_abc123", models.TxStatusConfirmed)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestStatusService_SetStatus_NilKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockStatusTransactionReader(ctrl)
	mockWriter := services.NewMockStatusTransactionWriter(ctrl)
	mockNotifications := services.NewMockNotificationCreator(ctrl)
	mockMailer := services.NewMockEmailSender(ctrl)

	svc := services.NewStatusService(mockReader, mockWriter, mockNotifications, mockMailer, nil)

	confirmed := confirmedCopy(pendingTransaction("tx_abc123"))

	mockWriter.EXPECT().UpdateStatus(gomock.Any(), "tx_abc123", models.TxStatusConfirmed).Return(confirmed, nil)
	mockNotifications.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	mockMailer.EXPECT().Send(gomock.Any(), "john@example.com", gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.SetStatus(context.Background(), "tx_abc123", models.TxStatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, models.TxStatusConfirmed, got.Status)
}
