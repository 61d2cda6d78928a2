package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nexapay/crypto-desk/internal/jwt"
)

func TestSetWalletAddressHandler(t *testing.T) {
	validToken := "valid-token"
	claims := &jwt.Claims{UserID: uuid.New()}

	tests := []struct {
		name               string
		coin               string
		requestBody        any
		setupMocks         func(mockManager *MockWalletAddressManager, mockTokener *MockTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful override",
			coin:        "BTC",
			requestBody: SetWalletAddressRequest{Address: "bc1qnew"},
			setupMocks: func(mockManager *MockWalletAddressManager, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(claims, nil)
				mockManager.EXPECT().SetOverride(gomock.Any(), "BTC", "bc1qnew").Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "message",
		},
		{
			name:        "unauthorized missing token",
			coin:        "BTC",
			requestBody: SetWalletAddressRequest{Address: "bc1qnew"},
			setupMocks: func(mockManager *MockWalletAddressManager, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:        "missing address",
			coin:        "BTC",
			requestBody: SetWalletAddressRequest{},
			setupMocks: func(mockManager *MockWalletAddressManager, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(claims, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "store failure",
			coin:        "BTC",
			requestBody: SetWalletAddressRequest{Address: "bc1qnew"},
			setupMocks: func(mockManager *MockWalletAddressManager, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(claims, nil)
				mockManager.EXPECT().SetOverride(gomock.Any(), "BTC", "bc1qnew").Return(assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockTokener(ctrl)
			mockManager := NewMockWalletAddressManager(ctrl)

			tt.setupMocks(mockManager, mockTokener)

			bodyBytes, _ := json.Marshal(tt.requestBody)

			req := httptest.NewRequest(http.MethodPut, "/wallets/addresses/"+tt.coin, bytes.NewReader(bodyBytes))
			routeCtx := chi.NewRouteContext()
			routeCtx.URLParams.Add("coin", tt.coin)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
			rr := httptest.NewRecorder()

			handler := NewSetWalletAddressHandler(mockManager, mockTokener)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
