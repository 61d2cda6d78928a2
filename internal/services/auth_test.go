package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nexapay/crypto-desk/internal/models"
	"github.com/nexapay/crypto-desk/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		fullname     string
		username     string
		password     string
		email        string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:         "successful registration",
			fullname:     "Alice Attah",
			username:     "alice",
			password:     "pass123",
			email:        "alice@example.com",
			existingUser: nil,
			wantErr:      nil,
		},
		{
			name:         "user already exists",
			fullname:     "Bob Bello",
			username:     "bob",
			password:     "pass123",
			email:        "bob@example.com",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			fullname:  "Eve Edet",
			username:  "eve",
			password:  "pass123",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			fullname:  "Carol Chukwu",
			username:  "carol",
			password:  "pass123",
			email:     "carol@example.com",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &tt.username, &tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.fullname, tt.username, tt.email, gomock.Any()).
					Return(tt.writerErr)
			}

			err := svc.Register(context.Background(), tt.fullname, tt.username, tt.password, tt.email)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()
	user := &models.UserDB{
		UserID:       userID,
		Fullname:     "Alice Attah",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hashed),
	}

	t.Run("successful login", func(t *testing.T) {
		mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), nil).Return(user, nil)
		mockJWT.EXPECT().
			Generate(gomock.Any(), userID, "Alice Attah", "alice", "alice@example.com").
			Return("token123", nil)

		token, err := svc.Login(context.Background(), "alice", password)
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
	})

	t.Run("user does not exist", func(t *testing.T) {
		mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), nil).Return(nil, nil)

		token, err := svc.Login(context.Background(), "ghost", password)
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
		assert.Empty(t, token)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), nil).Return(user, nil)

		token, err := svc.Login(context.Background(), "alice", "wrong-password")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("jwt generation failure", func(t *testing.T) {
		jwtErr := errors.New("sign error")
		mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), gomock.Any(), nil).Return(user, nil)
		mockJWT.EXPECT().
			Generate(gomock.Any(), userID, "Alice Attah", "alice", "alice@example.com").
			Return("", jwtErr)

		token, err := svc.Login(context.Background(), "alice", password)
		assert.ErrorIs(t, err, jwtErr)
		assert.Empty(t, token)
	})
}
