package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndGetClaims(t *testing.T) {
	j := New("test-secret", time.Minute)
	userID := uuid.New()

	token, err := j.Generate(context.Background(), userID, "John Doe", "johnd", "john@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "John Doe", claims.Fullname)
	assert.Equal(t, "johnd", claims.Username)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestGetClaims_WrongSecret(t *testing.T) {
	j := New("secret-a", time.Minute)
	other := New("secret-b", time.Minute)

	token, err := j.Generate(context.Background(), uuid.New(), "John Doe", "johnd", "john@example.com")
	assert.NoError(t, err)

	_, err = other.GetClaims(context.Background(), token)
	assert.Error(t, err)
}

func TestValidate_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute)

	token, err := j.Generate(context.Background(), uuid.New(), "John Doe", "johnd", "john@example.com")
	assert.NoError(t, err)

	err = j.Validate(context.Background(), token)
	assert.Error(t, err)
}

func TestGetTokenFromRequest(t *testing.T) {
	j := New("test-secret", time.Minute)

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc123", want: "abc123"},
		{name: "lowercase scheme", header: "bearer abc123", want: "abc123"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc123", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(context.Background(), r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
