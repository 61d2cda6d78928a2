package handlers

import (
	"context"
	"net/http"

	"github.com/nexapay/crypto-desk/internal/jwt"
)

// Tokener extracts and verifies the caller's identity token. Every
// authenticated handler in this package depends on it.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}
