package auth

import "context"

// TokenIssuer emite el token de sesión para unos claims.
type TokenIssuer interface {
	Issue(ctx context.Context, claims Claims) (string, error)
}
