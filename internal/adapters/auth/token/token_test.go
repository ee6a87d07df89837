package token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vet-clinic-portal/internal/ports/auth"
)

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	tok, err := m.Issue(context.Background(), auth.Claims{
		UserID: "u-1",
		Email:  "alice@example.com",
		Role:   "user",
	})
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Verify(context.Background(), tok)
	require.NoError(t, err)
	require.Equal(t, "u-1", claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "user", claims.Role)
	require.False(t, claims.IsAdmin())
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	tok, err := issuer.Issue(context.Background(), auth.Claims{UserID: "u-1"})
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), tok)
	require.Error(t, err)
}

func TestVerify_RejectsExpired(t *testing.T) {
	m := NewManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	tok, err := m.Issue(context.Background(), auth.Claims{UserID: "u-1"})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(context.Background(), tok)
	require.Error(t, err)
}

func TestIssue_RequiresUserID(t *testing.T) {
	m := NewManager("secret", time.Hour)

	_, err := m.Issue(context.Background(), auth.Claims{})
	require.Error(t, err)
}
