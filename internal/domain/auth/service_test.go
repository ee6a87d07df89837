package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	kvmem "vet-clinic-portal/internal/adapters/kv/memory"
	"vet-clinic-portal/internal/adapters/storage/kvjson"
	"vet-clinic-portal/internal/domain/users"
	authport "vet-clinic-portal/internal/ports/auth"
	"vet-clinic-portal/internal/ports/kv"
)

type fakeIssuer struct{}

func (fakeIssuer) Issue(ctx context.Context, c authport.Claims) (string, error) {
	return "token-" + c.UserID, nil
}

func newTestService() (*Service, *kvjson.UsersRepo, kv.Store) {
	store := kvmem.New()
	repo := kvjson.NewUsersRepo(kvjson.NewSource(store))
	return NewService(repo, store, fakeIssuer{}), repo, store
}

func TestLogin_SeedAdmin(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	u, token, err := svc.Login(ctx, "admin@vetclinic.com", "admin123")
	require.NoError(t, err)
	require.Equal(t, users.RoleAdmin, u.Role)
	require.Equal(t, "token-1", token)

	cur, ok, err := svc.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1", cur.ID)
}

func TestLogin_WrongPassword_DoesNotAlterIdentity(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "admin@vetclinic.com", "admin123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "admin@vetclinic.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// La identidad activa sigue siendo la del login exitoso
	cur, ok, err := svc.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1", cur.ID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_ImplicitLogin(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	u, token, err := svc.Register(ctx, "alice@example.com", "pw123", "Alice")
	require.NoError(t, err)
	require.Equal(t, users.RoleUser, u.Role)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "token-"+u.ID, token)

	cur, ok, err := svc.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, u.ID, cur.ID)
}

func TestRegister_DuplicateEmail_NoSideEffect(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice@example.com", "pw123", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "alice@example.com", "other", "Alice Bis")
	require.ErrorIs(t, err, ErrDuplicateEmail)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2) // seed admin + alice
}

func TestLogout_ClearsSessionMarker(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "admin@vetclinic.com", "admin123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, ok, err := svc.Current(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	// Incondicional: logout sin sesión tampoco falla
	require.NoError(t, svc.Logout(ctx))
}

func TestCredentialChecker_Pluggable(t *testing.T) {
	svc, _, _ := newTestService()

	// El default compara igualdad exacta
	require.True(t, PlainTextChecker{}.Check("admin123", "admin123"))
	require.False(t, PlainTextChecker{}.Check("admin123", "ADMIN123"))

	// Un checker que nunca acepta bloquea el login sin tocar al resto
	svc.WithCredentialChecker(rejectAll{})
	_, _, err := svc.Login(context.Background(), "admin@vetclinic.com", "admin123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

type rejectAll struct{}

func (rejectAll) Check(stored, supplied string) bool { return false }
