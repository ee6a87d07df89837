package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"vet-clinic-portal/internal/domain/users"
	authport "vet-clinic-portal/internal/ports/auth"
	"vet-clinic-portal/internal/ports/kv"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
)

// sessionKey es el marcador de sesión persistido: el User activo
// serializado, o ausente si nadie inició sesión.
const sessionKey = "currentUser"

type Service struct {
	repo   users.Repository
	store  kv.Store
	issuer authport.TokenIssuer
	creds  CredentialChecker
}

func NewService(repo users.Repository, store kv.Store, issuer authport.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		store:  store,
		issuer: issuer,
		creds:  PlainTextChecker{},
	}
}

// WithCredentialChecker reemplaza el checker por defecto.
func (s *Service) WithCredentialChecker(c CredentialChecker) *Service {
	s.creds = c
	return s
}

// Login busca el usuario por email y compara la credencial.
// Si coincide, persiste el marcador de sesión y emite el token.
// No altera la identidad activa cuando falla.
func (s *Service) Login(ctx context.Context, email, password string) (users.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return users.User{}, "", ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return users.User{}, "", ErrInvalidCredentials
		}
		return users.User{}, "", err
	}

	if !s.creds.Check(u.Password, password) {
		return users.User{}, "", ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, u)
	if err != nil {
		return users.User{}, "", err
	}
	return u, token, nil
}

// Register falla sin efectos si el email ya existe. Si no, crea la
// cuenta con rol user e inicia sesión implícitamente (mismos efectos
// que Login).
func (s *Service) Register(ctx context.Context, email, password, name string) (users.User, string, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return users.User{}, "", ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return users.User{}, "", ErrDuplicateEmail
	} else if !errors.Is(err, users.ErrNotFound) {
		return users.User{}, "", err
	}

	u := users.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: password,
		Name:     name,
		Role:     users.RoleUser,
	}

	if err := s.repo.Add(ctx, u); err != nil {
		return users.User{}, "", err
	}

	token, err := s.openSession(ctx, u)
	if err != nil {
		return users.User{}, "", err
	}
	return u, token, nil
}

// Logout limpia el marcador de sesión. Incondicional.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, sessionKey)
}

// Current rehidrata la identidad activa desde el marcador persistido.
// ok=false si no hay sesión guardada.
func (s *Service) Current(ctx context.Context) (users.User, bool, error) {
	raw, ok, err := s.store.Get(ctx, sessionKey)
	if err != nil || !ok {
		return users.User{}, false, err
	}

	var u users.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return users.User{}, false, err
	}
	return u, true, nil
}

// UserByID expone el lookup para el endpoint /auth/me.
func (s *Service) UserByID(ctx context.Context, id string) (users.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) openSession(ctx context.Context, u users.User) (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	if err := s.store.Set(ctx, sessionKey, string(b)); err != nil {
		return "", err
	}

	return s.issuer.Issue(ctx, authport.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   string(u.Role),
	})
}
