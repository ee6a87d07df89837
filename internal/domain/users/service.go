package users

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return User{}, ErrInvalidInput
	}
	// Lookup case-sensitive, igual que el comportamiento histórico.
	return s.repo.GetByEmail(ctx, email)
}

// ListClients devuelve todas las cuentas excepto admins.
// Es la vista "clientes" del dashboard.
func (s *Service) ListClients(ctx context.Context) ([]User, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]User, 0, len(all))
	for _, u := range all {
		if u.Role == RoleAdmin {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}
