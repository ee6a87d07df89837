package kvjson

import (
	"context"

	"vet-clinic-portal/internal/domain/users"
)

type UsersRepo struct {
	src *Source
}

func NewUsersRepo(src *Source) *UsersRepo {
	return &UsersRepo{src: src}
}

func (r *UsersRepo) GetAll(ctx context.Context) ([]users.User, error) {
	r.src.mu.Lock()
	defer r.src.mu.Unlock()

	return r.getAll(ctx)
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.src.mu.Lock()
	defer r.src.mu.Unlock()

	all, err := r.getAll(ctx)
	if err != nil {
		return users.User{}, err
	}
	for _, u := range all {
		if u.ID == id {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.src.mu.Lock()
	defer r.src.mu.Unlock()

	all, err := r.getAll(ctx)
	if err != nil {
		return users.User{}, err
	}
	// Primer match por igualdad exacta (case-sensitive).
	for _, u := range all {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

// Add agrega al final y reescribe la colección. No verifica unicidad
// de ID: el llamador es responsable de generar uno fresco.
func (r *UsersRepo) Add(ctx context.Context, u users.User) error {
	r.src.mu.Lock()
	defer r.src.mu.Unlock()

	all, err := r.getAll(ctx)
	if err != nil {
		return err
	}
	all = append(all, u)
	return r.src.save(ctx, usersKey, all)
}

func (r *UsersRepo) getAll(ctx context.Context) ([]users.User, error) {
	out := make([]users.User, 0)
	if err := r.src.load(ctx, usersKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}
