package users

import (
	"context"
	"testing"
)

type testRepo struct {
	items []User
}

func (r *testRepo) GetAll(ctx context.Context) ([]User, error) { return r.items, nil }

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	for _, u := range r.items {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) Add(ctx context.Context, u User) error {
	r.items = append(r.items, u)
	return nil
}

func TestService_ListClients_ExcludesAdmins(t *testing.T) {
	repo := &testRepo{items: []User{
		{ID: "1", Name: "Admin User", Role: RoleAdmin},
		{ID: "2", Name: "Alice", Role: RoleUser},
		{ID: "3", Name: "Bob", Role: RoleUser},
	}}
	svc := NewService(repo)

	clients, err := svc.ListClients(context.Background())
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if len(clients) != 2 || clients[0].ID != "2" || clients[1].ID != "3" {
		t.Fatalf("expected [2 3], got %#v", clients)
	}
}

func TestService_GetByID_EmptyInput(t *testing.T) {
	svc := NewService(&testRepo{})

	if _, err := svc.GetByID(context.Background(), "  "); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
