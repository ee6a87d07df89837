package pets

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	items []Pet
}

func (r *testRepo) GetAll(ctx context.Context) ([]Pet, error) {
	return r.items, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.items {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) Add(ctx context.Context, p Pet) error {
	r.items = append(r.items, p)
	return nil
}

func TestService_Register_Valid(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	p, err := svc.Register(context.Background(), "alice", RegisterInput{
		Name:    "Rex",
		Species: "dog",
		Breed:   "Lab",
		Age:     3,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if p.ID == "" || p.OwnerID != "alice" || p.Species != SpeciesDog {
		t.Fatalf("unexpected pet: %#v", p)
	}

	owned, err := svc.ListByOwner(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(owned) != 1 || owned[0].Name != "Rex" {
		t.Fatalf("expected [Rex], got %#v", owned)
	}
}

func TestService_Register_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"empty name", RegisterInput{Species: "dog", Breed: "Lab", Age: 3}},
		{"empty breed", RegisterInput{Name: "Rex", Species: "dog", Age: 3}},
		{"negative age", RegisterInput{Name: "Rex", Species: "dog", Breed: "Lab", Age: -1}},
		{"unknown species", RegisterInput{Name: "Rex", Species: "dragon", Breed: "Lab", Age: 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &testRepo{}
			svc := NewService(repo)

			_, err := svc.Register(context.Background(), "alice", tc.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(repo.items) != 0 {
				t.Fatalf("rejected pet must not persist")
			}
		})
	}
}

func TestService_OwnerOf(t *testing.T) {
	repo := &testRepo{items: []Pet{{ID: "p1", OwnerID: "alice"}}}
	svc := NewService(repo)

	owner, err := svc.OwnerOf(context.Background(), "p1")
	if err != nil {
		t.Fatalf("OwnerOf: %v", err)
	}
	if owner != "alice" {
		t.Fatalf("expected alice, got %s", owner)
	}

	if _, err := svc.OwnerOf(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
