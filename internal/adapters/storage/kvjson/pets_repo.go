package kvjson

import (
	"context"

	"vet-clinic-portal/internal/domain/pets"
)

type PetsRepo struct {
	src *Source
}

func NewPetsRepo(src *Source) *PetsRepo {
	return &PetsRepo{src: src}
}

func (r *PetsRepo) GetAll(ctx context.Context) ([]pets.Pet, error) {
	r.src.mu.Lock()
	defer r.src.mu.Unlock()

	return r.getAll(ctx)
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.src.mu.Lock()
	defer r.src.mu.Unlock()

	all, err := r.getAll(ctx)
	if err != nil {
		return pets.Pet{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

// ListByOwner filtra por igualdad sobre ownerId preservando el orden
// de inserción de la colección.
func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	r.src.mu.Lock()
	defer r.src.mu.Unlock()

	all, err := r.getAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0)
	for _, p := range all {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PetsRepo) Add(ctx context.Context, p pets.Pet) error {
	r.src.mu.Lock()
	defer r.src.mu.Unlock()

	all, err := r.getAll(ctx)
	if err != nil {
		return err
	}
	all = append(all, p)
	return r.src.save(ctx, petsKey, all)
}

func (r *PetsRepo) getAll(ctx context.Context) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	if err := r.src.load(ctx, petsKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}
