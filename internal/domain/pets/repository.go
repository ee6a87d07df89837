package pets

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Pet, error)
	Add(ctx context.Context, p Pet) error
}
