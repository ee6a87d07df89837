package appointments

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]Appointment, error)
	GetByID(ctx context.Context, id string) (Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]Appointment, error)
	ListByStatus(ctx context.Context, status Status) ([]Appointment, error)
	Add(ctx context.Context, a Appointment) error

	// Update reemplaza el registro con el mismo ID.
	// Si el ID no existe es un no-op silencioso (contrato histórico).
	Update(ctx context.Context, a Appointment) error
}
