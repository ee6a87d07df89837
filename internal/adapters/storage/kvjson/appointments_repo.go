package kvjson

import (
	"context"

	"vet-clinic-portal/internal/domain/appointments"
)

type AppointmentsRepo struct {
	src *Source
}

func NewAppointmentsRepo(src *Source) *AppointmentsRepo {
	return &AppointmentsRepo{src: src}
}

func (r *AppointmentsRepo) GetAll(ctx context.Context) ([]appointments.Appointment, error) {
	r.src.mu.Lock()
	defer r.src.mu.Unlock()

	return r.getAll(ctx)
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.src.mu.Lock()
	defer r.src.mu.Unlock()

	all, err := r.getAll(ctx)
	if err != nil {
		return appointments.Appointment{}, err
	}
	for _, a := range all {
		if a.ID == id {
			return a, nil
		}
	}
	return appointments.Appointment{}, appointments.ErrNotFound
}

func (r *AppointmentsRepo) ListByUser(ctx context.Context, userID string) ([]appointments.Appointment, error) {
	r.src.mu.Lock()
	defer r.src.mu.Unlock()

	all, err := r.getAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]appointments.Appointment, 0)
	for _, a := range all {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *AppointmentsRepo) ListByStatus(ctx context.Context, status appointments.Status) ([]appointments.Appointment, error) {
	r.src.mu.Lock()
	defer r.src.mu.Unlock()

	all, err := r.getAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]appointments.Appointment, 0)
	for _, a := range all {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *AppointmentsRepo) Add(ctx context.Context, a appointments.Appointment) error {
	r.src.mu.Lock()
	defer r.src.mu.Unlock()

	all, err := r.getAll(ctx)
	if err != nil {
		return err
	}
	all = append(all, a)
	return r.src.save(ctx, appointmentsKey, all)
}

// Update reemplaza in place el registro con el mismo ID y reescribe
// la colección. ID inexistente: no-op silencioso, nunca inserta.
func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	r.src.mu.Lock()
	defer r.src.mu.Unlock()

	all, err := r.getAll(ctx)
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID == a.ID {
			all[i] = a
			return r.src.save(ctx, appointmentsKey, all)
		}
	}
	return nil
}

func (r *AppointmentsRepo) getAll(ctx context.Context) ([]appointments.Appointment, error) {
	out := make([]appointments.Appointment, 0)
	if err := r.src.load(ctx, appointmentsKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}
