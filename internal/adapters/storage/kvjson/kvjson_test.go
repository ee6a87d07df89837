package kvjson

import (
	"context"
	"errors"
	"testing"

	"vet-clinic-portal/internal/domain/appointments"
	"vet-clinic-portal/internal/domain/pets"
	"vet-clinic-portal/internal/domain/users"
)

// -------------------------
// Test KV (in-memory)
// -------------------------

type mapStore struct {
	data map[string]string
}

func newMapStore() *mapStore {
	return &mapStore{data: map[string]string{}}
}

func (s *mapStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *mapStore) Set(ctx context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func (s *mapStore) Delete(ctx context.Context, key string) error {
	delete(s.data, key)
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestBootstrap_SeedsOnce(t *testing.T) {
	ctx := context.Background()
	kv := newMapStore()
	src := NewSource(kv)

	usersRepo := NewUsersRepo(src)
	petsRepo := NewPetsRepo(src)
	apptsRepo := NewAppointmentsRepo(src)

	// Primer acceso siembra las tres colecciones
	all, err := usersRepo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll users: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 seeded user, got %d", len(all))
	}

	admin := all[0]
	if admin.ID != "1" || admin.Email != "admin@vetclinic.com" || admin.Password != "admin123" {
		t.Fatalf("unexpected seed admin: %#v", admin)
	}
	if admin.Role != users.RoleAdmin || admin.Name != "Admin User" {
		t.Fatalf("unexpected seed admin: %#v", admin)
	}

	ps, err := petsRepo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll pets: %v", err)
	}
	if len(ps) != 0 {
		t.Fatalf("expected 0 seeded pets, got %d", len(ps))
	}

	as, err := apptsRepo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll appointments: %v", err)
	}
	if len(as) != 0 {
		t.Fatalf("expected 0 seeded appointments, got %d", len(as))
	}

	// Idempotente: con datos presentes no re-siembra
	if err := usersRepo.Add(ctx, users.User{ID: "u2", Email: "a@b.c", Role: users.RoleUser}); err != nil {
		t.Fatalf("Add user: %v", err)
	}
	all, err = usersRepo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll users #2: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 users after add, got %d", len(all))
	}
}

func TestUsers_AddThenGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewUsersRepo(NewSource(newMapStore()))

	u := users.User{ID: "u-1", Email: "alice@example.com", Password: "pw123", Name: "Alice", Role: users.RoleUser}
	if err := repo.Add(ctx, u); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := repo.GetByID(ctx, "u-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != u {
		t.Fatalf("expected %#v, got %#v", u, got)
	}

	if _, err := repo.GetByID(ctx, "nope"); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUsers_GetByEmail_CaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUsersRepo(NewSource(newMapStore()))

	_ = repo.Add(ctx, users.User{ID: "u-1", Email: "alice@example.com"})

	if _, err := repo.GetByEmail(ctx, "alice@example.com"); err != nil {
		t.Fatalf("GetByEmail exact: %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "Alice@Example.com"); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for different case, got %v", err)
	}
}

func TestPets_ListByOwner_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPetsRepo(NewSource(newMapStore()))

	_ = repo.Add(ctx, pets.Pet{ID: "p1", Name: "Rex", OwnerID: "alice"})
	_ = repo.Add(ctx, pets.Pet{ID: "p2", Name: "Milo", OwnerID: "bob"})
	_ = repo.Add(ctx, pets.Pet{ID: "p3", Name: "Luna", OwnerID: "alice"})

	got, err := repo.ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p3" {
		t.Fatalf("expected [p1 p3] in insertion order, got %#v", got)
	}

	// Cero matches: secuencia vacía, no error
	none, err := repo.ListByOwner(ctx, "nobody")
	if err != nil {
		t.Fatalf("ListByOwner zero matches: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty, got %#v", none)
	}
}

func TestAppointments_Update_ReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentsRepo(NewSource(newMapStore()))

	a := appointments.Appointment{
		ID: "a1", PetID: "p1", UserID: "u1",
		Date: "2025-06-10", Time: "10:00",
		Reason: "Checkup", Status: appointments.StatusScheduled,
	}
	_ = repo.Add(ctx, a)

	a.Status = appointments.StatusCompleted
	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, "a1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != appointments.StatusCompleted {
		t.Fatalf("expected completed, got %s", got.Status)
	}
	if got.Date != "2025-06-10" || got.Time != "10:00" || got.Reason != "Checkup" {
		t.Fatalf("other fields changed: %#v", got)
	}
}

func TestAppointments_Update_MissingID_IsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentsRepo(NewSource(newMapStore()))

	_ = repo.Add(ctx, appointments.Appointment{ID: "a1", Status: appointments.StatusScheduled})

	if err := repo.Update(ctx, appointments.Appointment{ID: "ghost", Status: appointments.StatusCancelled}); err != nil {
		t.Fatalf("Update missing id must not fail: %v", err)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 1 || all[0].ID != "a1" || all[0].Status != appointments.StatusScheduled {
		t.Fatalf("collection changed on no-op update: %#v", all)
	}
}

func TestAppointments_FilterByUserAndStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentsRepo(NewSource(newMapStore()))

	_ = repo.Add(ctx, appointments.Appointment{ID: "a1", UserID: "u1", Status: appointments.StatusScheduled})
	_ = repo.Add(ctx, appointments.Appointment{ID: "a2", UserID: "u2", Status: appointments.StatusScheduled})
	_ = repo.Add(ctx, appointments.Appointment{ID: "a3", UserID: "u1", Status: appointments.StatusCancelled})

	byUser, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(byUser) != 2 || byUser[0].ID != "a1" || byUser[1].ID != "a3" {
		t.Fatalf("expected [a1 a3], got %#v", byUser)
	}

	byStatus, err := repo.ListByStatus(ctx, appointments.StatusCancelled)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].ID != "a3" {
		t.Fatalf("expected [a3], got %#v", byStatus)
	}
}

func TestCorruptedData_SurfacesError(t *testing.T) {
	ctx := context.Background()
	kv := newMapStore()
	repo := NewPetsRepo(NewSource(kv))

	// bootstrap primero, después pisamos la clave con basura
	if _, err := repo.GetAll(ctx); err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	kv.data["pets"] = "{not json"

	_, err := repo.GetAll(ctx)
	if !errors.Is(err, ErrCorrupted) {
		t.Fatalf("expected ErrCorrupted, got %v", err)
	}
}
