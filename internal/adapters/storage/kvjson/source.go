// Package kvjson implementa los repositorios de dominio sobre un kv.Store:
// cada colección vive serializada como JSON bajo una clave fija y toda
// mutación es leer-la-completa, modificar en memoria y reescribirla.
package kvjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"vet-clinic-portal/internal/domain/users"
	"vet-clinic-portal/internal/ports/kv"
)

const (
	usersKey        = "users"
	petsKey         = "pets"
	appointmentsKey = "appointments"
)

// ErrCorrupted indica que el valor guardado bajo una clave no parsea.
// No hay fallback a colección vacía: eso pisaría datos en el próximo write.
var ErrCorrupted = errors.New("stored data corrupted")

// Seed admin creado en el primer arranque. Credenciales documentadas
// del sistema, deben reproducirse tal cual.
var seedAdmin = users.User{
	ID:       "1",
	Email:    "admin@vetclinic.com",
	Password: "admin123",
	Name:     "Admin User",
	Role:     users.RoleAdmin,
}

// Source comparte el kv.Store y un mutex entre los tres repositorios,
// serializando cada ciclo leer-modificar-escribir dentro del proceso.
type Source struct {
	mu    sync.Mutex
	store kv.Store
}

func NewSource(store kv.Store) *Source {
	return &Source{store: store}
}

// bootstrap siembra las tres colecciones si la clave "users" no existe.
// Idempotente: con datos presentes no toca nada.
func (s *Source) bootstrap(ctx context.Context) error {
	_, ok, err := s.store.Get(ctx, usersKey)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	if err := s.save(ctx, usersKey, []users.User{seedAdmin}); err != nil {
		return err
	}
	if err := s.store.Set(ctx, petsKey, "[]"); err != nil {
		return err
	}
	return s.store.Set(ctx, appointmentsKey, "[]")
}

// load deserializa la colección completa bajo key en dest (un *[]T).
// Dispara bootstrap en el primer acceso.
func (s *Source) load(ctx context.Context, key string, dest any) error {
	if err := s.bootstrap(ctx); err != nil {
		return err
	}

	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		// bootstrap recién corrió; una clave ausente acá es un borrado externo
		raw = "[]"
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("%w: key %q: %v", ErrCorrupted, key, err)
	}
	return nil
}

// save serializa y reescribe la colección completa.
func (s *Source) save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, key, string(b))
}
