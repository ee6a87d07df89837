package kv

import "context"

// Store es el colaborador externo: un mapa persistente string->string.
// Get devuelve ok=false si la clave no existe (ausencia no es error).
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
