package pets

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type RegisterInput struct {
	Name    string
	Species string
	Breed   string
	Age     int
}

// Register valida y da de alta una mascota para ownerID.
// Las reglas son las mismas que aplicaba el formulario: nombre y raza
// obligatorios, edad no negativa, especie dentro del set cerrado.
func (s *Service) Register(ctx context.Context, ownerID string, in RegisterInput) (Pet, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Breed) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Age < 0 {
		return Pet{}, ErrInvalidInput
	}

	sp := Species(strings.TrimSpace(in.Species))
	if !validSpecies(sp) {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(in.Name),
		Species: sp,
		Breed:   strings.TrimSpace(in.Breed),
		Age:     in.Age,
		OwnerID: ownerID,
	}

	if err := s.repo.Add(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) GetAll(ctx context.Context) ([]Pet, error) {
	return s.repo.GetAll(ctx)
}

// OwnerOf expone el ownerID de una mascota.
// Evita que otros módulos dependan del modelo completo.
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerID, nil
}

func validSpecies(sp Species) bool {
	switch sp {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesOther:
		return true
	default:
		return false
	}
}
