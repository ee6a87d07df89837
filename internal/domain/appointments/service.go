package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrBadState     = errors.New("invalid state")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type BookInput struct {
	PetID  string
	Date   string // YYYY-MM-DD
	Time   string // HH:MM
	Reason string
}

// Book agenda una cita para userID. Reglas del formulario original:
// todos los campos obligatorios, horario dentro del set cerrado,
// fecha válida, ni pasada ni fin de semana. Siempre nace scheduled.
func (s *Service) Book(ctx context.Context, userID string, in BookInput) (Appointment, error) {
	if strings.TrimSpace(userID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.PetID) == "" || strings.TrimSpace(in.Reason) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if !ValidSlot(in.Time) {
		return Appointment{}, ErrInvalidInput
	}

	day, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return Appointment{}, ErrInvalidInput
	}
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return Appointment{}, ErrInvalidInput
	}

	today := s.now().Format("2006-01-02")
	if in.Date < today {
		return Appointment{}, ErrInvalidInput
	}

	a := Appointment{
		ID:     uuid.NewString(),
		PetID:  strings.TrimSpace(in.PetID),
		UserID: userID,
		Date:   in.Date,
		Time:   in.Time,
		Reason: strings.TrimSpace(in.Reason),
		Status: StatusScheduled,
	}

	if err := s.repo.Add(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// Complete marca la cita como completada.
func (s *Service) Complete(ctx context.Context, id, notes string) (Appointment, error) {
	return s.transition(ctx, id, StatusCompleted, notes)
}

// Cancel marca la cita como cancelada.
func (s *Service) Cancel(ctx context.Context, id, notes string) (Appointment, error) {
	return s.transition(ctx, id, StatusCancelled, notes)
}

// transition aplica scheduled -> completed|cancelled.
// Cualquier salida de un estado terminal se rechaza con ErrBadState;
// el store subyacente sigue siendo permisivo, la integridad vive acá.
func (s *Service) transition(ctx context.Context, id string, to Status, notes string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrInvalidInput
	}
	if !validStatus(to) || to == StatusScheduled {
		return Appointment{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, ErrNotFound
	}
	if a.Status != StatusScheduled {
		return Appointment{}, ErrBadState
	}

	a.Status = to
	if strings.TrimSpace(notes) != "" {
		a.Notes = strings.TrimSpace(notes)
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Appointment, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListByStatus(ctx context.Context, status Status) ([]Appointment, error) {
	if !validStatus(status) {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) GetAll(ctx context.Context) ([]Appointment, error) {
	return s.repo.GetAll(ctx)
}
