package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"vet-clinic-portal/internal/domain/pets"
	"vet-clinic-portal/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", bookHandler(svc, petsSvc))
		ar.Get("/", listMyAppointmentsHandler(svc))
		ar.Get("/{appointmentID}", getAppointmentHandler(svc))

		// Transiciones de estado (solo admin)
		ar.Post("/{appointmentID}/complete", transitionHandler(svc, StatusCompleted))
		ar.Post("/{appointmentID}/cancel", transitionHandler(svc, StatusCancelled))
	})
}

type bookRequest struct {
	PetID  string `json:"petId"`
	Date   string `json:"date"` // YYYY-MM-DD
	Time   string `json:"time"` // HH:MM
	Reason string `json:"reason"`
}

type transitionRequest struct {
	Notes string `json:"notes"`
}

type appointmentResponse struct {
	ID     string `json:"id"`
	PetID  string `json:"petId"`
	UserID string `json:"userId"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Reason string `json:"reason"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

func bookHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req bookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// La cita debe ser para una mascota propia.
		ownerID, err := petsSvc.OwnerOf(r.Context(), req.PetID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if ownerID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		a, err := svc.Book(r.Context(), claims.UserID, BookInput{
			PetID:  req.PetID,
			Date:   req.Date,
			Time:   req.Time,
			Reason: req.Reason,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

func listMyAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponses(items))
	}
}

func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "appointmentID"))
		if err != nil {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}

		if a.UserID != claims.UserID && !claims.IsAdmin() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func transitionHandler(svc *Service, to Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.IsAdmin() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		// Body opcional: {"notes": "..."}
		var req transitionRequest
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		id := chi.URLParam(r, "appointmentID")

		var (
			a   Appointment
			err error
		)
		switch to {
		case StatusCompleted:
			a, err = svc.Complete(r.Context(), id, req.Notes)
		case StatusCancelled:
			a, err = svc.Cancel(r.Context(), id, req.Notes)
		default:
			http.Error(w, "invalid transition", http.StatusBadRequest)
			return
		}

		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "appointment not found", http.StatusNotFound)
			case errors.Is(err, ErrBadState):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:     a.ID,
		PetID:  a.PetID,
		UserID: a.UserID,
		Date:   a.Date,
		Time:   a.Time,
		Reason: a.Reason,
		Status: string(a.Status),
		Notes:  a.Notes,
	}
}

func toAppointmentResponses(items []Appointment) []appointmentResponse {
	out := make([]appointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAppointmentResponse(a))
	}
	return out
}

// writeJSON duplicado a propósito por módulo (ver nota en auth/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
