// Package admin expone las vistas del dashboard: listado/búsqueda de
// citas y fichas de clientes. Solo lectura; las mutaciones viven en
// los módulos dueños de cada colección.
package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"vet-clinic-portal/internal/domain/appointments"
	"vet-clinic-portal/internal/domain/pets"
	"vet-clinic-portal/internal/domain/users"
	"vet-clinic-portal/internal/middleware"
)

func RegisterRoutes(r chi.Router, usersSvc *users.Service, petsSvc *pets.Service, apptsSvc *appointments.Service) {
	r.Route("/admin", func(ar chi.Router) {
		ar.Get("/appointments", listAppointmentsHandler(apptsSvc, petsSvc, usersSvc))
		ar.Get("/users", listClientsHandler(usersSvc))
		ar.Get("/users/{userID}", clientDetailsHandler(usersSvc, petsSvc, apptsSvc))
	})
}

type clientResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type petView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
	Age     int    `json:"age"`
	OwnerID string `json:"ownerId"`
}

type appointmentView struct {
	ID     string `json:"id"`
	PetID  string `json:"petId"`
	UserID string `json:"userId"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Reason string `json:"reason"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

type clientDetailsResponse struct {
	User         clientResponse    `json:"user"`
	Pets         []petView         `json:"pets"`
	Appointments []appointmentView `json:"appointments"`
}

func listAppointmentsHandler(apptsSvc *appointments.Service, petsSvc *pets.Service, usersSvc *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.IsAdmin() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var (
			items []appointments.Appointment
			err   error
		)

		if st := strings.TrimSpace(r.URL.Query().Get("status")); st != "" {
			items, err = apptsSvc.ListByStatus(r.Context(), appointments.Status(st))
			if errors.Is(err, appointments.ErrInvalidInput) {
				http.Error(w, "unknown status", http.StatusBadRequest)
				return
			}
		} else {
			items, err = apptsSvc.GetAll(r.Context())
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
			items, err = searchAppointments(r, items, q, petsSvc, usersSvc)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}

		out := make([]appointmentView, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentView(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listClientsHandler(usersSvc *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.IsAdmin() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		clients, err := usersSvc.ListClients(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]clientResponse, 0, len(clients))
		for _, u := range clients {
			out = append(out, toClientResponse(u))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func clientDetailsHandler(usersSvc *users.Service, petsSvc *pets.Service, apptsSvc *appointments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.IsAdmin() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		userID := chi.URLParam(r, "userID")
		u, err := usersSvc.GetByID(r.Context(), userID)
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		ownedPets, err := petsSvc.ListByOwner(r.Context(), userID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		appts, err := apptsSvc.ListByUser(r.Context(), userID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := clientDetailsResponse{
			User:         toClientResponse(u),
			Pets:         make([]petView, 0, len(ownedPets)),
			Appointments: make([]appointmentView, 0, len(appts)),
		}
		for _, p := range ownedPets {
			resp.Pets = append(resp.Pets, toPetView(p))
		}
		for _, a := range appts {
			resp.Appointments = append(resp.Appointments, toAppointmentView(a))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// searchAppointments reproduce la búsqueda del dashboard: substring
// case-insensitive sobre nombre de mascota, nombre del dueño o motivo.
func searchAppointments(r *http.Request, items []appointments.Appointment, q string, petsSvc *pets.Service, usersSvc *users.Service) ([]appointments.Appointment, error) {
	q = strings.ToLower(q)

	allPets, err := petsSvc.GetAll(r.Context())
	if err != nil {
		return nil, err
	}
	petNames := make(map[string]string, len(allPets))
	for _, p := range allPets {
		petNames[p.ID] = strings.ToLower(p.Name)
	}

	clients, err := usersSvc.ListClients(r.Context())
	if err != nil {
		return nil, err
	}
	userNames := make(map[string]string, len(clients))
	for _, u := range clients {
		userNames[u.ID] = strings.ToLower(u.Name)
	}

	out := make([]appointments.Appointment, 0)
	for _, a := range items {
		if strings.Contains(strings.ToLower(a.Reason), q) ||
			strings.Contains(petNames[a.PetID], q) ||
			strings.Contains(userNames[a.UserID], q) {
			out = append(out, a)
		}
	}
	return out, nil
}

func toClientResponse(u users.User) clientResponse {
	return clientResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: string(u.Role)}
}

func toPetView(p pets.Pet) petView {
	return petView{
		ID:      p.ID,
		Name:    p.Name,
		Species: string(p.Species),
		Breed:   p.Breed,
		Age:     p.Age,
		OwnerID: p.OwnerID,
	}
}

func toAppointmentView(a appointments.Appointment) appointmentView {
	return appointmentView{
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

// writeJSON duplicado a propósito por módulo (ver nota en auth/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
