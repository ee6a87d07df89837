package appointments

// Status define el ciclo de vida de una cita.
// scheduled es el estado inicial; completed y cancelled son terminales.
// @Enum scheduled, completed, cancelled
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Appointment representa una cita agendada para una mascota.
// Los tags json definen el layout persistido de la colección "appointments".
type Appointment struct {
	ID     string `json:"id"`
	PetID  string `json:"petId"`
	UserID string `json:"userId"`
	Date   string `json:"date"` // YYYY-MM-DD
	Time   string `json:"time"` // HH:MM, uno de TimeSlots
	Reason string `json:"reason"`
	Status Status `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

func validStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
