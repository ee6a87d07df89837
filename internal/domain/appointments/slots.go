package appointments

// TimeSlots es el set cerrado de horarios que ofrece la clínica.
// Hay un hueco de almuerzo entre 12:30 y 14:00.
var TimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00",
}

func ValidSlot(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}
