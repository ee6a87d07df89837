package users

// Role define los roles soportados.
// @Enum admin, user
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User representa una cuenta del portal (cliente o admin).
// Los tags json definen el layout persistido de la colección "users".
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"` // texto plano, paridad con el layout histórico
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}
