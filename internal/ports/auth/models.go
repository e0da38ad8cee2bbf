package auth

// Role es el nivel de permiso de un usuario del staff.
// La comparación es exacta: admin NO satisface un requisito "staff" implícitamente.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Identity es el snapshot del usuario autenticado que viaja en la sesión.
// Nunca incluye el hash de la contraseña.
type Identity struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
}
