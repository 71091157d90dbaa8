package entity

import "time"

// Roles de usuario.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleStaff   = "staff"
	RoleCashier = "cashier"
)

// ValidRole verifica que el rol sea uno de los conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleManager, RoleStaff, RoleCashier:
		return true
	}
	return false
}

// User representa un usuario del sistema (dueño, administrador, personal o cajero).
type User struct {
	ID           string
	Username     string // único
	PasswordHash string
	FullName     string
	Role         string
	Email        string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
