package entity

import "time"

// Roles válidos para User.
const (
	RoleFarmer    = "farmer"
	RoleTrader    = "trader"
	RoleLogistics = "logistics"
	RoleRoaster   = "roaster"
	RoleAdmin     = "admin"
	RoleEducator  = "educator"
)

// ValidRole indica si role pertenece al enum fijo de roles.
func ValidRole(role string) bool {
	switch role {
	case RoleFarmer, RoleTrader, RoleLogistics, RoleRoaster, RoleAdmin, RoleEducator:
		return true
	}
	return false
}

// User representa una cuenta del sistema. El email se persiste normalizado
// (trim + minúsculas) y es único a nivel de tabla.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Role         string
	FirstName    *string
	LastName     *string
	CompanyName  *string
	Country      *string
	Phone        *string
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
