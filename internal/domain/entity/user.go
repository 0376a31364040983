package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin               = "Admin"
	RoleInventorySpecialist = "InventorySpecialist"
	RolePicker              = "Picker"
)

// User representa un usuario del sistema (staff de la bodega).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // Admin, InventorySpecialist, Picker
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
