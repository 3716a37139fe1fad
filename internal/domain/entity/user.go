package entity

import "time"

// Roles de usuario del dashboard.
const (
	RoleExecutive = "executive"
	RoleAnalyst   = "analyst"
	RoleViewer    = "viewer"
)

// User representa un usuario del dashboard ejecutivo.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	Role         string
	Status       string // active, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
