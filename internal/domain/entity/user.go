package entity

import "time"

// User representa un usuario del sistema (operador de la cantina).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
