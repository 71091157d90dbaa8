package entity

import "time"

// Attendance registra la jornada de un usuario: entrada y salida del día.
// CheckOut nil = jornada abierta.
type Attendance struct {
	ID        string
	UserID    string
	CheckIn   time.Time
	CheckOut  *time.Time
	Notes     string
	CreatedAt time.Time
}
