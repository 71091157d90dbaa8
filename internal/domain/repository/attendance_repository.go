package repository

import (
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// AttendanceRecord fila cruda del listado de asistencia con datos del usuario.
type AttendanceRecord struct {
	entity.Attendance
	FullName string
	Role     string
}

// AttendanceRepository define el puerto de persistencia para asistencia.
type AttendanceRepository interface {
	Create(att *entity.Attendance) error
	// GetOpenForDay devuelve la jornada abierta (sin check-out) del usuario en
	// el día indicado, o nil si no existe.
	GetOpenForDay(userID string, day time.Time) (*entity.Attendance, error)
	CloseOpenForDay(userID string, day time.Time, checkOut time.Time, notes string) (bool, error)
	List(userID string, from, to *time.Time, limit int) ([]*AttendanceRecord, error)
}
