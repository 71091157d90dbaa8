package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// AttendanceUseCase maneja check-in / check-out de jornadas.
type AttendanceUseCase struct {
	attendanceRepo repository.AttendanceRepository
}

// NewAttendanceUseCase construye el caso de uso de asistencia.
func NewAttendanceUseCase(attendanceRepo repository.AttendanceRepository) *AttendanceUseCase {
	return &AttendanceUseCase{attendanceRepo: attendanceRepo}
}

// CheckIn abre la jornada del usuario para el día actual.
// Si ya tiene una jornada abierta hoy responde ErrConflict.
func (uc *AttendanceUseCase) CheckIn(userID, notes string) (*dto.AttendanceItem, error) {
	now := time.Now()
	open, err := uc.attendanceRepo.GetOpenForDay(userID, now)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, fmt.Errorf("%w: ya existe una jornada abierta hoy", domain.ErrConflict)
	}

	att := &entity.Attendance{
		ID:        uuid.New().String(),
		UserID:    userID,
		CheckIn:   now,
		Notes:     notes,
		CreatedAt: now,
	}
	if err := uc.attendanceRepo.Create(att); err != nil {
		return nil, err
	}
	return &dto.AttendanceItem{
		ID:      att.ID,
		UserID:  att.UserID,
		CheckIn: att.CheckIn,
		Notes:   att.Notes,
	}, nil
}

// CheckOut cierra la jornada abierta del usuario para el día actual.
// Sin jornada abierta responde ErrNotFound.
func (uc *AttendanceUseCase) CheckOut(userID, notes string) error {
	now := time.Now()
	closed, err := uc.attendanceRepo.CloseOpenForDay(userID, now, now, notes)
	if err != nil {
		return err
	}
	if !closed {
		return fmt.Errorf("%w: no hay jornada abierta hoy", domain.ErrNotFound)
	}
	return nil
}

// List devuelve jornadas filtradas por usuario y rango opcionales.
func (uc *AttendanceUseCase) List(userID string, from, to *time.Time, limit int) ([]dto.AttendanceItem, error) {
	if limit <= 0 {
		limit = 100
	}
	records, err := uc.attendanceRepo.List(userID, from, to, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttendanceItem, 0, len(records))
	for _, r := range records {
		out = append(out, dto.AttendanceItem{
			ID:       r.ID,
			UserID:   r.UserID,
			FullName: r.FullName,
			Role:     r.Role,
			CheckIn:  r.CheckIn,
			CheckOut: r.CheckOut,
			Notes:    r.Notes,
		})
	}
	return out, nil
}
