package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo implementación de AttendanceRepository sobre PostgreSQL.
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador de asistencia.
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

// Create inserta una jornada.
func (r *AttendanceRepo) Create(a *entity.Attendance) error {
	query := `
		INSERT INTO attendance (id, user_id, check_in, check_out, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.UserID, a.CheckIn, a.CheckOut, a.Notes, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create attendance: %w", err)
	}
	return nil
}

// GetOpenForDay devuelve la jornada abierta del usuario en el día de `day`,
// o nil si no existe.
func (r *AttendanceRepo) GetOpenForDay(userID string, day time.Time) (*entity.Attendance, error) {
	start, end := dayBounds(day)
	query := `
		SELECT id, user_id, check_in, check_out, notes, created_at
		FROM attendance
		WHERE user_id = $1 AND check_out IS NULL AND check_in BETWEEN $2 AND $3
		ORDER BY check_in DESC
		LIMIT 1`
	var a entity.Attendance
	err := r.q.QueryRow(context.Background(), query, userID, start, end).Scan(
		&a.ID, &a.UserID, &a.CheckIn, &a.CheckOut, &a.Notes, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open attendance: %w", err)
	}
	return &a, nil
}

// CloseOpenForDay cierra la jornada abierta del usuario en el día indicado.
// Devuelve false si no había jornada abierta.
func (r *AttendanceRepo) CloseOpenForDay(userID string, day time.Time, checkOut time.Time, notes string) (bool, error) {
	start, end := dayBounds(day)
	query := `
		UPDATE attendance
		SET check_out = $4, notes = CASE WHEN $5 <> '' THEN $5 ELSE notes END
		WHERE user_id = $1 AND check_out IS NULL AND check_in BETWEEN $2 AND $3`
	tag, err := r.q.Exec(context.Background(), query, userID, start, end, checkOut, notes)
	if err != nil {
		return false, fmt.Errorf("close attendance: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List devuelve jornadas con datos del usuario, filtradas por usuario y
// rango opcionales.
func (r *AttendanceRepo) List(userID string, from, to *time.Time, limit int) ([]*repository.AttendanceRecord, error) {
	query := `
		SELECT a.id, a.user_id, a.check_in, a.check_out, a.notes, a.created_at,
		       u.full_name, u.role
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE ($1 = '' OR a.user_id = $1)
		  AND ($2::timestamptz IS NULL OR a.check_in >= $2)
		  AND ($3::timestamptz IS NULL OR a.check_in <= $3)
		ORDER BY a.check_in DESC
		LIMIT $4`
	rows, err := r.q.Query(context.Background(), query, userID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	var out []*repository.AttendanceRecord
	for rows.Next() {
		var rec repository.AttendanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.CheckIn, &rec.CheckOut, &rec.Notes, &rec.CreatedAt,
			&rec.FullName, &rec.Role,
		); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
