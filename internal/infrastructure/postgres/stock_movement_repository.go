package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación de StockMovementRepository sobre PostgreSQL.
// El libro es append-only: este adaptador no expone UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del libro de movimientos.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta una entrada en el libro.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements
			(id, product_id, movement_type, from_location, to_location, quantity, reference, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.Type, m.FromLocation, m.ToLocation,
		m.Quantity, m.Reference, m.Notes, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListByProductAsc devuelve todos los movimientos de un producto en orden
// cronológico ascendente (entrada de la reconstrucción del libro).
func (r *StockMovementRepo) ListByProductAsc(productID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, movement_type, from_location, to_location, quantity, reference, notes, created_by, created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Type, &m.FromLocation, &m.ToLocation,
			&m.Quantity, &m.Reference, &m.Notes, &m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// ListRecent devuelve los últimos movimientos con nombres resueltos.
func (r *StockMovementRepo) ListRecent(limit int) ([]*repository.MovementRecord, error) {
	query := `
		SELECT m.id, m.product_id, m.movement_type, m.from_location, m.to_location,
		       m.quantity, m.reference, m.notes, m.created_by, m.created_at,
		       p.name, p.sku, COALESCE(u.full_name, '')
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		LEFT JOIN users u ON u.id = m.created_by
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()
	return scanMovementRecords(rows)
}

// ListByRange devuelve los movimientos del rango [from, to] con nombres resueltos.
func (r *StockMovementRepo) ListByRange(from, to time.Time, limit int) ([]*repository.MovementRecord, error) {
	query := `
		SELECT m.id, m.product_id, m.movement_type, m.from_location, m.to_location,
		       m.quantity, m.reference, m.notes, m.created_by, m.created_at,
		       p.name, p.sku, COALESCE(u.full_name, '')
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		LEFT JOIN users u ON u.id = m.created_by
		WHERE m.created_at BETWEEN $1 AND $2
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements by range: %w", err)
	}
	defer rows.Close()
	return scanMovementRecords(rows)
}

func scanMovementRecords(rows pgx.Rows) ([]*repository.MovementRecord, error) {
	var out []*repository.MovementRecord
	for rows.Next() {
		var rec repository.MovementRecord
		if err := rows.Scan(
			&rec.ID, &rec.ProductID, &rec.Type, &rec.FromLocation, &rec.ToLocation,
			&rec.Quantity, &rec.Reference, &rec.Notes, &rec.CreatedBy, &rec.CreatedAt,
			&rec.ProductName, &rec.ProductSKU, &rec.UserName,
		); err != nil {
			return nil, fmt.Errorf("scan movement record: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
