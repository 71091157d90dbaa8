package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
// Create/CreateItem se usan solo dentro de la transacción de venta.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la cabecera de la venta. Número de factura duplicado
// responde domain.ErrDuplicate.
func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `
		INSERT INTO sales
			(id, invoice_number, total_amount, payment_method, customer_name, cashier_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.InvoiceNumber, s.TotalAmount, s.PaymentMethod, s.CustomerName, s.CashierID, s.Status, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: factura %s", domain.ErrDuplicate, s.InvoiceNumber)
		}
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// CreateItem inserta una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("create sale item: %w", err)
	}
	return nil
}

// GetByID obtiene la venta con el nombre del cajero resuelto.
func (r *SaleRepo) GetByID(id string) (*repository.SaleRecord, error) {
	query := `
		SELECT s.id, s.invoice_number, s.total_amount, s.payment_method, s.customer_name,
		       s.cashier_id, s.status, s.created_at, COALESCE(u.full_name, '')
		FROM sales s
		LEFT JOIN users u ON u.id = s.cashier_id
		WHERE s.id = $1`
	var rec repository.SaleRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.InvoiceNumber, &rec.TotalAmount, &rec.PaymentMethod, &rec.CustomerName,
		&rec.CashierID, &rec.Status, &rec.CreatedAt, &rec.CashierName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &rec, nil
}

// GetItems devuelve las líneas de una venta con nombres de producto resueltos.
func (r *SaleRepo) GetItems(saleID string) ([]*repository.SaleItemRecord, error) {
	query := `
		SELECT i.id, i.sale_id, i.product_id, i.quantity, i.unit_price, i.subtotal,
		       p.name, p.sku
		FROM sale_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.sale_id = $1
		ORDER BY p.name ASC`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("get sale items: %w", err)
	}
	defer rows.Close()

	var out []*repository.SaleItemRecord
	for rows.Next() {
		var rec repository.SaleItemRecord
		if err := rows.Scan(
			&rec.ID, &rec.SaleID, &rec.ProductID, &rec.Quantity, &rec.UnitPrice, &rec.Subtotal,
			&rec.ProductName, &rec.ProductSKU,
		); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// List devuelve ventas filtradas por rango opcional, más recientes primero.
func (r *SaleRepo) List(from, to *time.Time, limit int) ([]*repository.SaleRecord, error) {
	query := `
		SELECT s.id, s.invoice_number, s.total_amount, s.payment_method, s.customer_name,
		       s.cashier_id, s.status, s.created_at, COALESCE(u.full_name, '')
		FROM sales s
		LEFT JOIN users u ON u.id = s.cashier_id
		WHERE ($1::timestamptz IS NULL OR s.created_at >= $1)
		  AND ($2::timestamptz IS NULL OR s.created_at <= $2)
		ORDER BY s.created_at DESC
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*repository.SaleRecord
	for rows.Next() {
		var rec repository.SaleRecord
		if err := rows.Scan(
			&rec.ID, &rec.InvoiceNumber, &rec.TotalAmount, &rec.PaymentMethod, &rec.CustomerName,
			&rec.CashierID, &rec.Status, &rec.CreatedAt, &rec.CashierName,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
