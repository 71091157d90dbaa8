package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación read-only de ReportRepository sobre PostgreSQL.
// Todas las consultas reciben context: el caso de uso las lanza en paralelo.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetSalesTotals devuelve ingresos y costo de mercancía vendida del rango.
// El costo usa el purchase_price vigente del producto.
func (r *ReportRepo) GetSalesTotals(ctx context.Context, from, to time.Time) (revenue, cost decimal.Decimal, err error) {
	query := `
		SELECT COALESCE(SUM(i.quantity * i.unit_price), 0),
		       COALESCE(SUM(i.quantity * p.purchase_price), 0)
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		JOIN products p ON p.id = i.product_id
		WHERE s.created_at BETWEEN $1 AND $2`
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&revenue, &cost); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sales totals: %w", err)
	}
	return revenue, cost, nil
}

// GetExpensesTotal devuelve la suma de gastos del rango.
func (r *ReportRepo) GetExpensesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE created_at BETWEEN $1 AND $2`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("expenses total: %w", err)
	}
	return total, nil
}

// CountProducts devuelve el total de productos del catálogo.
func (r *ReportRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountLowStockProducts devuelve cuántos productos están en o bajo el umbral.
func (r *ReportRepo) CountLowStockProducts(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM products WHERE warehouse_stock + cashier_stock <= min_stock_alert`
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count low stock products: %w", err)
	}
	return n, nil
}

// GetSalesSummary devuelve cantidad y total de ventas del rango.
func (r *ReportRepo) GetSalesSummary(ctx context.Context, from, to time.Time) (int, decimal.Decimal, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM sales WHERE created_at BETWEEN $1 AND $2`
	var count int
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&count, &total); err != nil {
		return 0, decimal.Zero, fmt.Errorf("sales summary: %w", err)
	}
	return count, total, nil
}

// CountAttendance devuelve cuántas jornadas iniciaron en el rango.
func (r *ReportRepo) CountAttendance(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM attendance WHERE check_in BETWEEN $1 AND $2`
	var n int
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&n); err != nil {
		return 0, fmt.Errorf("count attendance: %w", err)
	}
	return n, nil
}

// CountUsers devuelve el total de usuarios.
func (r *ReportRepo) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// ListRecentActivity mezcla ventas y movimientos por fecha descendente.
// Los movimientos reportan amount 0: la magnitud monetaria solo aplica a ventas.
func (r *ReportRepo) ListRecentActivity(ctx context.Context, limit int) ([]repository.ActivityRecord, error) {
	query := `
		SELECT * FROM (
			SELECT 'sale' AS kind, s.invoice_number AS reference, s.total_amount AS amount,
			       COALESCE(u.full_name, '') AS user_name, s.created_at
			FROM sales s
			LEFT JOIN users u ON u.id = s.cashier_id
			UNION ALL
			SELECT 'stock_movement', m.movement_type || ' ' || p.name, 0,
			       COALESCE(u.full_name, ''), m.created_at
			FROM stock_movements m
			JOIN products p ON p.id = m.product_id
			LEFT JOIN users u ON u.id = m.created_by
		) activity
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	defer rows.Close()

	var out []repository.ActivityRecord
	for rows.Next() {
		var rec repository.ActivityRecord
		if err := rows.Scan(&rec.Kind, &rec.Reference, &rec.Amount, &rec.UserName, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
