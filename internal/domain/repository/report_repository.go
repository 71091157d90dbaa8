package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ActivityRecord evento reciente (venta o movimiento de stock) para el feed
// del dashboard.
type ActivityRecord struct {
	Kind      string // "sale" | "stock_movement"
	Reference string
	Amount    decimal.Decimal
	UserName  string
	CreatedAt time.Time
}

// ReportRepository define las consultas de lectura para reportes y dashboard.
// Las implementaciones son read-only (no modifican datos).
type ReportRepository interface {
	// GetSalesTotals devuelve ingresos (Σ qty*unit_price de líneas de venta) y
	// costo de mercancía vendida (Σ qty*purchase_price) en el rango dado.
	// Usa COALESCE para devolver cero si no hay ventas en el período.
	GetSalesTotals(ctx context.Context, from, to time.Time) (revenue, cost decimal.Decimal, err error)

	// GetExpensesTotal devuelve la suma de gastos en el rango dado.
	GetExpensesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// ── Métricas del dashboard ────────────────────────────────────────────────

	CountProducts(ctx context.Context) (int, error)
	CountLowStockProducts(ctx context.Context) (int, error)
	GetSalesSummary(ctx context.Context, from, to time.Time) (count int, total decimal.Decimal, err error)
	CountAttendance(ctx context.Context, from, to time.Time) (int, error)
	CountUsers(ctx context.Context) (int, error)

	// ListRecentActivity devuelve ventas y movimientos mezclados por fecha
	// descendente.
	ListRecentActivity(ctx context.Context, limit int) ([]ActivityRecord, error)
}
