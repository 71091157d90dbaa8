package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitLossDTO respuesta de GET /api/dashboard/profit-loss.
// Derivación pura sobre ventas y gastos del rango:
//
//	gross = revenue - cost_of_goods
//	net   = gross - expenses
//	margin = net / revenue * 100 (0 si revenue es 0)
type ProfitLossDTO struct {
	Revenue      decimal.Decimal `json:"revenue"`
	CostOfGoods  decimal.Decimal `json:"cost_of_goods"`
	GrossProfit  decimal.Decimal `json:"gross_profit"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"` // porcentaje, 2 decimales
}

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	TotalProducts    int             `json:"total_products"`
	LowStockProducts int             `json:"low_stock_products"`
	TodaySalesCount  int             `json:"today_sales_count"`
	TodaySalesTotal  decimal.Decimal `json:"today_sales_total"`
	MonthSalesCount  int             `json:"month_sales_count"`
	MonthSalesTotal  decimal.Decimal `json:"month_sales_total"`
	TodayAttendance  int             `json:"today_attendance"`
	TotalUsers       int             `json:"total_users"`
}

// ActivityDTO evento del feed GET /api/dashboard/recent-activities.
type ActivityDTO struct {
	Kind      string          `json:"type"` // sale | stock_movement
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	UserName  string          `json:"user_name"`
	CreatedAt time.Time       `json:"created_at"`
}
