// Package reports contiene los casos de uso de solo lectura: estado de
// resultados por rango de fechas, estadísticas del dashboard y actividad
// reciente. Ninguno muta datos; son derivaciones puras sobre ventas, libro
// de movimientos y gastos.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var oneHundred = decimal.NewFromInt(100)

// ReportUseCase agrega ventas, costos y gastos para reportes financieros.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// GetProfitLoss calcula el estado de resultados del rango [from, to].
//
// Dos consultas en paralelo (ventas y gastos); la derivación ocurre aquí:
//
//	gross  = revenue - cost
//	net    = gross - expenses
//	margin = net / revenue * 100 (0 si revenue es 0, nunca división por cero)
func (uc *ReportUseCase) GetProfitLoss(ctx context.Context, from, to time.Time) (*dto.ProfitLossDTO, error) {
	type salesResult struct {
		revenue decimal.Decimal
		cost    decimal.Decimal
		err     error
	}
	type expensesResult struct {
		total decimal.Decimal
		err   error
	}

	salesCh := make(chan salesResult, 1)
	expensesCh := make(chan expensesResult, 1)

	go func() {
		rev, cost, err := uc.reportRepo.GetSalesTotals(ctx, from, to)
		salesCh <- salesResult{rev, cost, err}
	}()
	go func() {
		total, err := uc.reportRepo.GetExpensesTotal(ctx, from, to)
		expensesCh <- expensesResult{total, err}
	}()

	sales := <-salesCh
	expenses := <-expensesCh

	if sales.err != nil {
		return nil, fmt.Errorf("reporte: totales de ventas: %w", sales.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("reporte: total de gastos: %w", expenses.err)
	}

	return DeriveProfitLoss(sales.revenue, sales.cost, expenses.total), nil
}

// DeriveProfitLoss deriva márgenes a partir de los agregados crudos.
func DeriveProfitLoss(revenue, cost, expenses decimal.Decimal) *dto.ProfitLossDTO {
	gross := revenue.Sub(cost)
	net := gross.Sub(expenses)
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = net.Div(revenue).Mul(oneHundred).Round(2)
	}
	return &dto.ProfitLossDTO{
		Revenue:      revenue,
		CostOfGoods:  cost,
		GrossProfit:  gross,
		Expenses:     expenses,
		NetProfit:    net,
		ProfitMargin: margin,
	}
}

// GetDashboardStats construye las estadísticas generales del dashboard.
// Las consultas se lanzan en paralelo; el resultado es un snapshot
// aproximado, no una lectura transaccional.
func (uc *ReportUseCase) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type countResult struct {
		n   int
		err error
	}
	type summaryResult struct {
		count int
		total decimal.Decimal
		err   error
	}

	productsCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)
	todayCh := make(chan summaryResult, 1)
	monthCh := make(chan summaryResult, 1)
	attendanceCh := make(chan countResult, 1)
	usersCh := make(chan countResult, 1)

	go func() {
		n, err := uc.reportRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountLowStockProducts(ctx)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		count, total, err := uc.reportRepo.GetSalesSummary(ctx, todayStart, todayEnd)
		todayCh <- summaryResult{count, total, err}
	}()
	go func() {
		count, total, err := uc.reportRepo.GetSalesSummary(ctx, monthStart, todayEnd)
		monthCh <- summaryResult{count, total, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountAttendance(ctx, todayStart, todayEnd)
		attendanceCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountUsers(ctx)
		usersCh <- countResult{n, err}
	}()

	products := <-productsCh
	lowStock := <-lowStockCh
	today := <-todayCh
	month := <-monthCh
	attendance := <-attendanceCh
	users := <-usersCh

	for _, err := range []error{products.err, lowStock.err, today.err, month.err, attendance.err, users.err} {
		if err != nil {
			return nil, fmt.Errorf("dashboard: %w", err)
		}
	}

	return &dto.DashboardStatsDTO{
		TotalProducts:    products.n,
		LowStockProducts: lowStock.n,
		TodaySalesCount:  today.count,
		TodaySalesTotal:  today.total,
		MonthSalesCount:  month.count,
		MonthSalesTotal:  month.total,
		TodayAttendance:  attendance.n,
		TotalUsers:       users.n,
	}, nil
}

// GetRecentActivity devuelve los últimos eventos (ventas y movimientos).
func (uc *ReportUseCase) GetRecentActivity(ctx context.Context, limit int) ([]dto.ActivityDTO, error) {
	if limit <= 0 {
		limit = 20
	}
	records, err := uc.reportRepo.ListRecentActivity(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.ActivityDTO{
			Kind:      r.Kind,
			Reference: r.Reference,
			Amount:    r.Amount,
			UserName:  r.UserName,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}
