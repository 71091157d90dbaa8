package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/reports"
)

// DashboardHandler expone estadísticas, estado de resultados y actividad
// reciente (protegido, solo lectura).
type DashboardHandler struct {
	uc *reports.ReportUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *reports.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Estadísticas generales del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.GetDashboardStats(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(stats)
}

// ProfitLoss godoc
// @Summary      Estado de resultados del rango (solo owner/manager)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD (default: inicio del mes)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (default: hoy)"
// @Success      200  {object}  dto.ProfitLossDTO
// @Router       /api/dashboard/profit-loss [get]
func (h *DashboardHandler) ProfitLoss(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return errorJSON(c, err)
	}

	now := time.Now()
	if from == nil {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		from = &monthStart
	}
	if to == nil {
		to = &now
	}

	result, err := h.uc.GetProfitLoss(c.Context(), *from, *to)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(result)
}

// RecentActivities godoc
// @Summary      Últimos eventos (ventas y movimientos)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de eventos (default 20)"
// @Success      200  {array}  dto.ActivityDTO
// @Router       /api/dashboard/recent-activities [get]
func (h *DashboardHandler) RecentActivities(c *fiber.Ctx) error {
	activities, err := h.uc.GetRecentActivity(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"total": len(activities), "activities": activities})
}
