package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/usecase"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// AttendanceHandler maneja check-in/check-out y el listado de jornadas (protegido).
type AttendanceHandler struct {
	uc *usecase.AttendanceUseCase
}

// NewAttendanceHandler construye el handler de asistencia.
func NewAttendanceHandler(uc *usecase.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

type attendanceBody struct {
	Notes string `json:"notes,omitempty"`
}

// CheckIn godoc
// @Summary      Abrir jornada del día
// @Tags         attendance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.AttendanceItem
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var in attendanceBody
	_ = c.BodyParser(&in) // body opcional
	item, err := h.uc.CheckIn(GetUserID(c), in.Notes)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// CheckOut godoc
// @Summary      Cerrar jornada del día
// @Tags         attendance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	var in attendanceBody
	_ = c.BodyParser(&in) // body opcional
	if err := h.uc.CheckOut(GetUserID(c), in.Notes); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "jornada cerrada"})
}

// List godoc
// @Summary      Listar jornadas
// @Description  Owner y manager ven todas; el resto solo las propias.
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Param        user_id     query  string  false  "Filtrar por usuario (solo owner/manager)"
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.AttendanceItem
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return errorJSON(c, err)
	}

	userID := c.Query("user_id")
	role := GetRole(c)
	if role != entity.RoleOwner && role != entity.RoleManager {
		userID = GetUserID(c)
	}

	items, err := h.uc.List(userID, from, to, c.QueryInt("limit"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "attendance": items})
}
