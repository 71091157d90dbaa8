package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/sales"
)

// SaleHandler maneja las ventas: completar, listar, detalle y recibo PDF (protegido).
type SaleHandler struct {
	completeUC *sales.CompleteSaleUseCase
	queryUC    *sales.SaleQueryUseCase
	receiptUC  *sales.ReceiptUseCase
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(completeUC *sales.CompleteSaleUseCase, queryUC *sales.SaleQueryUseCase, receiptUC *sales.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{completeUC: completeUC, queryUC: queryUC, receiptUC: receiptUC}
}

// Complete godoc
// @Summary      Completar una venta (todo o nada)
// @Description  Registra la venta con sus líneas y debita la caja por cada
//
//	línea en una sola transacción. El total se recalcula en el servidor.
//
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompleteSaleRequest  true  "items, payment_method, customer_name"
// @Success      201   {object}  dto.SaleResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.completeUC.CompleteSale(c.Context(), GetUserID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        limit       query  int     false  "Máximo de filas (default 100)"
// @Success      200  {array}  dto.SaleListItem
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return errorJSON(c, err)
	}
	list, err := h.queryUC.List(c.Context(), from, to, c.QueryInt("limit"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "sales": list})
}

// GetByID godoc
// @Summary      Detalle de una venta con sus líneas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.queryUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(sale)
}

// Receipt godoc
// @Summary      Recibo PDF de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receiptUC.GenerateBySaleID(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("inline; filename=\"recibo-%s.pdf\"", c.Params("id")))
	return c.Send(pdfBytes)
}
