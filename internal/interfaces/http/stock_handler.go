package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/inventory"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// StockHandler maneja las operaciones de stock: entradas, traslados, ajustes,
// listado de movimientos y verificación de consistencia (protegido).
type StockHandler struct {
	uc *inventory.MovementUseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(uc *inventory.MovementUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ListMovements godoc
// @Summary      Listar movimientos de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        limit       query  int     false  "Máximo de filas (default 100)"
// @Success      200  {array}  dto.MovementListItem
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return errorJSON(c, err)
	}
	movements, err := h.uc.ListMovements(from, to, c.QueryInt("limit"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"total": len(movements), "movements": movements})
}

// Receive godoc
// @Summary      Recibir mercancía del proveedor (entrada a bodega)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOperationRequest  true  "product_id, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/receive [post]
func (h *StockHandler) Receive(c *fiber.Ctx) error {
	return h.applyOperation(c, entity.MovementIn)
}

// Transfer godoc
// @Summary      Trasladar stock de bodega a caja
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOperationRequest  true  "product_id, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/transfer [post]
func (h *StockHandler) Transfer(c *fiber.Ctx) error {
	return h.applyOperation(c, entity.MovementTransfer)
}

// Withdraw godoc
// @Summary      Registrar salida manual desde caja
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOperationRequest  true  "product_id, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/withdraw [post]
func (h *StockHandler) Withdraw(c *fiber.Ctx) error {
	return h.applyOperation(c, entity.MovementOut)
}

func (h *StockHandler) applyOperation(c *fiber.Ctx, kind string) error {
	var in dto.StockOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.ApplyMovement(c.Context(), inventory.MovementInput{
		Kind:      kind,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Reference: in.Reference,
		Notes:     in.Notes,
		UserID:    GetUserID(c),
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		MovementID:     result.MovementID,
		WarehouseStock: result.Stock.Warehouse,
		CashierStock:   result.Stock.Cashier,
	})
}

// Adjust godoc
// @Summary      Ajustar un contador a un valor absoluto (solo owner/manager)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, location, quantity (valor absoluto)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/stock/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.ApplyMovement(c.Context(), inventory.MovementInput{
		Kind:      entity.MovementAdjustment,
		ProductID: in.ProductID,
		Location:  in.Location,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
		UserID:    GetUserID(c),
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		MovementID:     result.MovementID,
		WarehouseStock: result.Stock.Warehouse,
		CashierStock:   result.Stock.Cashier,
	})
}

// VerifyConsistency godoc
// @Summary      Verificar contadores contra el libro de movimientos (solo owner/manager)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ConsistencyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/consistency/{product_id} [get]
func (h *StockHandler) VerifyConsistency(c *fiber.Ctx) error {
	report, err := h.uc.VerifyConsistency(c.Context(), c.Params("product_id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ConsistencyResponse{
		ProductID:       report.ProductID,
		Consistent:      report.Consistent,
		WarehouseStock:  report.Stock.Warehouse,
		CashierStock:    report.Stock.Cashier,
		LedgerWarehouse: report.Ledger.Warehouse,
		LedgerCashier:   report.Ledger.Cashier,
		Movements:       report.Movements,
	})
}
