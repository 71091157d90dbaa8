package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/ledger"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// MovementUseCase es el motor de movimientos de stock: aplica una operación
// (in, transfer, out, adjustment) como una unidad atómica con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback. La verificación de stock suficiente
// y la escritura ocurren dentro de la misma transacción.
type MovementUseCase struct {
	txRunner  TxRunner
	movRepo   repository.StockMovementRepository // listados fuera de tx
	stockRepo repository.StockRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, movRepo repository.StockMovementRepository, stockRepo repository.StockRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movRepo: movRepo, stockRepo: stockRepo}
}

// MovementInput entrada para aplicar un movimiento de stock.
// Para in/transfer/out: ProductID, Quantity > 0. Para adjustment: además
// Location (warehouse|cashier) y Quantity >= 0 como valor absoluto destino.
type MovementInput struct {
	Kind      string
	ProductID string
	Location  string // solo adjustment
	Quantity  int64
	Reference string
	Notes     string
	UserID    string
}

// MovementResult id del movimiento creado y contadores tras la operación.
type MovementResult struct {
	MovementID string
	Stock      entity.Stock
}

// ApplyMovement valida la entrada, abre la transacción, bloquea la fila de
// stock del producto y aplica la operación según el tipo. Si el stock es
// insuficiente retorna domain.ErrInsufficientStock sin mutación visible.
func (uc *MovementUseCase) ApplyMovement(ctx context.Context, in MovementInput) (*MovementResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	now := time.Now()
	var result *MovementResult

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		// Bloquea la fila del producto: la verificación y la escritura no se
		// intercalan con otra transacción sobre el mismo producto.
		stock, err := stockRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}

		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: in.ProductID,
			Type:      in.Kind,
			Quantity:  in.Quantity,
			Reference: in.Reference,
			Notes:     in.Notes,
			CreatedBy: in.UserID,
			CreatedAt: now,
		}

		switch in.Kind {
		case entity.MovementIn:
			mov.FromLocation = entity.LocationSupplier
			mov.ToLocation = entity.LocationWarehouse
			stock.Warehouse += in.Quantity

		case entity.MovementTransfer:
			if stock.Warehouse < in.Quantity {
				return domain.ErrInsufficientStock
			}
			mov.FromLocation = entity.LocationWarehouse
			mov.ToLocation = entity.LocationCashier
			stock.Warehouse -= in.Quantity
			stock.Cashier += in.Quantity

		case entity.MovementOut:
			if stock.Cashier < in.Quantity {
				return domain.ErrInsufficientStock
			}
			mov.FromLocation = entity.LocationCashier
			mov.ToLocation = entity.LocationCustomer
			stock.Cashier -= in.Quantity

		case entity.MovementAdjustment:
			// Valor absoluto: el movimiento guarda el contador resultante para
			// auditoría y la reconstrucción lo trata como set, no como delta.
			mov.FromLocation = in.Location
			mov.ToLocation = in.Location
			stock.Set(in.Location, in.Quantity)
		}

		stock.UpdatedAt = now
		if err := stockRepo.Update(stock); err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		result = &MovementResult{MovementID: mov.ID, Stock: *stock}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RegisterSaleOutInTx ejecuta la salida por venta (out) usando los
// repositorios del caller: misma transacción que la venta. Si retorna error
// (ej: ErrInsufficientStock) el caller debe hacer rollback de todo.
func (uc *MovementUseCase) RegisterSaleOutInTx(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	productID, userID string,
	quantity int64,
	now time.Time,
	invoiceNumber string,
) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	stock, err := stockRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if stock.Cashier < quantity {
		return domain.ErrInsufficientStock
	}
	stock.Cashier -= quantity
	stock.UpdatedAt = now
	if err := stockRepo.Update(stock); err != nil {
		return err
	}
	mov := &entity.StockMovement{
		ID:           uuid.New().String(),
		ProductID:    productID,
		Type:         entity.MovementOut,
		FromLocation: entity.LocationCashier,
		ToLocation:   entity.LocationCustomer,
		Quantity:     quantity,
		Reference:    invoiceNumber,
		CreatedBy:    userID,
		CreatedAt:    now,
	}
	return movRepo.Create(mov)
}

// VerifyConsistency reconstruye el libro completo del producto y lo compara
// con los contadores materializados. Ambas lecturas ocurren en una misma
// transacción con la fila del producto bloqueada: todo escritor toma ese
// mismo bloqueo antes de tocar contador o libro, así que un movimiento
// confirmado entre la lectura del contador y la del libro no puede producir
// una deriva fantasma. No muta nada; el bloqueo se libera al cerrar la tx.
func (uc *MovementUseCase) VerifyConsistency(ctx context.Context, productID string) (*ConsistencyReport, error) {
	var report *ConsistencyReport
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		stock, err := stockRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		movements, err := movRepo.ListByProductAsc(productID)
		if err != nil {
			return err
		}
		report = &ConsistencyReport{
			ProductID:  productID,
			Consistent: ledger.Verify(stock, movements) == nil,
			Stock:      *stock,
			Ledger:     ledger.Replay(movements),
			Movements:  len(movements),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ConsistencyReport resultado de la verificación contador vs libro.
type ConsistencyReport struct {
	ProductID  string
	Consistent bool
	Stock      entity.Stock
	Ledger     ledger.Balance
	Movements  int
}

func validateInput(in MovementInput) error {
	if in.ProductID == "" || in.UserID == "" || !entity.ValidMovementType(in.Kind) {
		return domain.ErrInvalidInput
	}
	switch in.Kind {
	case entity.MovementAdjustment:
		if !entity.CounterLocation(in.Location) || in.Quantity < 0 {
			return domain.ErrInvalidInput
		}
	default:
		if in.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
