package sales

import (
	"context"
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción que incluye los
// repositorios de stock, movimientos y ventas. Es la frontera de atomicidad
// de la venta: cabecera, líneas, débitos de caja y asientos del libro se
// confirman juntos o se descartan juntos.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// StockDebiter integra el coordinador de ventas con el motor de movimientos.
// RegisterSaleOutInTx debita caja usando los repositorios del caller (misma
// transacción). Si retorna error (ej: ErrInsufficientStock) el caller hace
// rollback de toda la venta.
type StockDebiter interface {
	RegisterSaleOutInTx(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		productID, userID string,
		quantity int64,
		now time.Time,
		invoiceNumber string,
	) error
}

// ReceiptGenerator genera la representación PDF del recibo de una venta.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *repository.SaleRecord, items []*repository.SaleItemRecord) ([]byte, error)
}
