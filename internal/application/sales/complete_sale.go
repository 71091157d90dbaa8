package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// CompleteSaleUseCase coordina la venta multi-línea: inserta la cabecera,
// cada línea y un débito de caja por línea en una sola transacción. Es la
// única operación multi-entidad del sistema: una venta a medias (stock
// debitado sin venta, o venta sin débito) es corrupción de datos y la
// frontera transaccional existe para impedirla.
type CompleteSaleUseCase struct {
	txRunner    SaleTxRunner
	inventory   StockDebiter
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository // lecturas fuera de tx
}

// NewCompleteSaleUseCase construye el caso de uso.
func NewCompleteSaleUseCase(
	txRunner SaleTxRunner,
	inventory StockDebiter,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) *CompleteSaleUseCase {
	return &CompleteSaleUseCase{
		txRunner:    txRunner,
		inventory:   inventory,
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// CompleteSale ejecuta la venta.
//
//  1. Rechaza ventas sin ítems (ErrEmptySale) y cantidades no positivas.
//  2. Recalcula subtotal = quantity * unit_price y total = Σ subtotal en el
//     servidor; el subtotal del cliente nunca se usa. Si unit_price viene en
//     cero se toma el precio de venta del producto.
//  3. Genera un número de factura libre de colisiones (fecha + fragmento
//     aleatorio), respaldado por el índice único de sales.invoice_number.
//  4. En una sola transacción: inserta la venta, y por cada línea inserta el
//     ítem y debita caja vía el motor de movimientos. Cualquier fallo
//     (stock insuficiente, violación de constraint, fallo de storage)
//     revierte todo.
func (uc *CompleteSaleUseCase) CompleteSale(ctx context.Context, cashierID string, in dto.CompleteSaleRequest) (*dto.SaleResult, error) {
	if cashierID == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptySale
	}

	// Validar productos y resolver precios fuera de la tx (solo lectura).
	productsByID := make(map[string]*entity.Product, len(in.Items))
	for i := range in.Items {
		item := &in.Items[i]
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if _, seen := productsByID[item.ProductID]; !seen {
			product, err := uc.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, domain.ErrNotFound
			}
			productsByID[item.ProductID] = product
		}
		if item.UnitPrice.IsZero() {
			item.UnitPrice = productsByID[item.ProductID].SellingPrice
		}
	}

	now := time.Now()
	saleID := uuid.New().String()
	invoiceNumber := NewInvoiceNumber(now)

	// Total recalculado en el servidor; el subtotal del cliente se ignora.
	total := decimal.Zero
	for _, item := range in.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)))
	}

	err := uc.txRunner.RunSale(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
	) error {
		sale := &entity.Sale{
			ID:            saleID,
			InvoiceNumber: invoiceNumber,
			TotalAmount:   total,
			PaymentMethod: in.PaymentMethod,
			CustomerName:  in.CustomerName,
			CashierID:     cashierID,
			Status:        entity.SaleStatusCompleted,
			CreatedAt:     now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		for _, item := range in.Items {
			subtotal := item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
			line := &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    saleID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Subtotal:  subtotal,
			}
			if err := saleRepo.CreateItem(line); err != nil {
				return err
			}
			// Débito de caja + asiento del libro, misma transacción. Si una
			// línea no tiene stock, toda la venta se revierte.
			if err := uc.inventory.RegisterSaleOutInTx(
				movRepo, stockRepo,
				item.ProductID, cashierID,
				item.Quantity,
				now,
				invoiceNumber,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.SaleResult{
		SaleID:        saleID,
		InvoiceNumber: invoiceNumber,
		TotalAmount:   total,
	}, nil
}

// NewInvoiceNumber genera un número de factura único: fecha + fragmento
// aleatorio. El reloj solo no basta bajo ventas concurrentes; el índice único
// de sales.invoice_number respalda al generador.
func NewInvoiceNumber(now time.Time) string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), frag)
}
