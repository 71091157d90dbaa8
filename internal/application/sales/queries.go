package sales

import (
	"context"
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// SaleQueryUseCase consultas de solo lectura sobre ventas.
type SaleQueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo}
}

// List devuelve ventas, opcionalmente filtradas por rango de fechas.
func (uc *SaleQueryUseCase) List(ctx context.Context, from, to *time.Time, limit int) ([]dto.SaleListItem, error) {
	if limit <= 0 {
		limit = 100
	}
	records, err := uc.saleRepo.List(from, to, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleListItem, 0, len(records))
	for _, r := range records {
		out = append(out, toSaleListItem(r))
	}
	return out, nil
}

// GetByID devuelve una venta con sus líneas.
func (uc *SaleQueryUseCase) GetByID(ctx context.Context, id string) (*dto.SaleDetailResponse, error) {
	record, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	detail := &dto.SaleDetailResponse{
		SaleListItem: toSaleListItem(record),
		Items:        make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, it := range items {
		detail.Items = append(detail.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ProductSKU:  it.ProductSKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return detail, nil
}

func toSaleListItem(r *repository.SaleRecord) dto.SaleListItem {
	return dto.SaleListItem{
		ID:            r.ID,
		InvoiceNumber: r.InvoiceNumber,
		TotalAmount:   r.TotalAmount,
		PaymentMethod: r.PaymentMethod,
		CustomerName:  r.CustomerName,
		CashierName:   r.CashierName,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}
