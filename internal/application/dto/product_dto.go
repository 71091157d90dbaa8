package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products.
// No acepta contadores de stock: el stock inicial entra por movimientos.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category,omitempty"`
	Unit          string          `json:"unit"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	MinStockAlert int64           `json:"min_stock_alert,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. El SKU no se cambia.
type UpdateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category,omitempty"`
	Unit          string          `json:"unit"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	MinStockAlert int64           `json:"min_stock_alert"`
}

// ProductResponse respuesta con un producto y sus contadores actuales.
type ProductResponse struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category,omitempty"`
	Unit           string          `json:"unit"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	WarehouseStock int64           `json:"warehouse_stock"`
	CashierStock   int64           `json:"cashier_stock"`
	MinStockAlert  int64           `json:"min_stock_alert"`
	LowStock       bool            `json:"low_stock"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToProductResponse convierte la entidad en DTO de respuesta.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Unit:           p.Unit,
		PurchasePrice:  p.PurchasePrice,
		SellingPrice:   p.SellingPrice,
		WarehouseStock: p.WarehouseStock,
		CashierStock:   p.CashierStock,
		MinStockAlert:  p.MinStockAlert,
		LowStock:       p.LowStock(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
