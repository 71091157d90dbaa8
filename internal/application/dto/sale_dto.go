package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta enviada por el cliente. Subtotal se acepta
// por compatibilidad con el cliente pero nunca se confía: el servidor
// recalcula quantity * unit_price siempre.
type SaleItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"` // cero = usar precio de venta del producto
	Subtotal  decimal.Decimal `json:"subtotal"`   // ignorado: se recalcula en el servidor
}

// CompleteSaleRequest body para POST /api/sales.
type CompleteSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	PaymentMethod string            `json:"payment_method"`
	CustomerName  string            `json:"customer_name,omitempty"`
}

// SaleResult respuesta de una venta completada.
type SaleResult struct {
	SaleID        string          `json:"sale_id"`
	InvoiceNumber string          `json:"invoice_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// SaleListItem elemento del listado GET /api/sales.
type SaleListItem struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CashierName   string          `json:"cashier_name"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleItemResponse línea de venta en el detalle.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSKU  string          `json:"sku"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleDetailResponse respuesta de GET /api/sales/:id.
type SaleDetailResponse struct {
	SaleListItem
	Items []SaleItemResponse `json:"items"`
}
