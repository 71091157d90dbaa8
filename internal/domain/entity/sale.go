package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado de una venta. Solo existe "completed": una venta se persiste entera o no se persiste.
const SaleStatusCompleted = "completed"

// Sale es la cabecera de una venta. Invariante: TotalAmount == Σ subtotales
// de sus ítems, recalculados en el servidor.
type Sale struct {
	ID            string
	InvoiceNumber string // único
	TotalAmount   decimal.Decimal
	PaymentMethod string
	CustomerName  string
	CashierID     string // UserID del cajero
	Status        string
	CreatedAt     time.Time
}

// SaleItem es una línea de venta. Composición: no existe sin su Sale.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal // Quantity * UnitPrice
}
