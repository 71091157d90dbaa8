package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU de la tienda.
// Los contadores WarehouseStock y CashierStock son la proyección materializada
// del libro de movimientos: solo el motor de movimientos puede escribirlos.
type Product struct {
	ID             string
	SKU            string // código único
	Name           string
	Description    string
	Category       string
	Unit           string          // unidad de medida (und, kg, lt, ...)
	PurchasePrice  decimal.Decimal // precio de compra (costo)
	SellingPrice   decimal.Decimal // precio de venta
	WarehouseStock int64           // existencias en bodega
	CashierStock   int64           // existencias en caja
	MinStockAlert  int64           // umbral de alerta de stock bajo
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TotalStock devuelve el stock combinado bodega + caja.
func (p *Product) TotalStock() int64 {
	return p.WarehouseStock + p.CashierStock
}

// LowStock indica si el stock combinado está en o por debajo del umbral de alerta.
func (p *Product) LowStock() bool {
	return p.TotalStock() <= p.MinStockAlert
}
