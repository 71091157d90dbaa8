package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementIn         = "in"         // entrada a bodega (proveedor)
	MovementOut        = "out"        // salida por venta (caja -> cliente)
	MovementTransfer   = "transfer"   // traslado bodega -> caja
	MovementAdjustment = "adjustment" // ajuste absoluto de un contador
)

// Ubicaciones. supplier y customer son extremos lógicos: no tienen contador propio.
const (
	LocationWarehouse = "warehouse"
	LocationCashier   = "cashier"
	LocationSupplier  = "supplier"
	LocationCustomer  = "customer"
)

// ValidMovementType verifica que el tipo de movimiento sea uno de los conocidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementIn, MovementOut, MovementTransfer, MovementAdjustment:
		return true
	}
	return false
}

// CounterLocation indica si la ubicación mantiene un contador de stock.
func CounterLocation(loc string) bool {
	return loc == LocationWarehouse || loc == LocationCashier
}

// StockMovement es una entrada inmutable del libro de movimientos.
// Nunca se actualiza ni se borra: las correcciones son nuevos movimientos
// de tipo adjustment. Para adjustment, Quantity guarda el valor absoluto
// resultante del contador (no un delta) y FromLocation == ToLocation.
type StockMovement struct {
	ID           string
	ProductID    string
	Type         string // in, out, transfer, adjustment
	FromLocation string
	ToLocation   string
	Quantity     int64
	Reference    string // factura, orden de compra, nota de ajuste, ...
	Notes        string
	CreatedBy    string // UserID del actor
	CreatedAt    time.Time
}
