// Package ledger reconstruye los contadores de stock a partir del libro de
// movimientos. El libro es append-only: el saldo de cada ubicación es siempre
// un valor derivado, y los contadores materializados en products son solo una
// proyección que debe coincidir con la reconstrucción en todo momento.
package ledger

import (
	"fmt"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// Balance es el resultado de reconstruir el libro de un producto.
type Balance struct {
	Warehouse int64
	Cashier   int64
}

// At devuelve el saldo reconstruido de la ubicación indicada.
func (b Balance) At(location string) int64 {
	if location == entity.LocationWarehouse {
		return b.Warehouse
	}
	return b.Cashier
}

// Replay recorre los movimientos en orden cronológico partiendo de cero y
// devuelve los contadores resultantes.
//
// Semántica por tipo:
//   - in:         bodega += cantidad
//   - transfer:   bodega -= cantidad, caja += cantidad (una sola fila)
//   - out:        caja   -= cantidad
//   - adjustment: fija la ubicación (FromLocation == ToLocation) al valor
//     absoluto guardado en Quantity; no es un delta.
func Replay(movements []*entity.StockMovement) Balance {
	var b Balance
	for _, m := range movements {
		switch m.Type {
		case entity.MovementIn:
			b.Warehouse += m.Quantity
		case entity.MovementTransfer:
			b.Warehouse -= m.Quantity
			b.Cashier += m.Quantity
		case entity.MovementOut:
			b.Cashier -= m.Quantity
		case entity.MovementAdjustment:
			if m.FromLocation == entity.LocationWarehouse {
				b.Warehouse = m.Quantity
			} else {
				b.Cashier = m.Quantity
			}
		}
	}
	return b
}

// Drift describe una divergencia entre contadores y libro.
type Drift struct {
	ProductID string
	Location  string
	Counter   int64 // valor materializado en products
	Ledger    int64 // valor reconstruido del libro
}

func (d Drift) Error() string {
	return fmt.Sprintf("deriva de stock en %s/%s: contador=%d libro=%d",
		d.ProductID, d.Location, d.Counter, d.Ledger)
}

// Verify compara los contadores materializados contra la reconstrucción del
// libro. Devuelve nil si coinciden, o un Drift por la primera ubicación que
// diverja.
func Verify(stock *entity.Stock, movements []*entity.StockMovement) error {
	b := Replay(movements)
	if stock.Warehouse != b.Warehouse {
		return Drift{ProductID: stock.ProductID, Location: entity.LocationWarehouse, Counter: stock.Warehouse, Ledger: b.Warehouse}
	}
	if stock.Cashier != b.Cashier {
		return Drift{ProductID: stock.ProductID, Location: entity.LocationCashier, Counter: stock.Cashier, Ledger: b.Cashier}
	}
	return nil
}
