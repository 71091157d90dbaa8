package entity

import "time"

// Stock es la proyección de contadores de un producto (fila de products).
// Invariante: ambos contadores son siempre >= 0 y equivalen a la suma
// cronológica del libro de movimientos del producto.
type Stock struct {
	ProductID string
	Warehouse int64
	Cashier   int64
	UpdatedAt time.Time
}

// At devuelve el contador de la ubicación indicada.
func (s *Stock) At(location string) int64 {
	if location == LocationWarehouse {
		return s.Warehouse
	}
	return s.Cashier
}

// Set fija el contador de la ubicación indicada (solo el motor de movimientos lo usa).
func (s *Stock) Set(location string, qty int64) {
	if location == LocationWarehouse {
		s.Warehouse = qty
		return
	}
	s.Cashier = qty
}
