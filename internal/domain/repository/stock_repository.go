package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// StockRepository define el puerto para leer/escribir los contadores de stock
// de un producto (columnas warehouse_stock y cashier_stock de products).
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(productID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para que
	// la verificación de stock y la escritura no se intercalen con otra
	// transacción sobre el mismo producto.
	GetForUpdate(productID string) (*entity.Stock, error)
	Update(stock *entity.Stock) error
}
