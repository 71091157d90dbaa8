package repository

import (
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// MovementRecord fila cruda del listado de movimientos con nombres resueltos.
// La produce la DB; el use case la convierte en DTO.
type MovementRecord struct {
	entity.StockMovement
	ProductName string
	ProductSKU  string
	UserName    string
}

// StockMovementRepository define el puerto del libro de movimientos.
// Append-only: no existe Update ni Delete; las correcciones son nuevos
// movimientos de tipo adjustment.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByProductAsc devuelve todos los movimientos de un producto en orden
	// cronológico ascendente: es la entrada de la reconstrucción del libro.
	ListByProductAsc(productID string) ([]*entity.StockMovement, error)
	ListRecent(limit int) ([]*MovementRecord, error)
	ListByRange(from, to time.Time, limit int) ([]*MovementRecord, error)
}
