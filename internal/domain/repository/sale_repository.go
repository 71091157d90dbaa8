package repository

import (
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// SaleRecord fila cruda del listado de ventas con el nombre del cajero.
type SaleRecord struct {
	entity.Sale
	CashierName string
}

// SaleItemRecord línea de venta con nombres de producto resueltos.
type SaleItemRecord struct {
	entity.SaleItem
	ProductName string
	ProductSKU  string
}

// SaleRepository define el puerto de persistencia para Sale y sus ítems.
// Create y CreateItem solo tienen sentido dentro de la transacción de venta:
// una venta nunca se persiste a medias.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*SaleRecord, error)
	GetItems(saleID string) ([]*SaleItemRecord, error)
	List(from, to *time.Time, limit int) ([]*SaleRecord, error)
}
