package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create/Update no tocan los contadores de stock: eso es exclusivo del
// motor de movimientos vía StockRepository.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	// Delete falla con domain.ErrConflict si el producto está referenciado
	// por movimientos o ventas históricas.
	Delete(id string) error
}
