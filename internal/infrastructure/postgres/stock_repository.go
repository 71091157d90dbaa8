package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// Los contadores viven como columnas de products: bloquear la fila del producto
// bloquea ambos contadores a la vez.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene los contadores actuales de un producto.
func (r *StockRepo) Get(productID string) (*entity.Stock, error) {
	query := `
		SELECT id, warehouse_stock, cashier_stock, updated_at
		FROM products WHERE id = $1`
	return r.scanOne(query, productID)
}

// GetForUpdate obtiene los contadores y bloquea la fila (SELECT FOR UPDATE)
// para que la verificación de stock y la escritura no se intercalen con otra
// transacción sobre el mismo producto.
func (r *StockRepo) GetForUpdate(productID string) (*entity.Stock, error) {
	query := `
		SELECT id, warehouse_stock, cashier_stock, updated_at
		FROM products WHERE id = $1
		FOR UPDATE`
	return r.scanOne(query, productID)
}

// Update escribe ambos contadores del producto.
func (r *StockRepo) Update(stock *entity.Stock) error {
	query := `
		UPDATE products
		SET warehouse_stock = $2, cashier_stock = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.Warehouse, stock.Cashier)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StockRepo) scanOne(query, productID string) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&s.ProductID, &s.Warehouse, &s.Cashier, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}
