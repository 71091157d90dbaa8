package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/PuntoVenta-api/internal/application/inventory"
	"github.com/jhoicas/PuntoVenta-api/internal/application/sales"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)
var _ sales.SaleTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con un
// límite de duración. Al vencer el límite la transacción se aborta y el
// error llega como domain.ErrStorageTimeout, reintentable por el cliente.
type TxRunner struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewTxRunner construye el runner con el pool y el límite por transacción.
func NewTxRunner(pool *pgxpool.Pool, timeout time.Duration) *TxRunner {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TxRunner{pool: pool, timeout: timeout}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	return r.inTx(ctx, func(tx Querier) error {
		return fn(NewStockMovementRepository(tx), NewStockRepository(tx))
	})
}

// RunSale inicia la transacción de venta: movimientos, contadores y la venta
// con sus líneas persisten juntos o no persisten.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return r.inTx(ctx, func(tx Querier) error {
		return fn(NewStockMovementRepository(tx), NewStockRepository(tx), NewSaleRepository(tx))
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(tx Querier) error) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", mapTimeout(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(boundQuerier{q: tx, ctx: ctx}); err != nil {
		return mapTimeout(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", mapTimeout(err))
	}
	return nil
}

// boundQuerier ata el contexto con deadline de la transacción a cada
// consulta. Sin esto una espera de bloqueo dentro de la tx (por ejemplo un
// SELECT FOR UPDATE contra una fila tomada por otra transacción) quedaría
// sin límite: solo Begin y Commit observarían el vencimiento.
type boundQuerier struct {
	q   Querier
	ctx context.Context
}

func (b boundQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return b.q.Exec(b.ctx, sql, args...)
}

func (b boundQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	return b.q.Query(b.ctx, sql, args...)
}

func (b boundQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	return b.q.QueryRow(b.ctx, sql, args...)
}

// mapTimeout traduce el vencimiento del deadline a domain.ErrStorageTimeout.
func mapTimeout(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrStorageTimeout, err)
	}
	return err
}
