package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
)

// captureQuerier registra el contexto con el que llega cada consulta.
type captureQuerier struct {
	lastCtx context.Context
}

func (c *captureQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.lastCtx = ctx
	return pgconn.CommandTag{}, nil
}

func (c *captureQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.lastCtx = ctx
	return nil, nil
}

func (c *captureQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	c.lastCtx = ctx
	return nil
}

// Los repositorios consultan con context.Background(); el deadline de la
// transacción debe imponerse igual, si no una espera de bloqueo dentro de la
// tx no se cancelaría nunca.
func TestBoundQuerier_ImponeElContextoDeLaTransaccion(t *testing.T) {
	txCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	capture := &captureQuerier{}
	bound := boundQuerier{q: capture, ctx: txCtx}

	_, err := bound.Exec(context.Background(), "UPDATE products SET warehouse_stock = 0")
	require.NoError(t, err)
	deadline, ok := capture.lastCtx.Deadline()
	assert.True(t, ok, "la consulta debe llevar el deadline de la tx")
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)

	_, err = bound.Query(context.Background(), "SELECT 1")
	require.NoError(t, err)
	assert.Equal(t, txCtx, capture.lastCtx)

	bound.QueryRow(context.Background(), "SELECT id FROM products WHERE id = $1 FOR UPDATE", "p1")
	assert.Equal(t, txCtx, capture.lastCtx)
}

func TestBoundQuerier_CancelacionLlegaALaConsulta(t *testing.T) {
	txCtx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-txCtx.Done() // deadline ya vencido, como una tx que agotó su límite

	capture := &captureQuerier{}
	bound := boundQuerier{q: capture, ctx: txCtx}

	bound.QueryRow(context.Background(), "SELECT 1")
	assert.ErrorIs(t, capture.lastCtx.Err(), context.DeadlineExceeded)
}

func TestMapTimeout(t *testing.T) {
	err := mapTimeout(fmt.Errorf("query row: %w", context.DeadlineExceeded))
	assert.ErrorIs(t, err, domain.ErrStorageTimeout,
		"el vencimiento del deadline debe ser reintentable")

	otro := errors.New("syntax error")
	assert.Equal(t, otro, mapTimeout(otro), "otros errores pasan sin traducir")

	assert.NoError(t, mapTimeout(nil))
}
