package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/ledger"
)

func mov(kind string, qty int64, from, to string) *entity.StockMovement {
	return &entity.StockMovement{
		Type:         kind,
		Quantity:     qty,
		FromLocation: from,
		ToLocation:   to,
	}
}

func TestReplay_LibroVacio(t *testing.T) {
	b := ledger.Replay(nil)
	assert.Equal(t, int64(0), b.Warehouse)
	assert.Equal(t, int64(0), b.Cashier)
}

func TestReplay_FlujoCompleto(t *testing.T) {
	// 100 entran a bodega, 40 pasan a caja, 15 salen por venta.
	movements := []*entity.StockMovement{
		mov(entity.MovementIn, 100, entity.LocationSupplier, entity.LocationWarehouse),
		mov(entity.MovementTransfer, 40, entity.LocationWarehouse, entity.LocationCashier),
		mov(entity.MovementOut, 15, entity.LocationCashier, entity.LocationCustomer),
	}
	b := ledger.Replay(movements)
	assert.Equal(t, int64(60), b.Warehouse)
	assert.Equal(t, int64(25), b.Cashier)
}

func TestReplay_TransferConservaElTotal(t *testing.T) {
	movements := []*entity.StockMovement{
		mov(entity.MovementIn, 80, entity.LocationSupplier, entity.LocationWarehouse),
		mov(entity.MovementTransfer, 30, entity.LocationWarehouse, entity.LocationCashier),
	}
	b := ledger.Replay(movements)
	assert.Equal(t, int64(80), b.Warehouse+b.Cashier,
		"un traslado mueve stock entre ubicaciones sin alterar el total")
}

func TestReplay_AdjustmentEsAbsoluto(t *testing.T) {
	// El ajuste fija el contador al valor guardado, no lo suma.
	movements := []*entity.StockMovement{
		mov(entity.MovementIn, 50, entity.LocationSupplier, entity.LocationWarehouse),
		mov(entity.MovementAdjustment, 7, entity.LocationWarehouse, entity.LocationWarehouse),
	}
	b := ledger.Replay(movements)
	assert.Equal(t, int64(7), b.Warehouse)
	assert.Equal(t, int64(0), b.Cashier)
}

func TestReplay_AdjustmentEnCajaNoTocaBodega(t *testing.T) {
	movements := []*entity.StockMovement{
		mov(entity.MovementIn, 20, entity.LocationSupplier, entity.LocationWarehouse),
		mov(entity.MovementTransfer, 10, entity.LocationWarehouse, entity.LocationCashier),
		mov(entity.MovementAdjustment, 3, entity.LocationCashier, entity.LocationCashier),
	}
	b := ledger.Replay(movements)
	assert.Equal(t, int64(10), b.Warehouse)
	assert.Equal(t, int64(3), b.Cashier)
}

func TestAt_DevuelveElContadorDeLaUbicacion(t *testing.T) {
	b := ledger.Balance{Warehouse: 5, Cashier: 9}
	assert.Equal(t, int64(5), b.At(entity.LocationWarehouse))
	assert.Equal(t, int64(9), b.At(entity.LocationCashier))
}

func TestVerify_ContadoresCoinciden(t *testing.T) {
	movements := []*entity.StockMovement{
		mov(entity.MovementIn, 10, entity.LocationSupplier, entity.LocationWarehouse),
		mov(entity.MovementTransfer, 4, entity.LocationWarehouse, entity.LocationCashier),
	}
	stock := &entity.Stock{ProductID: "p1", Warehouse: 6, Cashier: 4}
	assert.NoError(t, ledger.Verify(stock, movements))
}

func TestVerify_DetectaDeriva(t *testing.T) {
	movements := []*entity.StockMovement{
		mov(entity.MovementIn, 10, entity.LocationSupplier, entity.LocationWarehouse),
	}
	stock := &entity.Stock{ProductID: "p1", Warehouse: 8, Cashier: 0}

	err := ledger.Verify(stock, movements)
	assert.Error(t, err)

	var drift ledger.Drift
	assert.ErrorAs(t, err, &drift)
	assert.Equal(t, "p1", drift.ProductID)
	assert.Equal(t, entity.LocationWarehouse, drift.Location)
	assert.Equal(t, int64(8), drift.Counter)
	assert.Equal(t, int64(10), drift.Ledger)
}
