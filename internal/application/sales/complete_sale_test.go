package sales_test

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/inventory"
	"github.com/jhoicas/PuntoVenta-api/internal/application/sales"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

const testCashierID = "cajero-1"

func newSaleCoordinator(store *memStore) *sales.CompleteSaleUseCase {
	runner := &memSaleTxRunner{s: store}
	engine := inventory.NewMovementUseCase(runner, &memMovementRepo{store}, &memStockRepo{store})
	return sales.NewCompleteSaleUseCase(runner, engine, &memProductRepo{store}, &memSaleRepo{store})
}

func producto(id, sku string, precio string, enCaja int64) (*memStore, *sales.CompleteSaleUseCase) {
	store := newMemStore()
	store.addProduct(&entity.Product{
		ID:           id,
		SKU:          sku,
		Name:         "Producto " + sku,
		SellingPrice: decimal.RequireFromString(precio),
	}, enCaja)
	return store, newSaleCoordinator(store)
}

func linea(productID string, qty int64, precio string) dto.SaleItemRequest {
	return dto.SaleItemRequest{
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(precio),
	}
}

func TestCompleteSale_VentaVaciaEsRechazada(t *testing.T) {
	_, uc := producto("p1", "ARZ-001", "3.50", 10)

	_, err := uc.CompleteSale(context.Background(), testCashierID, dto.CompleteSaleRequest{
		PaymentMethod: "efectivo",
	})
	assert.ErrorIs(t, err, domain.ErrEmptySale)
}

func TestCompleteSale_SinCajeroEsRechazada(t *testing.T) {
	_, uc := producto("p1", "ARZ-001", "3.50", 10)

	_, err := uc.CompleteSale(context.Background(), "", dto.CompleteSaleRequest{
		Items: []dto.SaleItemRequest{linea("p1", 1, "3.50")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompleteSale_ProductoInexistente(t *testing.T) {
	_, uc := producto("p1", "ARZ-001", "3.50", 10)

	_, err := uc.CompleteSale(context.Background(), testCashierID, dto.CompleteSaleRequest{
		Items: []dto.SaleItemRequest{linea("no-existe", 1, "3.50")},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompleteSale_TotalSeRecalculaEnElServidor(t *testing.T) {
	store, uc := producto("p1", "ARZ-001", "3.50", 10)

	// El subtotal del cliente viene manipulado y debe ignorarse.
	item := linea("p1", 3, "3.50")
	item.Subtotal = decimal.RequireFromString("0.01")

	result, err := uc.CompleteSale(context.Background(), testCashierID, dto.CompleteSaleRequest{
		Items:         []dto.SaleItemRequest{item},
		PaymentMethod: "efectivo",
	})
	require.NoError(t, err)
	assert.True(t, result.TotalAmount.Equal(decimal.RequireFromString("10.50")),
		"total esperado 10.50, obtenido %s", result.TotalAmount)

	sale := store.sales[result.SaleID]
	require.NotNil(t, sale)
	assert.True(t, sale.TotalAmount.Equal(decimal.RequireFromString("10.50")))
	require.Len(t, store.items, 1)
	assert.True(t, store.items[0].Subtotal.Equal(decimal.RequireFromString("10.50")))
	assert.Equal(t, int64(7), store.stocks["p1"].Cashier)
}

func TestCompleteSale_PrecioCeroUsaPrecioDeVenta(t *testing.T) {
	store, uc := producto("p1", "ARZ-001", "4.20", 5)

	result, err := uc.CompleteSale(context.Background(), testCashierID, dto.CompleteSaleRequest{
		Items: []dto.SaleItemRequest{linea("p1", 2, "0")},
	})
	require.NoError(t, err)
	assert.True(t, result.TotalAmount.Equal(decimal.RequireFromString("8.40")))
	require.Len(t, store.items, 1)
	assert.True(t, store.items[0].UnitPrice.Equal(decimal.RequireFromString("4.20")))
}

func TestCompleteSale_StockInsuficienteRevierteTodo(t *testing.T) {
	store, uc := producto("p1", "ARZ-001", "3.50", 10)
	store.addProduct(&entity.Product{
		ID:           "p2",
		SKU:          "FRJ-002",
		Name:         "Producto FRJ-002",
		SellingPrice: decimal.RequireFromString("5.00"),
	}, 2)

	// La segunda línea pide más de lo que hay en caja: nada debe persistir.
	_, err := uc.CompleteSale(context.Background(), testCashierID, dto.CompleteSaleRequest{
		Items: []dto.SaleItemRequest{
			linea("p1", 4, "3.50"),
			linea("p2", 3, "5.00"),
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, store.sales, "no debe quedar venta")
	assert.Empty(t, store.items, "no deben quedar líneas")
	assert.Empty(t, store.movements, "no deben quedar asientos en el libro")
	assert.Equal(t, int64(10), store.stocks["p1"].Cashier, "el débito de la primera línea se revierte")
	assert.Equal(t, int64(2), store.stocks["p2"].Cashier)
}

func TestCompleteSale_CantidadInvalida(t *testing.T) {
	_, uc := producto("p1", "ARZ-001", "3.50", 10)

	for _, qty := range []int64{0, -2} {
		_, err := uc.CompleteSale(context.Background(), testCashierID, dto.CompleteSaleRequest{
			Items: []dto.SaleItemRequest{linea("p1", qty, "3.50")},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCompleteSale_VentaDejaAsientoEnElLibro(t *testing.T) {
	store, uc := producto("p1", "ARZ-001", "3.50", 10)

	result, err := uc.CompleteSale(context.Background(), testCashierID, dto.CompleteSaleRequest{
		Items: []dto.SaleItemRequest{linea("p1", 4, "3.50")},
	})
	require.NoError(t, err)

	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementOut, mov.Type)
	assert.Equal(t, entity.LocationCashier, mov.FromLocation)
	assert.Equal(t, entity.LocationCustomer, mov.ToLocation)
	assert.Equal(t, int64(4), mov.Quantity)
	assert.Equal(t, result.InvoiceNumber, mov.Reference, "el asiento referencia la factura")
	assert.Equal(t, testCashierID, mov.CreatedBy)
}

func TestCompleteSale_DobleVentaConcurrenteSoloUnaGana(t *testing.T) {
	store, uc := producto("p1", "ARZ-001", "3.50", 6)

	// Dos cajeros venden las 6 unidades al mismo tiempo: exactamente una
	// venta se completa y la otra falla por stock insuficiente.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.CompleteSale(context.Background(), testCashierID, dto.CompleteSaleRequest{
				Items: []dto.SaleItemRequest{linea("p1", 6, "3.50")},
			})
		}(i)
	}
	wg.Wait()

	exitos, insuficientes := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			exitos++
		case assert.ErrorIs(t, err, domain.ErrInsufficientStock):
			insuficientes++
		}
	}
	assert.Equal(t, 1, exitos)
	assert.Equal(t, 1, insuficientes)
	assert.Equal(t, int64(0), store.stocks["p1"].Cashier)
	assert.Len(t, store.sales, 1)
	assert.Len(t, store.items, 1)
	assert.Len(t, store.movements, 1)
}

func TestNewInvoiceNumber_Formato(t *testing.T) {
	now := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^INV-20250309-[0-9A-F]{8}$`)

	vistos := make(map[string]bool)
	for i := 0; i < 50; i++ {
		inv := sales.NewInvoiceNumber(now)
		assert.Regexp(t, pattern, inv)
		assert.False(t, vistos[inv], "número repetido: %s", inv)
		vistos[inv] = true
	}
}
