package sales_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// memStore simula la base de datos en memoria para las pruebas de venta.
// El mutex del runner serializa las transacciones y el snapshot imita el
// rollback: si el callback falla no queda rastro de la venta ni del débito.
type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	stocks    map[string]*entity.Stock
	movements []*entity.StockMovement
	sales     map[string]*entity.Sale
	items     []*entity.SaleItem
	invoices  map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]*entity.Product),
		stocks:   make(map[string]*entity.Stock),
		sales:    make(map[string]*entity.Sale),
		invoices: make(map[string]bool),
	}
}

func (s *memStore) addProduct(p *entity.Product, cashierStock int64) {
	s.products[p.ID] = p
	s.stocks[p.ID] = &entity.Stock{ProductID: p.ID, Cashier: cashierStock}
}

func (s *memStore) snapshot() *memStore {
	clone := newMemStore()
	for id, p := range s.products {
		c := *p
		clone.products[id] = &c
	}
	for id, st := range s.stocks {
		c := *st
		clone.stocks[id] = &c
	}
	for _, m := range s.movements {
		c := *m
		clone.movements = append(clone.movements, &c)
	}
	for id, sale := range s.sales {
		c := *sale
		clone.sales[id] = &c
	}
	for _, it := range s.items {
		c := *it
		clone.items = append(clone.items, &c)
	}
	for inv := range s.invoices {
		clone.invoices[inv] = true
	}
	return clone
}

func (s *memStore) restore(snap *memStore) {
	s.products = snap.products
	s.stocks = snap.stocks
	s.movements = snap.movements
	s.sales = snap.sales
	s.items = snap.items
	s.invoices = snap.invoices
}

// ── repos ─────────────────────────────────────────────────────────────────────

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Get(productID string) (*entity.Stock, error) {
	st, ok := r.s.stocks[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *st
	return &c, nil
}

func (r *memStockRepo) GetForUpdate(productID string) (*entity.Stock, error) {
	return r.Get(productID)
}

func (r *memStockRepo) Update(stock *entity.Stock) error {
	if _, ok := r.s.stocks[stock.ProductID]; !ok {
		return domain.ErrNotFound
	}
	c := *stock
	r.s.stocks[stock.ProductID] = &c
	return nil
}

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	c := *m
	r.s.movements = append(r.s.movements, &c)
	return nil
}

func (r *memMovementRepo) ListByProductAsc(productID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memMovementRepo) ListRecent(limit int) ([]*repository.MovementRecord, error) {
	return nil, nil
}

func (r *memMovementRepo) ListByRange(from, to time.Time, limit int) ([]*repository.MovementRecord, error) {
	return nil, nil
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error { return nil }
func (r *memProductRepo) Update(p *entity.Product) error { return nil }
func (r *memProductRepo) Delete(id string) error         { return nil }

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *p
	return &c, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			c := *p
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) ListLowStock() ([]*entity.Product, error)          { return nil, nil }

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	if r.s.invoices[sale.InvoiceNumber] {
		return domain.ErrDuplicate
	}
	c := *sale
	r.s.sales[sale.ID] = &c
	r.s.invoices[sale.InvoiceNumber] = true
	return nil
}

func (r *memSaleRepo) CreateItem(item *entity.SaleItem) error {
	c := *item
	r.s.items = append(r.s.items, &c)
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*repository.SaleRecord, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &repository.SaleRecord{Sale: *sale}, nil
}

func (r *memSaleRepo) GetItems(saleID string) ([]*repository.SaleItemRecord, error) {
	var out []*repository.SaleItemRecord
	for _, it := range r.s.items {
		if it.SaleID == saleID {
			out = append(out, &repository.SaleItemRecord{SaleItem: *it})
		}
	}
	return out, nil
}

func (r *memSaleRepo) List(from, to *time.Time, limit int) ([]*repository.SaleRecord, error) {
	var out []*repository.SaleRecord
	for _, sale := range r.s.sales {
		out = append(out, &repository.SaleRecord{Sale: *sale})
	}
	return out, nil
}

// memSaleTxRunner serializa las transacciones de venta con snapshot/rollback.
type memSaleTxRunner struct{ s *memStore }

func (r *memSaleTxRunner) RunSale(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.s.snapshot()
	if err := fn(&memMovementRepo{r.s}, &memStockRepo{r.s}, &memSaleRepo{r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// Run implementa inventory.TxRunner por completitud (el motor de movimientos
// comparte el runner en producción).
func (r *memSaleTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.s.snapshot()
	if err := fn(&memMovementRepo{r.s}, &memStockRepo{r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
