package inventory_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// memStore simula la base de datos en memoria. El mutex del runner serializa
// las transacciones igual que haría el bloqueo de fila.
type memStore struct {
	mu        sync.Mutex
	stocks    map[string]*entity.Stock
	movements []*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{stocks: make(map[string]*entity.Stock)}
}

func (s *memStore) addProduct(productID string, warehouse, cashier int64) {
	s.stocks[productID] = &entity.Stock{ProductID: productID, Warehouse: warehouse, Cashier: cashier}
}

// snapshot copia el estado completo para poder restaurarlo en rollback.
func (s *memStore) snapshot() *memStore {
	clone := newMemStore()
	for id, st := range s.stocks {
		c := *st
		clone.stocks[id] = &c
	}
	clone.movements = make([]*entity.StockMovement, len(s.movements))
	for i, m := range s.movements {
		c := *m
		clone.movements[i] = &c
	}
	return clone
}

func (s *memStore) restore(snap *memStore) {
	s.stocks = snap.stocks
	s.movements = snap.movements
}

// memStockRepo implementa repository.StockRepository sobre memStore.
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

// memMovementRepo implementa repository.StockMovementRepository sobre memStore.
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
	var out []*repository.MovementRecord
	for i := len(r.s.movements) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, &repository.MovementRecord{StockMovement: *r.s.movements[i]})
	}
	return out, nil
}

func (r *memMovementRepo) ListByRange(from, to time.Time, limit int) ([]*repository.MovementRecord, error) {
	var out []*repository.MovementRecord
	for i := len(r.s.movements) - 1; i >= 0 && len(out) < limit; i-- {
		m := r.s.movements[i]
		if !m.CreatedAt.Before(from) && !m.CreatedAt.After(to) {
			out = append(out, &repository.MovementRecord{StockMovement: *m})
		}
	}
	return out, nil
}

// memTxRunner serializa transacciones con un mutex y restaura el snapshot si
// el callback falla, imitando Commit/Rollback.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
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
