package inventory

import (
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// ListMovements devuelve el listado de movimientos con nombres resueltos,
// filtrado por rango opcional. Solo lectura, fuera de transacción.
func (uc *MovementUseCase) ListMovements(from, to *time.Time, limit int) ([]dto.MovementListItem, error) {
	if limit <= 0 {
		limit = 100
	}
	var (
		records []*repository.MovementRecord
		err     error
	)
	if from != nil && to != nil {
		records, err = uc.movRepo.ListByRange(*from, *to, limit)
	} else {
		records, err = uc.movRepo.ListRecent(limit)
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.MovementListItem, 0, len(records))
	for _, r := range records {
		out = append(out, dto.MovementListItem{
			ID:           r.ID,
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			ProductSKU:   r.ProductSKU,
			Type:         r.Type,
			FromLocation: r.FromLocation,
			ToLocation:   r.ToLocation,
			Quantity:     r.Quantity,
			Reference:    r.Reference,
			Notes:        r.Notes,
			UserName:     r.UserName,
			CreatedAt:    r.CreatedAt,
		})
	}
	return out, nil
}
