package repository

import (
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	List(from, to *time.Time, limit int) ([]*entity.Expense, error)
	Delete(id string) error
}
