package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	UpdatePassword(id, passwordHash string) error
	List(limit, offset int) ([]*entity.User, error)
	// Delete falla con domain.ErrConflict si el usuario está referenciado por
	// ventas, movimientos o gastos históricos.
	Delete(id string) error
}
