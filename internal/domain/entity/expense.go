package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense es un gasto operativo. Libro independiente: solo lo consume el
// módulo de reportes, no participa en la consistencia de stock.
type Expense struct {
	ID          string
	Category    string
	Description string
	Amount      decimal.Decimal
	CreatedBy   string // UserID
	CreatedAt   time.Time
}
