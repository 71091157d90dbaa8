package dto

import "time"

// StockOperationRequest body para POST /api/stock/receive y /api/stock/transfer.
// Origen y destino son implícitos por la operación.
type StockOperationRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Reference string `json:"reference,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// AdjustStockRequest body para POST /api/stock/adjust. Quantity es el valor
// absoluto al que queda el contador de Location, no un delta.
type AdjustStockRequest struct {
	ProductID string `json:"product_id"`
	Location  string `json:"location"` // warehouse | cashier
	Quantity  int64  `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// MovementResponse resultado de una operación de stock: id del movimiento
// creado y contadores tras la operación.
type MovementResponse struct {
	MovementID     string `json:"movement_id"`
	WarehouseStock int64  `json:"warehouse_stock"`
	CashierStock   int64  `json:"cashier_stock"`
}

// MovementListItem elemento del listado GET /api/stock/movements.
type MovementListItem struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductSKU   string    `json:"sku"`
	Type         string    `json:"type"`
	FromLocation string    `json:"from_location,omitempty"`
	ToLocation   string    `json:"to_location,omitempty"`
	Quantity     int64     `json:"quantity"`
	Reference    string    `json:"reference,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	UserName     string    `json:"user_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// ConsistencyResponse resultado de GET /api/stock/consistency/:product_id:
// compara los contadores materializados contra la reconstrucción del libro.
type ConsistencyResponse struct {
	ProductID       string `json:"product_id"`
	Consistent      bool   `json:"consistent"`
	WarehouseStock  int64  `json:"warehouse_stock"`
	CashierStock    int64  `json:"cashier_stock"`
	LedgerWarehouse int64  `json:"ledger_warehouse"`
	LedgerCashier   int64  `json:"ledger_cashier"`
	Movements       int    `json:"movements"`
}
