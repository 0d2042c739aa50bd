package dto

import "time"

// StockMovementRequest body para POST /api/stock-movements.
// CreatedBy es obligatorio aquí aunque la entidad lo admita vacío.
type StockMovementRequest struct {
	ProductID       *int64     `json:"product_id" validate:"required,gt=0"`
	MovementType    string     `json:"movement_type" validate:"required,oneof=STOCK_IN STOCK_OUT ADJUSTMENT_INCREASE ADJUSTMENT_DECREASE TRANSFER_IN TRANSFER_OUT"`
	Quantity        *int       `json:"quantity" validate:"required,min=1"`
	ReferenceNumber string     `json:"reference_number" validate:"notblank,max=100"`
	Notes           string     `json:"notes" validate:"max=500"`
	CreatedBy       string     `json:"created_by" validate:"notblank,max=100"`
	MovementDate    *time.Time `json:"movement_date,omitempty"`
}

// StockMovementResponse salida de un movimiento.
type StockMovementResponse struct {
	ID              int64     `json:"id"`
	ProductID       int64     `json:"product_id"`
	MovementType    string    `json:"movement_type"`
	Quantity        int       `json:"quantity"`
	ReferenceNumber string    `json:"reference_number"`
	Notes           string    `json:"notes,omitempty"`
	MovementDate    time.Time `json:"movement_date"`
	CreatedBy       string    `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	// CurrentStock stock del producto tras aplicar el movimiento; nil si no se aplicó.
	CurrentStock *int `json:"current_stock,omitempty"`
}

// StockMovementListResponse lista de movimientos de un producto.
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// StockLevelReport resumen de productos con stock bajo y sobre stock.
type StockLevelReport struct {
	GeneratedAt    time.Time         `json:"generated_at"`
	LowStockCount  int               `json:"low_stock_count"`
	OverStockCount int               `json:"over_stock_count"`
	LowStock       []ProductResponse `json:"low_stock"`
	OverStock      []ProductResponse `json:"over_stock"`
}
