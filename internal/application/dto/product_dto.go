package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o reemplazar un producto.
// Los campos numéricos son punteros para distinguir "ausente" de cero.
type ProductRequest struct {
	SKU           string           `json:"sku" validate:"notblank,max=50"`
	ProductName   string           `json:"product_name" validate:"notblank,min=2,max=100"`
	Description   string           `json:"description" validate:"max=1000"`
	UnitPrice     *decimal.Decimal `json:"unit_price" validate:"required,gt=0,lt=100000000"`
	CurrentStock  *int             `json:"current_stock" validate:"required,min=0"`
	MinStockLevel *int             `json:"min_stock_level" validate:"required,min=0"`
	MaxStockLevel *int             `json:"max_stock_level" validate:"required,min=1"`
	UnitOfMeasure string           `json:"unit_of_measure" validate:"notblank,max=20"`
	Category      string           `json:"category" validate:"notblank,max=50"`
	Barcode       string           `json:"barcode" validate:"max=50"`
	Location      string           `json:"location" validate:"max=100"`
	Status        string           `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE DISCONTINUED"`
	SupplierID    *int64           `json:"supplier_id" validate:"required,gt=0"`
}

// ProductResponse salida de un producto. LowStock y OverStock se calculan al responder.
type ProductResponse struct {
	ID            int64           `json:"id"`
	SKU           string          `json:"sku"`
	ProductName   string          `json:"product_name"`
	Description   string          `json:"description,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	CurrentStock  int             `json:"current_stock"`
	MinStockLevel int             `json:"min_stock_level"`
	MaxStockLevel int             `json:"max_stock_level"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	Category      string          `json:"category"`
	Barcode       string          `json:"barcode,omitempty"`
	Location      string          `json:"location,omitempty"`
	Status        string          `json:"status"`
	SupplierID    int64           `json:"supplier_id"`
	LowStock      bool            `json:"low_stock"`
	OverStock     bool            `json:"over_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  *PageResponse     `json:"page,omitempty"`
}
