package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus estado comercial de un producto.
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "ACTIVE"
	ProductStatusInactive     ProductStatus = "INACTIVE"
	ProductStatusDiscontinued ProductStatus = "DISCONTINUED"
)

// Valid indica si el estado es uno de los valores conocidos.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusDiscontinued:
		return true
	}
	return false
}

// ParseProductStatus convierte texto a ProductStatus. ok es false si no es un valor conocido.
func ParseProductStatus(s string) (ProductStatus, bool) {
	st := ProductStatus(s)
	return st, st.Valid()
}

// Product representa un artículo almacenado. Pertenece a un único proveedor (SupplierID)
// y sus movimientos de stock se eliminan en cascada al borrarlo.
type Product struct {
	ID            int64
	SKU           string // único global
	ProductName   string
	Description   string
	UnitPrice     decimal.Decimal // NUMERIC(10,2)
	CurrentStock  int
	MinStockLevel int
	MaxStockLevel int
	UnitOfMeasure string
	Category      string
	Barcode       string
	Location      string
	Status        ProductStatus
	SupplierID    int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock es true cuando el stock actual no supera el mínimo.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStockLevel
}

// IsOverStock es true cuando el stock actual alcanza o supera el máximo.
func (p *Product) IsOverStock() bool {
	return p.CurrentStock >= p.MaxStockLevel
}

// BeforeCreate fija los timestamps y el estado por defecto antes del INSERT.
// Solo un estado vacío se corrige a ACTIVE.
func (p *Product) BeforeCreate(now time.Time) {
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = ProductStatusActive
	}
}

// BeforeUpdate refresca UpdatedAt antes del UPDATE.
func (p *Product) BeforeUpdate(now time.Time) {
	p.UpdatedAt = now
}
