package repository

import (
	"fmt"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// ProductQueryKind identifica el filtro de una ProductQuery.
type ProductQueryKind int

const (
	ProductByNameContaining ProductQueryKind = iota + 1
	ProductByCategory
	ProductBySupplier
	ProductByStatus
	ProductLowStock
	ProductOverStock
)

func (k ProductQueryKind) String() string {
	switch k {
	case ProductByNameContaining:
		return "name_containing"
	case ProductByCategory:
		return "category"
	case ProductBySupplier:
		return "supplier"
	case ProductByStatus:
		return "status"
	case ProductLowStock:
		return "low_stock"
	case ProductOverStock:
		return "over_stock"
	}
	return fmt.Sprintf("ProductQueryKind(%d)", int(k))
}

// ProductQuery especificación de búsqueda de productos. Solo el campo que corresponde
// a Kind es significativo; el adaptador la traduce a un predicado evaluado en la base de datos.
type ProductQuery struct {
	Kind       ProductQueryKind
	Text       string // nombre parcial o categoría
	SupplierID int64
	Status     entity.ProductStatus
}

// ProductsNameContaining productos cuyo nombre contiene name (coincidencia parcial, sin anclar).
func ProductsNameContaining(name string) ProductQuery {
	return ProductQuery{Kind: ProductByNameContaining, Text: name}
}

// ProductsInCategory productos de una categoría exacta.
func ProductsInCategory(category string) ProductQuery {
	return ProductQuery{Kind: ProductByCategory, Text: category}
}

// ProductsFromSupplier productos de un proveedor.
func ProductsFromSupplier(supplierID int64) ProductQuery {
	return ProductQuery{Kind: ProductBySupplier, SupplierID: supplierID}
}

// ProductsWithStatus productos con un estado exacto.
func ProductsWithStatus(status entity.ProductStatus) ProductQuery {
	return ProductQuery{Kind: ProductByStatus, Status: status}
}

// LowStockProducts productos con current_stock <= min_stock_level.
func LowStockProducts() ProductQuery { return ProductQuery{Kind: ProductLowStock} }

// OverStockProducts productos con current_stock >= max_stock_level.
func OverStockProducts() ProductQuery { return ProductQuery{Kind: ProductOverStock} }

// Matches evalúa la especificación sobre un producto en memoria. Los adaptadores SQL
// no la usan; sirve a implementaciones en memoria y a pruebas.
func (q ProductQuery) Matches(p *entity.Product) bool {
	switch q.Kind {
	case ProductByNameContaining:
		return likeContains(p.ProductName, q.Text)
	case ProductByCategory:
		return p.Category == q.Text
	case ProductBySupplier:
		return p.SupplierID == q.SupplierID
	case ProductByStatus:
		return p.Status == q.Status
	case ProductLowStock:
		return p.IsLowStock()
	case ProductOverStock:
		return p.IsOverStock()
	}
	return false
}
