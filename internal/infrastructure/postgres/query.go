package postgres

import (
	"fmt"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// productWhere traduce una ProductQuery a un predicado SQL con sus argumentos.
// Los filtros de stock comparan columnas entre sí, de modo que el motor filtra sin traer la tabla.
func productWhere(q repository.ProductQuery) (string, []any, error) {
	switch q.Kind {
	case repository.ProductByNameContaining:
		return `product_name LIKE $1 ESCAPE '\'`, []any{likePattern(q.Text)}, nil
	case repository.ProductByCategory:
		return `category = $1`, []any{q.Text}, nil
	case repository.ProductBySupplier:
		return `supplier_id = $1`, []any{q.SupplierID}, nil
	case repository.ProductByStatus:
		return `status = $1`, []any{string(q.Status)}, nil
	case repository.ProductLowStock:
		return `current_stock <= min_stock_level`, nil, nil
	case repository.ProductOverStock:
		return `current_stock >= max_stock_level`, nil, nil
	}
	return "", nil, fmt.Errorf("%w: consulta de productos %s", domain.ErrInvalidInput, q.Kind)
}

// supplierWhere traduce una SupplierQuery a un predicado SQL.
func supplierWhere(q repository.SupplierQuery) (string, []any, error) {
	switch q.Kind {
	case repository.SupplierByNameContaining:
		return `name LIKE $1 ESCAPE '\'`, []any{likePattern(q.Text)}, nil
	case repository.SupplierByStatus:
		return `status = $1`, []any{string(q.Status)}, nil
	}
	return "", nil, fmt.Errorf("%w: consulta de proveedores %d", domain.ErrInvalidInput, int(q.Kind))
}
