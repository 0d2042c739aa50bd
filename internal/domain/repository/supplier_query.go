package repository

import (
	"strings"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// SupplierQueryKind identifica el filtro de una SupplierQuery.
type SupplierQueryKind int

const (
	SupplierByNameContaining SupplierQueryKind = iota + 1
	SupplierByStatus
)

// SupplierQuery especificación de búsqueda de proveedores.
type SupplierQuery struct {
	Kind   SupplierQueryKind
	Text   string
	Status entity.SupplierStatus
}

// SuppliersNameContaining proveedores cuyo nombre contiene name.
func SuppliersNameContaining(name string) SupplierQuery {
	return SupplierQuery{Kind: SupplierByNameContaining, Text: name}
}

// SuppliersWithStatus proveedores con un estado exacto.
func SuppliersWithStatus(status entity.SupplierStatus) SupplierQuery {
	return SupplierQuery{Kind: SupplierByStatus, Status: status}
}

// Matches evalúa la especificación en memoria.
func (q SupplierQuery) Matches(s *entity.Supplier) bool {
	switch q.Kind {
	case SupplierByNameContaining:
		return likeContains(s.Name, q.Text)
	case SupplierByStatus:
		return s.Status == q.Status
	}
	return false
}

// likeContains replica LIKE '%sub%': sensible a mayúsculas y sin anclar.
func likeContains(s, sub string) bool {
	return strings.Contains(s, sub)
}
