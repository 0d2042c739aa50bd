package dto

import "github.com/jhoicas/inventory-tracker/internal/domain/entity"

// FromProduct convierte la entidad a su respuesta, calculando LowStock/OverStock en el momento.
func FromProduct(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		ProductName:   p.ProductName,
		Description:   p.Description,
		UnitPrice:     p.UnitPrice,
		CurrentStock:  p.CurrentStock,
		MinStockLevel: p.MinStockLevel,
		MaxStockLevel: p.MaxStockLevel,
		UnitOfMeasure: p.UnitOfMeasure,
		Category:      p.Category,
		Barcode:       p.Barcode,
		Location:      p.Location,
		Status:        string(p.Status),
		SupplierID:    p.SupplierID,
		LowStock:      p.IsLowStock(),
		OverStock:     p.IsOverStock(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromProducts convierte una lista; nunca devuelve nil.
func FromProducts(list []*entity.Product) []ProductResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *FromProduct(p))
	}
	return items
}

// FromSupplier convierte la entidad a su respuesta.
func FromSupplier(s *entity.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	return &SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		ContactPerson: s.ContactPerson,
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// FromSuppliers convierte una lista; nunca devuelve nil.
func FromSuppliers(list []*entity.Supplier) []SupplierResponse {
	items := make([]SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *FromSupplier(s))
	}
	return items
}

// FromStockMovement convierte la entidad a su respuesta.
func FromStockMovement(m *entity.StockMovement) *StockMovementResponse {
	if m == nil {
		return nil
	}
	return &StockMovementResponse{
		ID:              m.ID,
		ProductID:       m.ProductID,
		MovementType:    string(m.MovementType),
		Quantity:        m.Quantity,
		ReferenceNumber: m.ReferenceNumber,
		Notes:           m.Notes,
		MovementDate:    m.MovementDate,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
	}
}
