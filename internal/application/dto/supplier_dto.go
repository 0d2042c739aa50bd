package dto

import "time"

// SupplierRequest entrada para crear o reemplazar un proveedor.
type SupplierRequest struct {
	Name          string `json:"name" validate:"notblank,max=100"`
	Email         string `json:"email" validate:"notblank,email,max=150"`
	Phone         string `json:"phone" validate:"max=20"`
	Address       string `json:"address" validate:"max=255"`
	ContactPerson string `json:"contact_person" validate:"max=100"`
	Status        string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SupplierListResponse lista de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  *PageResponse      `json:"page,omitempty"`
}
