package entity

import "time"

// SupplierStatus estado de un proveedor.
type SupplierStatus string

const (
	SupplierStatusActive    SupplierStatus = "ACTIVE"
	SupplierStatusInactive  SupplierStatus = "INACTIVE"
	SupplierStatusSuspended SupplierStatus = "SUSPENDED"
)

// Valid indica si el estado es uno de los valores conocidos.
func (s SupplierStatus) Valid() bool {
	switch s {
	case SupplierStatusActive, SupplierStatusInactive, SupplierStatusSuspended:
		return true
	}
	return false
}

// ParseSupplierStatus convierte texto a SupplierStatus.
func ParseSupplierStatus(s string) (SupplierStatus, bool) {
	st := SupplierStatus(s)
	return st, st.Valid()
}

// Supplier datos maestros de un proveedor. Email es único.
type Supplier struct {
	ID            int64
	Name          string
	Email         string
	Phone         string
	Address       string
	ContactPerson string
	Status        SupplierStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BeforeCreate fija timestamps y estado ACTIVE si viene vacío.
func (s *Supplier) BeforeCreate(now time.Time) {
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.Status == "" {
		s.Status = SupplierStatusActive
	}
}

// BeforeUpdate refresca UpdatedAt.
func (s *Supplier) BeforeUpdate(now time.Time) {
	s.UpdatedAt = now
}
