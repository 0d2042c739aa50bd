package dto

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanText recorta espacios y normaliza a NFC para que SKU, nombres y búsquedas
// comparen igual sin importar cómo se compusieron los acentos.
func CleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeEmail CleanText en minúsculas.
func NormalizeEmail(s string) string {
	return strings.ToLower(CleanText(s))
}

// Normalized devuelve una copia con el texto limpio y el precio redondeado a 2 decimales,
// que es lo que se persiste. Las reglas de validación se aplican sobre esta copia.
func (r ProductRequest) Normalized() ProductRequest {
	r.SKU = CleanText(r.SKU)
	r.ProductName = CleanText(r.ProductName)
	r.Description = CleanText(r.Description)
	r.UnitOfMeasure = CleanText(r.UnitOfMeasure)
	r.Category = CleanText(r.Category)
	r.Barcode = CleanText(r.Barcode)
	r.Location = CleanText(r.Location)
	r.Status = CleanText(r.Status)
	if r.UnitPrice != nil {
		price := r.UnitPrice.Round(2)
		r.UnitPrice = &price
	}
	return r
}

// Normalized devuelve una copia con el texto limpio y el email en minúsculas.
func (r SupplierRequest) Normalized() SupplierRequest {
	r.Name = CleanText(r.Name)
	r.Email = NormalizeEmail(r.Email)
	r.Phone = CleanText(r.Phone)
	r.Address = CleanText(r.Address)
	r.ContactPerson = CleanText(r.ContactPerson)
	r.Status = CleanText(r.Status)
	return r
}

// Normalized devuelve una copia con el texto limpio.
func (r StockMovementRequest) Normalized() StockMovementRequest {
	r.MovementType = CleanText(r.MovementType)
	r.ReferenceNumber = CleanText(r.ReferenceNumber)
	r.Notes = CleanText(r.Notes)
	r.CreatedBy = CleanText(r.CreatedBy)
	return r
}
