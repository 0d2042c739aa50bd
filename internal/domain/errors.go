package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStorage           = errors.New("error de almacenamiento")

	ErrProductNotFound       = wrap(ErrNotFound, "producto no encontrado")
	ErrSupplierNotFound      = wrap(ErrNotFound, "proveedor no encontrado")
	ErrStockMovementNotFound = wrap(ErrNotFound, "movimiento no encontrado")
	ErrDuplicateSKU          = wrap(ErrConflict, "el SKU ya está registrado")
	ErrDuplicateEmail        = wrap(ErrConflict, "el email ya está registrado")
	ErrSupplierInUse         = wrap(ErrConflict, "el proveedor tiene productos asociados")
)

// kindError es un error con mensaje propio que sigue respondiendo a errors.Is con su categoría.
type kindError struct {
	kind error
	msg  string
}

func wrap(kind error, msg string) error { return &kindError{kind: kind, msg: msg} }

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// FieldError describe la restricción violada por un campo de entrada.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError agrupa los errores de campo de un DTO. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError de un solo campo.
func NewValidationError(field, rule, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Rule: rule, Message: message}}}
}

// AsValidationError extrae el ValidationError de la cadena, si existe.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
