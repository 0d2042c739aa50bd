package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-tracker/internal/domain"
)

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validación", domain.NewValidationError("sku", "notblank", "es obligatorio"), fiber.StatusBadRequest, "VALIDATION"},
		{"entrada inválida", domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{"producto no encontrado", domain.ErrProductNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"proveedor no encontrado envuelto", fmt.Errorf("crear: %w", domain.ErrSupplierNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{"sku duplicado", domain.ErrDuplicateSKU, fiber.StatusConflict, "DUPLICATE"},
		{"email duplicado", domain.ErrDuplicateEmail, fiber.StatusConflict, "DUPLICATE"},
		{"proveedor en uso", domain.ErrSupplierInUse, fiber.StatusConflict, "CONFLICT"},
		{"stock insuficiente", domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{"almacenamiento", fmt.Errorf("%w: timeout", domain.ErrStorage), fiber.StatusInternalServerError, "INTERNAL"},
		{"desconocido", errors.New("boom"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := errorResponse(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestErrorResponse_InternalHidesDetail(t *testing.T) {
	_, body := errorResponse(fmt.Errorf("%w: password authentication failed", domain.ErrStorage))
	assert.NotContains(t, body.Message, "password")
}

func TestErrorResponse_ValidationCarriesFields(t *testing.T) {
	_, body := errorResponse(&domain.ValidationError{Fields: []domain.FieldError{
		{Field: "quantity", Rule: "min", Message: "debe ser al menos 1"},
	}})
	assert.Len(t, body.Fields, 1)
	assert.Equal(t, "quantity", body.Fields[0].Field)
}
