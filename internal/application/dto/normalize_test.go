package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a", dto.CleanText(" a\t"))
	assert.Equal(t, "\u00e9", dto.CleanText("e\u0301"))
	assert.Equal(t, "", dto.CleanText(" \n "))
	assert.Equal(t, "ventas@acme.co", dto.NormalizeEmail(" Ventas@ACME.co "))
}

func TestProductRequest_Normalized(t *testing.T) {
	price := decimal.RequireFromString("99999999.995")
	in := dto.ProductRequest{SKU: " SKU-1 ", ProductName: "Cafe\u0301 ", UnitPrice: &price}

	out := in.Normalized()
	assert.Equal(t, "SKU-1", out.SKU)
	assert.Equal(t, "Caf\u00e9", out.ProductName)
	assert.Equal(t, "100000000", out.UnitPrice.String())
	// la entrada original no se modifica
	assert.Equal(t, "99999999.995", in.UnitPrice.String())
	assert.Equal(t, " SKU-1 ", in.SKU)
}

func TestStockMovementRequest_Normalized(t *testing.T) {
	in := dto.StockMovementRequest{MovementType: " STOCK_IN", ReferenceNumber: " OC-1 ", Notes: " x ", CreatedBy: "\tbodega "}
	out := in.Normalized()
	assert.Equal(t, "STOCK_IN", out.MovementType)
	assert.Equal(t, "OC-1", out.ReferenceNumber)
	assert.Equal(t, "x", out.Notes)
	assert.Equal(t, "bodega", out.CreatedBy)
}
