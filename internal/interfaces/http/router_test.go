package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/application/usecase"
	"github.com/jhoicas/inventory-tracker/internal/application/validation"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/inventory-tracker/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación completa sobre el almacenamiento en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	v := validation.New()
	app := apphttp.NewApp("inventory-test", nil)
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:         "inventory-test",
		SupplierUC:      usecase.NewSupplierUseCase(store.Suppliers(), v, nil),
		ProductUC:       usecase.NewProductUseCase(store.Products(), store.Suppliers(), v, nil),
		StockMovementUC: inventory.NewStockMovementUseCase(store, store.Movements(), nil, v, nil),
		StockReportUC:   inventory.NewStockLevelReportUseCase(store.Products()),
	})
	return app
}

// do ejecuta una petición y decodifica el cuerpo JSON en out (si no es nil).
func do(t *testing.T, app *fiber.App, method, path string, body any, out any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func createSupplier(t *testing.T, app *fiber.App, email string) dto.SupplierResponse {
	t.Helper()
	var out dto.SupplierResponse
	resp := do(t, app, http.MethodPost, "/api/suppliers", map[string]any{
		"name":  "Distribuidora " + email,
		"email": email,
	}, &out)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return out
}

func productBody(sku string, supplierID int64, current, min, max int) map[string]any {
	return map[string]any{
		"sku":             sku,
		"product_name":    "Producto " + sku,
		"unit_price":      12.5,
		"current_stock":   current,
		"min_stock_level": min,
		"max_stock_level": max,
		"unit_of_measure": "UND",
		"category":        "Bebidas",
		"supplier_id":     supplierID,
	}
}

func createProduct(t *testing.T, app *fiber.App, sku string, supplierID int64, current, min, max int) dto.ProductResponse {
	t.Helper()
	var out dto.ProductResponse
	resp := do(t, app, http.MethodPost, "/api/products", productBody(sku, supplierID, current, min, max), &out)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(t)
	var body map[string]string
	resp := do(t, app, http.MethodGet, "/health", nil, &body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID), "cada respuesta lleva request id")
}

func TestProducts_CreateAndGet(t *testing.T) {
	app := buildTestApp(t)
	supplier := createSupplier(t, app, "ventas@acme.co")

	created := createProduct(t, app, "CAF-001", supplier.ID, 3, 5, 50)
	assert.Equal(t, "ACTIVE", created.Status)
	assert.True(t, created.LowStock)
	assert.False(t, created.OverStock)
	assert.Equal(t, "12.5", created.UnitPrice.String())

	var got dto.ProductResponse
	resp := do(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), nil, &got)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "CAF-001", got.SKU)

	resp = do(t, app, http.MethodGet, "/api/products/sku/CAF-001", nil, &got)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, created.ID, got.ID)
}

func TestProducts_ValidationErrorListsFields(t *testing.T) {
	app := buildTestApp(t)
	supplier := createSupplier(t, app, "ventas@acme.co")

	body := productBody("CAF-001", supplier.ID, 1, 0, 10)
	body["product_name"] = "A"
	delete(body, "unit_price")

	var errBody dto.ErrorResponse
	resp := do(t, app, http.MethodPost, "/api/products", body, &errBody)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errBody.Code)

	fields := map[string]bool{}
	for _, f := range errBody.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["product_name"])
	assert.True(t, fields["unit_price"])
}

func TestProducts_DuplicateSKUIsConflict(t *testing.T) {
	app := buildTestApp(t)
	supplier := createSupplier(t, app, "ventas@acme.co")
	createProduct(t, app, "CAF-001", supplier.ID, 1, 0, 10)

	var errBody dto.ErrorResponse
	resp := do(t, app, http.MethodPost, "/api/products", productBody("CAF-001", supplier.ID, 1, 0, 10), &errBody)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", errBody.Code)
}

func TestProducts_UnknownSupplierIsNotFound(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodPost, "/api/products", productBody("CAF-001", 999, 1, 0, 10), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProducts_StockFilters(t *testing.T) {
	app := buildTestApp(t)
	supplier := createSupplier(t, app, "ventas@acme.co")
	createProduct(t, app, "A", supplier.ID, 0, 2, 10)  // bajo
	createProduct(t, app, "B", supplier.ID, 5, 2, 10)  // normal
	createProduct(t, app, "C", supplier.ID, 10, 2, 10) // sobre el máximo

	var low, over dto.ProductListResponse
	do(t, app, http.MethodGet, "/api/products/low-stock", nil, &low)
	do(t, app, http.MethodGet, "/api/products/over-stock", nil, &over)

	require.Len(t, low.Items, 1)
	assert.Equal(t, "A", low.Items[0].SKU)
	require.Len(t, over.Items, 1)
	assert.Equal(t, "C", over.Items[0].SKU)

	var report dto.StockLevelReport
	resp := do(t, app, http.MethodGet, "/api/reports/stock-levels", nil, &report)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, report.LowStockCount)
	assert.Equal(t, 1, report.OverStockCount)
}

func TestProducts_ListFilters(t *testing.T) {
	app := buildTestApp(t)
	supplier := createSupplier(t, app, "ventas@acme.co")
	createProduct(t, app, "CAF-001", supplier.ID, 1, 0, 10)
	createProduct(t, app, "TE-001", supplier.ID, 1, 0, 10)

	var byName dto.ProductListResponse
	do(t, app, http.MethodGet, "/api/products?name=CAF", nil, &byName)
	require.Len(t, byName.Items, 1)
	assert.Equal(t, "CAF-001", byName.Items[0].SKU)

	var bySupplier dto.ProductListResponse
	do(t, app, http.MethodGet, fmt.Sprintf("/api/products?supplier_id=%d", supplier.ID), nil, &bySupplier)
	assert.Len(t, bySupplier.Items, 2)

	var paged dto.ProductListResponse
	do(t, app, http.MethodGet, "/api/products?limit=1&offset=1", nil, &paged)
	require.Len(t, paged.Items, 1)
	assert.Equal(t, "TE-001", paged.Items[0].SKU)
	require.NotNil(t, paged.Page)
	assert.Equal(t, 1, paged.Page.Limit)

	resp := do(t, app, http.MethodGet, "/api/products?supplier_id=abc", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp = do(t, app, http.MethodGet, "/api/products?status=ARCHIVED", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProducts_DeleteCascadesMovements(t *testing.T) {
	app := buildTestApp(t)
	supplier := createSupplier(t, app, "ventas@acme.co")
	product := createProduct(t, app, "CAF-001", supplier.ID, 1, 0, 10)

	resp := do(t, app, http.MethodPost, "/api/stock-movements", map[string]any{
		"product_id":       product.ID,
		"movement_type":    "STOCK_IN",
		"quantity":         4,
		"reference_number": "OC-1",
		"created_by":       "bodega",
	}, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, fmt.Sprintf("/api/products/%d", product.ID), nil, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var movements dto.StockMovementListResponse
	do(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d/movements", product.ID), nil, &movements)
	assert.Empty(t, movements.Items)

	resp = do(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStockMovements_RegisterAndGet(t *testing.T) {
	app := buildTestApp(t)
	supplier := createSupplier(t, app, "ventas@acme.co")
	product := createProduct(t, app, "CAF-001", supplier.ID, 1, 0, 10)

	var created dto.StockMovementResponse
	resp := do(t, app, http.MethodPost, "/api/stock-movements", map[string]any{
		"product_id":       product.ID,
		"movement_type":    "ADJUSTMENT_DECREASE",
		"quantity":         1,
		"reference_number": "AJ-7",
		"created_by":       "auditor",
	}, &created)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Nil(t, created.CurrentStock, "sin política de stock no se informa stock resultante")
	assert.False(t, created.MovementDate.IsZero())

	var got dto.StockMovementResponse
	resp = do(t, app, http.MethodGet, fmt.Sprintf("/api/stock-movements/%d", created.ID), nil, &got)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "AJ-7", got.ReferenceNumber)

	var stillOne dto.ProductResponse
	do(t, app, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), nil, &stillOne)
	assert.Equal(t, 1, stillOne.CurrentStock)
}

func TestStockMovements_Errors(t *testing.T) {
	app := buildTestApp(t)

	var errBody dto.ErrorResponse
	resp := do(t, app, http.MethodPost, "/api/stock-movements", map[string]any{
		"product_id":       42,
		"movement_type":    "STOCK_IN",
		"quantity":         0,
		"reference_number": "OC-1",
		"created_by":       "bodega",
	}, &errBody)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "quantity", errBody.Fields[0].Field)

	resp = do(t, app, http.MethodPost, "/api/stock-movements", map[string]any{
		"product_id":       42,
		"movement_type":    "STOCK_IN",
		"quantity":         1,
		"reference_number": "OC-1",
		"created_by":       "bodega",
	}, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/stock-movements/abc", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSuppliers_Lifecycle(t *testing.T) {
	app := buildTestApp(t)
	supplier := createSupplier(t, app, "Ventas@Acme.co")
	assert.Equal(t, "ventas@acme.co", supplier.Email)
	assert.Equal(t, "ACTIVE", supplier.Status)

	var byEmail dto.SupplierResponse
	resp := do(t, app, http.MethodGet, "/api/suppliers/by-email?email=ventas@acme.co", nil, &byEmail)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, supplier.ID, byEmail.ID)

	var updated dto.SupplierResponse
	resp = do(t, app, http.MethodPut, fmt.Sprintf("/api/suppliers/%d", supplier.ID), map[string]any{
		"name":   "Acme SAS",
		"email":  "ventas@acme.co",
		"status": "SUSPENDED",
	}, &updated)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "SUSPENDED", updated.Status)

	var byStatus dto.SupplierListResponse
	do(t, app, http.MethodGet, "/api/suppliers?status=SUSPENDED", nil, &byStatus)
	assert.Len(t, byStatus.Items, 1)

	product := createProduct(t, app, "CAF-001", supplier.ID, 1, 0, 10)
	var errBody dto.ErrorResponse
	resp = do(t, app, http.MethodDelete, fmt.Sprintf("/api/suppliers/%d", supplier.ID), nil, &errBody)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", errBody.Code)

	do(t, app, http.MethodDelete, fmt.Sprintf("/api/products/%d", product.ID), nil, nil)
	resp = do(t, app, http.MethodDelete, fmt.Sprintf("/api/suppliers/%d", supplier.ID), nil, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestSuppliers_DuplicateEmail(t *testing.T) {
	app := buildTestApp(t)
	createSupplier(t, app, "ventas@acme.co")

	var errBody dto.ErrorResponse
	resp := do(t, app, http.MethodPost, "/api/suppliers", map[string]any{
		"name":  "Otro",
		"email": "VENTAS@acme.co",
	}, &errBody)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", errBody.Code)
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	app := buildTestApp(t)
	var errBody dto.ErrorResponse
	resp := do(t, app, http.MethodGet, "/api/nada", nil, &errBody)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errBody.Code)
}

func TestInvalidJSONBody(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/suppliers", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
