package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/usecase"
	"github.com/jhoicas/inventory-tracker/internal/application/validation"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/memory"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

type fixture struct {
	store     *memory.Store
	products  *usecase.ProductUseCase
	suppliers *usecase.SupplierUseCase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := memory.NewStore()
	v := validation.New()
	return fixture{
		store:     store,
		products:  usecase.NewProductUseCase(store.Products(), store.Suppliers(), v, nil),
		suppliers: usecase.NewSupplierUseCase(store.Suppliers(), v, nil),
	}
}

func (f fixture) supplier(t *testing.T, email string) int64 {
	t.Helper()
	out, err := f.suppliers.Create(context.Background(), dto.SupplierRequest{Name: "Proveedor " + email, Email: email})
	require.NoError(t, err)
	return out.ID
}

func productRequest(sku string, supplierID int64, current, min, max int) dto.ProductRequest {
	price := decimal.RequireFromString("9.99")
	return dto.ProductRequest{
		SKU:           sku,
		ProductName:   "Producto " + sku,
		UnitPrice:     &price,
		CurrentStock:  intPtr(current),
		MinStockLevel: intPtr(min),
		MaxStockLevel: intPtr(max),
		UnitOfMeasure: "UND",
		Category:      "General",
		SupplierID:    int64Ptr(supplierID),
	}
}

func TestProductUseCase_Create_EstadoPorDefecto(t *testing.T) {
	f := newFixture(t)
	sup := f.supplier(t, "a@acme.co")

	out, err := f.products.Create(context.Background(), productRequest("SKU-1", sup, 10, 2, 50))
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Equal(t, "ACTIVE", out.Status)
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, out.CreatedAt, out.UpdatedAt)
	assert.False(t, out.LowStock)
	assert.False(t, out.OverStock)
}

func TestProductUseCase_Create_EstadoExplicitoSeRespeta(t *testing.T) {
	f := newFixture(t)
	sup := f.supplier(t, "a@acme.co")

	in := productRequest("SKU-1", sup, 10, 2, 50)
	in.Status = "INACTIVE"
	out, err := f.products.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "INACTIVE", out.Status)
}

func TestProductUseCase_Create_SKUDuplicado(t *testing.T) {
	f := newFixture(t)
	sup := f.supplier(t, "a@acme.co")
	ctx := context.Background()

	_, err := f.products.Create(ctx, productRequest("SKU-1", sup, 10, 2, 50))
	require.NoError(t, err)

	_, err = f.products.Create(ctx, productRequest("SKU-1", sup, 3, 1, 5))
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductUseCase_Create_ValidacionAntesDePersistir(t *testing.T) {
	f := newFixture(t)
	sup := f.supplier(t, "a@acme.co")

	in := productRequest("SKU-1", sup, 10, 2, 50)
	in.ProductName = "x"
	_, err := f.products.Create(context.Background(), in)
	require.Error(t, err)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "product_name", ve.Fields[0].Field)

	list, err := f.products.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestProductUseCase_Create_ProveedorInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.products.Create(context.Background(), productRequest("SKU-1", 42, 10, 2, 50))
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestProductUseCase_Create_PrecioRedondeadoACero(t *testing.T) {
	f := newFixture(t)
	sup := f.supplier(t, "a@acme.co")
	in := productRequest("SKU-1", sup, 1, 0, 5)
	tiny := decimal.RequireFromString("0.001")
	in.UnitPrice = &tiny

	_, err := f.products.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_Create_NormalizaTexto(t *testing.T) {
	f := newFixture(t)
	sup := f.supplier(t, "a@acme.co")
	in := productRequest("  SKU-1  ", sup, 1, 0, 5)
	// "é" descompuesta (e + acento combinante)
	in.ProductName = "Cafe\u0301 molido"

	out, err := f.products.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "SKU-1", out.SKU)
	assert.Equal(t, "Caf\u00e9 molido", out.ProductName)

	found, err := f.products.SearchByName(context.Background(), "Caf\u00e9")
	require.NoError(t, err)
	assert.Len(t, found.Items, 1)
}

func TestProductUseCase_Create_LongitudSobreTextoNormalizado(t *testing.T) {
	f := newFixture(t)
	sup := f.supplier(t, "a@acme.co")
	ctx := context.Background()

	// todos quedan en un solo carácter tras recortar y componer
	for _, name := range []string{"a ", "  a  ", "e\u0301"} {
		in := productRequest("SKU-1", sup, 1, 0, 5)
		in.ProductName = name
		_, err := f.products.Create(ctx, in)
		ve, ok := domain.AsValidationError(err)
		require.True(t, ok, "nombre %q", name)
		assert.Equal(t, "product_name", ve.Fields[0].Field)
	}

	list, err := f.store.Products().List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := f.products.Create(ctx, productRequest("SKU-1", sup, 1, 0, 5))
	require.NoError(t, err)
	in := productRequest("SKU-1", sup, 1, 0, 5)
	in.ProductName = "e\u0301 "
	_, err = f.products.Update(ctx, created.ID, in)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "product_name", ve.Fields[0].Field)
}

func TestProductUseCase_Create_PrecioQueDesbordaAlRedondear(t *testing.T) {
	f := newFixture(t)
	sup := f.supplier(t, "a@acme.co")
	in := productRequest("SKU-1", sup, 1, 0, 5)
	huge := decimal.RequireFromString("99999999.995")
	in.UnitPrice = &huge

	_, err := f.products.Create(context.Background(), in)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "unit_price", ve.Fields[0].Field)
	assert.Equal(t, "lt", ve.Fields[0].Rule)

	top := decimal.RequireFromString("99999999.994")
	in.UnitPrice = &top
	out, err := f.products.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "99999999.99", out.UnitPrice.StringFixed(2))
}

func TestProductUseCase_GetByID_NoEncontrado(t *testing.T) {
	f := newFixture(t)
	_, err := f.products.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = f.products.GetBySKU(context.Background(), "NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_Update(t *testing.T) {
	f := newFixture(t)
	sup := f.supplier(t, "a@acme.co")
	ctx := context.Background()

	created, err := f.products.Create(ctx, productRequest("SKU-1", sup, 10, 2, 50))
	require.NoError(t, err)
	_, err = f.products.Create(ctx, productRequest("SKU-2", sup, 10, 2, 50))
	require.NoError(t, err)

	in := productRequest("SKU-1", sup, 1, 2, 50)
	in.ProductName = "Renombrado"
	updated, err := f.products.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Renombrado", updated.ProductName)
	assert.True(t, updated.LowStock)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	assert.Equal(t, "ACTIVE", updated.Status, "status vacío conserva el valor previo")

	_, err = f.products.Update(ctx, created.ID, productRequest("SKU-2", sup, 1, 2, 50))
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)

	_, err = f.products.Update(ctx, 999, productRequest("SKU-9", sup, 1, 2, 50))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUseCase_Delete(t *testing.T) {
	f := newFixture(t)
	sup := f.supplier(t, "a@acme.co")
	ctx := context.Background()

	created, err := f.products.Create(ctx, productRequest("SKU-1", sup, 10, 2, 50))
	require.NoError(t, err)
	require.NoError(t, f.products.Delete(ctx, created.ID))
	assert.ErrorIs(t, f.products.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestProductUseCase_Consultas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	supA := f.supplier(t, "a@acme.co")
	supB := f.supplier(t, "b@acme.co")

	stocks := []int{0, 1, 5, 10}
	mins := []int{0, 2, 5, 20}
	for i := range stocks {
		in := productRequest("LOW-"+string(rune('A'+i)), supA, stocks[i], mins[i], 100)
		_, err := f.products.Create(ctx, in)
		require.NoError(t, err)
	}
	over := productRequest("OVER-1", supB, 100, 5, 100)
	over.Category = "Bebidas"
	over.ProductName = "Agua mineral"
	over.Status = "DISCONTINUED"
	_, err := f.products.Create(ctx, over)
	require.NoError(t, err)

	low, err := f.products.LowStock(ctx)
	require.NoError(t, err)
	assert.Len(t, low.Items, 4)
	for _, p := range low.Items {
		assert.True(t, strings.HasPrefix(p.SKU, "LOW-"))
		assert.True(t, p.LowStock)
	}

	overList, err := f.products.OverStock(ctx)
	require.NoError(t, err)
	require.Len(t, overList.Items, 1)
	assert.Equal(t, "OVER-1", overList.Items[0].SKU)

	byCat, err := f.products.ByCategory(ctx, "Bebidas")
	require.NoError(t, err)
	assert.Len(t, byCat.Items, 1)

	bySup, err := f.products.BySupplier(ctx, supA)
	require.NoError(t, err)
	assert.Len(t, bySup.Items, 4)

	byStatus, err := f.products.ByStatus(ctx, "DISCONTINUED")
	require.NoError(t, err)
	assert.Len(t, byStatus.Items, 1)

	_, err = f.products.ByStatus(ctx, "GONE")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	byName, err := f.products.SearchByName(ctx, "mineral")
	require.NoError(t, err)
	assert.Len(t, byName.Items, 1)

	none, err := f.products.SearchByName(ctx, "Mineral")
	require.NoError(t, err)
	assert.Empty(t, none.Items)
}
