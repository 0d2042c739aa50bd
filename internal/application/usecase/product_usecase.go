package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/validation"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// ProductUseCase casos de uso de productos. El stock solo cambia por alta/reemplazo o vía movimientos.
type ProductUseCase struct {
	repo      repository.ProductRepository
	suppliers repository.SupplierRepository
	validate  *validation.Validator
	log       *logger.Logger
	now       func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, suppliers repository.SupplierRepository, v *validation.Validator, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		repo:      repo,
		suppliers: suppliers,
		validate:  v,
		log:       logger.OrNop(log).Named("products"),
		now:       time.Now,
	}
}

// Create valida, comprueba proveedor y SKU y persiste el producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	in = in.Normalized()
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	product := &entity.Product{}
	if err := applyProductRequest(product, in); err != nil {
		return nil, err
	}
	if err := uc.ensureSupplier(ctx, product.SupplierID); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsBySKU(ctx, product.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateSKU
	}
	product.BeforeCreate(uc.now())
	if err := uc.repo.Create(ctx, product); err != nil {
		uc.logStorage(err, "crear producto", product.SKU)
		return nil, err
	}
	uc.log.Info().Int64("product_id", product.ID).Str("sku", product.SKU).Msg("producto creado")
	return dto.FromProduct(product), nil
}

// GetByID obtiene un producto por ID o ErrProductNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromProduct(product), nil
}

// GetBySKU obtiene un producto por SKU o ErrProductNotFound.
func (uc *ProductUseCase) GetBySKU(ctx context.Context, sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(ctx, dto.CleanText(sku))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return dto.FromProduct(product), nil
}

// Update reemplaza los datos de un producto existente. Si status viene vacío se conserva el actual.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	in = in.Normalized()
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	product, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	previousSKU := product.SKU
	if err := applyProductRequest(product, in); err != nil {
		return nil, err
	}
	if product.SKU != previousSKU {
		exists, err := uc.repo.ExistsBySKU(ctx, product.SKU)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateSKU
		}
	}
	if err := uc.ensureSupplier(ctx, product.SupplierID); err != nil {
		return nil, err
	}
	product.BeforeUpdate(uc.now())
	if err := uc.repo.Update(ctx, product); err != nil {
		uc.logStorage(err, "actualizar producto", product.SKU)
		return nil, err
	}
	uc.log.Info().Int64("product_id", product.ID).Msg("producto actualizado")
	return dto.FromProduct(product), nil
}

// Delete elimina un producto y, en cascada, sus movimientos.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logStorage(err, "eliminar producto", "")
		return err
	}
	uc.log.Info().Int64("product_id", id).Msg("producto eliminado")
	return nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Items: dto.FromProducts(list),
		Page:  &dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Find ejecuta una especificación de búsqueda sin paginar.
func (uc *ProductUseCase) Find(ctx context.Context, q repository.ProductQuery) (*dto.ProductListResponse, error) {
	list, err := uc.repo.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Items: dto.FromProducts(list)}, nil
}

// SearchByName productos cuyo nombre contiene name.
func (uc *ProductUseCase) SearchByName(ctx context.Context, name string) (*dto.ProductListResponse, error) {
	return uc.Find(ctx, repository.ProductsNameContaining(dto.CleanText(name)))
}

// ByCategory productos de una categoría exacta.
func (uc *ProductUseCase) ByCategory(ctx context.Context, category string) (*dto.ProductListResponse, error) {
	return uc.Find(ctx, repository.ProductsInCategory(dto.CleanText(category)))
}

// BySupplier productos de un proveedor.
func (uc *ProductUseCase) BySupplier(ctx context.Context, supplierID int64) (*dto.ProductListResponse, error) {
	return uc.Find(ctx, repository.ProductsFromSupplier(supplierID))
}

// ByStatus productos con el estado indicado.
func (uc *ProductUseCase) ByStatus(ctx context.Context, status string) (*dto.ProductListResponse, error) {
	st, ok := entity.ParseProductStatus(status)
	if !ok {
		return nil, domain.NewValidationError("status", "oneof", "debe ser uno de: ACTIVE INACTIVE DISCONTINUED")
	}
	return uc.Find(ctx, repository.ProductsWithStatus(st))
}

// LowStock productos con stock actual <= mínimo.
func (uc *ProductUseCase) LowStock(ctx context.Context) (*dto.ProductListResponse, error) {
	return uc.Find(ctx, repository.LowStockProducts())
}

// OverStock productos con stock actual >= máximo.
func (uc *ProductUseCase) OverStock(ctx context.Context) (*dto.ProductListResponse, error) {
	return uc.Find(ctx, repository.OverStockProducts())
}

func (uc *ProductUseCase) load(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (uc *ProductUseCase) ensureSupplier(ctx context.Context, supplierID int64) error {
	s, err := uc.suppliers.GetByID(ctx, supplierID)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrSupplierNotFound
	}
	return nil
}

func (uc *ProductUseCase) logStorage(err error, op, sku string) {
	if errors.Is(err, domain.ErrStorage) {
		uc.log.Error().Err(err).Str("op", op).Str("sku", sku).Msg("fallo de persistencia")
	}
}

// maxUnitPrice primer valor que no cabe en NUMERIC(10,2).
var maxUnitPrice = decimal.NewFromInt(100000000)

// applyProductRequest copia un ProductRequest ya normalizado y validado sobre la entidad.
// El precio se redondea a 2 decimales (NUMERIC(10,2)) y se vuelve a acotar tras redondear.
func applyProductRequest(p *entity.Product, in dto.ProductRequest) error {
	p.SKU = in.SKU
	p.ProductName = in.ProductName
	p.Description = in.Description
	p.UnitPrice = in.UnitPrice.Round(2)
	p.CurrentStock = *in.CurrentStock
	p.MinStockLevel = *in.MinStockLevel
	p.MaxStockLevel = *in.MaxStockLevel
	p.UnitOfMeasure = in.UnitOfMeasure
	p.Category = in.Category
	p.Barcode = in.Barcode
	p.Location = in.Location
	p.SupplierID = *in.SupplierID
	if in.Status != "" {
		st, ok := entity.ParseProductStatus(in.Status)
		if !ok {
			return domain.NewValidationError("status", "oneof", "debe ser uno de: ACTIVE INACTIVE DISCONTINUED")
		}
		p.Status = st
	}
	if !p.UnitPrice.IsPositive() {
		return domain.NewValidationError("unit_price", "gt", "debe ser mayor que 0")
	}
	if p.UnitPrice.GreaterThanOrEqual(maxUnitPrice) {
		return domain.NewValidationError("unit_price", "lt", "debe ser menor que 100000000")
	}
	return nil
}
