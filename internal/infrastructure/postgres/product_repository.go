package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, product_name, COALESCE(description, ''), unit_price, current_stock,
	min_stock_level, max_stock_level, unit_of_measure, category, COALESCE(barcode, ''),
	COALESCE(location, ''), status, supplier_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var status string
	err := row.Scan(
		&p.ID, &p.SKU, &p.ProductName, &p.Description, &p.UnitPrice, &p.CurrentStock,
		&p.MinStockLevel, &p.MaxStockLevel, &p.UnitOfMeasure, &p.Category, &p.Barcode,
		&p.Location, &status, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = entity.ProductStatus(status)
	return &p, nil
}

// mapProductWriteErr traduce violaciones de restricciones a errores de dominio.
func mapProductWriteErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicateSKU
	case isForeignKeyViolation(err):
		return domain.ErrSupplierNotFound
	case isCheckViolation(err):
		return domain.ErrInvalidInput
	}
	return storageErr(op, err)
}

// Create persiste un nuevo producto y asigna su ID.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (sku, product_name, description, unit_price, current_stock, min_stock_level,
			max_stock_level, unit_of_measure, category, barcode, location, status, supplier_id, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), $12, $13, $14, $15)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.SKU, p.ProductName, p.Description, p.UnitPrice, p.CurrentStock, p.MinStockLevel,
		p.MaxStockLevel, p.UnitOfMeasure, p.Category, p.Barcode, p.Location, string(p.Status),
		p.SupplierID, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return mapProductWriteErr("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get product", err)
	}
	return p, nil
}

// GetBySKU obtiene un producto por SKU; (nil, nil) si no existe.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1`, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get product by sku", err)
	}
	return p, nil
}

// ExistsBySKU indica si ya hay un producto con ese SKU.
func (r *ProductRepo) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)`, sku).Scan(&exists); err != nil {
		return false, storageErr("exists product sku", err)
	}
	return exists, nil
}

// Update reemplaza los datos de un producto. created_at no se toca.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET sku = $2, product_name = $3, description = NULLIF($4, ''), unit_price = $5,
			current_stock = $6, min_stock_level = $7, max_stock_level = $8, unit_of_measure = $9,
			category = $10, barcode = NULLIF($11, ''), location = NULLIF($12, ''), status = $13,
			supplier_id = $14, updated_at = $15
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.SKU, p.ProductName, p.Description, p.UnitPrice, p.CurrentStock, p.MinStockLevel,
		p.MaxStockLevel, p.UnitOfMeasure, p.Category, p.Barcode, p.Location, string(p.Status),
		p.SupplierID, p.UpdatedAt,
	)
	if err != nil {
		return mapProductWriteErr("update product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete elimina un producto; sus movimientos caen por ON DELETE CASCADE.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// List lista productos por ID ascendente con paginación.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return r.query(ctx, "list products",
		`SELECT `+productColumns+` FROM products ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
}

// Find ejecuta una especificación de búsqueda como predicado SQL.
func (r *ProductRepo) Find(ctx context.Context, q repository.ProductQuery) ([]*entity.Product, error) {
	where, args, err := productWhere(q)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, "find products "+q.Kind.String(),
		`SELECT `+productColumns+` FROM products WHERE `+where+` ORDER BY id`, args...)
}

// AdjustStock aplica delta en una sola sentencia condicionada a que el resultado no sea negativo,
// de modo que dos escritores concurrentes no pisan el valor del otro.
func (r *ProductRepo) AdjustStock(ctx context.Context, id int64, delta int) (*entity.Product, error) {
	query := `
		UPDATE products SET current_stock = current_stock + $2, updated_at = $3
		WHERE id = $1 AND current_stock + $2 >= 0
		RETURNING ` + productColumns
	p, err := scanProduct(r.q.QueryRow(ctx, query, id, delta, time.Now()))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, storageErr("adjust stock", err)
	}
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, storageErr("adjust stock", err)
	}
	if !exists {
		return nil, domain.ErrProductNotFound
	}
	return nil, domain.ErrInsufficientStock
}

func (r *ProductRepo) query(ctx context.Context, op, sql string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, storageErr("scan product", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return list, nil
}
