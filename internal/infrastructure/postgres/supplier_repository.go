package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, name, email, COALESCE(phone, ''), COALESCE(address, ''),
	COALESCE(contact_person, ''), status, created_at, updated_at`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	var status string
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.ContactPerson,
		&status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Status = entity.SupplierStatus(status)
	return &s, nil
}

func mapSupplierWriteErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicateEmail
	case isCheckViolation(err):
		return domain.ErrInvalidInput
	}
	return storageErr(op, err)
}

// Create persiste un proveedor y asigna su ID.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (name, email, phone, address, contact_person, status, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, s.Name, s.Email, s.Phone, s.Address, s.ContactPerson,
		string(s.Status), s.CreatedAt, s.UpdatedAt).Scan(&s.ID)
	if err != nil {
		return mapSupplierWriteErr("insert supplier", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID; (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	return r.getOne(ctx, "get supplier", `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
}

// GetByEmail obtiene un proveedor por email; (nil, nil) si no existe.
func (r *SupplierRepo) GetByEmail(ctx context.Context, email string) (*entity.Supplier, error) {
	return r.getOne(ctx, "get supplier by email", `SELECT `+supplierColumns+` FROM suppliers WHERE email = $1`, email)
}

func (r *SupplierRepo) getOne(ctx context.Context, op, sql string, arg any) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, sql, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(op, err)
	}
	return s, nil
}

// ExistsByEmail indica si ya hay un proveedor con ese email.
func (r *SupplierRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM suppliers WHERE email = $1)`, email).Scan(&exists); err != nil {
		return false, storageErr("exists supplier email", err)
	}
	return exists, nil
}

// Update reemplaza los datos de un proveedor.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, email = $3, phone = NULLIF($4, ''), address = NULLIF($5, ''),
			contact_person = NULLIF($6, ''), status = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, s.ID, s.Name, s.Email, s.Phone, s.Address, s.ContactPerson,
		string(s.Status), s.UpdatedAt)
	if err != nil {
		return mapSupplierWriteErr("update supplier", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

// Delete elimina un proveedor. Con productos asociados la FK (RESTRICT) lo impide.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSupplierInUse
		}
		return storageErr("delete supplier", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

// List lista proveedores por ID con paginación.
func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	return r.query(ctx, "list suppliers",
		`SELECT `+supplierColumns+` FROM suppliers ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
}

// Find ejecuta una especificación de búsqueda de proveedores.
func (r *SupplierRepo) Find(ctx context.Context, q repository.SupplierQuery) ([]*entity.Supplier, error) {
	where, args, err := supplierWhere(q)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, "find suppliers",
		`SELECT `+supplierColumns+` FROM suppliers WHERE `+where+` ORDER BY id`, args...)
}

func (r *SupplierRepo) query(ctx context.Context, op, sql string, args ...any) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, storageErr("scan supplier", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return list, nil
}
