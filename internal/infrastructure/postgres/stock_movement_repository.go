package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, product_id, movement_type, quantity, reference_number,
	COALESCE(notes, ''), movement_date, COALESCE(created_by, ''), created_at`

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador de persistencia para movimientos.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var movementType string
	err := row.Scan(&m.ID, &m.ProductID, &movementType, &m.Quantity, &m.ReferenceNumber,
		&m.Notes, &m.MovementDate, &m.CreatedBy, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.MovementType = entity.MovementType(movementType)
	return &m, nil
}

// Create inserta un movimiento. No existe operación de actualización: el libro es solo de inserción.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, movement_type, quantity, reference_number, notes,
			movement_date, created_by, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NULLIF($7, ''), $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, m.ProductID, string(m.MovementType), m.Quantity, m.ReferenceNumber,
		m.Notes, m.MovementDate, m.CreatedBy, m.CreatedAt).Scan(&m.ID)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return domain.ErrProductNotFound
		case isCheckViolation(err):
			return domain.ErrInvalidInput
		}
		return storageErr("insert stock movement", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID; (nil, nil) si no existe.
func (r *StockMovementRepo) GetByID(ctx context.Context, id int64) (*entity.StockMovement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, `SELECT `+movementColumns+` FROM stock_movements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get stock movement", err)
	}
	return m, nil
}

// ListByProduct lista los movimientos de un producto del más reciente al más antiguo.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements
		WHERE product_id = $1
		ORDER BY movement_date DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, storageErr("list stock movements", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, storageErr("scan stock movement", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list stock movements", err)
	}
	return list, nil
}
