package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/validation"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// StockMovementUseCase registra movimientos en el libro (solo inserción) y los consulta.
// Con una StockPolicy configurada, el stock del producto se ajusta en la misma transacción.
type StockMovementUseCase struct {
	txRunner  TxRunner
	movements repository.StockMovementRepository
	policy    StockPolicy
	validate  *validation.Validator
	log       *logger.Logger
	now       func() time.Time
}

// NewStockMovementUseCase construye el caso de uso. policy puede ser nil: en ese caso solo se
// registra el movimiento y current_stock no cambia.
func NewStockMovementUseCase(
	txRunner TxRunner,
	movements repository.StockMovementRepository,
	policy StockPolicy,
	v *validation.Validator,
	log *logger.Logger,
) *StockMovementUseCase {
	return &StockMovementUseCase{
		txRunner:  txRunner,
		movements: movements,
		policy:    policy,
		validate:  v,
		log:       logger.OrNop(log).Named("stock_movements"),
		now:       time.Now,
	}
}

// Register valida la entrada y, dentro de una transacción, comprueba el producto,
// inserta el movimiento y aplica la política de stock si existe.
func (uc *StockMovementUseCase) Register(ctx context.Context, in dto.StockMovementRequest) (*dto.StockMovementResponse, error) {
	in = in.Normalized()
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	movement := &entity.StockMovement{
		ProductID:       *in.ProductID,
		MovementType:    entity.MovementType(in.MovementType),
		Quantity:        *in.Quantity,
		ReferenceNumber: in.ReferenceNumber,
		Notes:           in.Notes,
		CreatedBy:       in.CreatedBy,
	}
	if in.MovementDate != nil {
		movement.MovementDate = *in.MovementDate
	}

	var delta int
	if uc.policy != nil {
		d, err := uc.policy.Delta(movement.MovementType, movement.Quantity)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		delta = d
	}

	var stockAfter *int
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) error {
		product, err := productRepo.GetByID(ctx, movement.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		movement.BeforeCreate(uc.now())
		if err := movementRepo.Create(ctx, movement); err != nil {
			return err
		}
		if uc.policy == nil || delta == 0 {
			return nil
		}
		updated, err := productRepo.AdjustStock(ctx, product.ID, delta)
		if err != nil {
			return err
		}
		stock := updated.CurrentStock
		stockAfter = &stock
		if updated.IsLowStock() {
			uc.log.Warn().Int64("product_id", updated.ID).Str("sku", updated.SKU).
				Int("current_stock", updated.CurrentStock).Int("min_stock_level", updated.MinStockLevel).
				Msg("producto en stock bajo")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrStorage) {
			uc.log.Error().Err(err).Int64("product_id", movement.ProductID).Msg("registrar movimiento")
		}
		return nil, err
	}

	uc.log.Info().
		Int64("movement_id", movement.ID).
		Int64("product_id", movement.ProductID).
		Str("type", string(movement.MovementType)).
		Int("quantity", movement.Quantity).
		Msg("movimiento registrado")

	out := dto.FromStockMovement(movement)
	out.CurrentStock = stockAfter
	return out, nil
}

// GetByID obtiene un movimiento o ErrStockMovementNotFound.
func (uc *StockMovementUseCase) GetByID(ctx context.Context, id int64) (*dto.StockMovementResponse, error) {
	m, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrStockMovementNotFound
	}
	return dto.FromStockMovement(m), nil
}

// ListByProduct movimientos de un producto, más recientes primero. Un producto
// inexistente (o ya eliminado) devuelve una lista vacía.
func (uc *StockMovementUseCase) ListByProduct(ctx context.Context, productID int64, page dto.PageRequest) (*dto.StockMovementListResponse, error) {
	page.DefaultPage()
	list, err := uc.movements.ListByProduct(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.FromStockMovement(m))
	}
	return &dto.StockMovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
