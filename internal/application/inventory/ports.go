package inventory

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// StockPolicy traduce un movimiento al cambio que debe aplicarse a Product.CurrentStock.
// La convención de signo por tipo la define quien la implementa; el núcleo no la fija.
type StockPolicy interface {
	Delta(movementType entity.MovementType, quantity int) (int, error)
}

// StockPolicyFunc adapta una función a StockPolicy.
type StockPolicyFunc func(movementType entity.MovementType, quantity int) (int, error)

func (f StockPolicyFunc) Delta(movementType entity.MovementType, quantity int) (int, error) {
	return f(movementType, quantity)
}
