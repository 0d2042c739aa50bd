package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// StockLevelReportUseCase arma el resumen de stock bajo / sobre stock.
// Ambos conjuntos se filtran en la base de datos.
type StockLevelReportUseCase struct {
	products repository.ProductRepository
	now      func() time.Time
}

// NewStockLevelReportUseCase construye el caso de uso.
func NewStockLevelReportUseCase(products repository.ProductRepository) *StockLevelReportUseCase {
	return &StockLevelReportUseCase{products: products, now: time.Now}
}

// Generate ejecuta las consultas de stock bajo y sobre stock.
func (uc *StockLevelReportUseCase) Generate(ctx context.Context) (*dto.StockLevelReport, error) {
	low, err := uc.products.Find(ctx, repository.LowStockProducts())
	if err != nil {
		return nil, err
	}
	over, err := uc.products.Find(ctx, repository.OverStockProducts())
	if err != nil {
		return nil, err
	}
	return &dto.StockLevelReport{
		GeneratedAt:    uc.now(),
		LowStockCount:  len(low),
		OverStockCount: len(over),
		LowStock:       dto.FromProducts(low),
		OverStock:      dto.FromProducts(over),
	}, nil
}
