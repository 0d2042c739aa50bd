package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// ReportGenerator produce el reporte de niveles de stock.
type ReportGenerator interface {
	Generate(ctx context.Context) (*dto.StockLevelReport, error)
}

// Scheduler ejecuta tareas periódicas.
type Scheduler struct {
	cron    *cron.Cron
	reports ReportGenerator
	spec    string
	timeout time.Duration
	log     *logger.Logger
}

// New crea el scheduler. spec es una expresión cron estándar de 5 campos; vacía desactiva el reporte.
func New(spec string, reports ReportGenerator, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		reports: reports,
		spec:    spec,
		timeout: 2 * time.Minute,
		log:     logger.OrNop(log).Named("scheduler"),
	}
}

// Start registra el reporte de stock bajo y arranca el cron. Una expresión inválida es error.
func (s *Scheduler) Start() error {
	if s.spec == "" {
		s.log.Info().Msg("reporte de stock bajo desactivado")
		return nil
	}
	if _, err := s.cron.AddFunc(s.spec, s.runLowStockReport); err != nil {
		return fmt.Errorf("programar reporte de stock (%q): %w", s.spec, err)
	}
	s.cron.Start()
	s.log.Info().Str("cron", s.spec).Msg("scheduler iniciado")
	return nil
}

// Stop detiene el cron y espera a que termine la tarea en curso o a que ctx expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler detenido sin esperar la tarea en curso")
	}
}

func (s *Scheduler) runLowStockReport() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	_, _ = s.RunLowStockReport(ctx)
}

// RunLowStockReport genera el reporte y emite un warn por producto con stock bajo.
func (s *Scheduler) RunLowStockReport(ctx context.Context) (*dto.StockLevelReport, error) {
	report, err := s.reports.Generate(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("generar reporte de stock")
		return nil, err
	}
	for _, p := range report.LowStock {
		s.log.Warn().
			Int64("product_id", p.ID).
			Str("sku", p.SKU).
			Int("current_stock", p.CurrentStock).
			Int("min_stock_level", p.MinStockLevel).
			Msg("stock bajo")
	}
	s.log.Info().
		Int("low_stock", report.LowStockCount).
		Int("over_stock", report.OverStockCount).
		Msg("reporte de stock generado")
	return report, nil
}
