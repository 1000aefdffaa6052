package report

import (
	"context"
	"fmt"
	"time"

	"github.com/tallertex/telas-api/internal/domain/entity"
	"github.com/tallertex/telas-api/internal/domain/ledger"
	"github.com/tallertex/telas-api/internal/domain/repository"
)

// MovementPDFGenerator genera la representación imprimible del historial.
type MovementPDFGenerator interface {
	GenerateMovementReport(ctx context.Context, data *ReportData) ([]byte, error)
}

// ReportData todo lo que el generador necesita para armar el documento.
type ReportData struct {
	GeneratedAt time.Time
	Filter      entity.MovementFilter
	Movements   []entity.Movement
	Balances    []ledger.FabricBalance
}

// ReportUseCase arma el reporte PDF del historial de movimientos para el
// panel de administración: tabla de movimientos filtrados más el resumen de
// saldos por tela.
type ReportUseCase struct {
	movementRepo repository.MovementRepository
	generator    MovementPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(movementRepo repository.MovementRepository, generator MovementPDFGenerator) *ReportUseCase {
	return &ReportUseCase{movementRepo: movementRepo, generator: generator}
}

// MovementReport recupera los movimientos del rango, calcula los saldos y
// genera el PDF. Un rango sin movimientos produce un documento vacío válido.
//
// Retorna (pdfBytes, filename, nil) si todo sale bien.
func (uc *ReportUseCase) MovementReport(ctx context.Context, filter entity.MovementFilter) ([]byte, string, error) {
	movements, err := uc.movementRepo.List(ctx, filter)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar movimientos: %w", err)
	}

	now := time.Now().UTC()
	data := &ReportData{
		GeneratedAt: now,
		Filter:      filter,
		Movements:   movements,
		Balances:    ledger.SummarizeByFabric(movements),
	}
	pdf, err := uc.generator.GenerateMovementReport(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	filename := "movimentacoes-" + now.Format("20060102-150405") + ".pdf"
	return pdf, filename, nil
}
