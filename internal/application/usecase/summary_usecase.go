package usecase

import (
	"context"
	"time"

	"github.com/tallertex/telas-api/internal/application/dto"
	"github.com/tallertex/telas-api/internal/domain/entity"
	"github.com/tallertex/telas-api/internal/domain/ledger"
	"github.com/tallertex/telas-api/internal/domain/repository"
)

// SummaryUseCase vistas derivadas del historial: totales de hoy, saldo por
// tela y saldo de una tela puntual. El repositorio filtra; ledger agrega.
type SummaryUseCase struct {
	repo repository.MovementRepository
	now  func() time.Time
}

// NewSummaryUseCase construye el caso de uso. now se inyecta para poder fijar
// el reloj en tests; nil usa time.Now.
func NewSummaryUseCase(repo repository.MovementRepository, now func() time.Time) *SummaryUseCase {
	if now == nil {
		now = time.Now
	}
	return &SummaryUseCase{repo: repo, now: now}
}

// Today suma entradas y salidas del día calendario UTC actual.
func (uc *SummaryUseCase) Today(ctx context.Context) (*dto.DailySummaryResponse, error) {
	now := uc.now().UTC()
	start := now.Truncate(24 * time.Hour)
	end := start.Add(24*time.Hour - time.Millisecond)

	records, err := uc.repo.List(ctx, entity.MovementFilter{DateFrom: &start, DateTo: &end})
	if err != nil {
		return nil, err
	}
	s := ledger.SummarizeToday(records, now)
	return &dto.DailySummaryResponse{Entries: s.Entries, Exits: s.Exits}, nil
}

// ByFabric devuelve el saldo por tela sobre el conjunto filtrado, ordenado de
// mayor a menor cantidad.
func (uc *SummaryUseCase) ByFabric(ctx context.Context, filter entity.MovementFilter) (*dto.FabricSummaryResponse, error) {
	records, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	balances := ledger.SummarizeByFabric(records)
	items := make([]dto.FabricBalanceResponse, 0, len(balances))
	for _, b := range balances {
		items = append(items, dto.FabricBalanceResponse{Fabric: b.Fabric, Quantity: b.Quantity})
	}
	return &dto.FabricSummaryResponse{Items: items}, nil
}

// FabricStock devuelve el saldo actual de una tela. Una tela sin movimientos
// responde 0, nunca un error: "sin stock registrado" es un estado válido.
func (uc *SummaryUseCase) FabricStock(ctx context.Context, fabric string) (*dto.FabricBalanceResponse, error) {
	records, err := uc.repo.List(ctx, entity.MovementFilter{Fabric: fabric})
	if err != nil {
		return nil, err
	}
	return &dto.FabricBalanceResponse{
		Fabric:   fabric,
		Quantity: ledger.BalanceForFabric(records, fabric),
	}, nil
}
