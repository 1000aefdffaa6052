package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallertex/telas-api/internal/application/usecase"
	"github.com/tallertex/telas-api/internal/domain/entity"
)

// Reloj fijo para los tests: 15 de marzo de 2025, 14:30 UTC.
func fixedNow() time.Time {
	return time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Today
// ──────────────────────────────────────────────────────────────────────────────

// El caso de uso pide al repositorio la ventana exacta del día calendario UTC
// y suma sobre lo devuelto.
func TestToday_VentanaDelDia(t *testing.T) {
	repo := &fakeMovementRepo{listOut: []entity.Movement{
		{Type: entity.MovementTypeEntrada, Fabric: "Veludo", Quantity: 10, CreatedAt: fixedNow()},
		{Type: entity.MovementTypeSaida, Fabric: "Linho", Quantity: 3, CreatedAt: fixedNow()},
	}}
	uc := usecase.NewSummaryUseCase(repo, fixedNow)

	out, err := uc.Today(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, out.Entries)
	assert.Equal(t, 3, out.Exits)

	require.NotNil(t, repo.lastList.DateFrom)
	require.NotNil(t, repo.lastList.DateTo)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), *repo.lastList.DateFrom)
	assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 999000000, time.UTC), *repo.lastList.DateTo,
		"el límite superior es inclusivo hasta el último milisegundo del día")
}

func TestToday_SinMovimientos(t *testing.T) {
	repo := &fakeMovementRepo{}
	uc := usecase.NewSummaryUseCase(repo, fixedNow)

	out, err := uc.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Entries)
	assert.Equal(t, 0, out.Exits)
}

func TestToday_ErrorDelRepo(t *testing.T) {
	repo := &fakeMovementRepo{listErr: errors.New("timeout")}
	uc := usecase.NewSummaryUseCase(repo, fixedNow)

	_, err := uc.Today(context.Background())
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ByFabric
// ──────────────────────────────────────────────────────────────────────────────

func TestByFabric_OrdenadoDescendente(t *testing.T) {
	repo := &fakeMovementRepo{listOut: []entity.Movement{
		{Type: entity.MovementTypeEntrada, Fabric: "Linho", Quantity: 5},
		{Type: entity.MovementTypeEntrada, Fabric: "Veludo", Quantity: 20},
		{Type: entity.MovementTypeSaida, Fabric: "Linho", Quantity: 2},
	}}
	uc := usecase.NewSummaryUseCase(repo, fixedNow)

	out, err := uc.ByFabric(context.Background(), entity.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	assert.Equal(t, "Veludo", out.Items[0].Fabric)
	assert.Equal(t, 20, out.Items[0].Quantity)
	assert.Equal(t, "Linho", out.Items[1].Fabric)
	assert.Equal(t, 3, out.Items[1].Quantity)
}

// Sin movimientos la respuesta es una lista vacía serializable, no nil.
func TestByFabric_Vacio(t *testing.T) {
	repo := &fakeMovementRepo{}
	uc := usecase.NewSummaryUseCase(repo, fixedNow)

	out, err := uc.ByFabric(context.Background(), entity.MovementFilter{})
	require.NoError(t, err)
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FabricStock
// ──────────────────────────────────────────────────────────────────────────────

func TestFabricStock_SaldoDeUnaTela(t *testing.T) {
	repo := &fakeMovementRepo{listOut: []entity.Movement{
		{Type: entity.MovementTypeEntrada, Fabric: "Veludo", Quantity: 10},
		{Type: entity.MovementTypeEntrada, Fabric: "Veludo", Quantity: 5},
		{Type: entity.MovementTypeSaida, Fabric: "Veludo", Quantity: 3},
	}}
	uc := usecase.NewSummaryUseCase(repo, fixedNow)

	out, err := uc.FabricStock(context.Background(), "Veludo")
	require.NoError(t, err)

	assert.Equal(t, "Veludo", out.Fabric)
	assert.Equal(t, 12, out.Quantity)
	assert.Equal(t, "Veludo", repo.lastList.Fabric, "el filtrado por tela lo hace el repositorio")
}

// Tela sin movimientos responde 0, nunca un error.
func TestFabricStock_TelaDesconocida(t *testing.T) {
	repo := &fakeMovementRepo{}
	uc := usecase.NewSummaryUseCase(repo, fixedNow)

	out, err := uc.FabricStock(context.Background(), "Inexistente")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)
}
