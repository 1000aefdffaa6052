package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallertex/telas-api/internal/application/dto"
	"github.com/tallertex/telas-api/internal/application/usecase"
	"github.com/tallertex/telas-api/internal/domain"
	"github.com/tallertex/telas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio
// ──────────────────────────────────────────────────────────────────────────────

// fakeMovementRepo implementación en memoria de repository.MovementRepository.
type fakeMovementRepo struct {
	created   []entity.Movement
	listOut   []entity.Movement
	listErr   error
	lastList  entity.MovementFilter
	deleted   []string
	deleteErr map[string]error // ids que fallan al eliminar
}

func (f *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	m.ID = "mov-fake-id"
	m.CreatedAt = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	f.created = append(f.created, *m)
	return nil
}

func (f *fakeMovementRepo) List(_ context.Context, filter entity.MovementFilter) ([]entity.Movement, error) {
	f.lastList = filter
	return f.listOut, f.listErr
}

func (f *fakeMovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	for i := range f.listOut {
		if f.listOut[i].ID == id {
			return &f.listOut[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMovementRepo) Delete(_ context.Context, id string) error {
	if err, bad := f.deleteErr[id]; bad {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func validRequest() dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		Type:     entity.MovementTypeEntrada,
		Fabric:   "Veludo",
		Quantity: 10,
		Reason:   "Compra",
		Operator: "Heitor",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_MovimientoValido(t *testing.T) {
	repo := &fakeMovementRepo{}
	uc := usecase.NewMovementUseCase(repo)

	out, err := uc.Register(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	assert.Equal(t, "mov-fake-id", out.ID)
	assert.Equal(t, entity.MovementTypeEntrada, out.Type)
	assert.Equal(t, "Veludo", out.Fabric)
	assert.Equal(t, 10, out.Quantity)
	assert.False(t, out.CreatedAt.IsZero(), "CreatedAt lo asigna el store")
}

// Los nombres llegan saneados al repositorio (espacios recortados).
func TestRegister_SaneaNombres(t *testing.T) {
	repo := &fakeMovementRepo{}
	uc := usecase.NewMovementUseCase(repo)

	in := validRequest()
	in.Fabric = "  Veludo Azul  "
	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Veludo Azul", repo.created[0].Fabric)
}

// Cualquier campo inválido rechaza la operación completa sin tocar el
// repositorio: no hay envíos parciales ni llamadas de red.
func TestRegister_RechazaSinLlamarRepo(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.RegisterMovementRequest)
	}{
		{"tipo desconocido", func(r *dto.RegisterMovementRequest) { r.Type = "Ajuste" }},
		{"tela con script", func(r *dto.RegisterMovementRequest) { r.Fabric = "<script>x</script>" }},
		{"tela vacía", func(r *dto.RegisterMovementRequest) { r.Fabric = "   " }},
		{"motivo inválido", func(r *dto.RegisterMovementRequest) { r.Reason = "compra; drop table" }},
		{"operador inválido", func(r *dto.RegisterMovementRequest) { r.Operator = "a@b" }},
		{"cantidad cero", func(r *dto.RegisterMovementRequest) { r.Quantity = 0 }},
		{"cantidad negativa", func(r *dto.RegisterMovementRequest) { r.Quantity = -3 }},
		{"cantidad sobre el máximo", func(r *dto.RegisterMovementRequest) { r.Quantity = 5000000 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeMovementRepo{}
			uc := usecase.NewMovementUseCase(repo)

			in := validRequest()
			tc.mutate(&in)

			_, err := uc.Register(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, repo.created, "el repositorio no debe recibir llamadas")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestList_PasaElFiltro(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeMovementRepo{listOut: []entity.Movement{
		{ID: "a", Type: entity.MovementTypeEntrada, Fabric: "Veludo", Quantity: 5},
	}}
	uc := usecase.NewMovementUseCase(repo)

	out, err := uc.List(context.Background(), entity.MovementFilter{Fabric: "Veludo", DateFrom: &from})
	require.NoError(t, err)

	assert.Equal(t, "Veludo", repo.lastList.Fabric)
	assert.Equal(t, &from, repo.lastList.DateFrom)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "a", out.Items[0].ID)
}

func TestDelete_IDVacioRechazado(t *testing.T) {
	repo := &fakeMovementRepo{}
	uc := usecase.NewMovementUseCase(repo)
	assert.ErrorIs(t, uc.Delete(context.Background(), ""), domain.ErrInvalidInput)
	assert.Empty(t, repo.deleted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DeleteBatch — eliminación parcial
// ──────────────────────────────────────────────────────────────────────────────

// Tres ids seleccionados, el store rechaza uno: la respuesta reporta 2
// eliminados y 1 fallido, y los demás intentos no se detienen.
func TestDeleteBatch_FalloParcial(t *testing.T) {
	repo := &fakeMovementRepo{
		deleteErr: map[string]error{"b": errors.New("conexión rechazada")},
	}
	uc := usecase.NewMovementUseCase(repo)

	out := uc.DeleteBatch(context.Background(), []string{"a", "b", "c"})

	assert.Equal(t, 2, out.Deleted)
	assert.Equal(t, 1, out.Failed)
	assert.Equal(t, []string{"a", "c"}, repo.deleted,
		"el fallo de un id no debe detener los siguientes")
}

func TestDeleteBatch_TodoExitoso(t *testing.T) {
	repo := &fakeMovementRepo{}
	uc := usecase.NewMovementUseCase(repo)

	out := uc.DeleteBatch(context.Background(), []string{"a", "b"})
	assert.Equal(t, dto.BatchDeleteResponse{Deleted: 2, Failed: 0}, out)
}
