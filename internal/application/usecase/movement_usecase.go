package usecase

import (
	"context"

	"github.com/tallertex/telas-api/internal/application/dto"
	"github.com/tallertex/telas-api/internal/domain"
	"github.com/tallertex/telas-api/internal/domain/entity"
	"github.com/tallertex/telas-api/internal/domain/repository"
	"github.com/tallertex/telas-api/internal/domain/sanitize"
)

// MovementUseCase registra, lista y elimina movimientos de inventario.
type MovementUseCase struct {
	repo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// Register valida y persiste un movimiento. Cualquier campo inválido rechaza
// la operación completa con domain.ErrInvalidInput antes de tocar el
// repositorio; nunca hay envíos parciales.
func (uc *MovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Type != entity.MovementTypeEntrada && in.Type != entity.MovementTypeSaida {
		return nil, domain.ErrInvalidInput
	}
	fabric, ok := sanitize.ValidateName(in.Fabric)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	reason, ok := sanitize.ValidateName(in.Reason)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	operator, ok := sanitize.ValidateName(in.Operator)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	quantity, ok := sanitize.ValidateQuantityInt(in.Quantity)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.Movement{
		Type:     in.Type,
		Fabric:   fabric,
		Quantity: quantity,
		Reason:   reason,
		Operator: operator,
	}
	if err := uc.repo.Create(ctx, mov); err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// List devuelve los movimientos que cumplen el filtro, más recientes primero.
func (uc *MovementUseCase) List(ctx context.Context, filter entity.MovementFilter) (*dto.MovementListResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for i := range list {
		items = append(items, *toMovementResponse(&list[i]))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un movimiento por id.
func (uc *MovementUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

// DeleteBatch intenta eliminar cada id de forma independiente; un fallo no
// detiene los demás. Devuelve cuántos se eliminaron y cuántos fallaron, y el
// caller refresca sus listados sin importar el resultado parcial.
func (uc *MovementUseCase) DeleteBatch(ctx context.Context, ids []string) dto.BatchDeleteResponse {
	var out dto.BatchDeleteResponse
	for _, id := range ids {
		if err := uc.repo.Delete(ctx, id); err != nil {
			out.Failed++
			continue
		}
		out.Deleted++
	}
	return out
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		Type:      m.Type,
		Fabric:    m.Fabric,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		Operator:  m.Operator,
	}
}
