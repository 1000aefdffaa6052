package repository

import (
	"context"

	"github.com/tallertex/telas-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos (DIP).
type MovementRepository interface {
	// Create persiste el movimiento; el store asigna ID y CreatedAt.
	Create(ctx context.Context, movement *entity.Movement) error
	// List devuelve los movimientos que cumplen el filtro, del más reciente
	// al más antiguo por created_at. Ambos extremos del rango son inclusivos.
	List(ctx context.Context, filter entity.MovementFilter) ([]entity.Movement, error)
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	Delete(ctx context.Context, id string) error
}
