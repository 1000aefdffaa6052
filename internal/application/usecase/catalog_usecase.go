package usecase

import (
	"context"

	"github.com/tallertex/telas-api/internal/application/dto"
	"github.com/tallertex/telas-api/internal/domain"
	"github.com/tallertex/telas-api/internal/domain/repository"
	"github.com/tallertex/telas-api/internal/domain/sanitize"
)

// CatalogUseCase CRUD de un catálogo (telas, operadores o motivos).
// Se instancia una vez por catálogo con su repositorio correspondiente.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List devuelve las entradas del catálogo en orden alfabético.
func (uc *CatalogUseCase) List(ctx context.Context) ([]dto.CatalogItemResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, dto.CatalogItemResponse{ID: it.ID, Name: it.Name})
	}
	return items, nil
}

// Create valida el nombre y lo inserta. Nombre inválido devuelve
// domain.ErrInvalidInput sin tocar el repositorio.
func (uc *CatalogUseCase) Create(ctx context.Context, name string) error {
	sanitized, ok := sanitize.ValidateName(name)
	if !ok {
		return domain.ErrInvalidInput
	}
	return uc.repo.Create(ctx, sanitized)
}

// Delete elimina una entrada por id. Es incondicional: los movimientos
// históricos guardan el nombre, no una clave foránea.
func (uc *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}
