package repository

import (
	"context"

	"github.com/tallertex/telas-api/internal/domain/entity"
)

// CatalogRepository define el puerto de persistencia para un catálogo
// (telas, operadores o motivos — las tres listas tienen la misma forma).
type CatalogRepository interface {
	// List devuelve las entradas ordenadas alfabéticamente por nombre.
	List(ctx context.Context) ([]entity.CatalogItem, error)
	// Create inserta una entrada; nombre duplicado devuelve domain.ErrDuplicate.
	Create(ctx context.Context, name string) error
	// Delete elimina por id sin verificar referencias: los movimientos
	// históricos guardan el nombre y siguen siendo legibles.
	Delete(ctx context.Context, id int64) error
}
