package postgres

import (
	"context"
	"fmt"

	"github.com/tallertex/telas-api/internal/domain"
	"github.com/tallertex/telas-api/internal/domain/entity"
	"github.com/tallertex/telas-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// Tablas de catálogo de la base original.
const (
	TableTecidos    = "est_tecidos"
	TableOperadores = "est_operadores"
	TableMotivos    = "est_motivos"
)

// CatalogRepo implementación de CatalogRepository sobre PostgreSQL. Las tres
// listas comparten la forma {id bigserial, nome}, así que el adaptador se
// parametriza por tabla y se instancia tres veces.
type CatalogRepo struct {
	q     Querier
	table string
}

// NewCatalogRepository construye el adaptador para una de las tablas de
// catálogo (usar las constantes TableTecidos, TableOperadores, TableMotivos).
func NewCatalogRepository(q Querier, table string) *CatalogRepo {
	return &CatalogRepo{q: q, table: table}
}

// List devuelve las entradas ordenadas alfabéticamente por nombre.
func (r *CatalogRepo) List(ctx context.Context) ([]entity.CatalogItem, error) {
	query := fmt.Sprintf(`SELECT id, nome FROM %s ORDER BY nome`, r.table)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()

	var list []entity.CatalogItem
	for rows.Next() {
		var it entity.CatalogItem
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Create inserta una entrada. Nombre duplicado devuelve domain.ErrDuplicate.
func (r *CatalogRepo) Create(ctx context.Context, name string) error {
	query := fmt.Sprintf(`INSERT INTO %s (nome) VALUES ($1)`, r.table)
	if _, err := r.q.Exec(ctx, query, name); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

// Delete elimina por id; id inexistente devuelve domain.ErrNotFound.
func (r *CatalogRepo) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)
	cmd, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.table, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
