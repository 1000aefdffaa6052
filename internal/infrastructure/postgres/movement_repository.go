package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tallertex/telas-api/internal/domain"
	"github.com/tallertex/telas-api/internal/domain/entity"
	"github.com/tallertex/telas-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL
// (tabla est_movimentacoes). Pasar pool o tx (Querier).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento; asigna id y created_at (UTC) si faltan.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	if movement.CreatedAt.IsZero() {
		movement.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO est_movimentacoes (id, created_at, tipo_movimentacao, tecido, quantidade, motivo, operador)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.CreatedAt, movement.Type, movement.Fabric,
		movement.Quantity, movement.Reason, movement.Operator,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List lista movimientos según filtro, más recientes primero. Ambos extremos
// del rango son inclusivos; el caller ya extendió DateTo al fin del día.
func (r *MovementRepo) List(ctx context.Context, filter entity.MovementFilter) ([]entity.Movement, error) {
	query := `
		SELECT id, created_at, tipo_movimentacao, tecido, quantidade, motivo, operador
		FROM est_movimentacoes WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Fabric != "" {
		query += fmt.Sprintf(" AND tecido = $%d", pos)
		args = append(args, filter.Fabric)
		pos++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filter.DateFrom)
		pos++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filter.DateTo)
		pos++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.CreatedAt, &m.Type, &m.Fabric, &m.Quantity, &m.Reason, &m.Operator); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// GetByID obtiene un movimiento por id; no encontrado devuelve domain.ErrNotFound.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	query := `
		SELECT id, created_at, tipo_movimentacao, tecido, quantidade, motivo, operador
		FROM est_movimentacoes WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.CreatedAt, &m.Type, &m.Fabric, &m.Quantity, &m.Reason, &m.Operator,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// Delete elimina un movimiento; id inexistente devuelve domain.ErrNotFound.
func (r *MovementRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM est_movimentacoes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
