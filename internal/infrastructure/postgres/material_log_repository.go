package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
)

var _ repository.MaterialLogRepository = (*MaterialLogRepo)(nil)

const materialLogSelect = `
	SELECT ml.id, ml.material_id, ml.action_type, ml.username, ml.timestamp, ml.details,
	       m.name, m.category, m.unit
	FROM material_logs ml
	LEFT JOIN materials m ON m.id = ml.material_id`

// MaterialLogRepo implementación del puerto MaterialLogRepository sobre PostgreSQL.
// La tabla es append-only: solo INSERT y la anulación de la FK.
type MaterialLogRepo struct {
	q Querier
}

// NewMaterialLogRepository construye el adaptador del registro de auditoría.
func NewMaterialLogRepository(q Querier) *MaterialLogRepo {
	return &MaterialLogRepo{q: q}
}

// Create inserta una fila de auditoría y devuelve su ID generado.
func (r *MaterialLogRepo) Create(ctx context.Context, log *entity.MaterialLog) error {
	query := `
		INSERT INTO material_logs (material_id, action_type, username, timestamp, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		log.MaterialID, log.ActionType, log.Username, log.Timestamp, log.Details,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("insert material log: %w", err)
	}
	return nil
}

// List lista filas de auditoría con filtros opcionales, las más recientes primero.
func (r *MaterialLogRepo) List(ctx context.Context, filter repository.MaterialLogFilter) ([]*entity.MaterialLogWithRefs, error) {
	query := materialLogSelect + ` WHERE 1=1`
	var args []any
	n := 0
	arg := func(v any) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}
	if filter.MaterialID != nil {
		query += ` AND ml.material_id = ` + arg(*filter.MaterialID)
	}
	if filter.ActionType != nil {
		query += ` AND ml.action_type = ` + arg(*filter.ActionType)
	}
	if filter.Username != nil {
		query += ` AND ml.username ILIKE ` + arg("%"+*filter.Username+"%")
	}
	if filter.DateFrom != nil {
		query += ` AND ml.timestamp >= ` + arg(*filter.DateFrom)
	}
	if filter.DateTo != nil {
		query += ` AND ml.timestamp <= ` + arg(*filter.DateTo)
	}
	query += ` ORDER BY ml.timestamp DESC, ml.id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list material logs: %w", err)
	}
	defer rows.Close()
	return scanMaterialLogs(rows)
}

// ListByMaterial lista la auditoría de un material.
func (r *MaterialLogRepo) ListByMaterial(ctx context.Context, materialID int64) ([]*entity.MaterialLogWithRefs, error) {
	rows, err := r.q.Query(ctx, materialLogSelect+` WHERE ml.material_id = $1 ORDER BY ml.timestamp DESC, ml.id DESC`, materialID)
	if err != nil {
		return nil, fmt.Errorf("list material logs by material: %w", err)
	}
	defer rows.Close()
	return scanMaterialLogs(rows)
}

// ClearMaterialRef anula material_id; la fila de auditoría queda con su
// snapshot en details como único rastro de qué material describía.
func (r *MaterialLogRepo) ClearMaterialRef(ctx context.Context, materialID int64) error {
	_, err := r.q.Exec(ctx, `UPDATE material_logs SET material_id = NULL WHERE material_id = $1`, materialID)
	if err != nil {
		return fmt.Errorf("clear material log refs: %w", err)
	}
	return nil
}

func scanMaterialLogs(rows pgx.Rows) ([]*entity.MaterialLogWithRefs, error) {
	var list []*entity.MaterialLogWithRefs
	for rows.Next() {
		var l entity.MaterialLogWithRefs
		if err := rows.Scan(&l.ID, &l.MaterialID, &l.ActionType, &l.Username, &l.Timestamp, &l.Details,
			&l.MaterialName, &l.MaterialCategory, &l.MaterialUnit); err != nil {
			return nil, fmt.Errorf("scan material log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
