package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
)

var _ repository.UsageLogRepository = (*UsageLogRepo)(nil)

// usageLogSelect columnas del registro de uso más los datos denormalizados
// del material y el lote (LEFT JOIN: ambas referencias son nullable).
const usageLogSelect = `
	SELECT ul.id, ul.material_id, ul.quantity, ul.date, ul.username, ul.batch_id,
	       ul.notes, ul.bill_number, ul.created_at,
	       m.name, m.category, m.unit, b.batch_number
	FROM usage_logs ul
	LEFT JOIN materials m ON m.id = ul.material_id
	LEFT JOIN batches b ON b.id = ul.batch_id`

// UsageLogRepo implementación del puerto UsageLogRepository sobre PostgreSQL (usable con pool o tx).
type UsageLogRepo struct {
	q Querier
}

// NewUsageLogRepository construye el adaptador de persistencia para registros de uso.
func NewUsageLogRepository(q Querier) *UsageLogRepo {
	return &UsageLogRepo{q: q}
}

// Create inserta un registro de uso y devuelve su ID generado.
func (r *UsageLogRepo) Create(ctx context.Context, log *entity.UsageLog) error {
	query := `
		INSERT INTO usage_logs (material_id, quantity, date, username, batch_id, notes, bill_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		log.MaterialID, log.Quantity, log.Date, log.Username, log.BatchID,
		log.Notes, log.BillNumber, log.CreatedAt,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("insert usage log: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID con sus referencias. Devuelve nil si no existe.
func (r *UsageLogRepo) GetByID(ctx context.Context, id int64) (*entity.UsageLogWithRefs, error) {
	row := r.q.QueryRow(ctx, usageLogSelect+` WHERE ul.id = $1`, id)
	log, err := scanUsageLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usage log: %w", err)
	}
	return log, nil
}

// List lista registros con filtros opcionales, los más recientes primero.
func (r *UsageLogRepo) List(ctx context.Context, filter repository.UsageLogFilter) ([]*entity.UsageLogWithRefs, error) {
	query := usageLogSelect + ` WHERE 1=1`
	var args []any
	n := 0
	arg := func(v any) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}
	if filter.MaterialID != nil {
		query += ` AND ul.material_id = ` + arg(*filter.MaterialID)
	}
	if filter.BatchID != nil {
		query += ` AND ul.batch_id = ` + arg(*filter.BatchID)
	}
	if filter.Username != nil {
		query += ` AND ul.username ILIKE ` + arg("%"+*filter.Username+"%")
	}
	if filter.DateFrom != nil {
		query += ` AND ul.date >= ` + arg(*filter.DateFrom)
	}
	if filter.DateTo != nil {
		query += ` AND ul.date <= ` + arg(*filter.DateTo)
	}
	query += ` ORDER BY ul.date DESC, ul.id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usage logs: %w", err)
	}
	defer rows.Close()
	return scanUsageLogs(rows)
}

// ListByMaterial lista todos los registros de un material (entrada del libro de movimientos).
func (r *UsageLogRepo) ListByMaterial(ctx context.Context, materialID int64) ([]*entity.UsageLogWithRefs, error) {
	rows, err := r.q.Query(ctx, usageLogSelect+` WHERE ul.material_id = $1 ORDER BY ul.date DESC, ul.id DESC`, materialID)
	if err != nil {
		return nil, fmt.Errorf("list usage logs by material: %w", err)
	}
	defer rows.Close()
	return scanUsageLogs(rows)
}

// Delete elimina un registro de uso. No hay aritmética de stock aquí ni en
// ningún otro lado: borrar el registro no restaura nada.
func (r *UsageLogRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM usage_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usage log: %w", err)
	}
	return nil
}

// ClearMaterialRef anula material_id en todas las filas del material. El resto
// de los campos queda intacto: el historial sobrevive a la eliminación.
func (r *UsageLogRepo) ClearMaterialRef(ctx context.Context, materialID int64) error {
	_, err := r.q.Exec(ctx, `UPDATE usage_logs SET material_id = NULL WHERE material_id = $1`, materialID)
	if err != nil {
		return fmt.Errorf("clear usage log refs: %w", err)
	}
	return nil
}

func scanUsageLog(row pgx.Row) (*entity.UsageLogWithRefs, error) {
	var l entity.UsageLogWithRefs
	err := row.Scan(
		&l.ID, &l.MaterialID, &l.Quantity, &l.Date, &l.Username, &l.BatchID,
		&l.Notes, &l.BillNumber, &l.CreatedAt,
		&l.MaterialName, &l.MaterialCategory, &l.MaterialUnit, &l.BatchNumber,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func scanUsageLogs(rows pgx.Rows) ([]*entity.UsageLogWithRefs, error) {
	var list []*entity.UsageLogWithRefs
	for rows.Next() {
		l, err := scanUsageLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usage log: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
