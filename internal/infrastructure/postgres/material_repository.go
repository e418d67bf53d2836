package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fabrica-api/internal/domain"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `id, name, category, current_stock, unit, threshold, bill_number, last_updated, created_at`

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de persistencia para materiales. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste un material nuevo y devuelve su ID generado.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (name, category, current_stock, unit, threshold, bill_number, last_updated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.Name, m.Category, m.CurrentStock, m.Unit, m.Threshold, m.BillNumber, m.LastUpdated, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID. Devuelve nil si no existe.
func (r *MaterialRepo) GetByID(ctx context.Context, id int64) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	var m entity.Material
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Category, &m.CurrentStock, &m.Unit, &m.Threshold,
		&m.BillNumber, &m.LastUpdated, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// List lista todos los materiales ordenados por nombre.
func (r *MaterialRepo) List(ctx context.Context) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	return scanMaterials(rows)
}

// ListLowStock lista materiales cuyo stock vigente está bajo su umbral.
func (r *MaterialRepo) ListLowStock(ctx context.Context) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE current_stock < threshold ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanMaterials(rows)
}

// Update actualiza los campos editables de un material. El stock se ajusta
// también aquí: el libro de movimientos se reconstruye desde este valor.
func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) error {
	query := `
		UPDATE materials
		SET name = $2, category = $3, current_stock = $4, unit = $5, threshold = $6, bill_number = $7, last_updated = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		m.ID, m.Name, m.Category, m.CurrentStock, m.Unit, m.Threshold, m.BillNumber, m.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija current_stock en un valor absoluto y devuelve la fila actualizada.
func (r *MaterialRepo) UpdateStock(ctx context.Context, id int64, newStock decimal.Decimal) (*entity.Material, error) {
	query := `
		UPDATE materials SET current_stock = $2, last_updated = now()
		WHERE id = $1
		RETURNING ` + materialColumns
	var m entity.Material
	err := r.q.QueryRow(ctx, query, id, newStock).Scan(
		&m.ID, &m.Name, &m.Category, &m.CurrentStock, &m.Unit, &m.Threshold,
		&m.BillNumber, &m.LastUpdated, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update stock: %w", err)
	}
	return &m, nil
}

// Delete elimina físicamente la fila. Las referencias en usage_logs y
// material_logs deben haberse anulado antes (contrato del caso de uso).
func (r *MaterialRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count devuelve el total de materiales.
func (r *MaterialRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM materials`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count materials: %w", err)
	}
	return total, nil
}

func scanMaterials(rows pgx.Rows) ([]*entity.Material, error) {
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.CurrentStock, &m.Unit, &m.Threshold,
			&m.BillNumber, &m.LastUpdated, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
