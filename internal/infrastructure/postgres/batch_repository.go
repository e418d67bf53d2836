package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fabrica-api/internal/domain"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

const batchColumns = `id, batch_number, product, date, status, description, created_at`

// BatchRepo implementación del puerto BatchRepository sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de persistencia para lotes.
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un lote nuevo y devuelve su ID generado.
func (r *BatchRepo) Create(ctx context.Context, b *entity.Batch) error {
	query := `
		INSERT INTO batches (batch_number, product, date, status, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		b.BatchNumber, b.Product, b.Date, b.Status, b.Description, b.CreatedAt,
	).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID. Devuelve nil si no existe.
func (r *BatchRepo) GetByID(ctx context.Context, id int64) (*entity.Batch, error) {
	var b entity.Batch
	err := r.q.QueryRow(ctx, `SELECT `+batchColumns+` FROM batches WHERE id = $1`, id).Scan(
		&b.ID, &b.BatchNumber, &b.Product, &b.Date, &b.Status, &b.Description, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

// List lista lotes, los más recientes primero.
func (r *BatchRepo) List(ctx context.Context) ([]*entity.Batch, error) {
	rows, err := r.q.Query(ctx, `SELECT `+batchColumns+` FROM batches ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(&b.ID, &b.BatchNumber, &b.Product, &b.Date, &b.Status, &b.Description, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de un lote.
func (r *BatchRepo) Update(ctx context.Context, b *entity.Batch) error {
	query := `
		UPDATE batches SET batch_number = $2, product = $3, date = $4, status = $5, description = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, b.ID, b.BatchNumber, b.Product, b.Date, b.Status, b.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update batch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un lote. Sus batch_materials deben eliminarse antes (contrato del caso de uso).
func (r *BatchRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM batches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddMaterial inserta una asignación material-lote y devuelve su ID generado.
func (r *BatchRepo) AddMaterial(ctx context.Context, bm *entity.BatchMaterial) error {
	query := `
		INSERT INTO batch_materials (batch_id, material_id, quantity, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, bm.BatchID, bm.MaterialID, bm.Quantity, bm.CreatedAt).Scan(&bm.ID)
	if err != nil {
		return fmt.Errorf("insert batch material: %w", err)
	}
	return nil
}

// ListMaterials lista las asignaciones de un lote.
func (r *BatchRepo) ListMaterials(ctx context.Context, batchID int64) ([]*entity.BatchMaterial, error) {
	query := `
		SELECT id, batch_id, material_id, quantity, created_at
		FROM batch_materials WHERE batch_id = $1 ORDER BY id ASC`
	rows, err := r.q.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list batch materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.BatchMaterial
	for rows.Next() {
		var bm entity.BatchMaterial
		if err := rows.Scan(&bm.ID, &bm.BatchID, &bm.MaterialID, &bm.Quantity, &bm.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch material: %w", err)
		}
		list = append(list, &bm)
	}
	return list, rows.Err()
}

// ListMaterialsForMaterial lista todas las asignaciones de un material junto
// con los datos del lote padre (fuente de las entradas del libro de movimientos).
func (r *BatchRepo) ListMaterialsForMaterial(ctx context.Context, materialID int64) ([]*entity.BatchMaterialWithBatch, error) {
	query := `
		SELECT bm.id, bm.batch_id, bm.material_id, bm.quantity, bm.created_at,
		       b.batch_number, b.date, b.product
		FROM batch_materials bm
		JOIN batches b ON b.id = bm.batch_id
		WHERE bm.material_id = $1
		ORDER BY b.date DESC, bm.id DESC`
	rows, err := r.q.Query(ctx, query, materialID)
	if err != nil {
		return nil, fmt.Errorf("list batch materials for material: %w", err)
	}
	defer rows.Close()
	var list []*entity.BatchMaterialWithBatch
	for rows.Next() {
		var row entity.BatchMaterialWithBatch
		if err := rows.Scan(&row.ID, &row.BatchID, &row.MaterialID, &row.Quantity, &row.CreatedAt,
			&row.BatchNumber, &row.BatchDate, &row.Product); err != nil {
			return nil, fmt.Errorf("scan batch material with batch: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// RemoveMaterial elimina una asignación material-lote por su ID.
func (r *BatchRepo) RemoveMaterial(ctx context.Context, batchMaterialID int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM batch_materials WHERE id = $1`, batchMaterialID)
	if err != nil {
		return fmt.Errorf("delete batch material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RemoveMaterialsByBatch elimina todas las asignaciones de un lote.
func (r *BatchRepo) RemoveMaterialsByBatch(ctx context.Context, batchID int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM batch_materials WHERE batch_id = $1`, batchID)
	if err != nil {
		return fmt.Errorf("delete batch materials: %w", err)
	}
	return nil
}
