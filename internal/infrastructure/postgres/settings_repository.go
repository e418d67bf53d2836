package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
// La unicidad es por (key, user_id), con user_id NULL como alcance global;
// el upsert se resuelve con un índice único parcial sobre ese par.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de persistencia para settings.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetByKey obtiene una clave en el alcance indicado. Devuelve nil si no existe.
func (r *SettingsRepo) GetByKey(ctx context.Context, key string, userID *string) (*entity.Setting, error) {
	query := `
		SELECT id, key, value, user_id, created_at
		FROM settings
		WHERE key = $1 AND user_id IS NOT DISTINCT FROM $2`
	var s entity.Setting
	err := r.q.QueryRow(ctx, query, key, userID).Scan(&s.ID, &s.Key, &s.Value, &s.UserID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return &s, nil
}

// List lista las claves del alcance indicado, ordenadas por key.
func (r *SettingsRepo) List(ctx context.Context, userID *string) ([]*entity.Setting, error) {
	query := `
		SELECT id, key, value, user_id, created_at
		FROM settings
		WHERE user_id IS NOT DISTINCT FROM $1
		ORDER BY key ASC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Setting
	for rows.Next() {
		var s entity.Setting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.UserID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Upsert crea o reemplaza el valor de una clave y devuelve la fila resultante.
func (r *SettingsRepo) Upsert(ctx context.Context, key string, value json.RawMessage, userID *string) (*entity.Setting, error) {
	query := `
		INSERT INTO settings (key, value, user_id, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (key, COALESCE(user_id, '')) DO UPDATE SET value = EXCLUDED.value
		RETURNING id, key, value, user_id, created_at`
	var s entity.Setting
	err := r.q.QueryRow(ctx, query, key, value, userID).Scan(&s.ID, &s.Key, &s.Value, &s.UserID, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert setting: %w", err)
	}
	return &s, nil
}

// Delete elimina una clave. No es error si no existía.
func (r *SettingsRepo) Delete(ctx context.Context, key string, userID *string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM settings WHERE key = $1 AND user_id IS NOT DISTINCT FROM $2`, key, userID)
	if err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	return nil
}
