package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas read-only para el dashboard.
// Solo cuenta consumos reales: quantity > 0 excluye las adiciones directas,
// que se guardan con signo negativo. Los descuentos por lote sí entran:
// un consumo automático sigue siendo consumo.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de consultas del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetTopMaterials devuelve los materiales más consumidos en el período.
func (r *DashboardRepo) GetTopMaterials(ctx context.Context, from, to time.Time, limit int) ([]repository.TopMaterialResult, error) {
	query := `
		SELECT ul.material_id, COALESCE(m.name, 'Deleted material'), COALESCE(m.unit, ''),
		       SUM(ul.quantity) AS total_used
		FROM usage_logs ul
		LEFT JOIN materials m ON m.id = ul.material_id
		WHERE ul.quantity > 0 AND ul.date >= $1 AND ul.date <= $2
		GROUP BY ul.material_id, m.name, m.unit
		ORDER BY total_used DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top materials: %w", err)
	}
	defer rows.Close()
	var list []repository.TopMaterialResult
	for rows.Next() {
		var t repository.TopMaterialResult
		if err := rows.Scan(&t.MaterialID, &t.MaterialName, &t.Unit, &t.TotalUsed); err != nil {
			return nil, fmt.Errorf("scan top material: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// GetDailyUsage devuelve el consumo total por día calendario en el período.
func (r *DashboardRepo) GetDailyUsage(ctx context.Context, from, to time.Time) ([]repository.DailyUsageResult, error) {
	query := `
		SELECT date_trunc('day', ul.date) AS day, SUM(ul.quantity) AS total_used
		FROM usage_logs ul
		WHERE ul.quantity > 0 AND ul.date >= $1 AND ul.date <= $2
		GROUP BY day
		ORDER BY day ASC`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily usage: %w", err)
	}
	defer rows.Close()
	var list []repository.DailyUsageResult
	for rows.Next() {
		var d repository.DailyUsageResult
		if err := rows.Scan(&d.Day, &d.TotalUsed); err != nil {
			return nil, fmt.Errorf("scan daily usage: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
