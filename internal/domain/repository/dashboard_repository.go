package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopMaterialResult consumo acumulado de un material en un período.
type TopMaterialResult struct {
	MaterialID   *int64
	MaterialName string
	Unit         string
	TotalUsed    decimal.Decimal
}

// DailyUsageResult total consumido en un día calendario.
type DailyUsageResult struct {
	Day       time.Time
	TotalUsed decimal.Decimal
}

// DashboardRepository consultas read-only para los widgets del dashboard.
// Solo agrega consumos reales (quantity > 0); las adiciones directas quedan fuera.
type DashboardRepository interface {
	GetTopMaterials(ctx context.Context, from, to time.Time, limit int) ([]TopMaterialResult, error)
	GetDailyUsage(ctx context.Context, from, to time.Time) ([]DailyUsageResult, error)
}
