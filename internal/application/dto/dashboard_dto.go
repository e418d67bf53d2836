package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopMaterialDTO material más consumido en el período.
type TopMaterialDTO struct {
	MaterialID   *int64          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Unit         string          `json:"unit"`
	TotalUsed    decimal.Decimal `json:"total_used"`
}

// DailyUsageDTO consumo total de un día calendario.
type DailyUsageDTO struct {
	Day       time.Time       `json:"day"`
	TotalUsed decimal.Decimal `json:"total_used"`
}

// DashboardSummaryDTO resumen para la pantalla principal del dashboard.
type DashboardSummaryDTO struct {
	TotalMaterials int64              `json:"total_materials"`
	LowStock       []MaterialResponse `json:"low_stock"`
	TopMaterials   []TopMaterialDTO   `json:"top_materials"`
	DailyUsage     []DailyUsageDTO    `json:"daily_usage"`
}
