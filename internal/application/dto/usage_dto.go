package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUsageLogRequest registra un consumo de material. La cantidad es
// positiva: las adiciones directas entran por AddStockRequest, no por aquí.
type CreateUsageLogRequest struct {
	MaterialID int64           `json:"material_id" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity" validate:"gt=0"`
	Date       *time.Time      `json:"date"`
	BatchID    *int64          `json:"batch_id"`
	Notes      *string         `json:"notes"`
	BillNumber *string         `json:"bill_number"`
}

// UsageLogFilterRequest filtros de listado (query params).
type UsageLogFilterRequest struct {
	MaterialID *int64     `query:"material_id"`
	BatchID    *int64     `query:"batch_id"`
	Username   *string    `query:"username"`
	DateFrom   *time.Time `query:"date_from"`
	DateTo     *time.Time `query:"date_to"`
}

// UsageLogResponse representación HTTP de un registro de uso.
type UsageLogResponse struct {
	ID           int64           `json:"id"`
	MaterialID   *int64          `json:"material_id"`
	MaterialName *string         `json:"material_name,omitempty"`
	MaterialUnit *string         `json:"material_unit,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Date         time.Time       `json:"date"`
	Username     string          `json:"username"`
	BatchID      *int64          `json:"batch_id"`
	BatchNumber  *string         `json:"batch_number,omitempty"`
	Notes        *string         `json:"notes"`
	BillNumber   *string         `json:"bill_number"`
	CreatedAt    time.Time       `json:"created_at"`
}
