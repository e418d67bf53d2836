package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest alta de material.
type CreateMaterialRequest struct {
	Name         string          `json:"name" validate:"required"`
	Category     string          `json:"category" validate:"required"`
	Unit         string          `json:"unit" validate:"required"`
	CurrentStock decimal.Decimal `json:"current_stock" validate:"gte=0"`
	Threshold    decimal.Decimal `json:"threshold" validate:"gte=0"`
	BillNumber   *string         `json:"bill_number"`
}

// UpdateMaterialRequest modificación parcial de material. Campos nulos no se tocan.
type UpdateMaterialRequest struct {
	Name       *string          `json:"name"`
	Category   *string          `json:"category"`
	Unit       *string          `json:"unit"`
	Threshold  *decimal.Decimal `json:"threshold" validate:"omitempty,gte=0"`
	BillNumber *string          `json:"bill_number"`
}

// UpdateStockRequest fija el stock vigente de un material en un valor absoluto.
type UpdateStockRequest struct {
	NewStock decimal.Decimal `json:"new_stock" validate:"gte=0"`
}

// AddStockRequest adición directa de stock (entrada manual).
type AddStockRequest struct {
	Quantity   decimal.Decimal `json:"quantity" validate:"gt=0"`
	BillNumber *string         `json:"bill_number"`
}

// MaterialResponse representación HTTP de un material.
type MaterialResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	Unit         string          `json:"unit"`
	Threshold    decimal.Decimal `json:"threshold"`
	BillNumber   *string         `json:"bill_number"`
	LowStock     bool            `json:"low_stock"`
	LastUpdated  time.Time       `json:"last_updated"`
	CreatedAt    time.Time       `json:"created_at"`
}
