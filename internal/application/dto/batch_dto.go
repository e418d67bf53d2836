package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchMaterialInput material a consumir en la creación de un lote.
type BatchMaterialInput struct {
	MaterialID int64           `json:"material_id" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity" validate:"gt=0"`
}

// CreateBatchRequest alta de lote de producción con sus materiales.
type CreateBatchRequest struct {
	BatchNumber string               `json:"batch_number" validate:"required"`
	Product     string               `json:"product" validate:"required"`
	Date        *time.Time           `json:"date"`
	Description *string              `json:"description"`
	Materials   []BatchMaterialInput `json:"materials" validate:"dive"`
}

// UpdateBatchRequest modificación parcial de lote.
type UpdateBatchRequest struct {
	BatchNumber *string `json:"batch_number"`
	Product     *string `json:"product"`
	Status      *string `json:"status" validate:"omitempty,oneof='In Progress' Completed"`
	Description *string `json:"description"`
}

// BatchResponse representación HTTP de un lote.
type BatchResponse struct {
	ID          int64     `json:"id"`
	BatchNumber string    `json:"batch_number"`
	Product     string    `json:"product"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// BatchMaterialResponse asignación de material dentro de un lote.
type BatchMaterialResponse struct {
	ID         int64           `json:"id"`
	BatchID    int64           `json:"batch_id"`
	MaterialID int64           `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	CreatedAt  time.Time       `json:"created_at"`
}
