package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material (DIP).
type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	GetByID(ctx context.Context, id int64) (*entity.Material, error)
	List(ctx context.Context) ([]*entity.Material, error)
	ListLowStock(ctx context.Context) ([]*entity.Material, error)
	Update(ctx context.Context, material *entity.Material) error
	UpdateStock(ctx context.Context, id int64, newStock decimal.Decimal) (*entity.Material, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
