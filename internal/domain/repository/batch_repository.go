package repository

import (
	"context"

	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
)

// BatchRepository define el puerto de persistencia para lotes y sus materiales.
type BatchRepository interface {
	Create(ctx context.Context, batch *entity.Batch) error
	GetByID(ctx context.Context, id int64) (*entity.Batch, error)
	List(ctx context.Context) ([]*entity.Batch, error)
	Update(ctx context.Context, batch *entity.Batch) error
	Delete(ctx context.Context, id int64) error

	AddMaterial(ctx context.Context, bm *entity.BatchMaterial) error
	ListMaterials(ctx context.Context, batchID int64) ([]*entity.BatchMaterial, error)
	ListMaterialsForMaterial(ctx context.Context, materialID int64) ([]*entity.BatchMaterialWithBatch, error)
	RemoveMaterial(ctx context.Context, batchMaterialID int64) error
	RemoveMaterialsByBatch(ctx context.Context, batchID int64) error
}
