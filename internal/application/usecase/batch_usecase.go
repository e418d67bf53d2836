package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/domain"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
)

// BatchUseCase casos de uso para lotes de producción y sus materiales.
type BatchUseCase struct {
	repo         repository.BatchRepository
	materialRepo repository.MaterialRepository
	usageRepo    repository.UsageLogRepository
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(
	repo repository.BatchRepository,
	materialRepo repository.MaterialRepository,
	usageRepo repository.UsageLogRepository,
) *BatchUseCase {
	return &BatchUseCase{repo: repo, materialRepo: materialRepo, usageRepo: usageRepo}
}

// Create crea el lote y consume sus materiales. Por cada material:
//  1. inserta la fila en batch_materials (entrada en el libro del material),
//  2. inserta un usage_log positivo con actor de sistema (salida en el libro),
//  3. descuenta el stock del material con piso en cero.
//
// Las escrituras son secuenciales y de un solo intento; el primer fallo se
// devuelve tal cual, sin deshacer lo ya escrito (comportamiento heredado).
func (uc *BatchUseCase) Create(ctx context.Context, in dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	batch := &entity.Batch{
		BatchNumber: in.BatchNumber,
		Product:     in.Product,
		Date:        date,
		Status:      entity.BatchStatusInProgress,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, batch); err != nil {
		return nil, err
	}

	for _, bm := range in.Materials {
		if err := uc.consumeMaterial(ctx, batch, bm); err != nil {
			return nil, err
		}
	}

	return toBatchResponse(batch), nil
}

func (uc *BatchUseCase) consumeMaterial(ctx context.Context, batch *entity.Batch, in dto.BatchMaterialInput) error {
	material, err := uc.materialRepo.GetByID(ctx, in.MaterialID)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrNotFound
	}

	if err := uc.repo.AddMaterial(ctx, &entity.BatchMaterial{
		BatchID:    batch.ID,
		MaterialID: in.MaterialID,
		Quantity:   in.Quantity,
		CreatedAt:  time.Now(),
	}); err != nil {
		return err
	}

	notes := fmt.Sprintf("Added to batch %s for product %s", batch.BatchNumber, batch.Product)
	if err := uc.usageRepo.Create(ctx, &entity.UsageLog{
		MaterialID: &in.MaterialID,
		Quantity:   in.Quantity,
		Date:       time.Now(),
		Username:   entity.SystemActor,
		BatchID:    &batch.ID,
		Notes:      &notes,
		CreatedAt:  time.Now(),
	}); err != nil {
		return err
	}

	newStock := material.CurrentStock.Sub(in.Quantity)
	if newStock.IsNegative() {
		newStock = decimal.Zero
	}
	_, err = uc.materialRepo.UpdateStock(ctx, in.MaterialID, newStock)
	return err
}

// GetByID obtiene un lote por ID. Devuelve nil si no existe.
func (uc *BatchUseCase) GetByID(ctx context.Context, id int64) (*dto.BatchResponse, error) {
	batch, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, nil
	}
	return toBatchResponse(batch), nil
}

// List lista lotes, los más recientes primero.
func (uc *BatchUseCase) List(ctx context.Context) ([]*dto.BatchResponse, error) {
	batches, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, toBatchResponse(b))
	}
	return out, nil
}

// Update modifica un lote (número, producto, estado, descripción).
func (uc *BatchUseCase) Update(ctx context.Context, id int64, in dto.UpdateBatchRequest) (*dto.BatchResponse, error) {
	batch, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, nil
	}

	if in.BatchNumber != nil {
		batch.BatchNumber = *in.BatchNumber
	}
	if in.Product != nil {
		batch.Product = *in.Product
	}
	if in.Status != nil {
		if *in.Status != entity.BatchStatusInProgress && *in.Status != entity.BatchStatusCompleted {
			return nil, domain.ErrInvalidInput
		}
		batch.Status = *in.Status
	}
	if in.Description != nil {
		batch.Description = in.Description
	}

	if err := uc.repo.Update(ctx, batch); err != nil {
		return nil, err
	}
	return toBatchResponse(batch), nil
}

// Delete elimina un lote: primero sus filas de batch_materials, luego el lote.
func (uc *BatchUseCase) Delete(ctx context.Context, id int64) error {
	batch, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if batch == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.RemoveMaterialsByBatch(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// AddMaterial agrega un material a un lote existente (entrada simple, sin
// usage_log ni descuento de stock: eso solo ocurre en la creación del lote).
func (uc *BatchUseCase) AddMaterial(ctx context.Context, batchID int64, in dto.BatchMaterialInput) (*dto.BatchMaterialResponse, error) {
	batch, err := uc.repo.GetByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	bm := &entity.BatchMaterial{
		BatchID:    batchID,
		MaterialID: in.MaterialID,
		Quantity:   in.Quantity,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.AddMaterial(ctx, bm); err != nil {
		return nil, err
	}
	return toBatchMaterialResponse(bm), nil
}

// ListMaterials lista los materiales asignados a un lote.
func (uc *BatchUseCase) ListMaterials(ctx context.Context, batchID int64) ([]*dto.BatchMaterialResponse, error) {
	items, err := uc.repo.ListMaterials(ctx, batchID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BatchMaterialResponse, 0, len(items))
	for _, bm := range items {
		out = append(out, toBatchMaterialResponse(bm))
	}
	return out, nil
}

// RemoveMaterial quita una asignación material-lote por su ID.
func (uc *BatchUseCase) RemoveMaterial(ctx context.Context, batchMaterialID int64) error {
	return uc.repo.RemoveMaterial(ctx, batchMaterialID)
}

func toBatchResponse(b *entity.Batch) *dto.BatchResponse {
	return &dto.BatchResponse{
		ID:          b.ID,
		BatchNumber: b.BatchNumber,
		Product:     b.Product,
		Date:        b.Date,
		Status:      b.Status,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}

func toBatchMaterialResponse(bm *entity.BatchMaterial) *dto.BatchMaterialResponse {
	return &dto.BatchMaterialResponse{
		ID:         bm.ID,
		BatchID:    bm.BatchID,
		MaterialID: bm.MaterialID,
		Quantity:   bm.Quantity,
		CreatedAt:  bm.CreatedAt,
	}
}
