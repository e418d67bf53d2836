package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fabrica-api/internal/application/audit"
	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/domain"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
	"github.com/tu-usuario/fabrica-api/pkg/logger"
)

// MaterialUseCase casos de uso CRUD para materiales, con canal lateral de
// auditoría. La auditoría es best-effort: su fallo se registra en el log de
// diagnóstico y no bloquea la mutación primaria. La única excepción es el
// paso previo a la eliminación que anula las FKs de usage_logs y
// material_logs: ese paso sí es obligatorio y su fallo aborta el delete, para
// no dejar que aflore una violación de constraint cruda del store.
type MaterialUseCase struct {
	repo      repository.MaterialRepository
	usageRepo repository.UsageLogRepository
	logRepo   repository.MaterialLogRepository
	recorder  *audit.MaterialRecorder
	log       *logger.Logger
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(
	repo repository.MaterialRepository,
	usageRepo repository.UsageLogRepository,
	logRepo repository.MaterialLogRepository,
	recorder *audit.MaterialRecorder,
	log *logger.Logger,
) *MaterialUseCase {
	return &MaterialUseCase{
		repo:      repo,
		usageRepo: usageRepo,
		logRepo:   logRepo,
		recorder:  recorder,
		log:       log.Component("materials"),
	}
}

// Create crea un material y registra el alta en la auditoría (best-effort).
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest, actor string) (*dto.MaterialResponse, error) {
	now := time.Now()
	material := &entity.Material{
		Name:         in.Name,
		Category:     in.Category,
		Unit:         in.Unit,
		CurrentStock: in.CurrentStock,
		Threshold:    in.Threshold,
		BillNumber:   in.BillNumber,
		LastUpdated:  now,
		CreatedAt:    now,
	}
	if err := uc.repo.Create(ctx, material); err != nil {
		return nil, err
	}

	if err := uc.recorder.RecordCreation(ctx, material, actor); err != nil {
		uc.log.Warn().Err(err).Int64("material_id", material.ID).Msg("auditoría de alta falló")
	}

	return toMaterialResponse(material), nil
}

// GetByID obtiene un material por ID. Devuelve nil si no existe.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id int64) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	return toMaterialResponse(material), nil
}

// List lista todos los materiales ordenados por nombre.
func (uc *MaterialUseCase) List(ctx context.Context) ([]*dto.MaterialResponse, error) {
	materials, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, toMaterialResponse(m))
	}
	return out, nil
}

// ListLowStock lista materiales con current_stock bajo su umbral.
func (uc *MaterialUseCase) ListLowStock(ctx context.Context) ([]*dto.MaterialResponse, error) {
	materials, err := uc.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, toMaterialResponse(m))
	}
	return out, nil
}

// Update modifica un material y registra viejo/nuevo en la auditoría (best-effort).
func (uc *MaterialUseCase) Update(ctx context.Context, id int64, in dto.UpdateMaterialRequest, actor string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}

	old := entity.SnapshotOf(material)
	if in.Name != nil {
		material.Name = *in.Name
	}
	if in.Category != nil {
		material.Category = *in.Category
	}
	if in.Unit != nil {
		material.Unit = *in.Unit
	}
	if in.Threshold != nil {
		material.Threshold = *in.Threshold
	}
	if in.BillNumber != nil {
		material.BillNumber = in.BillNumber
	}
	material.LastUpdated = time.Now()

	if err := uc.repo.Update(ctx, material); err != nil {
		return nil, err
	}

	if err := uc.recorder.RecordUpdate(ctx, material.ID, actor, old, entity.SnapshotOf(material)); err != nil {
		uc.log.Warn().Err(err).Int64("material_id", material.ID).Msg("auditoría de modificación falló")
	}

	return toMaterialResponse(material), nil
}

// UpdateStock fija el stock vigente en un valor absoluto. Última escritura
// gana: no hay bloqueo entre clientes concurrentes (limitación aceptada).
func (uc *MaterialUseCase) UpdateStock(ctx context.Context, id int64, newStock decimal.Decimal, actor string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}

	old := entity.SnapshotOf(material)
	updated, err := uc.repo.UpdateStock(ctx, id, newStock)
	if err != nil {
		return nil, err
	}

	if err := uc.recorder.RecordUpdate(ctx, id, actor, old, entity.SnapshotOf(updated)); err != nil {
		uc.log.Warn().Err(err).Int64("material_id", id).Msg("auditoría de stock falló")
	}

	return toMaterialResponse(updated), nil
}

// Delete elimina físicamente un material. Contrato:
//  1. Registrar la eliminación en la auditoría (best-effort, con snapshot).
//  2. Anular material_id en usage_logs y material_logs — obligatorio: si
//     falla, el delete se aborta. El historial y la auditoría sobreviven con
//     la referencia en null y sus demás campos intactos.
//  3. Eliminar la fila de materials.
func (uc *MaterialUseCase) Delete(ctx context.Context, id int64, actor string) error {
	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrNotFound
	}

	if err := uc.recorder.RecordDeletion(ctx, material, actor); err != nil {
		uc.log.Warn().Err(err).Int64("material_id", id).Msg("auditoría de eliminación falló")
	}

	if err := uc.usageRepo.ClearMaterialRef(ctx, id); err != nil {
		return err
	}
	if err := uc.logRepo.ClearMaterialRef(ctx, id); err != nil {
		return err
	}

	return uc.repo.Delete(ctx, id)
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		CurrentStock: m.CurrentStock,
		Unit:         m.Unit,
		Threshold:    m.Threshold,
		BillNumber:   m.BillNumber,
		LowStock:     m.IsLowStock(),
		LastUpdated:  m.LastUpdated,
		CreatedAt:    m.CreatedAt,
	}
}
