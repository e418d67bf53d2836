package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/domain"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
)

// UsageLogUseCase registra y consulta consumos de material. Los registros son
// hechos históricos: una vez insertados no se reescriben cantidades.
type UsageLogUseCase struct {
	repo         repository.UsageLogRepository
	materialRepo repository.MaterialRepository
}

// NewUsageLogUseCase construye el caso de uso.
func NewUsageLogUseCase(repo repository.UsageLogRepository, materialRepo repository.MaterialRepository) *UsageLogUseCase {
	return &UsageLogUseCase{repo: repo, materialRepo: materialRepo}
}

// RegisterConsumption inserta el registro de consumo y descuenta la cantidad
// del stock vigente del material, con piso en cero. Dos escrituras separadas,
// un solo intento cada una: si la segunda falla el registro ya quedó insertado
// (limitación heredada y aceptada; no hay transacción que las una).
func (uc *UsageLogUseCase) RegisterConsumption(ctx context.Context, in dto.CreateUsageLogRequest, actor string) (*dto.UsageLogResponse, error) {
	material, err := uc.materialRepo.GetByID(ctx, in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	log := &entity.UsageLog{
		MaterialID: &in.MaterialID,
		Quantity:   in.Quantity,
		Date:       date,
		Username:   actor,
		BatchID:    in.BatchID,
		Notes:      in.Notes,
		BillNumber: in.BillNumber,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, log); err != nil {
		return nil, err
	}

	newStock := material.CurrentStock.Sub(in.Quantity)
	if newStock.IsNegative() {
		newStock = decimal.Zero
	}
	if _, err := uc.materialRepo.UpdateStock(ctx, in.MaterialID, newStock); err != nil {
		return nil, err
	}

	return toUsageLogResponse(&entity.UsageLogWithRefs{
		UsageLog:     *log,
		MaterialName: &material.Name,
		MaterialUnit: &material.Unit,
	}), nil
}

// GetByID obtiene un registro por ID. Devuelve nil si no existe.
func (uc *UsageLogUseCase) GetByID(ctx context.Context, id int64) (*dto.UsageLogResponse, error) {
	log, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, nil
	}
	return toUsageLogResponse(log), nil
}

// List lista registros con filtros opcionales, los más recientes primero.
func (uc *UsageLogUseCase) List(ctx context.Context, in dto.UsageLogFilterRequest) ([]*dto.UsageLogResponse, error) {
	logs, err := uc.repo.List(ctx, repository.UsageLogFilter{
		MaterialID: in.MaterialID,
		BatchID:    in.BatchID,
		Username:   in.Username,
		DateFrom:   in.DateFrom,
		DateTo:     in.DateTo,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsageLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toUsageLogResponse(l))
	}
	return out, nil
}

// Delete elimina un registro de uso. No restaura stock: el valor vigente de
// materials.current_stock sigue siendo la fuente de verdad.
func (uc *UsageLogUseCase) Delete(ctx context.Context, id int64) error {
	log, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if log == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toUsageLogResponse(l *entity.UsageLogWithRefs) *dto.UsageLogResponse {
	return &dto.UsageLogResponse{
		ID:           l.ID,
		MaterialID:   l.MaterialID,
		MaterialName: l.MaterialName,
		MaterialUnit: l.MaterialUnit,
		Quantity:     l.Quantity,
		Date:         l.Date,
		Username:     l.Username,
		BatchID:      l.BatchID,
		BatchNumber:  l.BatchNumber,
		Notes:        l.Notes,
		BillNumber:   l.BillNumber,
		CreatedAt:    l.CreatedAt,
	}
}
