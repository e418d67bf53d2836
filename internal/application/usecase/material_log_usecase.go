package usecase

import (
	"context"
	"encoding/json"

	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
)

// MaterialLogUseCase consultas de solo lectura sobre el registro de auditoría.
// Las filas se escriben únicamente por el canal de auditoría (audit.MaterialRecorder).
type MaterialLogUseCase struct {
	repo repository.MaterialLogRepository
}

// NewMaterialLogUseCase construye el caso de uso.
func NewMaterialLogUseCase(repo repository.MaterialLogRepository) *MaterialLogUseCase {
	return &MaterialLogUseCase{repo: repo}
}

// List lista entradas de auditoría con filtros opcionales.
func (uc *MaterialLogUseCase) List(ctx context.Context, in dto.MaterialLogFilterRequest) ([]*dto.MaterialLogResponse, error) {
	logs, err := uc.repo.List(ctx, repository.MaterialLogFilter{
		MaterialID: in.MaterialID,
		ActionType: in.ActionType,
		Username:   in.Username,
		DateFrom:   in.DateFrom,
		DateTo:     in.DateTo,
	})
	if err != nil {
		return nil, err
	}
	return toMaterialLogResponses(logs), nil
}

// ListByMaterial lista la auditoría de un material concreto.
func (uc *MaterialLogUseCase) ListByMaterial(ctx context.Context, materialID int64) ([]*dto.MaterialLogResponse, error) {
	logs, err := uc.repo.ListByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	return toMaterialLogResponses(logs), nil
}

func toMaterialLogResponses(logs []*entity.MaterialLogWithRefs) []*dto.MaterialLogResponse {
	out := make([]*dto.MaterialLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toMaterialLogResponse(l))
	}
	return out
}

// toMaterialLogResponse resuelve el nombre del material: del join si la fila
// aún referencia un material vivo, o del snapshot en details si fue eliminado.
func toMaterialLogResponse(l *entity.MaterialLogWithRefs) *dto.MaterialLogResponse {
	name := l.MaterialName
	if name == nil && len(l.Details) > 0 {
		var snapshot struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(l.Details, &snapshot); err == nil && snapshot.Name != "" {
			name = &snapshot.Name
		}
	}
	return &dto.MaterialLogResponse{
		ID:           l.ID,
		MaterialID:   l.MaterialID,
		MaterialName: name,
		ActionType:   l.ActionType,
		Username:     l.Username,
		Timestamp:    l.Timestamp,
		Details:      l.Details,
	}
}
