// Package audit implementa el canal lateral de auditoría de materiales:
// cada mutación primaria (create/update/delete) dispara un hook post-commit
// que inserta una fila en material_logs. El hook devuelve su propio resultado,
// separado del de la mutación primaria: un fallo de auditoría se registra en
// el log de diagnóstico y nunca bloquea ni revierte la mutación.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/repository"
)

// MaterialRecorder escribe el registro de auditoría de materiales.
type MaterialRecorder struct {
	logRepo repository.MaterialLogRepository
}

// NewMaterialRecorder construye el recorder.
func NewMaterialRecorder(logRepo repository.MaterialLogRepository) *MaterialRecorder {
	return &MaterialRecorder{logRepo: logRepo}
}

// RecordCreation registra el alta de un material con su snapshot completo.
func (r *MaterialRecorder) RecordCreation(ctx context.Context, m *entity.Material, actor string) error {
	details, err := entity.EncodeDetails(entity.CreateDetails{MaterialSnapshot: entity.SnapshotOf(m)})
	if err != nil {
		return err
	}
	return r.insert(ctx, &m.ID, entity.MaterialActionCreate, actor, details)
}

// RecordUpdate registra una modificación con snapshots viejo/nuevo y el mapa
// de campos que cambiaron.
func (r *MaterialRecorder) RecordUpdate(ctx context.Context, materialID int64, actor string, old, updated entity.MaterialSnapshot) error {
	details, err := entity.EncodeDetails(entity.UpdateDetails{
		Old:     old,
		New:     updated,
		Changes: DiffSnapshots(old, updated),
	})
	if err != nil {
		return err
	}
	return r.insert(ctx, &materialID, entity.MaterialActionUpdate, actor, details)
}

// RecordDeletion registra la eliminación. El snapshot guarda nombre, categoría
// y stock de forma explícita: material_id quedará en null y el snapshot es lo
// único que permite mostrar qué se eliminó.
func (r *MaterialRecorder) RecordDeletion(ctx context.Context, m *entity.Material, actor string) error {
	details, err := entity.EncodeDetails(entity.DeleteDetails{
		MaterialSnapshot: entity.SnapshotOf(m),
		DeletedAt:        time.Now(),
	})
	if err != nil {
		return err
	}
	return r.insert(ctx, &m.ID, entity.MaterialActionDelete, actor, details)
}

func (r *MaterialRecorder) insert(ctx context.Context, materialID *int64, action, actor string, details []byte) error {
	if actor == "" {
		actor = entity.SystemActor
	}
	log := &entity.MaterialLog{
		MaterialID: materialID,
		ActionType: action,
		Username:   actor,
		Timestamp:  time.Now(),
		Details:    details,
	}
	if err := r.logRepo.Create(ctx, log); err != nil {
		return fmt.Errorf("audit %s: %w", action, err)
	}
	return nil
}

// DiffSnapshots compara dos snapshots campo a campo y devuelve el mapa de
// cambios {campo: {old, new}} que se guarda en el payload de update.
func DiffSnapshots(old, updated entity.MaterialSnapshot) map[string]entity.FieldChange {
	changes := make(map[string]entity.FieldChange)
	if old.Name != updated.Name {
		changes["name"] = entity.FieldChange{Old: old.Name, New: updated.Name}
	}
	if old.Category != updated.Category {
		changes["category"] = entity.FieldChange{Old: old.Category, New: updated.Category}
	}
	if old.Unit != updated.Unit {
		changes["unit"] = entity.FieldChange{Old: old.Unit, New: updated.Unit}
	}
	if !old.CurrentStock.Equal(updated.CurrentStock) {
		changes["current_stock"] = entity.FieldChange{Old: old.CurrentStock, New: updated.CurrentStock}
	}
	if !old.Threshold.Equal(updated.Threshold) {
		changes["threshold"] = entity.FieldChange{Old: old.Threshold, New: updated.Threshold}
	}
	if derefStr(old.BillNumber) != derefStr(updated.BillNumber) {
		changes["bill_number"] = entity.FieldChange{Old: old.BillNumber, New: updated.BillNumber}
	}
	return changes
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
