package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de acción auditada sobre materiales.
const (
	MaterialActionCreate = "create"
	MaterialActionUpdate = "update"
	MaterialActionDelete = "delete"
)

// MaterialLog es un registro de auditoría append-only de acciones sobre
// materiales. MaterialID es nullable: la fila debe sobrevivir a la eliminación
// del material que describe, por eso la FK se anula en vez de cascadear.
// Details guarda el payload JSON cuya forma depende de ActionType.
type MaterialLog struct {
	ID         int64
	MaterialID *int64
	ActionType string // create | update | delete
	Username   string
	Timestamp  time.Time
	Details    json.RawMessage
}

// MaterialSnapshot captura los campos de un material en un instante. Se guarda
// dentro de Details para que la auditoría conserve nombre, categoría y stock
// aunque material_id quede en null.
type MaterialSnapshot struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	Threshold    decimal.Decimal `json:"threshold"`
	BillNumber   *string         `json:"bill_number"`
}

// SnapshotOf construye el snapshot de auditoría de un material.
func SnapshotOf(m *Material) MaterialSnapshot {
	return MaterialSnapshot{
		Name:         m.Name,
		Category:     m.Category,
		Unit:         m.Unit,
		CurrentStock: m.CurrentStock,
		Threshold:    m.Threshold,
		BillNumber:   m.BillNumber,
	}
}

// FieldChange es el par viejo/nuevo de un campo modificado.
type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// Variantes del payload Details, discriminadas por ActionType.
// El esquema heredado guardaba un JSON sin tipo; aquí cada acción tiene su
// forma explícita.
type (
	// CreateDetails payload para action_type = create.
	CreateDetails struct {
		MaterialSnapshot
	}

	// UpdateDetails payload para action_type = update.
	UpdateDetails struct {
		Old     MaterialSnapshot       `json:"old"`
		New     MaterialSnapshot       `json:"new"`
		Changes map[string]FieldChange `json:"changes"`
	}

	// DeleteDetails payload para action_type = delete.
	DeleteDetails struct {
		MaterialSnapshot
		DeletedAt time.Time `json:"deleted_at"`
	}
)

// EncodeDetails serializa la variante correspondiente a la acción.
func EncodeDetails(v any) (json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("material log details: %w", err)
	}
	return b, nil
}

// DecodeDetails deserializa Details según ActionType y devuelve la variante
// concreta (CreateDetails, UpdateDetails o DeleteDetails).
func (l *MaterialLog) DecodeDetails() (any, error) {
	switch l.ActionType {
	case MaterialActionCreate:
		var d CreateDetails
		if err := json.Unmarshal(l.Details, &d); err != nil {
			return nil, fmt.Errorf("decode create details: %w", err)
		}
		return d, nil
	case MaterialActionUpdate:
		var d UpdateDetails
		if err := json.Unmarshal(l.Details, &d); err != nil {
			return nil, fmt.Errorf("decode update details: %w", err)
		}
		return d, nil
	case MaterialActionDelete:
		var d DeleteDetails
		if err := json.Unmarshal(l.Details, &d); err != nil {
			return nil, fmt.Errorf("decode delete details: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("action_type desconocido: %q", l.ActionType)
	}
}

// MaterialLogWithRefs es una fila de material_logs con los datos del material
// referenciado cuando aún existe (join con materials).
type MaterialLogWithRefs struct {
	MaterialLog
	MaterialName     *string
	MaterialCategory *string
	MaterialUnit     *string
}
