// Package ledger contiene los casos de uso del libro de movimientos: la
// reconstrucción del historial de un material, la adición directa de stock y
// la exportación del estado de cuenta en PDF.
package ledger

import (
	"github.com/tu-usuario/fabrica-api/internal/domain/entity"
	"github.com/tu-usuario/fabrica-api/internal/domain/ledger"
)

// StatementGenerator produce el estado de cuenta de un material en PDF.
// La implementación vive en infraestructura (maroto).
type StatementGenerator interface {
	LedgerStatement(material *entity.Material, transactions []ledger.Transaction, period ledger.Range) ([]byte, error)
}
