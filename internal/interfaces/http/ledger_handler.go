package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/application/ledger"
	"github.com/tu-usuario/fabrica-api/internal/domain"
)

// LedgerHandler expone el libro de movimientos de un material: historial con
// saldo corrido, adiciones directas de stock y exportación en PDF.
type LedgerHandler struct {
	uc *ledger.HistoryUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.HistoryUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// History godoc
// @Summary      Historial de movimientos con saldo corrido
// @Description  Combina consumos, adiciones directas y asignaciones a lotes, del más reciente al más antiguo, con el saldo anclado al stock vigente.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id    path   int     true   "ID del material"
// @Param        from  query  string  false  "Fecha desde (2026-08-01 o RFC3339, inclusive)"
// @Param        to    query  string  false  "Fecha hasta (inclusive)"
// @Success      200   {object}  ledger.MaterialHistoryDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/history [get]
func (h *LedgerHandler) History(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetMaterialHistory(c.UserContext(), id, queryDate(c, "from"), queryDate(c, "to"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddStock godoc
// @Summary      Adición directa de stock
// @Description  Registra la entrada en el historial (como compra con factura opcional) y suma la cantidad al stock vigente.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del material"
// @Param        body  body  dto.AddStockRequest  true  "Cantidad y factura opcional"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/additions [post]
func (h *LedgerHandler) AddStock(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateStruct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields})
	}
	out, err := h.uc.RecordDirectAddition(c.UserContext(), ledger.DirectAdditionInput{
		MaterialID: id,
		Quantity:   in.Quantity,
		BillNumber: in.BillNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad debe ser positiva"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Estado de cuenta en PDF
// @Tags         ledger
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path   int     true   "ID del material"
// @Param        from  query  string  false  "Fecha desde (inclusive)"
// @Param        to    query  string  false  "Fecha hasta (inclusive)"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/history/pdf [get]
func (h *LedgerHandler) ExportPDF(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	pdf, err := h.uc.ExportHistoryPDF(c.UserContext(), id, queryDate(c, "from"), queryDate(c, "to"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="material-%d-history.pdf"`, id))
	return c.Send(pdf)
}
