package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fabrica-api/internal/application/dto"
	"github.com/tu-usuario/fabrica-api/internal/application/usecase"
)

// MaterialLogHandler consultas del registro de auditoría (protegido, solo lectura).
type MaterialLogHandler struct {
	uc *usecase.MaterialLogUseCase
}

// NewMaterialLogHandler construye el handler.
func NewMaterialLogHandler(uc *usecase.MaterialLogUseCase) *MaterialLogHandler {
	return &MaterialLogHandler{uc: uc}
}

// List godoc
// @Summary      Listar auditoría de materiales
// @Tags         material-logs
// @Security     Bearer
// @Produce      json
// @Param        material_id  query  int     false  "Filtrar por material"
// @Param        action_type  query  string  false  "create | update | delete"
// @Param        username     query  string  false  "Filtrar por actor (parcial)"
// @Param        date_from    query  string  false  "Fecha desde (inclusive)"
// @Param        date_to      query  string  false  "Fecha hasta (inclusive)"
// @Success      200  {array}  dto.MaterialLogResponse
// @Router       /api/material-logs [get]
func (h *MaterialLogHandler) List(c *fiber.Ctx) error {
	in := dto.MaterialLogFilterRequest{
		MaterialID: queryInt64(c, "material_id"),
		ActionType: queryString(c, "action_type"),
		Username:   queryString(c, "username"),
		DateFrom:   queryDate(c, "date_from"),
		DateTo:     queryDate(c, "date_to"),
	}
	if fields := validateStruct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos", Fields: fields})
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
