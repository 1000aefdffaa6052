package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallertex/telas-api/internal/application/dto"
	"github.com/tallertex/telas-api/internal/application/report"
)

// ReportHandler maneja la descarga del reporte PDF del historial (protegido).
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// MovementReport godoc
// @Summary      Reporte PDF del historial de movimientos
// @Description  Tabla de movimientos del rango filtrado más el resumen de
// @Description  saldos por tela. Un rango sin movimientos produce un PDF
// @Description  válido con tablas vacías.
// @Tags         admin
// @Security     Bearer
// @Produce      application/pdf
// @Param        tecido     query  string  false  "Filtrar por nombre de tela"
// @Param        date_from  query  string  false  "Desde (AAAA-MM-DD, inclusivo)"
// @Param        date_to    query  string  false  "Hasta (AAAA-MM-DD, inclusivo)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/movimentacoes/reporte [get]
func (h *ReportHandler) MovementReport(c *fiber.Ctx) error {
	filter, err := parseMovementFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fecha inválida, formato AAAA-MM-DD"})
	}
	pdfBytes, filename, err := h.uc.MovementReport(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
