package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/tallertex/telas-api/internal/application/dto"
	"github.com/tallertex/telas-api/internal/application/usecase"
)

// SummaryHandler maneja las vistas derivadas: totales de hoy, saldo por tela
// y saldo de una tela puntual.
type SummaryHandler struct {
	uc *usecase.SummaryUseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc *usecase.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// Today godoc
// @Summary      Totales del día actual (UTC)
// @Tags         resumen
// @Produce      json
// @Success      200  {object}  dto.DailySummaryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/resumo/hoje [get]
func (h *SummaryHandler) Today(c *fiber.Ctx) error {
	out, err := h.uc.Today(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ByFabric godoc
// @Summary      Saldo por tela, ordenado de mayor a menor
// @Tags         resumen
// @Produce      json
// @Param        tecido     query  string  false  "Filtrar por nombre de tela"
// @Param        date_from  query  string  false  "Desde (AAAA-MM-DD, inclusivo)"
// @Param        date_to    query  string  false  "Hasta (AAAA-MM-DD, inclusivo)"
// @Success      200  {object}  dto.FabricSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/resumo/tecidos [get]
func (h *SummaryHandler) ByFabric(c *fiber.Ctx) error {
	filter, err := parseMovementFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fecha inválida, formato AAAA-MM-DD"})
	}
	out, err := h.uc.ByFabric(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// FabricStock godoc
// @Summary      Saldo actual de una tela
// @Description  Una tela sin movimientos responde cantidad 0; no es un error.
// @Tags         resumen
// @Produce      json
// @Param        nome  path  string  true  "Nombre de la tela"
// @Success      200   {object}  dto.FabricBalanceResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/resumo/tecidos/{nome}/saldo [get]
func (h *SummaryHandler) FabricStock(c *fiber.Ctx) error {
	nome, err := fiberParamUnescaped(c, "nome")
	if err != nil || nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NAME", Message: "nombre de tela requerido"})
	}
	out, err := h.uc.FabricStock(c.Context(), nome)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// fiberParamUnescaped decodifica un path param percent-encoded: los nombres
// de tela pueden traer espacios y acentos ("Algod%C3%A3o%20Cru").
func fiberParamUnescaped(c *fiber.Ctx, key string) (string, error) {
	return url.PathUnescape(c.Params(key))
}
