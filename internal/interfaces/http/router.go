package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallertex/telas-api/internal/application/auth"
	"github.com/tallertex/telas-api/internal/application/report"
	"github.com/tallertex/telas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TecidoUC    *usecase.CatalogUseCase
	OperadorUC  *usecase.CatalogUseCase
	MotivoUC    *usecase.CatalogUseCase
	MovementUC  *usecase.MovementUseCase
	SummaryUC   *usecase.SummaryUseCase
	ReportUC    *report.ReportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Las lecturas son públicas (la pantalla
// de registro del taller no pide login); las mutaciones de catálogo, la
// eliminación de movimientos y el reporte requieren la sesión del panel.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	admin := AuthMiddleware(deps.JWTSecret)

	// Catálogos: mismas rutas para las tres listas
	registerCatalog(api, "/tecidos", NewCatalogHandler(deps.TecidoUC, "tela"), admin)
	registerCatalog(api, "/operadores", NewCatalogHandler(deps.OperadorUC, "operador"), admin)
	registerCatalog(api, "/motivos", NewCatalogHandler(deps.MotivoUC, "motivo"), admin)

	// Movimientos
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements := api.Group("/movimentacoes")
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)
	movements.Post("/batch-delete", admin, movementHandler.DeleteBatch)
	movements.Delete("/:id", admin, movementHandler.Delete)

	// Resumen (vistas derivadas del ledger)
	summaryHandler := NewSummaryHandler(deps.SummaryUC)
	resumo := api.Group("/resumo")
	resumo.Get("/hoje", summaryHandler.Today)
	resumo.Get("/tecidos", summaryHandler.ByFabric)
	resumo.Get("/tecidos/:nome/saldo", summaryHandler.FabricStock)

	// Reporte PDF (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/admin/movimentacoes/reporte", admin, reportHandler.MovementReport)
}

// registerCatalog registra list/create/delete de un catálogo bajo el prefijo dado.
func registerCatalog(api fiber.Router, prefix string, h *CatalogHandler, admin fiber.Handler) {
	g := api.Group(prefix)
	g.Get("/", h.List)
	g.Post("/", admin, h.Create)
	g.Delete("/:id", admin, h.Delete)
}
