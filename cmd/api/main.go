package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tallertex/telas-api/internal/application/auth"
	"github.com/tallertex/telas-api/internal/application/report"
	"github.com/tallertex/telas-api/internal/application/usecase"
	infrapdf "github.com/tallertex/telas-api/internal/infrastructure/pdf"
	"github.com/tallertex/telas-api/internal/infrastructure/postgres"
	httpRouter "github.com/tallertex/telas-api/internal/interfaces/http"
	"github.com/tallertex/telas-api/pkg/config"
	"github.com/tallertex/telas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	movementRepo := postgres.NewMovementRepository(pool)
	tecidoRepo := postgres.NewCatalogRepository(pool, postgres.TableTecidos)
	operadorRepo := postgres.NewCatalogRepository(pool, postgres.TableOperadores)
	motivoRepo := postgres.NewCatalogRepository(pool, postgres.TableMotivos)

	movementUC := usecase.NewMovementUseCase(movementRepo)
	summaryUC := usecase.NewSummaryUseCase(movementRepo, nil)
	tecidoUC := usecase.NewCatalogUseCase(tecidoRepo)
	operadorUC := usecase.NewCatalogUseCase(operadorRepo)
	motivoUC := usecase.NewCatalogUseCase(motivoRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewReportUseCase(movementRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(auth.Config{
		AdminPassword: cfg.Admin.Password,
		JWTSecret:     cfg.Admin.JWTSecret,
		ExpMinutes:    cfg.Admin.JWTExpiration,
		Issuer:        cfg.Admin.JWTIssuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Telas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TecidoUC:   tecidoUC,
		OperadorUC: operadorUC,
		MotivoUC:   motivoUC,
		MovementUC: movementUC,
		SummaryUC:  summaryUC,
		ReportUC:   reportUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.Admin.JWTSecret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
