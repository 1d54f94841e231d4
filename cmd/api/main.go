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

	"github.com/contratafacil/contratafacil-api/internal/application/auth"
	"github.com/contratafacil/contratafacil-api/internal/application/usecase"
	"github.com/contratafacil/contratafacil-api/internal/infrastructure/notify"
	infrapdf "github.com/contratafacil/contratafacil-api/internal/infrastructure/pdf"
	"github.com/contratafacil/contratafacil-api/internal/infrastructure/postgres"
	"github.com/contratafacil/contratafacil-api/internal/infrastructure/qr"
	httpRouter "github.com/contratafacil/contratafacil-api/internal/interfaces/http"
	"github.com/contratafacil/contratafacil-api/pkg/config"
	"github.com/contratafacil/contratafacil-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
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

	businessRepo := postgres.NewBusinessRepository(pool)
	candidateRepo := postgres.NewCandidateRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)

	authUC := auth.NewAuthUseCase(businessRepo, sessionRepo, auth.SessionConfig{
		TTLDays: cfg.Session.TTLDays,
	})
	businessUC := usecase.NewBusinessUseCase(businessRepo)

	// Notificaciones salientes: Telegram, SMTP y WhatsApp según la
	// configuración de cada negocio. Los envíos no bloquean la postulación.
	dispatcher := notify.NewDispatcher(log)

	pdfGenerator := infrapdf.NewMarotoRosterGenerator()
	candidateUC := usecase.NewCandidateUseCase(candidateRepo, businessRepo, pdfGenerator)
	applyUC := usecase.NewApplyUseCase(businessRepo, candidateRepo, dispatcher)

	qrGenerator := qr.NewGenerator()

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
		Title:    "ContrataFácil API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		BusinessUC:  businessUC,
		CandidateUC: candidateUC,
		ApplyUC:     applyUC,
		QR:          qrGenerator,
		Session:     cfg.Session,
		App:         cfg.App,
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
