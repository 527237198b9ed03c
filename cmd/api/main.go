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

	"github.com/jhoicas/constructora-api/internal/application/auth"
	"github.com/jhoicas/constructora-api/internal/application/stats"
	"github.com/jhoicas/constructora-api/internal/application/usecase"
	"github.com/jhoicas/constructora-api/internal/infrastructure/postgres"
	"github.com/jhoicas/constructora-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/constructora-api/internal/interfaces/http"
	"github.com/jhoicas/constructora-api/pkg/config"
	"github.com/jhoicas/constructora-api/pkg/logger"
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

	contratistaRepo := postgres.NewContratistaRepository(pool)
	proyectoRepo := postgres.NewProyectoRepository(pool)
	conceptoRepo := postgres.NewConceptoRepository(pool)
	prospectoRepo := postgres.NewProspectoRepository(pool)
	nominaRepo := postgres.NewNominaRepository(pool)
	gastoRepo := postgres.NewGastoRepository(pool)
	especialidadRepo := postgres.NewEspecialidadRepository(pool)
	trabajadorRepo := postgres.NewTrabajadorRepository(pool)
	documentoRepo := postgres.NewDocumentoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	archivoStorage, err := storage.NewLocal(cfg.Archivos.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Archivos.Dir).Msg("almacenamiento de archivos")
	}

	contratistaUC := usecase.NewContratistaUseCase(contratistaRepo, conceptoRepo, txRunner)
	proyectoUC := usecase.NewProyectoUseCase(proyectoRepo)
	conceptoUC := usecase.NewConceptoUseCase(conceptoRepo)
	prospectoUC := usecase.NewProspectoUseCase(prospectoRepo, txRunner)
	nominaUC := usecase.NewNominaUseCase(nominaRepo, txRunner)
	gastoUC := usecase.NewGastoUseCase(gastoRepo)
	especialidadUC := usecase.NewEspecialidadUseCase(especialidadRepo)
	trabajadorUC := usecase.NewTrabajadorUseCase(trabajadorRepo)
	archivoUC := usecase.NewArchivoUseCase(documentoRepo, archivoStorage, cfg.Archivos.LimiteBytes)
	dashboardUC := stats.NewDashboardUseCase(statsRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Archivos.LimiteBytes) + 1024*1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Constructora API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ContratistaUC:  contratistaUC,
		ProyectoUC:     proyectoUC,
		ConceptoUC:     conceptoUC,
		ProspectoUC:    prospectoUC,
		NominaUC:       nominaUC,
		GastoUC:        gastoUC,
		EspecialidadUC: especialidadUC,
		TrabajadorUC:   trabajadorUC,
		ArchivoUC:      archivoUC,
		DashboardUC:    dashboardUC,
		AuthUC:         authUC,
		NominaRepo:     nominaRepo,
		ProyectoRepo:   proyectoRepo,
		JWTSecret:      cfg.JWT.Secret,
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
