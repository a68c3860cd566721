package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"

	"github.com/jhoicas/company-reviews-api/docs"
	"github.com/jhoicas/company-reviews-api/internal/application/usecase"
	"github.com/jhoicas/company-reviews-api/internal/bootstrap"
	"github.com/jhoicas/company-reviews-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/company-reviews-api/internal/interfaces/http"
	"github.com/jhoicas/company-reviews-api/pkg/config"
	"github.com/jhoicas/company-reviews-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén")
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("cierre del almacén")
		}
	}()

	logos, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de logos")
	}

	companyUC := usecase.NewCompanyUseCase(store.Companies, store.Reviews, logos, store.ValidID, log.Named("companies"))
	reviewUC := usecase.NewReviewUseCase(store.Companies, store.Reviews, store.Tx, store.ValidID, log.Named("reviews"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(httpRouter.RequestLogger(log.Named("http")))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.AllowOrigins}))

	if cfg.HTTP.SwaggerEnabled {
		// Swagger UI en local: http://localhost:<port>/docs
		if docPath, err := writeSwaggerDoc(); err != nil {
			log.Warn().Err(err).Msg("swagger deshabilitado")
		} else {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: docPath,
				Path:     "docs",
				Title:    docs.SwaggerInfo.Title,
			}))
		}
	}

	app.Static("/uploads", logos.Dir())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC: companyUC,
		ReviewUC:  reviewUC,
		Log:       log,
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

// writeSwaggerDoc vuelca el documento registrado por swag a un archivo para el middleware de Swagger UI.
func writeSwaggerDoc() (string, error) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return "", err
	}
	path := filepath.Join(os.TempDir(), "company-reviews-swagger.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
