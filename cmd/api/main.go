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

	"github.com/tu-usuario/crm-suite/internal/application/auth"
	"github.com/tu-usuario/crm-suite/internal/application/usecase"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
	infrapdf "github.com/tu-usuario/crm-suite/internal/infrastructure/pdf"
	"github.com/tu-usuario/crm-suite/internal/infrastructure/postgres"
	infras3 "github.com/tu-usuario/crm-suite/internal/infrastructure/s3"
	httpRouter "github.com/tu-usuario/crm-suite/internal/interfaces/http"
	"github.com/tu-usuario/crm-suite/pkg/config"
	"github.com/tu-usuario/crm-suite/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	interactionRepo := postgres.NewInteractionRepository(pool)
	noteRepo := postgres.NewNoteRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	contentRepo := postgres.NewContentRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	mediaRepo := postgres.NewMediaRepository(pool)
	tagRepo := postgres.NewTagRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	courseRepo := postgres.NewCourseRepository(pool)
	blogRepo := postgres.NewBlogRepository(pool)

	// Resolución de pertenencia y filtros de visibilidad sobre la misma conexión
	tenantStore := postgres.NewTenantStore(pool)
	resolver := tenant.NewResolver(tenantStore)
	scopes := tenant.NewScopeBuilder(resolver, tenantStore)
	access := usecase.NewAccess(resolver, scopes)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	userUC := usecase.NewUserUseCase(userRepo, access)
	clientUC := usecase.NewClientUseCase(clientRepo, access)
	contactUC := usecase.NewContactUseCase(contactRepo, access)
	leadUC := usecase.NewLeadUseCase(leadRepo, access)
	interactionUC := usecase.NewInteractionUseCase(interactionRepo, access)
	noteUC := usecase.NewNoteUseCase(noteRepo, access)
	taskUC := usecase.NewTaskUseCase(taskRepo, access)

	// PDF: reporte del pipeline de ventas
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(leadRepo, companyRepo, reportGenerator, access)

	contentUC := usecase.NewContentUseCase(contentRepo, tagRepo, access)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, access)
	tagUC := usecase.NewTagUseCase(tagRepo, access)
	templateUC := usecase.NewTemplateUseCase(templateRepo, access)
	courseUC := usecase.NewCourseUseCase(courseRepo, access)
	blogUC := usecase.NewBlogUseCase(blogRepo, access)
	publicUC := usecase.NewPublicUseCase(contentRepo, blogRepo, courseRepo, tagRepo)

	// Media solo si hay bucket configurado; sin él /api/media responde 503
	var mediaUC *usecase.MediaUseCase
	if cfg.Storage.Enabled() {
		store, err := infras3.NewMediaStore(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar almacenamiento S3")
		}
		mediaUC = usecase.NewMediaUseCase(mediaRepo, store, access)
	} else {
		log.Warn().Msg("AWS_BUCKET_NAME no configurado: módulo de media deshabilitado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    25 * 1024 * 1024, // subidas multipart de media
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Suite API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		UserUC:        userUC,
		ClientUC:      clientUC,
		ContactUC:     contactUC,
		LeadUC:        leadUC,
		InteractionUC: interactionUC,
		NoteUC:        noteUC,
		TaskUC:        taskUC,
		ReportUC:      reportUC,
		ContentUC:     contentUC,
		CategoryUC:    categoryUC,
		TagUC:         tagUC,
		TemplateUC:    templateUC,
		CourseUC:      courseUC,
		BlogUC:        blogUC,
		PublicUC:      publicUC,
		MediaUC:       mediaUC,
		JWTSecret:     cfg.JWT.Secret,
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
