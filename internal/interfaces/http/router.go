package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-suite/internal/application/auth"
	"github.com/tu-usuario/crm-suite/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	UserUC        *usecase.UserUseCase
	ClientUC      *usecase.ClientUseCase
	ContactUC     *usecase.ContactUseCase
	LeadUC        *usecase.LeadUseCase
	InteractionUC *usecase.InteractionUseCase
	NoteUC        *usecase.NoteUseCase
	TaskUC        *usecase.TaskUseCase
	ReportUC      *usecase.ReportUseCase
	ContentUC     *usecase.ContentUseCase
	CategoryUC    *usecase.CategoryUseCase
	TagUC         *usecase.TagUseCase
	TemplateUC    *usecase.TemplateUseCase
	CourseUC      *usecase.CourseUseCase
	BlogUC        *usecase.BlogUseCase
	PublicUC      *usecase.PublicUseCase

	// MediaUC es nil cuando el bucket no está configurado; en ese caso
	// /api/media responde 503.
	MediaUC *usecase.MediaUseCase

	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Lectura pública del CMS (sin token)
	public := app.Group("/public")
	publicHandler := NewPublicHandler(deps.PublicUC)
	public.Get("/:companyId/contents", publicHandler.Contents)
	public.Get("/:companyId/contents/:slug", publicHandler.Content)
	public.Get("/:companyId/blogs", publicHandler.Blogs)
	public.Get("/:companyId/blogs/:slug", publicHandler.Blog)
	public.Get("/:companyId/courses", publicHandler.Courses)
	public.Get("/:companyId/courses/:slug", publicHandler.Course)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Companies: solo super_admin administra empresas
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", RequireRole("super_admin"), companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", RequireRole("super_admin"), companyHandler.Update)
	companies.Delete("/:id", RequireRole("super_admin"), companyHandler.Delete)

	// Users: gestión restringida a roles administrativos
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", RequireRole("super_admin", "admin"), userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", RequireRole("super_admin", "admin"), userHandler.Update)
	users.Delete("/:id", RequireRole("super_admin", "admin"), userHandler.Delete)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Contacts
	contacts := protected.Group("/contacts")
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts.Post("/", contactHandler.Create)
	contacts.Get("/", contactHandler.List)
	contacts.Get("/:id", contactHandler.GetByID)
	contacts.Put("/:id", contactHandler.Update)
	contacts.Delete("/:id", contactHandler.Delete)

	// Leads (+ historial de etapas)
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Post("/", leadHandler.Create)
	leads.Get("/", leadHandler.List)
	leads.Get("/:id", leadHandler.GetByID)
	leads.Put("/:id", leadHandler.Update)
	leads.Delete("/:id", leadHandler.Delete)
	leads.Get("/:id/status-logs", leadHandler.StatusLogs)

	// Interactions
	interactions := protected.Group("/interactions")
	interactionHandler := NewInteractionHandler(deps.InteractionUC)
	interactions.Post("/", interactionHandler.Create)
	interactions.Get("/", interactionHandler.List)
	interactions.Get("/:id", interactionHandler.GetByID)
	interactions.Put("/:id", interactionHandler.Update)
	interactions.Delete("/:id", interactionHandler.Delete)
	interactions.Post("/:id/contacts/:contactId", interactionHandler.AddContact)
	interactions.Delete("/:id/contacts/:contactId", interactionHandler.RemoveContact)

	// Notes
	notes := protected.Group("/notes")
	noteHandler := NewNoteHandler(deps.NoteUC)
	notes.Post("/", noteHandler.Create)
	notes.Get("/", noteHandler.List)
	notes.Get("/:id", noteHandler.GetByID)
	notes.Put("/:id", noteHandler.Update)
	notes.Delete("/:id", noteHandler.Delete)

	// Tasks
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/pipeline", reportHandler.Pipeline)
	reports.Get("/pipeline/pdf", reportHandler.PipelinePDF)

	// Contents (+ asociación de etiquetas)
	contents := protected.Group("/contents")
	contentHandler := NewContentHandler(deps.ContentUC)
	tagHandler := NewTagHandler(deps.TagUC)
	contents.Post("/", contentHandler.Create)
	contents.Get("/", contentHandler.List)
	contents.Get("/:id", contentHandler.GetByID)
	contents.Put("/:id", contentHandler.Update)
	contents.Delete("/:id", contentHandler.Delete)
	contents.Post("/:contentId/tags/:tagId", tagHandler.Attach)
	contents.Delete("/:contentId/tags/:tagId", tagHandler.Detach)

	// Categories (CMS)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Tags: /usage antes de /:id para que no lo capture el parámetro
	tags := protected.Group("/tags")
	tags.Post("/", tagHandler.Create)
	tags.Get("/", tagHandler.List)
	tags.Get("/usage/:minCount", tagHandler.Usage)
	tags.Get("/:id", tagHandler.GetByID)
	tags.Put("/:id", tagHandler.Update)
	tags.Delete("/:id", tagHandler.Delete)
	tags.Get("/:id/contents", tagHandler.Contents)

	// Templates
	templates := protected.Group("/templates")
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates.Post("/", templateHandler.Create)
	templates.Get("/", templateHandler.List)
	templates.Get("/:id", templateHandler.GetByID)
	templates.Put("/:id", templateHandler.Update)
	templates.Delete("/:id", templateHandler.Delete)

	// Courses: /categories antes de /:id para que no lo capture el parámetro
	courses := protected.Group("/courses")
	courseHandler := NewCourseHandler(deps.CourseUC)
	courses.Post("/categories", courseHandler.CreateCategory)
	courses.Get("/categories", courseHandler.ListCategories)
	courses.Get("/categories/:id", courseHandler.GetCategoryByID)
	courses.Put("/categories/:id", courseHandler.UpdateCategory)
	courses.Delete("/categories/:id", courseHandler.DeleteCategory)
	courses.Post("/", courseHandler.Create)
	courses.Get("/", courseHandler.List)
	courses.Get("/:id", courseHandler.GetByID)
	courses.Put("/:id", courseHandler.Update)
	courses.Delete("/:id", courseHandler.Delete)

	// Blogs
	blogs := protected.Group("/blogs")
	blogHandler := NewBlogHandler(deps.BlogUC)
	blogs.Post("/categories", blogHandler.CreateCategory)
	blogs.Get("/categories", blogHandler.ListCategories)
	blogs.Get("/categories/:id", blogHandler.GetCategoryByID)
	blogs.Put("/categories/:id", blogHandler.UpdateCategory)
	blogs.Delete("/categories/:id", blogHandler.DeleteCategory)
	blogs.Post("/", blogHandler.Create)
	blogs.Get("/", blogHandler.List)
	blogs.Get("/:id", blogHandler.GetByID)
	blogs.Put("/:id", blogHandler.Update)
	blogs.Delete("/:id", blogHandler.Delete)

	// Media: rutas reales solo con bucket configurado
	media := protected.Group("/media")
	if deps.MediaUC != nil {
		mediaHandler := NewMediaHandler(deps.MediaUC)
		media.Post("/", mediaHandler.Upload)
		media.Get("/signed-url", mediaHandler.SignedURL)
		media.Get("/", mediaHandler.List)
		media.Get("/:id", mediaHandler.GetByID)
		media.Put("/:id", mediaHandler.Update)
		media.Delete("/:id", mediaHandler.Delete)
	} else {
		media.All("/*", MediaDisabled)
		media.All("/", MediaDisabled)
	}
}
