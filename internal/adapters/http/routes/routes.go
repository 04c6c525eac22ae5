package routes

import (
	"time"

	"iadev-dashboard/internal/adapters/http/handlers"
	"iadev-dashboard/internal/adapters/http/middleware"
	"iadev-dashboard/internal/adapters/persistence/repositories"
	"iadev-dashboard/internal/config"
	"iadev-dashboard/internal/core/domain"
	"iadev-dashboard/internal/core/services"
	"iadev-dashboard/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Services groups the application services behind the HTTP surface
type Services struct {
	Auth         *services.AuthService
	Members      *services.MemberService
	Transactions *services.TransactionService
	Organization *services.OrganizationService
	Backup       *services.BackupService
}

// NewServices wires repositories and external stores into services
func NewServices(db *gorm.DB, cfg *config.Config, media services.MediaStore, backups services.BackupUploader) *Services {
	// Initialize repositories
	memberRepo := repositories.NewMemberRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	orgRepo := repositories.NewOrganizationRepository(db)

	timeout := cfg.Upload.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	return &Services{
		Auth:         services.NewAuthService(memberRepo, cfg),
		Members:      services.NewMemberService(memberRepo, txRepo, media, timeout),
		Transactions: services.NewTransactionService(txRepo, media, timeout),
		Organization: services.NewOrganizationService(orgRepo),
		Backup:       services.NewBackupService(memberRepo, txRepo, orgRepo, backups),
	}
}

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, svc *Services) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(svc.Auth)
	memberHandler := handlers.NewMemberHandler(svc.Members)
	txHandler := handlers.NewTransactionHandler(svc.Transactions)
	orgHandler := handlers.NewOrganizationHandler(svc.Organization)
	backupHandler := handlers.NewBackupHandler(svc.Backup, cfg)

	requireSession := middleware.RequireSession(svc.Auth)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/metrics", requireSession, middleware.MasterOnly(), adaptor.HTTPHandler(metrics.Handler()))

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api", middleware.NoCacheHeaders())

	// ============================================================
	// Public routes
	// ============================================================
	api.Get("/ping", authHandler.Ping)
	api.Post("/login", authHandler.Login)
	api.Get("/backup/auto", backupHandler.Auto)

	// ============================================================
	// Authenticated routes
	// ============================================================
	api.Post("/verify-master", requireSession, authHandler.VerifyMaster)

	// Members
	members := api.Group("/membros", requireSession)
	members.Get("/", memberHandler.List)
	members.Get("/historico/:nome", memberHandler.History)
	members.Get("/:id", memberHandler.Get)
	members.Post("/", memberHandler.Create)
	members.Put("/:id", memberHandler.Update)
	members.Delete("/:id", middleware.RequireCapability(domain.CapDeleteMember), memberHandler.Delete)

	// Transactions
	transactions := api.Group("/transacoes", requireSession)
	transactions.Get("/", txHandler.List)
	transactions.Get("/saldo-anterior", txHandler.PreviousBalance)
	transactions.Post("/", txHandler.Create)
	transactions.Put("/:id", middleware.RequireCapability(domain.CapEditTransaction), txHandler.Update)
	transactions.Delete("/:id", middleware.RequireCapability(domain.CapDeleteTransaction), txHandler.Delete)

	// Organization profile
	organization := api.Group("/igreja", requireSession)
	organization.Get("/", orgHandler.Get)
	organization.Post("/", middleware.RequireCapability(domain.CapEditOrganizationInfo), orgHandler.Set)

	// Backup
	api.Post("/backup", requireSession, middleware.MasterOnly(), backupHandler.Manual)
}
