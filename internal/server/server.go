package server

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"eatz-backend/internal/analytics"
	"eatz-backend/internal/audit"
	"eatz-backend/internal/auth"
	"eatz-backend/internal/catalog"
	"eatz-backend/internal/config"
	"eatz-backend/internal/dashboard"
	"eatz-backend/internal/menu"
	"eatz-backend/internal/models"
	"eatz-backend/internal/proposal"
	"eatz-backend/internal/report"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Deps struct {
	Config    *config.Config
	Logger    *slog.Logger
	Store     *catalog.Store
	Directory *auth.Directory
	Trail     *audit.Trail

	// AccessLog receives one line per request; defaults to stdout.
	AccessLog io.Writer
}

// ErrorHandler renders every error as {"error": "..."}. Catalog errors map
// to 400, 409 and 404; anything unexpected is logged and hidden behind a 500.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		case errors.Is(err, catalog.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, catalog.ErrInvalidState):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, catalog.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}

		log.Error("unexpected error", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "unexpected server error",
		})
	}
}

func New(d Deps) *fiber.App {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.AccessLog == nil {
		d.AccessLog = os.Stdout
	}

	app := fiber.New(fiber.Config{
		AppName:      "eatz-backend",
		ErrorHandler: ErrorHandler(d.Logger),
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Output: d.AccessLog}))

	corsOrigins := strings.Split(d.Config.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,OPTIONS",
	}))

	registerRoutes(app, d)
	return app
}

func registerRoutes(app *fiber.App, d Deps) {
	cfg, store := d.Config, d.Store

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register", auth.RegisterHandler(cfg, d.Directory))
	api.Post("/auth/login", auth.LoginHandler(cfg, d.Directory))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Post("/auth/switch-role", auth.SwitchRoleHandler(cfg))

	// Catalog rules and form preview
	protected.Get("/catalog/rules", menu.RulesHandler())
	protected.Post("/catalog/preview", menu.PreviewHandler())

	// Menus
	protected.Get("/menus", menu.ListMenusHandler(store))
	protected.Get("/menus/:id", menu.GetMenuHandler(store))

	// Proposals (summary before :id)
	protected.Get("/proposals", proposal.ListProposalsHandler(store))
	protected.Get("/proposals/summary", proposal.SummaryHandler(store))
	protected.Get("/proposals/:id", proposal.GetProposalHandler(store))
	protected.Post("/proposals", auth.RequireRole(models.RoleRM), proposal.SubmitProposalHandler(store))
	protected.Put("/proposals/:id", proposal.UpdateProposalHandler(store))

	// Dashboard & analytics
	protected.Get("/dashboard/summary", dashboard.SummaryHandler(store))
	protected.Get("/analytics/profit", analytics.ProfitHandler())
	protected.Get("/analytics/trends", analytics.TrendsHandler())

	// GM only
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleGM))

	adminRoutes.Post("/menus", menu.CreateMenuHandler(store))
	adminRoutes.Post("/menus/import", report.ImportMenusHandler(store))
	adminRoutes.Put("/menus/:id", menu.UpdateMenuHandler(store))
	adminRoutes.Post("/proposals/:id/decision", proposal.DecisionHandler(store))
	adminRoutes.Get("/reports/catalog.xlsx", report.ExportCatalogHandler(store))
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler(d.Trail))
}
