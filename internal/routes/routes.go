package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/sevasetu/ngo-backend/internal/config"
	"github.com/sevasetu/ngo-backend/internal/handlers"
	"github.com/sevasetu/ngo-backend/internal/middleware"
	"github.com/sevasetu/ngo-backend/internal/services"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	roleService *services.RoleService,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	roleHandler *handlers.RoleHandler,
	staffHandler *handlers.StaffHandler,
	attendanceHandler *handlers.AttendanceHandler,
	financeHandler *handlers.FinanceHandler,
	inventoryHandler *handlers.InventoryHandler,
	contactHandler *handlers.ContactHandler,
	settingsHandler *handlers.SettingsHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Public
	api.Get("/health", healthHandler.Check)
	api.Get("/site-settings", settingsHandler.GetSettings)
	api.Post("/contact", contactHandler.Submit)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Authenticated but not role-gated: a freshly registered user can see who
	// they are (and their empty capability set) before any role is assigned.
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Put("/auth/profile", middleware.JWTProtected(cfg), authHandler.UpdateProfile)
	api.Get("/me", middleware.JWTProtected(cfg), roleHandler.Me)
	api.Get("/navigation", middleware.JWTProtected(cfg), middleware.StaffRequired(roleService, cfg), roleHandler.Navigation)

	// Staff-level back office: any assigned role
	staff := api.Group("", middleware.JWTProtected(cfg), middleware.StaffRequired(roleService, cfg))
	staff.Get("/staff", staffHandler.List)
	staff.Post("/staff", staffHandler.Create)
	staff.Put("/staff/:id", staffHandler.Update)
	staff.Delete("/staff/:id", staffHandler.Delete)

	staff.Post("/attendance", attendanceHandler.Mark)
	staff.Get("/attendance/:staff_id", attendanceHandler.List)
	staff.Get("/attendance/:staff_id/stats", attendanceHandler.MonthlyStats)
	staff.Get("/attendance/:staff_id/:date", attendanceHandler.ForDate)

	staff.Get("/inventory/food", inventoryHandler.ListFood)
	staff.Post("/inventory/food", inventoryHandler.CreateFood)
	staff.Put("/inventory/food/:id", inventoryHandler.UpdateFood)
	staff.Delete("/inventory/food/:id", inventoryHandler.DeleteFood)
	staff.Get("/inventory/medicine", inventoryHandler.ListMedicine)
	staff.Post("/inventory/medicine", inventoryHandler.CreateMedicine)
	staff.Put("/inventory/medicine/:id", inventoryHandler.UpdateMedicine)
	staff.Delete("/inventory/medicine/:id", inventoryHandler.DeleteMedicine)

	// Expense entry is open to all staff; approval is not.
	staff.Get("/finance/expenses", financeHandler.ListExpenses)
	staff.Post("/finance/expenses", financeHandler.CreateExpense)
	staff.Get("/finance/expense-categories", financeHandler.ExpenseCategories)
	staff.Get("/finance/income-categories", financeHandler.IncomeCategories)
	staff.Get("/finance/reports", financeHandler.Report)

	// Finance-level: income ledger, approvals, fund accounts
	finance := api.Group("/finance", middleware.JWTProtected(cfg), middleware.FinanceRequired(roleService, cfg))
	finance.Get("/income", financeHandler.ListIncome)
	finance.Post("/income", financeHandler.CreateIncome)
	finance.Put("/expenses/:id/status", financeHandler.SetExpenseStatus)
	finance.Get("/funds", financeHandler.ListFunds)
	finance.Post("/funds", financeHandler.CreateFund)
	finance.Put("/funds/:id/balance", financeHandler.UpdateFundBalance)

	// Admin panel
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(roleService, cfg))
	admin.Get("/users", roleHandler.ListUsers)
	admin.Post("/users/:id/roles", roleHandler.AddRole)
	admin.Delete("/users/:id/roles/:role", roleHandler.RemoveRole)

	admin.Get("/messages", contactHandler.List)
	admin.Put("/messages/:id/status", contactHandler.SetStatus)

	admin.Put("/site-settings/:key", settingsHandler.SetKey)
	admin.Delete("/site-settings/:key", settingsHandler.DeleteKey)
}
