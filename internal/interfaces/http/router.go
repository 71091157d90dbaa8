package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/PuntoVenta-api/internal/application/auth"
	"github.com/jhoicas/PuntoVenta-api/internal/application/inventory"
	"github.com/jhoicas/PuntoVenta-api/internal/application/reports"
	"github.com/jhoicas/PuntoVenta-api/internal/application/sales"
	"github.com/jhoicas/PuntoVenta-api/internal/application/usecase"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	UserUC       *usecase.UserUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	AttendanceUC *usecase.AttendanceUseCase
	MovementUC   *inventory.MovementUseCase
	CompleteSale *sales.CompleteSaleUseCase
	SaleQuery    *sales.SaleQueryUseCase
	Receipt      *sales.ReceiptUseCase
	ReportUC     *reports.ReportUseCase
	JWTSecret    string
	HTTP         config.HTTPConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	managers := RequireRole(entity.RoleOwner, entity.RoleManager)

	// Auth. Login es público con rate limit estricto contra fuerza bruta;
	// el registro de usuarios lo hacen owner/manager autenticados.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        deps.HTTP.AuthRateLimitMax,
		Expiration: time.Duration(deps.HTTP.RateLimitWindow) * time.Second,
	}), authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/register", managers, authHandler.Register)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/alerts/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", managers, productHandler.Delete)

	// Stock: operaciones del motor de movimientos
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.MovementUC)
	stock.Get("/movements", stockHandler.ListMovements)
	stock.Post("/receive", stockHandler.Receive)
	stock.Post("/transfer", stockHandler.Transfer)
	stock.Post("/withdraw", stockHandler.Withdraw)
	stock.Post("/adjust", managers, stockHandler.Adjust)
	stock.Get("/consistency/:product_id", managers, stockHandler.VerifyConsistency)

	// Sales
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CompleteSale, deps.SaleQuery, deps.Receipt)
	salesGroup.Post("/", saleHandler.Complete)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Expenses
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Delete("/:id", managers, expenseHandler.Delete)

	// Attendance
	attendance := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	attendance.Post("/check-in", attendanceHandler.CheckIn)
	attendance.Post("/check-out", attendanceHandler.CheckOut)
	attendance.Get("/", attendanceHandler.List)

	// Dashboard (solo lectura)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.ReportUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/profit-loss", managers, dashboardHandler.ProfitLoss)
	dashboard.Get("/recent-activities", dashboardHandler.RecentActivities)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", managers, userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", managers, userHandler.Update)
	users.Put("/:id/password", userHandler.ChangePassword)
	users.Delete("/:id", RequireRole(entity.RoleOwner), userHandler.Delete)
}
