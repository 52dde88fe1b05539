package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/passoapasso/cantina-api/internal/application/auth"
	appledger "github.com/passoapasso/cantina-api/internal/application/ledger"
	"github.com/passoapasso/cantina-api/internal/application/report"
	"github.com/passoapasso/cantina-api/internal/application/sale"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC      *appledger.CustomerUseCase
	ProductUC       *appledger.ProductUseCase
	StaffUC         *appledger.StaffUseCase
	SupplyUC        *appledger.SupplyUseCase
	SaleUC          *sale.SaleUseCase
	SummaryUC       *report.SummaryUseCase
	AuthUC          *auth.AuthUseCase
	Photos          appledger.PhotoStorage
	JWTSecret       string
	DashboardSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Dashboard (secreto estático, independiente de la sesión JWT)
	dashboard := api.Group("/dashboard", DashboardGate(deps.DashboardSecret))
	dashboardHandler := NewDashboardHandler(deps.SummaryUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/summary/pdf", dashboardHandler.SummaryPDF)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Post("/:id/credits", customerHandler.AddCredit)
	customers.Post("/:id/debits", customerHandler.AddDebit)
	customers.Delete("/:id", customerHandler.Delete)

	// Productos de la cantina
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Photos)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Post("/:id/stock-in", productHandler.StockIn)
	products.Post("/:id/stock-out", productHandler.StockOut)
	products.Post("/:id/adjust", productHandler.Adjust)
	products.Post("/:id/photo", productHandler.UploadPhoto)
	products.Delete("/:id", productHandler.Delete)

	// Colaboradores
	staff := protected.Group("/staff")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Post("/", staffHandler.Create)
	staff.Get("/", staffHandler.List)
	staff.Post("/:id/debits", staffHandler.AddDebit)
	staff.Post("/:id/payments", staffHandler.RegisterPayment)
	staff.Delete("/:id", staffHandler.Delete)

	// Mantimentos de la despensa
	supplies := protected.Group("/supplies")
	supplyHandler := NewSupplyHandler(deps.SupplyUC, deps.Photos)
	supplies.Post("/", supplyHandler.Create)
	supplies.Get("/", supplyHandler.List)
	supplies.Post("/:id/stock-in", supplyHandler.StockIn)
	supplies.Post("/:id/stock-out", supplyHandler.StockOut)
	supplies.Post("/:id/adjust", supplyHandler.Adjust)
	supplies.Post("/:id/photo", supplyHandler.UploadPhoto)
	supplies.Delete("/:id", supplyHandler.Delete)

	// Venta integrada
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/customer", saleHandler.SellToCustomer)
	sales.Post("/staff", saleHandler.SellToStaff)
}
