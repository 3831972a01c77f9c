package routes

import (
	"net/http"
	"time"

	"github.com/Techkepper/PoskepperApi/configs"
	"github.com/Techkepper/PoskepperApi/controllers"
	"github.com/Techkepper/PoskepperApi/middlewares"
	"github.com/Techkepper/PoskepperApi/pkg/mailer"
	"github.com/Techkepper/PoskepperApi/pkg/metrics"
	"github.com/Techkepper/PoskepperApi/repository"
	"github.com/Techkepper/PoskepperApi/services"
	"github.com/Techkepper/PoskepperApi/ws"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const cookieTTL = 24 * time.Hour

// Deps are the long-lived collaborators owned by main.
type Deps struct {
	DB        *gorm.DB
	Config    *configs.Config
	Logger    *logrus.Logger
	Hub       *ws.OrderHub
	Publisher services.Publisher
	Mailer    mailer.Sender
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	r.Use(
		middlewares.RequestLogger(d.Logger),
		middlewares.Metrics(),
		middlewares.CORSMiddleware(cfg.Origin),
	)
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Repositories
	userRepo := repository.NewUserRepository(d.DB)
	authRepo := repository.NewAuthRepository(d.DB)
	clientRepo := repository.NewClientRepository(d.DB)
	categoryRepo := repository.NewCategoryRepository(d.DB)
	productRepo := repository.NewProductRepository(d.DB)
	tableRepo := repository.NewTableRepository(d.DB)
	cashRepo := repository.NewCashRegisterRepository(d.DB)
	orderRepo := repository.NewOrderRepository(d.DB)
	invoiceRepo := repository.NewInvoiceRepository(d.DB)
	movementRepo := repository.NewMovementRepository(d.DB)
	countRepo := repository.NewStockCountRepository(d.DB)
	shrinkRepo := repository.NewShrinkageRepository(d.DB)
	utilRepo := repository.NewUtilRepository(d.DB)

	// Services
	authSvc := services.NewAuthService(authRepo, userRepo, d.Mailer, cfg.JWTSecret, cfg.JWTTTL, cfg.RecoveryTokenTTL)
	orderSvc := services.NewOrderService(invoiceRepo, orderRepo, tableRepo, d.Publisher, d.Logger.WithField("module", "orders"))
	invoiceSvc := services.NewInvoiceService(invoiceRepo, orderRepo, d.Publisher)
	countSvc := services.NewStockCountService(countRepo)
	reportSvc := services.NewReportService(countRepo, movementRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cookieTTL)
	userCtrl := controllers.NewUserController(userRepo, reportSvc)
	clientCtrl := controllers.NewClientController(clientRepo)
	categoryCtrl := controllers.NewCategoryController(categoryRepo)
	productCtrl := controllers.NewProductController(productRepo)
	tableCtrl := controllers.NewTableController(tableRepo)
	cashCtrl := controllers.NewCashRegisterController(cashRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	invoiceCtrl := controllers.NewInvoiceController(invoiceSvc, invoiceRepo)
	movementCtrl := controllers.NewMovementController(movementRepo, reportSvc)
	countCtrl := controllers.NewStockCountController(countSvc, reportSvc)
	shrinkCtrl := controllers.NewShrinkageController(shrinkRepo)
	utilCtrl := controllers.NewUtilController(utilRepo)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	api := r.Group("/api")

	// Auth (public)
	a := api.Group("/auth")
	{
		a.POST("/iniciar-sesion", authCtrl.Login)
		a.POST("/cerrar-sesion", authCtrl.Logout)
		a.POST("/solicitar-token-recuperacion", authCtrl.RequestRecovery)
		a.POST("/verificar-token", authCtrl.VerifyToken)
		a.POST("/cambiar-contrasenna", authCtrl.ChangePassword)
	}

	// Auth (protected)
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/mi-perfil", authCtrl.Profile)
		aAuth.POST("/eliminar-mi-cuenta", authCtrl.DeleteAccount)
		aAuth.POST("/restablecer-mi-contrasenna", authCtrl.ResetPassword)
	}

	users := api.Group("/usuarios", auth)
	{
		users.POST("/registrar", userCtrl.Register)
		users.GET("", userCtrl.List)
		users.GET("/roles", userCtrl.Roles)
		users.GET("/meseros/ordenes", userCtrl.WaitersWithOrders)
		users.GET("/:id", userCtrl.Get)
		users.PUT("/:id", userCtrl.Update)
		users.DELETE("/:id", userCtrl.Delete)
		users.POST("/comisiones", userCtrl.Commissions)
		// XLSX download
		users.POST("/reporte/comision", userCtrl.CommissionReport)
	}

	clients := api.Group("/clientes", auth)
	{
		clients.POST("/registrar", clientCtrl.Register)
		clients.GET("", clientCtrl.List)
		clients.GET("/:id", clientCtrl.Get)
		clients.PUT("/:id", clientCtrl.Update)
		clients.DELETE("/:id", clientCtrl.Delete)
	}

	categories := api.Group("/categorias", auth)
	{
		categories.GET("", categoryCtrl.List)
		categories.POST("/registrar", categoryCtrl.Register)
		categories.PUT("/:id", categoryCtrl.Update)
		categories.DELETE("/:id", categoryCtrl.Delete)
	}

	products := api.Group("/productos", auth)
	{
		products.POST("/registrar", middlewares.PhotoUpload(cfg.UploadMaxBytes, true), productCtrl.Register)
		products.GET("", productCtrl.List)
		products.GET("/platos", productCtrl.Dishes)
		products.GET("/productos", productCtrl.Goods)
		products.GET("/categoria/:nombreCategoria", productCtrl.ByCategory)
		products.GET("/top/mas-vendidos", productCtrl.TopSellers)
		products.GET("/imagen/:id", productCtrl.Image)
		products.GET("/:id", productCtrl.Get)
		products.PUT("/:id", middlewares.PhotoUpload(cfg.UploadMaxBytes, false), productCtrl.Update)
		products.DELETE("/:id", productCtrl.Delete)
	}

	tables := api.Group("/mesas", auth)
	{
		tables.POST("/registrar", tableCtrl.Register)
		tables.GET("", tableCtrl.List)
		tables.GET("/:id/ocupada", tableCtrl.Occupied)
		tables.PUT("/:id", tableCtrl.Update)
		tables.DELETE("/:id", tableCtrl.Delete)
	}

	// wildcard names must agree per method and position, so the PUT routes
	// share :id for what clients call :idCaja
	cash := api.Group("/cajas", auth)
	{
		cash.POST("/registrar", cashCtrl.Register)
		cash.POST("/asignar", cashCtrl.Assign)
		cash.GET("", cashCtrl.List)
		cash.GET("/disponibles", cashCtrl.Available)
		cash.GET("/:idUsuario", cashCtrl.ByUser)
		cash.GET("/:idUsuario/tieneCaja", cashCtrl.UserHasRegister)
		cash.PUT("/:id", cashCtrl.Update)
		cash.PUT("/:id/estado", cashCtrl.SetState)
		cash.DELETE("/:id", cashCtrl.Delete)
	}

	orders := api.Group("/ordenes", auth)
	{
		orders.POST("/registrar", orderCtrl.Register)
		orders.GET("", orderCtrl.List)
		orders.PUT("/:idOrden/estado", orderCtrl.UpdateStatus)
	}

	invoices := api.Group("/facturas")
	{
		invoices.POST("/registrar", invoiceCtrl.Register)
		invoices.POST("/registrar/sender", invoiceCtrl.RegisterSender)
		invoices.POST("/registrar/receiver", invoiceCtrl.RegisterReceiver)
		invoices.POST("/registrar/details", invoiceCtrl.RegisterDetails)
		invoices.GET("", invoiceCtrl.List)
		invoices.GET("/:id", invoiceCtrl.Get)
		invoices.PUT("/:id", invoiceCtrl.MarkPaid)
	}

	movements := api.Group("/movimientos", auth)
	{
		movements.POST("/registrar", movementCtrl.Register)
		movements.GET("", movementCtrl.List)
		// XLSX download
		movements.GET("/reporteMovimiento/:id", movementCtrl.Report)
		movements.GET("/:id", movementCtrl.Get)
	}

	counts := api.Group("/toma", auth)
	{
		counts.POST("/registrar", countCtrl.Register)
		counts.POST("/agregar-producto", countCtrl.AddProduct)
		counts.POST("/subir-excel", countCtrl.Upload)
		counts.GET("/descargar-excel", countCtrl.Template)
		// reports below are XLSX downloads
		counts.GET("/reporte-datos", countCtrl.DifferencesReport)
		counts.GET("/reporte-estado", countCtrl.SnapshotReport)
	}

	shrinkage := api.Group("/mermas", auth)
	{
		shrinkage.POST("/registrar", shrinkCtrl.Register)
		shrinkage.GET("", shrinkCtrl.List)
	}

	api.GET("/utils/hora", utilCtrl.Now)

	// Realtime order board
	r.GET("/ws/ordenes", middlewares.WSAuthMiddleware(cfg.JWTSecret), d.Hub.HandleWebSocket)
}
