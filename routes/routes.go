package routes

import (
	"github.com/igor-rodz/Projeto-delivery/configs"
	"github.com/igor-rodz/Projeto-delivery/controllers"
	"github.com/igor-rodz/Projeto-delivery/middlewares"
	"github.com/igor-rodz/Projeto-delivery/repository"
	"github.com/igor-rodz/Projeto-delivery/services"
	"github.com/igor-rodz/Projeto-delivery/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	bizRepo := repository.NewBusinessRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Realtime hub
	hub := ws.NewOrderHub(bizRepo)
	go hub.Run()

	// Services
	bizSvc := services.NewBusinessService(db, bizRepo, catalogRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, catalogRepo, bizRepo, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	menuCtrl := controllers.NewMenuController(bizSvc, cfg.PublicBaseURL)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, bizRepo)
	dashOrderCtrl := controllers.NewDashboardOrderController(orderSvc, bizRepo, catalogRepo)
	bizCtrl := controllers.NewBusinessController(bizSvc, bizRepo, cfg)
	catalogCtrl := controllers.NewCatalogController(catalogRepo, bizRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Storefront (public, session-keyed cart)
	r.GET("/menu/:slug", menuCtrl.Menu)
	r.GET("/menu/:slug/qr", menuCtrl.QR)
	r.POST("/menu/:slug/checkout", orderCtrl.Checkout)
	r.GET("/orders/:id", orderCtrl.Confirmation)

	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items", cartCtrl.UpdateQuantity)
		cart.DELETE("/items", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Dashboard (merchant)
	dash := r.Group("/dashboard", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		dash.POST("/business", bizCtrl.Onboard)
		dash.GET("/business", bizCtrl.MyBusiness)
		dash.PATCH("/business", bizCtrl.UpdateSettings)
		dash.POST("/uploads", bizCtrl.Upload)
		dash.GET("/stats", dashOrderCtrl.Stats)

		dash.GET("/orders", dashOrderCtrl.List)
		dash.GET("/orders/:id", dashOrderCtrl.Detail)
		dash.PATCH("/orders/:id/status", dashOrderCtrl.UpdateStatus)

		dash.GET("/catalog", catalogCtrl.List)
		dash.POST("/categories", catalogCtrl.CreateCategory)
		dash.PATCH("/categories/:id", catalogCtrl.UpdateCategory)
		dash.DELETE("/categories/:id", catalogCtrl.DeleteCategory)
		dash.POST("/products", catalogCtrl.CreateProduct)
		dash.PATCH("/products/:id", catalogCtrl.UpdateProduct)
		dash.PATCH("/products/:id/toggle", catalogCtrl.ToggleProduct)
		dash.DELETE("/products/:id", catalogCtrl.DeleteProduct)
		dash.POST("/additionals", catalogCtrl.CreateAdditional)
		dash.PATCH("/additionals/:id", catalogCtrl.UpdateAdditional)
		dash.DELETE("/additionals/:id", catalogCtrl.DeleteAdditional)
		dash.POST("/delivery-areas", catalogCtrl.CreateDeliveryArea)
		dash.PATCH("/delivery-areas/:id", catalogCtrl.UpdateDeliveryArea)
		dash.DELETE("/delivery-areas/:id", catalogCtrl.DeleteDeliveryArea)
	}

	// Realtime change feed for the dashboard order list
	r.GET("/ws/dashboard/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
