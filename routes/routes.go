package routes

import (
	"github.com/mohameddsalmann/resturants-mangment/configs"
	"github.com/mohameddsalmann/resturants-mangment/controllers"
	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/middlewares"
	"github.com/mohameddsalmann/resturants-mangment/repository"
	"github.com/mohameddsalmann/resturants-mangment/services"
	"github.com/mohameddsalmann/resturants-mangment/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	promoRepo := repository.NewPromoRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, restRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo)
	menuSvc := services.NewMenuService(db, menuRepo)
	tableSvc := services.NewTableService(tableRepo)
	staffSvc := services.NewStaffService(staffRepo, cfg.JWTSecret, cfg.JWTTTL)
	promoSvc := services.NewPromoService(promoRepo)
	guestSvc := services.NewGuestService(db, sessionRepo, cartRepo, restRepo, tableRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, promoRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, tableRepo, restRepo)
	orderSvc.Notifier = hub

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, menuSvc, authSvc)
	guestCtrl := controllers.NewGuestController(guestSvc, cfg.JWTSecret, cfg.JWTTTL)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, cartSvc, guestSvc)
	kitchenCtrl := controllers.NewKitchenController(staffSvc, orderSvc)
	ownerOrderCtrl := controllers.NewOwnerOrderController(orderSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	staffCtrl := controllers.NewStaffController(staffSvc)
	promoCtrl := controllers.NewPromoController(promoSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleOwner), authCtrl.Me)

	// Public catalog, reached from the QR landing page
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", restCtrl.Menu)

	// Guest session bootstrap (QR scan)
	r.POST("/sessions", guestCtrl.StartSession)

	// Guest (session token)
	g := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleGuest))
	{
		g.GET("/cart", cartCtrl.Get)
		g.POST("/cart/items", cartCtrl.AddItem)
		g.PATCH("/cart/items/:menuItemId", cartCtrl.UpdateQuantity)
		g.PATCH("/cart/items/:menuItemId/note", cartCtrl.SetNote)
		g.DELETE("/cart/items/:menuItemId", cartCtrl.RemoveItem)
		g.POST("/cart/promo", cartCtrl.ApplyPromo)
		g.DELETE("/cart/promo", cartCtrl.RemovePromo)
		g.DELETE("/cart", cartCtrl.Clear)

		g.POST("/orders", orderCtrl.Checkout)
		g.GET("/orders", orderCtrl.ListForTable)
		g.GET("/orders/current", orderCtrl.Current)
		g.GET("/orders/:id", orderCtrl.Detail)
	}

	// Kitchen
	r.POST("/kitchen/login", kitchenCtrl.Login)
	k := r.Group("/kitchen", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleKitchen))
	{
		k.GET("/orders", kitchenCtrl.Queue)
		k.PATCH("/orders/:id/status", kitchenCtrl.AdvanceStatus)
	}

	// Owner: onboarding first, everything else assumes a restaurant exists
	o := r.Group("/owner", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleOwner))
	{
		o.POST("/restaurant", restCtrl.Onboard)
		o.GET("/restaurant", restCtrl.Mine)
		o.PATCH("/restaurant", restCtrl.UpdateSettings)

		o.GET("/dashboard", ownerOrderCtrl.Dashboard)

		o.GET("/menu", menuCtrl.Menu)
		o.POST("/menu/categories", menuCtrl.CreateCategory)
		o.PATCH("/menu/categories/:categoryId", menuCtrl.UpdateCategory)
		o.DELETE("/menu/categories/:categoryId", menuCtrl.DeleteCategory)
		o.POST("/menu/items", menuCtrl.CreateItem)
		o.PATCH("/menu/items/:itemId", menuCtrl.UpdateItem)
		o.DELETE("/menu/items/:itemId", menuCtrl.DeleteItem)
		o.POST("/menu/items/:itemId/toggle", menuCtrl.ToggleAvailability)

		o.GET("/tables", tableCtrl.List)
		o.POST("/tables", tableCtrl.Create)
		o.PATCH("/tables/:tableId/status", tableCtrl.SetStatus)
		o.DELETE("/tables/:tableId", tableCtrl.Delete)

		o.GET("/staff", staffCtrl.List)
		o.POST("/staff", staffCtrl.Add)
		o.DELETE("/staff/:staffId", staffCtrl.Remove)

		o.GET("/promos", promoCtrl.List)
		o.POST("/promos", promoCtrl.Create)
		o.PATCH("/promos/:promoId", promoCtrl.Update)
		o.DELETE("/promos/:promoId", promoCtrl.Delete)

		o.GET("/orders", ownerOrderCtrl.List)
		o.GET("/orders/:id", ownerOrderCtrl.Detail)
		o.PATCH("/orders/:id/status", ownerOrderCtrl.AdvanceStatus)
	}

	// Live order feed for kitchen displays and owner dashboards
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret, entity.RoleKitchen, entity.RoleOwner), hub.HandleWebSocket)
}
