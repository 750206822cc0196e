package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/permissions"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, cfg.JWTSecret, cfg.JWTTTL)
	groupSvc := services.NewGroupService(groupRepo, userRepo)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	groupCtrl := controllers.NewGroupController(groupSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret, userRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", auth, authCtrl.Me)

	// Catalog — reads for anyone authenticated, writes Manager only
	menu := r.Group("/menu-items", auth, middlewares.RequireManagerOrReadOnly())
	{
		menu.GET("", menuCtrl.List)
		menu.POST("", menuCtrl.Create)
		menu.GET("/:id", menuCtrl.Get)
		menu.PUT("/:id", menuCtrl.Put)
		menu.PATCH("/:id", menuCtrl.Patch)
		menu.DELETE("/:id", menuCtrl.Delete)
	}

	// Role membership — Manager only
	groups := r.Group("/groups", auth, middlewares.Require(permissions.IsManager))
	{
		groups.GET("/:group/users", groupCtrl.ListMembers)
		groups.POST("/:group/users", groupCtrl.AddMember)
		groups.DELETE("/:group/users/:userId", groupCtrl.RemoveMember)
	}

	// Cart — Customer only
	cart := r.Group("/cart/menu-items", auth, middlewares.Require(permissions.IsCustomer))
	{
		cart.GET("", cartCtrl.List)
		cart.POST("", cartCtrl.Add)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders — listing/detail shape themselves by role in the service
	orders := r.Group("/orders", auth)
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", middlewares.Require(permissions.IsCustomer), orderCtrl.Create)
		orders.GET("/:orderId", orderCtrl.Detail)
		orders.PUT("/:orderId", middlewares.Require(permissions.IsManagerOrDeliveryCrew), orderCtrl.Update)
		orders.PATCH("/:orderId", middlewares.Require(permissions.IsManagerOrDeliveryCrew), orderCtrl.Update)
		orders.DELETE("/:orderId", middlewares.Require(permissions.IsManager), orderCtrl.Delete)
	}
}
