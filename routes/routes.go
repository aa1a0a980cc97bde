package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"comfyinn-backend/config"
	"comfyinn-backend/controllers"
	"comfyinn-backend/middleware"
	"comfyinn-backend/services"
)

// Controllers groups every handler set the router mounts.
type Controllers struct {
	Categories *controllers.CategoryController
	MenuItems  *controllers.MenuItemController
	Rooms      *controllers.RoomController
	Services   *controllers.ServiceController
	Halls      *controllers.ConferenceHallController
	Uploads    *controllers.UploadController
	Stats      *controllers.StatsController
}

func SetupRouter(cfg *config.Config, ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := cfg.App.CorsOrigins
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.Images.Store == config.ImageStoreLocal {
		r.Static(services.UploadsRoute, cfg.Images.UploadDir)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/menu", ctl.Categories.GetMenu)
		api.GET("/stats", ctl.Stats.GetStats)
		api.POST("/upload", ctl.Uploads.UploadImage)

		categories := api.Group("/categories")
		{
			categories.GET("", ctl.Categories.GetCategories)
			categories.POST("", ctl.Categories.CreateCategory)
			categories.GET("/:id", ctl.Categories.GetCategory)
			categories.GET("/:id/items", ctl.Categories.GetCategoryItems)
			categories.PUT("/:id", ctl.Categories.UpdateCategory)
			categories.DELETE("/:id", ctl.Categories.DeleteCategory)
		}

		items := api.Group("/menu-items")
		{
			items.GET("", ctl.MenuItems.GetMenuItems)
			items.POST("", ctl.MenuItems.CreateMenuItem)
			items.GET("/:id", ctl.MenuItems.GetMenuItem)
			items.PUT("/:id", ctl.MenuItems.UpdateMenuItem)
			items.DELETE("/:id", ctl.MenuItems.DeleteMenuItem)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", ctl.Rooms.GetRooms)
			rooms.POST("", ctl.Rooms.CreateRoom)

			// static segments before /:id
			rooms.GET("/available", ctl.Rooms.GetAvailableRooms)
			rooms.GET("/facets", ctl.Rooms.GetRoomFacets)
			rooms.GET("/search", ctl.Rooms.SearchRooms)

			rooms.GET("/:id", ctl.Rooms.GetRoom)
			rooms.PUT("/:id", ctl.Rooms.UpdateRoom)
			rooms.DELETE("/:id", ctl.Rooms.DeleteRoom)
		}

		svc := api.Group("/services")
		{
			svc.GET("", ctl.Services.GetServices)
			svc.POST("", ctl.Services.CreateService)
			svc.GET("/available", ctl.Services.GetAvailableServices)
			svc.GET("/:id", ctl.Services.GetService)
			svc.PUT("/:id", ctl.Services.UpdateService)
			svc.DELETE("/:id", ctl.Services.DeleteService)
		}

		halls := api.Group("/conference-halls")
		{
			halls.GET("", ctl.Halls.GetHalls)
			halls.POST("", ctl.Halls.CreateHall)
			halls.GET("/available", ctl.Halls.GetAvailableHalls)
			halls.GET("/:id", ctl.Halls.GetHall)
			halls.PUT("/:id", ctl.Halls.UpdateHall)
			halls.DELETE("/:id", ctl.Halls.DeleteHall)
		}
	}

	return r
}
