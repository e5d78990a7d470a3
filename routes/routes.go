package routes

import (
	"github.com/JManoj01/UMassDining/controllers"
	"github.com/JManoj01/UMassDining/middlewares"
	"github.com/JManoj01/UMassDining/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(scraper *services.ScrapeService, hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	scrapeCtl := controllers.NewScrapeController(scraper)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected API
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/halls", controllers.ListHalls)

		api.GET("/menu/today", controllers.GetTodaysMenu)
		api.GET("/menu", controllers.GetMenuItems)
		api.GET("/menu/search", controllers.SearchMenu)
		api.POST("/menu/scrape", scrapeCtl.TriggerScrape)
		api.DELETE("/menu/cleanup", controllers.CleanupMenu)

		api.GET("/preferences", controllers.GetPreferences)
		api.PUT("/preferences", controllers.UpdatePreferences)

		api.POST("/ratings", controllers.RateMenuItem)
		api.GET("/ratings", controllers.ListMyRatings)

		api.GET("/recommendations", controllers.GetRecommendations)

		api.GET("/ws/menu", rtCtl.MenuWS)
	}

	return r
}
