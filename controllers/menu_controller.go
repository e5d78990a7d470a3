package controllers

import (
	"net/http"
	"time"

	"github.com/JManoj01/UMassDining/services"

	"github.com/gin-gonic/gin"
)

// GET /menu/today
func GetTodaysMenu(c *gin.Context) {
	menuSvc := services.NewMenuService()
	items, err := menuSvc.GetTodaysMenu()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /menu?date=2026-09-01&hall=worcester&meal=lunch
func GetMenuItems(c *gin.Context) {
	date := services.Today()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	menuSvc := services.NewMenuService()
	items, err := menuSvc.GetMenuItems(date, c.Query("hall"), c.Query("meal"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /menu/search?q=chicken
func SearchMenu(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	menuSvc := services.NewMenuService()
	items, err := menuSvc.SearchMenu(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// DELETE /menu/cleanup?before=2026-08-01
func CleanupMenu(c *gin.Context) {
	raw := c.Query("before")
	cutoff, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "before must be YYYY-MM-DD"})
		return
	}

	menuSvc := services.NewMenuService()
	deleted, err := menuSvc.CleanupBefore(cutoff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ScrapeController exposes the on-demand scrape trigger; the same service
// instance is driven by the cron schedule.
type ScrapeController struct {
	Scraper *services.ScrapeService
}

func NewScrapeController(s *services.ScrapeService) *ScrapeController {
	return &ScrapeController{Scraper: s}
}

// POST /menu/scrape
func (sc *ScrapeController) TriggerScrape(c *gin.Context) {
	items, err := sc.Scraper.ScrapeAllHalls()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scraped": len(items), "items": items})
}
