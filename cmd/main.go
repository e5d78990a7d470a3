package main

import (
	"log"
	"os"

	"github.com/JManoj01/UMassDining/config"
	"github.com/JManoj01/UMassDining/routes"
	"github.com/JManoj01/UMassDining/services"

	"github.com/robfig/cron/v3"
)

func main() {
	config.InitDB()
	config.InitRedis()

	halls := services.DefaultDiningHalls()
	if err := services.NewDiningHallService().SeedHalls(halls); err != nil {
		log.Fatalf("Failed to seed dining halls: %v", err)
	}

	hub := services.NewRealtimeHub()
	scraper := services.NewScrapeService(services.NewGormMenuStore(), halls, hub)

	spec := os.Getenv("SCRAPE_CRON")
	if spec == "" {
		spec = "0 6 * * *" // daily at 06:00
	}
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		log.Println("Starting scheduled menu scrape")
		if _, err := scraper.ScrapeAllHalls(); err != nil {
			log.Printf("Scheduled scrape failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Invalid SCRAPE_CRON %q: %v", spec, err)
	}
	c.Start()

	r := routes.SetupRouter(scraper, hub)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
