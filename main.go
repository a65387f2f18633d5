package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"randlab/adapters/api"
	"randlab/internal/config"
	"randlab/internal/container"
	"randlab/ui"
)

// Root entrypoint: web UI plus the JSON API, sharing one analysis service so
// the one-run-at-a-time rule holds across both surfaces.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	gin.SetMode(cfg.API.GinMode)

	c, err := container.New(cfg)
	if err != nil {
		log.Fatal("Failed to wire dependencies:", err)
	}
	defer c.Close()

	server := api.NewServer(c.Service, c.Reports, cfg.API.Port)
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("API server failed:", err)
		}
	}()

	app, err := ui.NewApp(c.Service)
	if err != nil {
		log.Fatal("Failed to create UI app:", err)
	}

	log.Println("Starting randlab UI on http://localhost:" + cfg.Server.Port)
	log.Fatal(app.Start(cfg.Server.Port))
}
