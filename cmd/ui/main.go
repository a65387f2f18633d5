package main

import (
	"log"

	"github.com/joho/godotenv"

	"randlab/internal/config"
	"randlab/internal/container"
	"randlab/ui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatal("Failed to wire dependencies:", err)
	}
	defer c.Close()

	app, err := ui.NewApp(c.Service)
	if err != nil {
		log.Fatal("Failed to create UI app:", err)
	}

	log.Println("Starting randlab UI on http://localhost:" + cfg.Server.Port)
	log.Fatal(app.Start(cfg.Server.Port))
}
