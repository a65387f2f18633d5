package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"randlab/adapters/api"
	"randlab/internal/config"
	"randlab/internal/container"
)

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
	log.Fatal(server.Start())
}
