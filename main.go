package main

import (
	"fmt"
	"log"

	"github.com/igor-rodz/Projeto-delivery/configs"
	"github.com/igor-rodz/Projeto-delivery/middlewares"
	"github.com/igor-rodz/Projeto-delivery/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	db := configs.DB()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// uploaded images (logos, covers, product shots)
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
