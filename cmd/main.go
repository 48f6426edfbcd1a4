package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jcamargo/panel-usuarios-backend/config"
	"github.com/jcamargo/panel-usuarios-backend/middleware"
	"github.com/jcamargo/panel-usuarios-backend/routes"
)

func main() {
	// Cargar .env
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró el archivo .env")
	}

	config.Init()

	r := gin.Default()
	r.Use(middleware.RequestID())

	// Activar CORS para el front
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r)

	// Puerto desde el env
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // por defecto si no hay PORT
	}

	log.Println("Servidor escuchando en el puerto " + port)
	r.Run(":" + port)
}
