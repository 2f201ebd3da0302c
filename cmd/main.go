package main

import (
	"log"
	"os"

	"github.com/andrewEdson/Macro-Tracker/config"
	"github.com/andrewEdson/Macro-Tracker/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
