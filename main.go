package main

import (
	"log"
	"os"

	"github.com/PrashantKhatiwada/pulsePoint/db"
	_ "github.com/PrashantKhatiwada/pulsePoint/docs"
	"github.com/PrashantKhatiwada/pulsePoint/routes"
	"github.com/PrashantKhatiwada/pulsePoint/utils"

	"github.com/gin-gonic/gin"
)

// @title PulsePoint API
// @version 1.0
// @description Crisis reporting API: submit geotagged incident reports and track their status
// @host localhost:5555
// @BasePath /
func main() {

	gin.SetMode(gin.ReleaseMode)

	// Connect and migrate the report store
	db.InitDB()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5555"
	}

	utils.LogInfo("PulsePoint API listening on port " + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
