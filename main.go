package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"restaurant-pos/config"
	"restaurant-pos/controllers"
	"restaurant-pos/middleware"
	"restaurant-pos/routes"
	"restaurant-pos/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	gin.SetMode(gin.ReleaseMode)
	log.Printf("Running in %s mode", gin.Mode())

	r := gin.Default()

	middleware.InitMetrics()
	r.Use(middleware.PrometheusMiddleware())
	r.GET("/metrics", func(c *gin.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	config.ConnectDatabase()
	config.EnsureIndexes()
	controllers.EnsureDefaultAdmin()
	controllers.Setup()
	routes.InitializeRoutes(r)

	// Background jobs: retry orphaned draft cleanup and mail the daily
	// sales summary.
	s := gocron.NewScheduler(time.Local)
	s.Every(5).Minutes().Do(utils.SweepOrphanDrafts)
	s.Every(1).Day().At("21:00").Do(utils.SendDailySalesReport)
	s.StartAsync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	r.Run(":" + port)
}
