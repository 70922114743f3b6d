package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"marketplace/config"
	"marketplace/middleware"
	"marketplace/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()
		config.ConnectRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
