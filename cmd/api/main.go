package main

import (
	"github.com/gin-gonic/gin"

	"github.com/InstitutAurelia/institute-scheduler/internal/config"
	"github.com/InstitutAurelia/institute-scheduler/internal/db"
	"github.com/InstitutAurelia/institute-scheduler/internal/logger"
	"github.com/InstitutAurelia/institute-scheduler/internal/middleware"
	"github.com/InstitutAurelia/institute-scheduler/internal/routes"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.IsDev())

	database := db.NewDB(cfg, log)

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("institute scheduler démarré")

	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
