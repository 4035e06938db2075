package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "mortgage-risk-api/internal/adapter/http"
	"mortgage-risk-api/internal/adapter/middleware"
	"mortgage-risk-api/internal/config"
	"mortgage-risk-api/internal/infrastructure/cache"
	"mortgage-risk-api/internal/infrastructure/model"
	"mortgage-risk-api/internal/usecase/assessment"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// The classifier is loaded exactly once; without it there is nothing
	// to serve, so a load failure is fatal.
	clf, err := model.LoadArtifact(cfg.ModelPath)
	if err != nil {
		log.Fatalf("load classifier: %v", err)
	}
	log.Printf("classifier loaded (version %s)", clf.Version())

	uc := assessment.NewUsecase(clf)
	h := httpadp.NewHandler(clf.Version())
	ah := httpadp.NewAssessmentHandler(uc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// routes
	e.GET("/health", h.Health)

	assessments := e.Group("/assessments")
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatalf("open redis: %v", err)
		}
		assessments.Use(middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}
	assessments.POST("", ah.Assess)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
