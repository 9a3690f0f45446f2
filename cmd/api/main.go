package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpadp "cotamarket/internal/adapter/http"
	appmw "cotamarket/internal/adapter/middleware"
	"cotamarket/internal/adapter/repository/mysql"
	"cotamarket/internal/config"
	"cotamarket/internal/infrastructure/cache"
	"cotamarket/internal/infrastructure/db"
	proposalUC "cotamarket/internal/usecase/proposal"
	quotaUC "cotamarket/internal/usecase/quota"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connect failed")
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}

	quotaRepo := mysql.NewQuotaRepository(gdb)
	proposalRepo := mysql.NewProposalRepository(gdb)
	historyRepo := mysql.NewHistoryRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	quotas := quotaUC.NewUsecase(quotaRepo)
	proposals := proposalUC.NewUsecase(proposalRepo, historyRepo, tx)

	h := httpadp.NewHandler()
	qh := httpadp.NewQuotaHandler(quotas)
	ph := httpadp.NewProposalHandler(proposals)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	idemp := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// seller surface
	e.POST("/cotas", qh.Publish, idemp)
	e.PUT("/cotas/:cota_id", qh.Update, idemp)
	e.GET("/cotas/:cota_id", qh.Get)

	// buyer surface
	e.POST("/proposals", ph.Submit, idemp)
	e.GET("/proposals/:proposal_id", ph.Get)
	e.GET("/groups/:group_id", ph.GetGroup)

	// staff surface
	e.POST("/proposals/:proposal_id/transition", ph.Transition, idemp)
	e.PATCH("/admin/cotas/:cota_id/status", qh.OverrideStatus, idemp)

	addr := ":" + cfg.AppPort
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
