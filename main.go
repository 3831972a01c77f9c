package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Techkepper/PoskepperApi/configs"
	"github.com/Techkepper/PoskepperApi/pkg/mailer"
	"github.com/Techkepper/PoskepperApi/pkg/mq"
	"github.com/Techkepper/PoskepperApi/repository"
	"github.com/Techkepper/PoskepperApi/routes"
	"github.com/Techkepper/PoskepperApi/services"
	"github.com/Techkepper/PoskepperApi/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	logger := configs.NewLogger(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		configs.LogError(logger, "main", "ConnectionDB", "startup", cfg.DBHost, err)
		os.Exit(1)
	}
	db := configs.DB()

	if err := configs.SeedAdmin(ctx, cfg, repository.NewUserRepository(db), logger); err != nil {
		configs.LogError(logger, "main", "SeedAdmin", "startup", cfg.AdminUser, err)
		os.Exit(1)
	}

	// Realtime
	hub := ws.NewOrderHub(logger.WithField("module", "ws"), cfg.Origin)
	go hub.Run(ctx)

	sinks := services.FanoutPublisher{hub}
	if cfg.AMQPURL != "" {
		bus, err := mq.Dial(cfg.AMQPURL, cfg.AMQPExchange, logger.WithField("module", "mq"))
		if err != nil {
			// websocket delivery still works without the broker
			configs.LogError(logger, "main", "mq.Dial", "startup", cfg.AMQPExchange, err)
		} else {
			defer bus.Close()
			sinks = append(sinks, bus)
		}
	}

	var mail mailer.Sender = mailer.Log{Logger: logger.WithField("module", "mailer")}
	if cfg.EmailHost != "" {
		mail = mailer.NewSMTP(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass, cfg.EmailFrom)
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Config:    cfg,
		Logger:    logger,
		Hub:       hub,
		Publisher: sinks,
		Mailer:    mail,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.WithField("addr", srv.Addr).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			configs.LogError(logger, "main", "ListenAndServe", "http", srv.Addr, err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		configs.LogError(logger, "main", "Shutdown", "http", nil, err)
	}
}
