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

	"github.com/sirupsen/logrus"

	"tweetfeed/cmd/app"
	"tweetfeed/internal/config"
	handlers "tweetfeed/internal/handler"
	"tweetfeed/internal/logger"
	"tweetfeed/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.Init(cfg.Log)

	db, services, err := app.App(cfg)
	if err != nil {
		log.WithError(err).Fatal("startup failed")
	}
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	router := handlers.NewRouter(handler)
	router.Use(middleware.MetricsMiddleware)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.RecoverMiddleware,
		middleware.CORSMiddleware,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           handlerChain,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"addr":         server.Addr,
			"database":     cfg.DB.DbNAME,
			"demo_content": cfg.DemoContentEnabled,
		}).Info("server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
