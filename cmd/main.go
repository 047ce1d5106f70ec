package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/delta10/signalen-console/config"
	deps "github.com/delta10/signalen-console/internal/debs"
	api "github.com/delta10/signalen-console/internal/http/rest"
	"github.com/sirupsen/logrus"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if !cfg.HasToken() {
		logger.Warn("API_TOKEN is not set, signal routes will refuse to serve")
	}

	a := &api.API{
		Config: cfg,
		Deps:   deps,
		Logger: logger,
	}
	a.Init()
	go deps.WebSocket.Run()
	go func() {
		logger.Infof("Server running on port %v ...", cfg.Port)
		logger.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	logger.Info("Request to shutdown server. Doing nothing for ", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	logger.Info("Shutting down server...")
	logger.Fatal(a.Shutdown())
}
