package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bonaken-game/bonaken/internal/config"
	"github.com/bonaken-game/bonaken/internal/logger"
	"github.com/bonaken-game/bonaken/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	logToFile := flag.Bool("log-file", false, "log to ~/.bonaken/server.log instead of stderr")
	flag.Parse()

	if *logToFile {
		if err := logger.Init(); err != nil {
			log.Fatalf("logger init failed: %v", err)
		}
		defer logger.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("config load failed, using defaults: %v", err)
		cfg = config.Default()
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("server init failed: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
		os.Exit(0)
	}()

	log.Println("🎮 Starting Bonaken server...")
	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}
