package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jengzang/bcn-heatmap-go/internal/api"
	"github.com/jengzang/bcn-heatmap-go/internal/config"
	"github.com/jengzang/bcn-heatmap-go/internal/database"
	"github.com/jengzang/bcn-heatmap-go/internal/repository"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("[WARN] Error loading .env file: %v", err)
	}

	// 加载配置
	cfg := config.Load()

	source, err := newRecordSource(cfg)
	if err != nil {
		log.Fatal("Failed to open record source:", err)
	}
	defer database.Close()

	// 初始化路由
	router, err := api.SetupRouter(cfg, source)
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s (records from %s)", cfg.Port, source.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("Shutdown signal received")
	case err := <-serverErrors:
		log.Fatal("Failed to start server:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] Server shutdown: %v", err)
	}
}

// newRecordSource picks the census record backend named by DATA_SOURCE
func newRecordSource(cfg *config.Config) (repository.RecordSource, error) {
	switch cfg.DataSource {
	case config.SourceSQLite:
		if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
			return nil, err
		}
		return repository.NewSQLiteRecordSource(database.GetDB()), nil
	default:
		if cfg.DataSource != config.SourceJSON {
			log.Printf("[WARN] Unknown DATA_SOURCE %q, reading %s", cfg.DataSource, cfg.PopulationFile)
		}
		return repository.NewJSONRecordSource(cfg.PopulationFile), nil
	}
}
