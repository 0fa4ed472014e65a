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

	"aikiddo-api/docs"
	"aikiddo-api/internal/adapters/storage/memory"
	pg "aikiddo-api/internal/adapters/storage/postgres"
	sqlitestore "aikiddo-api/internal/adapters/storage/sqlite"
	"aikiddo-api/internal/config"
	"aikiddo-api/internal/domain/students"
	"aikiddo-api/internal/platform/logger"
	"aikiddo-api/internal/router"
)

// @title AiKiddo API
// @version 1.0
// @description API de registros de estudiantes: intereses, mascotas y lecciones.
// @BasePath /
func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})

	// Validate ya verificó BASE_URL.
	scheme, host, basePath, _ := cfg.PublicEndpoint()
	docs.SwaggerInfo.Schemes = []string{scheme}
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.BasePath = basePath

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeDB, err := openStudents(ctx, cfg, log)
	if err != nil {
		log.Error("storage init failed", map[string]any{"driver": string(cfg.Database.Driver), "error": err.Error()})
		os.Exit(1)
	}
	defer closeDB()

	srv := &http.Server{
		Addr: cfg.HTTPServer.Addr,
		Handler: router.NewRouter(router.Options{
			Students:       repo,
			Logger:         log,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		}),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":   cfg.HTTPServer.Addr,
			"env":    cfg.Env,
			"driver": string(cfg.Database.Driver),
			"docs":   cfg.BaseURL + "/docs/index.html",
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			log.Error("server error", map[string]any{"error": err.Error()})
			closeDB()
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
}

// openStudents arma el repo según DB_DRIVER. El closer nunca es nil.
func openStudents(ctx context.Context, cfg *config.Config, log logger.Logger) (students.Repository, func(), error) {
	noop := func() {}

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := pg.Open(openCtx, cfg.Database.URL)
		if err != nil {
			return nil, noop, err
		}
		if cfg.Database.AutoMigrate {
			if err := pg.EnsureSchema(openCtx, db); err != nil {
				_ = db.Close()
				return nil, noop, fmt.Errorf("ensure schema: %w", err)
			}
			log.Info("schema ensured", nil)
		}
		return pg.NewStudentsRepo(db), func() { _ = db.Close() }, nil

	case config.DriverSQLite:
		db, err := sqlitestore.Open(cfg.Database.URL)
		if err != nil {
			return nil, noop, err
		}
		if cfg.Database.AutoMigrate {
			if err := sqlitestore.Migrate(db); err != nil {
				_ = sqlitestore.Close(db)
				return nil, noop, err
			}
			log.Info("schema ensured", nil)
		}
		return sqlitestore.NewStudentsRepo(db), func() { _ = sqlitestore.Close(db) }, nil

	case config.DriverMemory:
		log.Warn("using in-memory storage; data is lost on restart", nil)
		return memory.NewStore().Students(), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown driver %q", cfg.Database.Driver)
}
