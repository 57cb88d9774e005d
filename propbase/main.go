package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"propbase/propbase/config"
	"propbase/propbase/controllers"
	"propbase/propbase/middlewares"
	"propbase/propbase/routes"
	"propbase/propbase/sources/psql"
	"propbase/propbase/sources/psql/dao"
	"propbase/propbase/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.AppLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	propertyDAO := dao.NewPropertyDAO(db.DB)
	noteDAO := dao.NewNoteDAO(db.DB)
	propertyCtrl := controllers.NewPropertyController(propertyDAO, noteDAO)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Mount("/api", routes.PropertyRoutes(propertyCtrl))
	r.Mount("/health", routes.HealthRoutes(healthCtrl))

	// Static frontend: the add-property form at / and the assets
	// (map page, scripts, styles) under /public/.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "index.html"))
	})
	r.Handle("/public/*", http.StripPrefix("/public/",
		http.FileServer(http.Dir(cfg.StaticDir))))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.AppLogger.Error("server listen error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.AppLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
