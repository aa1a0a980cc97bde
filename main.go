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

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"comfyinn-backend/config"
	"comfyinn-backend/controllers"
	"comfyinn-backend/jobs"
	"comfyinn-backend/routes"
	"comfyinn-backend/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	logger, err := config.InitLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("❌ logger init failed: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	db, err := config.OpenDatabase(cfg.Database)
	if err != nil {
		zap.L().Fatal("database connect failed", zap.Error(err))
	}
	zap.L().Info("database connection established", zap.String("driver", cfg.Database.Driver))

	if cfg.App.SeedData {
		if err := config.SeedDatabase(db); err != nil {
			zap.L().Fatal("seed failed", zap.Error(err))
		}
	}

	var (
		store services.ImageStore
		sched *cron.Cron
	)
	switch cfg.Images.Store {
	case config.ImageStoreLocal:
		local := services.NewLocalImageStore(cfg.Images.UploadDir, cfg.Images.PublicBaseURL)
		store = local
		if cfg.Jobs.OrphanSweepSchedule != "" {
			sched, err = jobs.NewOrphanSweeper(db, local).Start(cfg.Jobs.OrphanSweepSchedule)
			if err != nil {
				zap.L().Fatal("orphan sweep init failed", zap.Error(err))
			}
		}
	default:
		cld, err := services.NewCloudinaryImageStore(cfg.Images.CloudName, cfg.Images.APIKey, cfg.Images.APISecret)
		if err != nil {
			zap.L().Fatal("cloudinary init failed", zap.Error(err))
		}
		store = cld
	}

	categoryService := services.NewCategoryService(db, store)
	menuItemService := services.NewMenuItemService(db, store)
	roomService := services.NewRoomService(db, store)
	serviceService := services.NewServiceService(db)
	hallService := services.NewConferenceHallService(db, store)
	statsService := services.NewStatsService(db)
	imageService := services.NewImageService(store, cfg.Images.MaxBytes)

	router := routes.SetupRouter(cfg, routes.Controllers{
		Categories: controllers.NewCategoryController(categoryService, menuItemService),
		MenuItems:  controllers.NewMenuItemController(menuItemService),
		Rooms:      controllers.NewRoomController(roomService),
		Services:   controllers.NewServiceController(serviceService),
		Halls:      controllers.NewConferenceHallController(hallService),
		Uploads:    controllers.NewUploadController(imageService),
		Stats:      controllers.NewStatsController(statsService),
	})

	addr := ":" + cfg.App.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zap.L().Info("server starting", zap.String("addr", addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	zap.L().Info("shutdown signal received, shutting down server")

	if sched != nil {
		<-sched.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server forced to shutdown", zap.Error(err))
		return
	}

	zap.L().Info("server stopped gracefully")
}
