// Package app is the composition root. Bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"irms.fjp.io/irms/internal/api/handlers"
	"irms.fjp.io/irms/internal/api/middleware"
	"irms.fjp.io/irms/internal/config"
	"irms.fjp.io/irms/internal/history"
	"irms.fjp.io/irms/internal/infrastructure"
	"irms.fjp.io/irms/internal/service"
	"irms.fjp.io/irms/internal/storage"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	if err := db.AutoMigrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	jwtCfg := middleware.JWTConfig{
		SigningKey: []byte(cfg.Security.JWTSecret),
		Issuer:     cfg.Security.JWTIssuer,
		ExpiresIn:  cfg.Security.JWTExpiresIn,
	}

	server := handlers.NewServer(handlers.ServerDeps{
		EntClient: db.EntClient,
		JWTCfg:    jwtCfg,
		History:   history.NewRecorder(db.EntClient),
		Reports:   service.NewReportService(db.EntClient, cfg.Reports.TrendMonths),
		CVs:       storage.NewCVStore(cfg.Uploads.Dir, cfg.Uploads.MaxSizeMB),
	})

	return &Application{
		Config: cfg,
		Router: newRouter(cfg, server, jwtCfg),
		DB:     db,
	}, nil
}
