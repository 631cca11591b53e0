package main

import (
	"context"
	"os"

	"github.com/employeedir/employeedir/backend/go-services/internal/admin"
	"github.com/employeedir/employeedir/backend/go-services/internal/config"
	"github.com/employeedir/employeedir/backend/go-services/internal/employee/store"
	"github.com/employeedir/employeedir/backend/go-services/pkg/logger"
)

func main() {
	logger.SetOutput(os.Stderr)
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)

	ctx := context.Background()
	st, closeStore, err := store.New(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open %s store: %v", cfg.Store.Backend, err)
	}
	defer closeStore()

	if err := admin.Run(ctx, os.Args[1:], st, admin.DefaultConfig()); err != nil {
		_ = closeStore()
		logger.Fatalf("employeedb: %v", err)
	}
}
