package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/radhagarine/docgenius/internal/api"
	"github.com/radhagarine/docgenius/internal/config"
	"github.com/radhagarine/docgenius/pkg/doctypes"
	"github.com/radhagarine/docgenius/pkg/generator"
	"github.com/radhagarine/docgenius/pkg/profile"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "docgenius",
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := profile.NewFileStore(cfg.ProfileDir)
	if err != nil {
		logger.Fatal("open profile store", "err", err)
	}

	reg, err := doctypes.NewRegistry()
	if err != nil {
		logger.Fatal("build document registry", "err", err)
	}

	svc, err := generator.New(reg,
		generator.WithProfileStore(store),
		generator.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("build generator", "err", err)
	}

	router := api.NewServer(svc, reg, api.WithLogger(logger)).Router()

	logger.Info("listening", "addr", cfg.Addr, "types", reg.List())
	if err := router.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}
