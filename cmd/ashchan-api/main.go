package main

import (
	"flag"
	"net/http"

	"github.com/ashchan-dev/ashchan/internal/config"
	"github.com/ashchan-dev/ashchan/internal/logger"
	"github.com/ashchan-dev/ashchan/internal/router"
	"github.com/ashchan-dev/ashchan/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("setup failed", "error", err)
		return
	}
	defer deps.Cleanup()

	r := router.New(deps)

	logger.Log.Info("server started", "addr", cfg.Public.ListenAddr)
	if err := http.ListenAndServe(cfg.Public.ListenAddr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
	}
}
