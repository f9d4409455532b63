// Package main is the entry point for the fixed-function tutorial demos.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/fixedfunc/internal/app"
	"github.com/Faultbox/fixedfunc/internal/config"
	"github.com/Faultbox/fixedfunc/internal/logger"
	"github.com/Faultbox/fixedfunc/internal/scene"
)

func main() {
	flags := config.BindFlags(flag.CommandLine)
	list := flag.Bool("list", false, "List demos and exit")
	save := flag.Bool("save-config", false, "Write the effective config to the user config dir and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(scene.Demos(), "\n"))
		return
	}

	// Load configuration
	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if *save {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== fixedfunc ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("run error", zap.Error(err))
		a.Close()
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("closed normally")
}
