// Package main is the entry point for the mesh face debugger.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/meshdebug/internal/app"
	"github.com/Faultbox/meshdebug/internal/config"
	"github.com/Faultbox/meshdebug/internal/inspector"
	"github.com/Faultbox/meshdebug/internal/logger"
	"github.com/Faultbox/meshdebug/internal/scene"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("meshdebug failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if cfg.Scene.Path == "" && len(config.Args()) > 0 {
		cfg.Scene.Path = config.Args()[0]
	}
	if cfg.Scene.Path == "" {
		return errors.New("no scene file given (use -scene or scene.path)")
	}

	sc, err := scene.Load(cfg.Scene.Path)
	if err != nil {
		return err
	}
	logger.Info("scene loaded",
		zap.String("path", cfg.Scene.Path),
		zap.Int("meshes", len(sc.Meshes)),
		zap.Int("objects", len(sc.Objects())),
	)
	logger.Sugar.Debugf("Config: %+v", cfg)

	session, err := app.NewSession(cfg, sc, logger.Named("session"))
	if err != nil {
		return err
	}

	if cfg.Scene.Select != "" {
		err = session.Select(cfg.Scene.Select)
	} else {
		err = session.CycleSelection()
	}
	if err != nil && !errors.Is(err, inspector.ErrNoMeshFound) {
		return err
	}
	fmt.Println(session.Inspector().Summary())

	if cfg.Viewer.Enabled {
		return runViewer(cfg, session)
	}
	return session.REPL(os.Stdin, os.Stdout)
}
