package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"snake/internal/app"
	"snake/internal/config"
	"snake/internal/log"
	"snake/internal/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

func main() {
	// Anything written to stderr would tear the terminal UI, so logs go to a
	// file. The path comes from the settings file when one is present.
	logPath := config.Default().LogFile
	if cfg, err := config.Load(config.DefaultFile); err == nil && cfg.LogFile != "" {
		logPath = cfg.LogFile
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatal("Failed to open log file %s: %v", logPath, err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	application := app.NewApp(app.Params{})
	defer application.Stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := terminal.NewApp(screen, application.Session, log.Default()).Run(ctx); err != nil {
		log.Error("Terminal error: %v", err)
	}
}
