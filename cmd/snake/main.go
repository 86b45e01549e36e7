package main

import (
	"snake/internal/app"
	"snake/internal/log"
	"snake/internal/ui/graphics"
	"snake/internal/ui/types"
)

func main() {
	application := app.NewApp(app.Params{})
	defer application.Stop()

	cfg := application.Config
	fonts := types.LoadFonts(cfg.FontPaths, cfg.BuiltinFont)

	engine := graphics.NewEngine(application.Session, cfg.CellSize, fonts)
	if err := engine.Run(); err != nil {
		log.Fatal("UI error: %v", err)
	}
}
