package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/foxtrot/common"
	"github.com/milk9111/foxtrot/config"
)

func main() {
	cfg, err := config.Load(os.Args[1:], nil)
	if err != nil {
		slog.Error("startup", "err", err)
		os.Exit(2)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	if cfg.Monitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("foxtrot")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(cfg)
	if err != nil {
		slog.Error("startup", "err", err)
		os.Exit(1)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		slog.Error("run", "err", err)
		os.Exit(1)
	}
}
