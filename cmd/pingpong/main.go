//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"pingpong/internal/app"
	_ "pingpong/internal/storage/memory"
	_ "pingpong/internal/storage/sqlite"
	"pingpong/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctx := context.Background()
	hud := ui.NewHUD(ui.DefaultSize())
	session, err := app.Open(ctx, cfg, hud)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session, hud)
	size := hud.Size()

	ebiten.SetWindowTitle("pingpong — " + cfg.Player1Name + " vs " + cfg.Player2Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	runErr := ebiten.RunGame(game)
	if err := session.Close(ctx); err != nil {
		log.Print(err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
