//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"voxel-ca/internal/app"
	"voxel-ca/internal/core"
	_ "voxel-ca/internal/presets/brain"
	_ "voxel-ca/internal/presets/elementary"
	_ "voxel-ca/internal/presets/life"
	_ "voxel-ca/internal/presets/tower"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Presets()[cfg.Preset]
	if !ok {
		log.Fatalf("unknown preset %q (have %v)", cfg.Preset, core.PresetNames())
	}

	session, err := app.NewSession(factory(cfg.Params()), cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}
	session.MoveLayer(cfg.Layer)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	game := app.New(session, cfg.Scale, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("voxca - " + session.Preset().Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
