package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Cross-Fire/internal/game"
	"github.com/Garsondee/Cross-Fire/internal/ui"
)

func main() {
	cfg := game.DefaultConfig()
	var scale int
	var snapshotPath, loadPath, recordPath string

	flag.Uint64Var(&cfg.Seed, "seed", 0, "dice seed (0 picks one from the clock)")
	flag.IntVar(&cfg.PlayerLives, "lives", cfg.PlayerLives, "player lives")
	flag.IntVar(&cfg.MaxBullets, "max-bullets", cfg.MaxBullets, "live projectiles per unit")
	flag.IntVar(&scale, "scale", 2, "window scale factor")
	flag.StringVar(&snapshotPath, "snapshot", "crossfire.snap", "file written by F5")
	flag.StringVar(&loadPath, "load", "", "resume from a snapshot file")
	flag.StringVar(&recordPath, "record", "", "write an input recording here on exit")
	flag.Parse()

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano()) // #nosec G115 -- any value is a fine seed
	}

	var (
		s   *game.Session
		err error
	)
	if loadPath != "" {
		s, err = loadSnapshot(loadPath)
	} else {
		s, err = game.NewSession(cfg)
	}
	if err != nil {
		log.Fatal(err)
	}

	g := ui.New(s, ui.Options{SnapshotPath: snapshotPath, RecordPath: recordPath})
	w, h := g.Size()
	ebiten.SetWindowTitle("Cross Fire")
	ebiten.SetWindowSize(w*scale, h*scale)
	runErr := ebiten.RunGame(g)
	if err := g.Close(); err != nil {
		log.Printf("recording: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

func loadSnapshot(path string) (*game.Session, error) {
	b, err := os.ReadFile(path) // #nosec G304 -- path comes from a flag
	if err != nil {
		return nil, err
	}
	snap, err := game.DecodeSnapshot(b)
	if err != nil {
		return nil, err
	}
	return game.RestoreSession(snap)
}
