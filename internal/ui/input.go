package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Cross-Fire/internal/game"
	"github.com/Garsondee/Cross-Fire/internal/replay"
)

// keyBinding maps one key edge to a player command.
type keyBinding struct {
	key   ebiten.Key
	input replay.Input
}

// playerKeys lists the commands in the order they are applied within a frame.
var playerKeys = []keyBinding{
	{ebiten.KeyW, replay.Move(game.DirUp)},
	{ebiten.KeyS, replay.Move(game.DirDown)},
	{ebiten.KeyA, replay.Move(game.DirLeft)},
	{ebiten.KeyD, replay.Move(game.DirRight)},
	{ebiten.KeySpace, replay.Stop()},
	{ebiten.KeyI, replay.Fire(game.DirUp)},
	{ebiten.KeyK, replay.Fire(game.DirDown)},
	{ebiten.KeyJ, replay.Fire(game.DirLeft)},
	{ebiten.KeyL, replay.Fire(game.DirRight)},
	{ebiten.KeyP, replay.Pause()},
	{ebiten.KeyEnter, replay.Restart()},
}

// playerInputs returns the commands whose key went down this frame.
func playerInputs(justPressed func(ebiten.Key) bool) []replay.Input {
	var out []replay.Input
	for _, b := range playerKeys {
		if justPressed(b.key) {
			out = append(out, b.input)
		}
	}
	return out
}
