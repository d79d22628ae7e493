package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	KeyNext       = ebiten.KeyArrowDown
	KeyPrev       = ebiten.KeyArrowUp
	KeyIncrease   = ebiten.KeyArrowRight
	KeyDecrease   = ebiten.KeyArrowLeft
	KeyActivate   = ebiten.KeyEnter
	KeySwitchMode = ebiten.KeyTab
	KeyHidePanel  = ebiten.KeyH
	KeySave       = ebiten.KeyS
	KeyRecord     = ebiten.KeyR
	KeyCopy       = ebiten.KeyC
	KeyOpenAudio  = ebiten.KeyO
	KeyPause      = ebiten.KeySpace
	KeyQuit       = ebiten.KeyEscape
	KeyQuitAlt    = ebiten.KeyQ
)

const (
	repeatDelay    = 24
	repeatInterval = 3
)

// repeating reports a press on the first tick and then periodically while held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func justPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
