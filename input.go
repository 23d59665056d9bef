package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input polls ebiten once per frame and exposes the camera-facing deltas
// and the movement axes.
type Input struct {
	lastCursorX int
	lastCursorY int
	hasCursor   bool

	LookX float64
	LookY float64

	MoveForward float64 // W/S axis, -1..1
	MoveRight   float64 // A/D axis, -1..1
	MoveUp      float64 // Space/Shift axis, -1..1

	NextView bool
	Reset    bool
}

func NewInput() *Input {
	return &Input{}
}

const lookDegreesPerPixel = 0.25

func (i *Input) Update() {
	x, y := ebiten.CursorPosition()
	if i.hasCursor {
		i.LookX = float64(x-i.lastCursorX) * lookDegreesPerPixel
		i.LookY = float64(y-i.lastCursorY) * lookDegreesPerPixel
	}
	i.lastCursorX, i.lastCursorY = x, y
	i.hasCursor = true

	i.MoveForward = axis(ebiten.KeyW, ebiten.KeyS)
	i.MoveRight = axis(ebiten.KeyD, ebiten.KeyA)
	i.MoveUp = axis(ebiten.KeySpace, ebiten.KeyShiftLeft)

	i.NextView = inpututil.IsKeyJustPressed(ebiten.KeyV)
	i.Reset = inpututil.IsKeyJustPressed(ebiten.KeyR)
}

func axis(pos, neg ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(pos) {
		v++
	}
	if ebiten.IsKeyPressed(neg) {
		v--
	}
	return v
}
