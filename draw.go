package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// The demo renders a top-down (X/Z plane) schematic of the 3D scene:
// subject, camera, occluders, zone volumes, and the camera's focus line.

const pixelsPerUnit = 24

var (
	colSubject  = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	colCamera   = color.RGBA{0xff, 0xc1, 0x07, 0xff}
	colObstacle = color.RGBA{0x90, 0xa4, 0xae, 0xff}
	colPickup   = color.RGBA{0x80, 0xd8, 0xff, 0xff}
	colZone     = color.RGBA{0xab, 0x47, 0xbc, 0x80}
	colFocus    = color.RGBA{0xff, 0xff, 0xff, 0x50}
)

func vec3(x, y, z float64) mgl64.Vec3 { return mgl64.Vec3{x, y, z} }

// worldToScreen maps world X/Z to screen pixels, subject-centered.
func (g *Game) worldToScreen(p mgl64.Vec3) (float32, float32) {
	c := g.level.Subject.Position()
	return float32(baseWidth/2 + (p.X()-c.X())*pixelsPerUnit),
		float32(baseHeight/2 + (p.Z()-c.Z())*pixelsPerUnit)
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, z := range g.level.Spec.Zones {
		g.strokeBox(screen, z.Min.vec(), z.Max.vec(), colZone)
	}
	for _, o := range g.level.Spec.Obstacles {
		col := colObstacle
		if o.Pickup {
			col = colPickup
		}
		switch o.Type {
		case "sphere":
			cx, cy := g.worldToScreen(o.Center.vec())
			vector.StrokeCircle(screen, cx, cy, float32(o.Radius*pixelsPerUnit), 2, col, true)
		default:
			g.strokeBox(screen, o.Min.vec(), o.Max.vec(), col)
		}
	}

	// Focus line: camera to the point it tracks.
	camPos := g.rig.Position()
	subPos := g.level.Subject.Position()
	cx, cy := g.worldToScreen(camPos)
	sx, sy := g.worldToScreen(subPos)
	vector.StrokeLine(screen, cx, cy, sx, sy, 1, colFocus, true)

	// Subject with its facing tick.
	yaw := mgl64.DegToRad(g.level.Subject.FacingYaw())
	fx := sx + float32(math.Sin(yaw))*14
	fy := sy + float32(math.Cos(yaw))*14
	vector.FillCircle(screen, sx, sy, 7, colSubject, true)
	vector.StrokeLine(screen, sx, sy, fx, fy, 2, colSubject, true)

	// Camera with its view direction.
	view := g.rig.Rotation().Rotate(mgl64.Vec3{0, 0, 1})
	vx := cx + float32(view.X())*20
	vy := cy + float32(view.Z())*20
	vector.FillCircle(screen, cx, cy, 5, colCamera, true)
	vector.StrokeLine(screen, cx, cy, vx, vy, 2, colCamera, true)

	g.drawHUD(screen)
}

func (g *Game) strokeBox(screen *ebiten.Image, min, max mgl64.Vec3, col color.Color) {
	x0, y0 := g.worldToScreen(min)
	x1, y1 := g.worldToScreen(max)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, col, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	tracker := g.rig.Tracker()
	active := g.rig.ActiveProfile()
	mode := "free"
	if active.Lock.Enabled {
		mode = "locked"
	}
	zone := "-"
	if g.rig.Zones().InZone() {
		zone = fmt.Sprintf("override[%d]", g.rig.Zones().Index())
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS %.0f  profile=%s (%s)  zone=%s  dist=%.2f  yaw=%.1f pitch=%.1f  vlock=%v\n"+
			"WASD move, mouse look, V next view, R reset",
		ebiten.ActualFPS(), active.Name, mode, zone,
		tracker.Distance(), tracker.Yaw(), tracker.Pitch(),
		g.rig.VerticalInputSuppressed(),
	))
}
