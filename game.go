package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/followcam/camera"
	"github.com/milk9111/followcam/choreo"
	"github.com/milk9111/followcam/profiles"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames  int
	elapsed float64

	input   *Input
	level   *Level
	rig     *camera.Rig
	script  *choreo.Runtime
	watcher *profiles.Watcher
}

func NewGame(levelName string, scripted, watch, invertY bool) (*Game, error) {
	lvl, err := LoadLevel(levelName)
	if err != nil {
		return nil, err
	}

	rig, err := camera.NewRig(lvl.Subject, lvl.World, camera.Config{
		Profiles:              lvl.BaseProfiles,
		ViewTransitionSeconds: lvl.Spec.ViewTransitionSeconds,
		ZoneTransitionSeconds: lvl.Spec.ZoneTransitionSeconds,
		InvertY:               invertY,
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		input: NewInput(),
		level: lvl,
		rig:   rig,
	}

	if scripted && lvl.Spec.Script != "" {
		src, err := loadLevelAsset(lvl.Spec.Script)
		if err != nil {
			return nil, fmt.Errorf("level script %s: %w", lvl.Spec.Script, err)
		}
		g.script, err = choreo.New(src, g.scriptHooks())
		if err != nil {
			return nil, err
		}
	}

	if watch {
		w, err := profiles.NewWatcher(profiles.DiskDir)
		if err != nil {
			log.Printf("profile watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) scriptHooks() choreo.Hooks {
	return choreo.Hooks{
		SetPosition: func(x, y, z float64) {
			g.level.Subject.SetPosition(vec3(x, y, z))
		},
		SetYaw: func(yaw float64) { g.level.Subject.SetFacingYaw(yaw) },
		Look:   func(dx, dy float64) { g.rig.AddLook(dx, dy) },
		NextView: func() { g.rig.NextView() },
		Reset:    func() { g.rig.RequestReset() },
		EnterZone: func(id string) {
			if list, ok := g.level.ZoneProfiles[id]; ok {
				g.rig.EnterZone(id, list)
			} else {
				log.Printf("script entered unknown zone %q", id)
			}
		},
		ExitZone: func(id string) { g.rig.ExitZone(id) },
	}
}

func (g *Game) Update() error {
	g.frames++
	dt := 1.0 / float64(ebiten.TPS())
	g.elapsed += dt

	g.input.Update()
	g.drainProfileEdits()

	if g.script != nil {
		if err := g.script.Tick(g.elapsed, dt); err != nil {
			log.Printf("choreo: %v", err)
			g.script = nil
		}
	} else {
		g.moveSubject(dt)
	}

	// Zone triggers are polled after movement so the same frame's position
	// decides occupancy, and their events land before the camera tick.
	for _, trig := range g.level.Triggers {
		switch trig.Poll(g.level.Subject.Position()) {
		case 1:
			g.rig.EnterZone(trig.ZoneID, g.level.ZoneProfiles[trig.ZoneID])
		case -1:
			g.rig.ExitZone(trig.ZoneID)
		}
	}

	g.rig.AddLook(g.input.LookX, g.input.LookY)
	if g.input.NextView {
		g.rig.NextView()
	}
	if g.input.Reset {
		g.rig.RequestReset()
	}

	g.rig.Tick(dt)
	return nil
}

// moveSubject steers the subject with the camera's lag-free movement basis.
func (g *Game) moveSubject(dt float64) {
	speed := g.level.Spec.Subject.Speed
	if speed == 0 {
		speed = 5
	}

	up := g.input.MoveUp
	if g.rig.VerticalInputSuppressed() {
		up = 0
	}

	move := g.rig.Forward().Mul(g.input.MoveForward).
		Add(g.rig.Right().Mul(g.input.MoveRight))
	move[1] += up
	if move.Len() < 1e-9 {
		return
	}
	move = move.Normalize().Mul(speed * dt)
	g.level.Subject.Move(move)
}

// drainProfileEdits applies reload signals from the profile watcher. The
// watcher has already coalesced edit bursts, so each signal is one reload.
func (g *Game) drainProfileEdits() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-g.watcher.Reloads:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadProfiles()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			if err != nil {
				log.Printf("profile watch: %v", err)
			}
		default:
			return
		}
	}
}

// reloadProfiles re-reads the level's profile list from disk. An invalid
// edit logs and keeps the profiles that were already live.
func (g *Game) reloadProfiles() {
	base, err := profiles.LoadList(g.level.Spec.Profiles)
	if err != nil {
		log.Printf("profile reload rejected: %v", err)
		return
	}
	if err := g.rig.ReplaceProfiles(base); err != nil {
		log.Printf("profile reload rejected: %v", err)
		return
	}
	g.level.BaseProfiles = base
	log.Printf("profiles reloaded")
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
