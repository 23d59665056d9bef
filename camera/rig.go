package camera

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Config carries everything a Rig needs beyond its collaborators.
type Config struct {
	// Profiles is the base cyclable list, in designer order. Must be
	// non-empty and every profile must validate.
	Profiles []TrackingProfile

	// ViewTransitionSeconds blends view cycles; ZoneTransitionSeconds
	// blends zone enters/exits and is generally longer.
	ViewTransitionSeconds float64
	ZoneTransitionSeconds float64

	// Sensitivity scales incoming look deltas, InvertY flips the vertical
	// axis. Deltas normally arrive pre-scaled, so these default to 1/false.
	Sensitivity float64
	InvertY     bool
}

type eventKind int

const (
	eventZoneEnter eventKind = iota
	eventZoneExit
	eventNextView
	eventReset
)

type rigEvent struct {
	kind   eventKind
	zoneID string
	list   []TrackingProfile
}

// Rig owns one tracker, transition controller, zone stack and view cycler
// for a single tracked camera. External events (zone enter/exit, view-cycle
// requests, resets) are queued and drained in arrival order at the start of
// each Tick, before any geometry runs.
type Rig struct {
	tracker    *Tracker
	controller *TransitionController
	stack      *ZoneStack
	cycler     *ViewCycler

	cfg    Config
	look   LookDelta
	events []rigEvent
}

// NewRig validates the profile list and assembles the camera subsystem. The
// first profile in the list is live immediately.
func NewRig(subject Subject, caster RayCaster, cfg Config) (*Rig, error) {
	if len(cfg.Profiles) == 0 {
		return nil, fmt.Errorf("camera: rig needs at least one profile")
	}
	for _, p := range cfg.Profiles {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("camera: rig config: %w", err)
		}
	}
	if cfg.Sensitivity == 0 {
		cfg.Sensitivity = 1
	}

	tracker := NewTracker(caster)
	controller := NewTransitionController(cfg.Profiles[0])
	controller.OnUnlock(tracker.AdoptRenderedYaw)
	stack := NewZoneStack(controller, cfg.Profiles)
	cycler := NewViewCycler(stack, controller, cfg.ViewTransitionSeconds)

	r := &Rig{
		tracker:    tracker,
		controller: controller,
		stack:      stack,
		cycler:     cycler,
		cfg:        cfg,
	}
	tracker.SetSubject(subject, cfg.Profiles[0])
	return r, nil
}

// AddLook accumulates look input for the next tick.
func (r *Rig) AddLook(dx, dy float64) {
	r.look.X += dx
	r.look.Y += dy
}

// EnterZone queues a zone-enter with the zone's override profile list.
func (r *Rig) EnterZone(zoneID string, list []TrackingProfile) {
	r.events = append(r.events, rigEvent{kind: eventZoneEnter, zoneID: zoneID, list: list})
}

// ExitZone queues a zone-exit.
func (r *Rig) ExitZone(zoneID string) {
	r.events = append(r.events, rigEvent{kind: eventZoneExit, zoneID: zoneID})
}

// NextView queues an advance-view request.
func (r *Rig) NextView() {
	r.events = append(r.events, rigEvent{kind: eventNextView})
}

// RequestReset queues a camera reset behind the subject's facing.
func (r *Rig) RequestReset() {
	r.events = append(r.events, rigEvent{kind: eventReset})
}

// Tick drains queued events in order, advances any profile transition, and
// runs the tracker's per-frame pipeline. dt is seconds and never negative;
// negative values are treated as zero.
func (r *Rig) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}

	resetRequested := false
	for _, ev := range r.events {
		switch ev.kind {
		case eventZoneEnter:
			r.stack.Enter(ev.zoneID, ev.list, r.cfg.ZoneTransitionSeconds)
		case eventZoneExit:
			r.stack.Exit(ev.zoneID, r.cfg.ZoneTransitionSeconds)
		case eventNextView:
			r.cycler.Next()
		case eventReset:
			resetRequested = true
		}
	}
	r.events = r.events[:0]

	look := LookDelta{X: r.look.X * r.cfg.Sensitivity, Y: r.look.Y * r.cfg.Sensitivity}
	if r.cfg.InvertY {
		look.Y = -look.Y
	}
	r.look = LookDelta{}

	profile := r.controller.Tick(dt)

	// A reset applies against the same resolved profile the tracker runs
	// with this tick, so a reset landing mid-transition honors the blend's
	// reset behavior rather than the base profile's.
	if resetRequested && r.tracker.subject != nil {
		r.tracker.ResetCamera(r.tracker.subject.FacingYaw(), profile)
	}

	r.tracker.Tick(profile, look, dt)
}

// ApplyProfile jumps straight to the indexed profile of the active list,
// blending over the view-cycle duration.
func (r *Rig) ApplyProfile(index int) {
	r.stack.Apply(index, r.cfg.ViewTransitionSeconds)
}

// ReplaceProfiles installs a new base list (profile hot reload).
func (r *Rig) ReplaceProfiles(profiles []TrackingProfile) error {
	if len(profiles) == 0 {
		return fmt.Errorf("camera: replacement profile list is empty")
	}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	r.stack.ReplaceBase(profiles, r.cfg.ViewTransitionSeconds)
	return nil
}

// Position, Rotation, Forward, Right and VerticalInputSuppressed mirror the
// tracker outputs for consumers that only hold the rig.
func (r *Rig) Position() mgl64.Vec3          { return r.tracker.Position() }
func (r *Rig) Rotation() mgl64.Quat          { return r.tracker.Rotation() }
func (r *Rig) Forward() mgl64.Vec3           { return r.tracker.Forward() }
func (r *Rig) Right() mgl64.Vec3             { return r.tracker.Right() }
func (r *Rig) VerticalInputSuppressed() bool { return r.tracker.VerticalInputSuppressed() }

// Tracker exposes the underlying tracker for diagnostics and tests.
func (r *Rig) Tracker() *Tracker { return r.tracker }

// Controller exposes the transition controller.
func (r *Rig) Controller() *TransitionController { return r.controller }

// Zones exposes the zone stack.
func (r *Rig) Zones() *ZoneStack { return r.stack }

// ActiveProfile is this tick's fully-resolved profile source of truth.
func (r *Rig) ActiveProfile() TrackingProfile { return r.controller.Active() }
