package camera

import (
	"log"

	"github.com/milk9111/followcam/common"
)

// transitionState tracks one in-flight blend. It exists only between Start
// and finalize; the controller never holds two at once.
type transitionState struct {
	from     TrackingProfile
	to       TrackingProfile
	progress float64
	duration float64
}

// TransitionController owns the active profile and blends between profiles
// over time. Each tick it hands the tracker a fully-resolved snapshot, so the
// tracker never has to know whether a transition is running.
type TransitionController struct {
	active     TrackingProfile
	transition *transitionState

	// onUnlock fires when a finalize hands off from a locked profile to an
	// unlocked one that wants yaw continuity. The rig wires this to the
	// tracker's AdoptRenderedYaw.
	onUnlock func()
}

// NewTransitionController starts with the given profile live and no
// transition in flight.
func NewTransitionController(initial TrackingProfile) *TransitionController {
	return &TransitionController{active: initial}
}

// OnUnlock registers the yaw-continuity callback.
func (c *TransitionController) OnUnlock(fn func()) {
	c.onUnlock = fn
}

// Start begins blending from the current profile toward to. If a transition
// is already running it is finalized first; transitions never stack. A non-
// positive duration applies to immediately.
func (c *TransitionController) Start(to TrackingProfile, duration float64) {
	if c.transition != nil {
		c.finalize()
	}
	if duration <= 0 {
		c.applyFinal(c.active, to)
		return
	}
	c.transition = &transitionState{
		from:     c.active,
		to:       to,
		duration: duration,
	}
}

// Interrupt is Start under its protocol name: finalize whatever is running,
// then blend to the new target from the now-current profile.
func (c *TransitionController) Interrupt(to TrackingProfile, duration float64) {
	c.Start(to, duration)
}

// Tick advances the blend. Returns the profile the tracker should use this
// tick: the live profile when idle, otherwise an interpolated snapshot.
func (c *TransitionController) Tick(dt float64) TrackingProfile {
	if c.transition == nil {
		return c.active
	}
	if c.transition.duration <= 0 {
		c.finalize()
		return c.active
	}
	c.transition.progress += dt / c.transition.duration
	if c.transition.progress >= 1 {
		c.finalize()
		return c.active
	}
	return snapshot(c.transition.from, c.transition.to, c.transition.progress)
}

// Finalize force-completes any running transition, applying its target as
// the live profile. No-op when idle.
func (c *TransitionController) Finalize() {
	if c.transition != nil {
		c.finalize()
	}
}

// InProgress reports whether a blend is running.
func (c *TransitionController) InProgress() bool { return c.transition != nil }

// Progress returns the current blend progress in [0, 1), or 1 when idle.
func (c *TransitionController) Progress() float64 {
	if c.transition == nil {
		return 1
	}
	return common.Clamp(c.transition.progress, 0, 1)
}

// Active returns the live profile, ignoring any in-flight snapshot.
func (c *TransitionController) Active() TrackingProfile { return c.active }

// SetActive replaces the live profile outright, dropping any transition.
// Used by hot reload when the currently live profile is re-staged.
func (c *TransitionController) SetActive(p TrackingProfile) {
	c.transition = nil
	c.active = p
}

func (c *TransitionController) finalize() {
	from, to := c.transition.from, c.transition.to
	c.transition = nil
	c.applyFinal(from, to)
}

func (c *TransitionController) applyFinal(from, to TrackingProfile) {
	c.active = to
	if from.Lock.Enabled && !to.Lock.Enabled && to.MaintainYawOnUnlock {
		if c.onUnlock != nil {
			c.onUnlock()
		} else {
			log.Printf("camera: transition %q -> %q wants yaw continuity but no handler is wired", from.Name, to.Name)
		}
	}
}

// snapshot blends two profiles at progress. Numeric parameters interpolate
// linearly; booleans and the layer mask have no meaningful midpoint, so they
// hold the from value until progress reaches 0.5 and switch there. The lock
// block is the exception: it holds until finalize.
func snapshot(from, to TrackingProfile, progress float64) TrackingProfile {
	t := common.Clamp(progress, 0, 1)
	discrete := from
	if t >= 0.5 {
		discrete = to
	}
	return TrackingProfile{
		Name:         discrete.Name,
		Distance:     common.Lerp(from.Distance, to.Distance, t),
		HeightOffset: common.Lerp(from.HeightOffset, to.HeightOffset, t),
		PitchRange: PitchRange{
			Min: common.Lerp(from.PitchRange.Min, to.PitchRange.Min, t),
			Max: common.Lerp(from.PitchRange.Max, to.PitchRange.Max, t),
		},
		InitialPitch: common.Lerp(from.InitialPitch, to.InitialPitch, t),
		Avoidance: CollisionAvoidance{
			Enabled:     discrete.Avoidance.Enabled,
			Radius:      common.Lerp(from.Avoidance.Radius, to.Avoidance.Radius, t),
			LayerMask:   discrete.Avoidance.LayerMask,
			SmoothSpeed: common.Lerp(from.Avoidance.SmoothSpeed, to.Avoidance.SmoothSpeed, t),
		},
		PositionSmoothSpeed:  common.Lerp(from.PositionSmoothSpeed, to.PositionSmoothSpeed, t),
		MinDistanceThreshold: common.Lerp(from.MinDistanceThreshold, to.MinDistanceThreshold, t),
		Reset: ResetBehavior{
			ResetPitch: discrete.Reset.ResetPitch,
			PitchAngle: common.Lerp(from.Reset.PitchAngle, to.Reset.PitchAngle, t),
		},
		// The lock block holds the outgoing profile's value for the whole
		// blend. Leaving a locked profile, this keeps the rendered yaw at
		// the lock until finalize, where the unlock adoption seizes it;
		// entering one, the lock engages at finalize and the orientation
		// slerp takes over from there.
		Lock:                 from.Lock,
		DisableVerticalInput: discrete.DisableVerticalInput,
		MaintainYawOnUnlock:  discrete.MaintainYawOnUnlock,
	}
}
