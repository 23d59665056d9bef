package camera

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/followcam/common"
)

// LookDelta is the accumulated look input for one tick, already scaled by
// whatever sensitivity the input layer applies.
type LookDelta struct {
	X float64
	Y float64
}

// Tracker positions and orients one camera relative to one subject. It owns
// its runtime state exclusively; nothing here is safe for concurrent use and
// nothing needs to be, the host calls Tick once per frame.
type Tracker struct {
	caster  RayCaster
	subject Subject

	yaw   float64
	pitch float64

	position mgl64.Vec3
	rotation mgl64.Quat
	distance float64

	// forward/right for the movement system, horizontal plane only,
	// recomputed every tick from the yaw used that tick.
	forward mgl64.Vec3
	right   mgl64.Vec3

	verticalSuppressed bool
	primed             bool
	warnedNoSubject    bool
}

// NewTracker creates an idle tracker. It does nothing until a subject is
// assigned with SetSubject.
func NewTracker(caster RayCaster) *Tracker {
	return &Tracker{
		caster:   caster,
		rotation: mgl64.QuatIdent(),
		forward:  mgl64.Vec3{0, 0, 1},
		right:    mgl64.Vec3{1, 0, 0},
	}
}

// SetSubject begins tracking. The camera starts behind the subject's facing
// at the profile's initial pitch, and the next Tick snaps straight to the
// computed pose instead of smoothing from stale state.
func (t *Tracker) SetSubject(subject Subject, profile TrackingProfile) {
	t.subject = subject
	t.warnedNoSubject = false
	t.primed = false
	if subject == nil {
		return
	}
	t.yaw = subject.FacingYaw()
	t.pitch = common.Clamp(profile.InitialPitch, profile.PitchRange.Min, profile.PitchRange.Max)
	t.distance = profile.Distance
}

// SetCaster installs the physics collaborator used for obstacle avoidance.
// A nil caster leaves avoidance disabled regardless of profile settings.
func (t *Tracker) SetCaster(caster RayCaster) {
	t.caster = caster
}

// Tick runs the per-frame pipeline: look input, spherical placement, obstacle
// avoidance, smoothing, orientation. profile is the fully-resolved active
// profile for this tick (a base profile or a transition snapshot).
func (t *Tracker) Tick(profile TrackingProfile, look LookDelta, dt float64) {
	t.verticalSuppressed = profile.DisableVerticalInput

	if t.subject == nil {
		if !t.warnedNoSubject {
			log.Printf("camera: tracker has no subject, holding last pose")
			t.warnedNoSubject = true
		}
		return
	}
	t.warnedNoSubject = false

	// Look input only steers the camera while rotation is unlocked; a
	// locked profile freezes the stored angles outright.
	if !profile.Lock.Enabled {
		t.yaw += look.X
		t.pitch -= look.Y
		t.pitch = common.Clamp(t.pitch, profile.PitchRange.Min, profile.PitchRange.Max)
	}

	yawUsed, pitchUsed := t.yaw, t.pitch
	if profile.Lock.Enabled {
		yawUsed, pitchUsed = profile.Lock.Yaw, profile.Lock.Pitch
	}

	target := t.subject.Position().Add(worldUp.Mul(profile.HeightOffset))
	dir := viewDirection(yawUsed, pitchUsed)

	desiredDistance := profile.Distance
	if t.avoidanceEngages(profile) {
		if hit, ok := t.closestBlockingHit(target, dir, profile); ok {
			desiredDistance = math.Max(profile.MinDistanceThreshold, hit-profile.Avoidance.Radius)
		}
	}

	if !t.primed {
		t.distance = desiredDistance
	} else {
		t.distance = common.Lerp(t.distance, desiredDistance, common.SmoothFactor(profile.Avoidance.SmoothSpeed, dt))
	}

	desired := target.Sub(dir.Mul(t.distance))
	if !t.primed {
		t.position = desired
	} else {
		t.position = lerpVec(t.position, desired, common.SmoothFactor(profile.PositionSmoothSpeed, dt))
	}

	t.orient(profile, target, dt)
	t.primed = true

	// Movement reads these lag-free even though the rendered camera lags.
	t.forward = mgl64.Vec3{math.Sin(mgl64.DegToRad(yawUsed)), 0, math.Cos(mgl64.DegToRad(yawUsed))}
	t.right = mgl64.Vec3{math.Cos(mgl64.DegToRad(yawUsed)), 0, -math.Sin(mgl64.DegToRad(yawUsed))}
}

func (t *Tracker) avoidanceEngages(profile TrackingProfile) bool {
	return profile.Avoidance.Enabled &&
		t.caster != nil &&
		profile.Distance > profile.MinDistanceThreshold
}

// closestBlockingHit casts from the focus point back toward the camera and
// returns the nearest hit that is allowed to block: hits on the subject (or
// anything attached to it) and collectible pickups never block.
func (t *Tracker) closestBlockingHit(target, dir mgl64.Vec3, profile TrackingProfile) (float64, bool) {
	closest := math.Inf(1)
	castDir := dir.Mul(-1)
	for _, hit := range t.caster.SegmentCast(target, castDir, profile.Distance, profile.Avoidance.LayerMask) {
		if hit.Distance <= 0 || hit.Distance >= closest {
			continue
		}
		if hit.Body != nil && (hit.Body.AttachedTo(t.subject) || hit.Body.Collectible()) {
			continue
		}
		closest = hit.Distance
	}
	if math.IsInf(closest, 1) {
		return 0, false
	}
	return closest, true
}

// orient applies step six of the pipeline. Locked profiles ease toward the
// fixed lock angles so entering a locked zone never snaps; unlocked profiles
// take an instantaneous look-at, because smoothing the look-at while the
// position is also smoothed lets a fast subject drift out of frame.
func (t *Tracker) orient(profile TrackingProfile, target mgl64.Vec3, dt float64) {
	if profile.Lock.Enabled {
		locked := quatFromAngles(profile.Lock.Pitch, profile.Lock.Yaw, profile.Lock.Roll)
		if !t.primed {
			t.rotation = locked
			return
		}
		t.rotation = mgl64.QuatSlerp(t.rotation, locked, common.SmoothFactor(profile.PositionSmoothSpeed, dt))
		return
	}
	if q, ok := lookAt(t.position, target); ok {
		t.rotation = q
	}
	// Degenerate look direction: keep last orientation for this tick.
}

// ResetCamera swings the camera behind the given facing. Pitch only changes
// when the active profile asks for it.
func (t *Tracker) ResetCamera(subjectFacingYaw float64, profile TrackingProfile) {
	if t.subject == nil {
		log.Printf("camera: reset requested with no subject, ignoring")
		return
	}
	t.yaw = subjectFacingYaw
	if profile.Reset.ResetPitch {
		t.pitch = profile.Reset.PitchAngle
	}
}

// AdoptRenderedYaw seizes the camera's actual rendered yaw into the live yaw
// state. The transition controller calls this when a locked profile hands
// off to an unlocked one that wants yaw continuity.
func (t *Tracker) AdoptRenderedYaw() {
	if yaw, ok := yawOf(t.rotation); ok {
		t.yaw = yaw
	}
}

// Position is the smoothed camera world position written by the last Tick.
func (t *Tracker) Position() mgl64.Vec3 { return t.position }

// Rotation is the camera orientation written by the last Tick.
func (t *Tracker) Rotation() mgl64.Quat { return t.rotation }

// Distance is the smoothed camera-to-focus distance.
func (t *Tracker) Distance() float64 { return t.distance }

// Yaw and Pitch expose the live look angles in degrees.
func (t *Tracker) Yaw() float64   { return t.yaw }
func (t *Tracker) Pitch() float64 { return t.pitch }

// Forward and Right are the horizontal-plane movement basis vectors for the
// yaw used on the last tick.
func (t *Tracker) Forward() mgl64.Vec3 { return t.forward }
func (t *Tracker) Right() mgl64.Vec3   { return t.right }

// VerticalInputSuppressed reports whether the active profile asks the
// movement system to zero the vertical input component.
func (t *Tracker) VerticalInputSuppressed() bool { return t.verticalSuppressed }

func lerpVec(a, b mgl64.Vec3, f float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(f))
}
