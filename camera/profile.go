package camera

import "fmt"

// PitchRange bounds the tracker's vertical look angle in degrees.
type PitchRange struct {
	Min float64
	Max float64
}

// CollisionAvoidance configures how the tracker pulls the camera in front of
// geometry that sits between it and the subject.
type CollisionAvoidance struct {
	Enabled     bool
	Radius      float64
	LayerMask   uint32
	SmoothSpeed float64
}

// ResetBehavior configures what ResetCamera does to pitch.
type ResetBehavior struct {
	ResetPitch bool
	PitchAngle float64
}

// LockRotation pins the camera orientation to fixed angles instead of
// following look input. Angles are degrees: pitch, yaw, roll.
type LockRotation struct {
	Enabled bool
	Pitch   float64
	Yaw     float64
	Roll    float64
}

// TrackingProfile is an immutable bundle of camera-behavior parameters.
// Profiles are built by the profiles package (or by hand in tests) and are
// never mutated after Validate passes; the tracker only ever reads them.
type TrackingProfile struct {
	Name string

	Distance     float64
	HeightOffset float64

	PitchRange   PitchRange
	InitialPitch float64

	Avoidance CollisionAvoidance

	PositionSmoothSpeed  float64
	MinDistanceThreshold float64

	Reset ResetBehavior
	Lock  LockRotation

	DisableVerticalInput bool
	MaintainYawOnUnlock  bool
}

// Validate rejects profiles that violate the load-time invariants. Invalid
// values are reported, never repaired; runtime clamping is the tracker's job.
func (p TrackingProfile) Validate() error {
	if p.Distance <= 0 {
		return fmt.Errorf("camera: profile %q: distance must be > 0, got %v", p.Name, p.Distance)
	}
	if p.MinDistanceThreshold <= 0 {
		return fmt.Errorf("camera: profile %q: min distance threshold must be > 0, got %v", p.Name, p.MinDistanceThreshold)
	}
	if p.PitchRange.Min > p.PitchRange.Max {
		return fmt.Errorf("camera: profile %q: pitch range min %v exceeds max %v", p.Name, p.PitchRange.Min, p.PitchRange.Max)
	}
	if p.InitialPitch < p.PitchRange.Min || p.InitialPitch > p.PitchRange.Max {
		return fmt.Errorf("camera: profile %q: initial pitch %v outside range [%v, %v]",
			p.Name, p.InitialPitch, p.PitchRange.Min, p.PitchRange.Max)
	}
	return nil
}
