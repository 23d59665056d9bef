package camera

import "github.com/go-gl/mathgl/mgl64"

// Subject is the pose of whatever the camera is tracking. The camera only
// ever reads it; the gameplay layer owns and moves it.
type Subject interface {
	// Position is the subject's world position.
	Position() mgl64.Vec3
	// FacingYaw is the subject's horizontal facing in degrees, used by
	// ResetCamera to swing the camera behind the subject.
	FacingYaw() float64
}

// Body is the opaque handle attached to a segment-cast hit. The tracker uses
// it only to decide whether a hit should block the camera.
type Body interface {
	// AttachedTo reports whether the body is the subject itself or one of
	// its descendants (held items, mounted props).
	AttachedTo(subject Subject) bool
	// Collectible reports whether the body is a non-blocking pickup.
	Collectible() bool
}

// Hit is one intersection along a cast segment.
type Hit struct {
	// Distance from the segment origin, in world units.
	Distance float64
	Body     Body
}

// RayCaster is the physics collaborator. SegmentCast returns every
// intersection along origin + dir*t for t in (0, maxDist], filtered by the
// layer mask. Hits may be returned in any order; callers pick what they need.
// The call is synchronous and must complete within the tick.
type RayCaster interface {
	SegmentCast(origin, dir mgl64.Vec3, maxDist float64, mask uint32) []Hit
}
