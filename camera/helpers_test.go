package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/followcam/common"
)

const testEps = 1e-9

type stubSubject struct {
	pos mgl64.Vec3
	yaw float64
}

func (s *stubSubject) Position() mgl64.Vec3 { return s.pos }
func (s *stubSubject) FacingYaw() float64   { return s.yaw }

type stubBody struct {
	subject     Subject
	collectible bool
}

func (b *stubBody) AttachedTo(s Subject) bool { return b.subject != nil && b.subject == s }
func (b *stubBody) Collectible() bool         { return b.collectible }

// stubCaster replays a fixed hit list and records the last cast.
type stubCaster struct {
	hits []Hit

	lastOrigin  mgl64.Vec3
	lastDir     mgl64.Vec3
	lastMaxDist float64
	lastMask    uint32
	casts       int
}

func (c *stubCaster) SegmentCast(origin, dir mgl64.Vec3, maxDist float64, mask uint32) []Hit {
	c.lastOrigin = origin
	c.lastDir = dir
	c.lastMaxDist = maxDist
	c.lastMask = mask
	c.casts++
	out := make([]Hit, 0, len(c.hits))
	for _, h := range c.hits {
		if h.Distance <= maxDist {
			out = append(out, h)
		}
	}
	return out
}

func baseProfile() TrackingProfile {
	return TrackingProfile{
		Name:         "base",
		Distance:     6,
		HeightOffset: 1.5,
		PitchRange:   PitchRange{Min: -30, Max: 60},
		InitialPitch: 15,
		Avoidance: CollisionAvoidance{
			Enabled:     true,
			Radius:      0.3,
			LayerMask:   0xffffffff,
			SmoothSpeed: 8,
		},
		PositionSmoothSpeed:  10,
		MinDistanceThreshold: 0.5,
		Reset:                ResetBehavior{ResetPitch: true, PitchAngle: 15},
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func approxVec(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-6
}

func yawClose(a, b float64) bool {
	return math.Abs(common.WrapDegrees(a-b)) < 1e-6
}
