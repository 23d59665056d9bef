package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// The module is right-handed with +Y up. A camera's local forward axis is +Z,
// so yaw 0 / pitch 0 looks down +Z and positive pitch tilts the view downward
// (camera above the subject). All angles entering or leaving this file are
// degrees.

const degenerateEpsilon = 1e-9

var worldUp = mgl64.Vec3{0, 1, 0}

// viewDirection converts yaw/pitch into the unit camera-forward vector.
func viewDirection(yawDeg, pitchDeg float64) mgl64.Vec3 {
	yaw := mgl64.DegToRad(yawDeg)
	pitch := mgl64.DegToRad(pitchDeg)
	return mgl64.Vec3{
		math.Cos(pitch) * math.Sin(yaw),
		-math.Sin(pitch),
		math.Cos(pitch) * math.Cos(yaw),
	}
}

// quatFromAngles builds an orientation from yaw (about +Y), then pitch
// (about local +X), then roll (about local +Z).
func quatFromAngles(pitchDeg, yawDeg, rollDeg float64) mgl64.Quat {
	qy := mgl64.QuatRotate(mgl64.DegToRad(yawDeg), mgl64.Vec3{0, 1, 0})
	qx := mgl64.QuatRotate(mgl64.DegToRad(pitchDeg), mgl64.Vec3{1, 0, 0})
	qz := mgl64.QuatRotate(mgl64.DegToRad(rollDeg), mgl64.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}

// lookAt returns the orientation at from looking toward to. Reports false
// when the two points are too close to define a direction.
func lookAt(from, to mgl64.Vec3) (mgl64.Quat, bool) {
	dir := to.Sub(from)
	if dir.Len() < degenerateEpsilon {
		return mgl64.QuatIdent(), false
	}
	d := dir.Normalize()
	yaw := mgl64.RadToDeg(math.Atan2(d.X(), d.Z()))
	pitch := mgl64.RadToDeg(math.Asin(mgl64.Clamp(-d.Y(), -1, 1)))
	return quatFromAngles(pitch, yaw, 0), true
}

// yawOf extracts the horizontal facing of an orientation in degrees.
// Reports false when the orientation looks straight up or down.
func yawOf(q mgl64.Quat) (float64, bool) {
	v := q.Rotate(mgl64.Vec3{0, 0, 1})
	if math.Hypot(v.X(), v.Z()) < degenerateEpsilon {
		return 0, false
	}
	return mgl64.RadToDeg(math.Atan2(v.X(), v.Z())), true
}
