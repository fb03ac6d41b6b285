package math

import "math"

// Angle is a signed 16-bit binary angle. The full circle maps onto the full
// 16-bit range, so 0x4000 is a quarter turn and wrap-around comes for free
// from integer truncation.
type Angle int16

// RightAngle is a quarter turn (90 degrees).
const RightAngle Angle = 0x4000

// Radians converts a binary angle to radians.
func (a Angle) Radians() float32 {
	return float32(a) * (math.Pi / 0x8000)
}

// Degrees converts a binary angle to degrees.
func (a Angle) Degrees() float32 {
	return float32(a) * (90.0 / float32(RightAngle))
}

// AngleFromDegrees converts degrees to the nearest binary angle.
func AngleFromDegrees(deg float32) Angle {
	return Angle(int32(math.Round(float64(deg) * float64(RightAngle) / 90.0)))
}

// Sins returns the sine of a binary angle.
func Sins(a Angle) float32 {
	return float32(math.Sin(float64(a) * (math.Pi / 0x8000)))
}

// Coss returns the cosine of a binary angle.
func Coss(a Angle) float32 {
	return float32(math.Cos(float64(a) * (math.Pi / 0x8000)))
}

// Atan2s returns the binary angle of the direction (x, z), measured from the
// +Z axis toward +X. Atan2s(z, x) is the yaw an object at the origin needs to
// face the point (x, z).
func Atan2s(z, x float32) Angle {
	rad := math.Atan2(float64(x), float64(z))
	return Angle(int32(math.Round(rad * (0x8000 / math.Pi))))
}
