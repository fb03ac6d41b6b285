package shadow

// falloffRange is the height above the floor at which shadow falloff
// saturates: scale bottoms out at half and opacity at dimFloor.
const falloffRange float32 = 600.0

// dimFloor is the lowest opacity distance dimming can produce. Shadows solid
// enough to dim never fade past it, so they stay visible at any height.
const dimFloor = 120

// scaleWithDistance shrinks a shadow as its parent rises off the floor,
// linearly down to half the initial size at falloffRange and clamped there.
func scaleWithDistance(initial, distFromFloor float32) float32 {
	switch {
	case distFromFloor <= 0.0:
		return initial
	case distFromFloor >= falloffRange:
		return initial * 0.5
	default:
		return initial * (1.0 - distFromFloor*0.5/falloffRange)
	}
}

// dimWithDistance fades a shadow's opacity as its parent rises off the floor.
// Opacities below dimFloor+1 are already transparent enough and pass through
// untouched.
func dimWithDistance(solidity uint8, distFromFloor float32) uint8 {
	if solidity <= dimFloor {
		return solidity
	}
	switch {
	case distFromFloor <= 0.0:
		return solidity
	case distFromFloor >= falloffRange:
		return dimFloor
	default:
		return uint8(float32(dimFloor-int32(solidity))*distFromFloor/falloffRange + float32(solidity))
	}
}
