package shadow

import (
	"github.com/Planet-BB-Entertainment/SM64/internal/game"
)

// solidityState says how the animation pass resolved a shadow's opacity.
type solidityState uint8

const (
	// solidityHidden suppresses the shadow outright for this frame.
	solidityHidden solidityState = iota
	// solidityPreset means the opacity was interpolated here and must not be
	// dimmed again by the distance pass.
	solidityPreset
	// solidityUnset means the ordinary distance dimming applies.
	solidityUnset
)

// solidityForAnimation resolves the player shadow's opacity from the current
// animation. Ledge grabs fade the shadow in over a per-animation frame
// window; climbing down fades it out; hanging idle on a ledge hides it.
func solidityForAnimation(anim game.AnimInfo, nominal uint8) (uint8, solidityState) {
	switch anim.ID {
	case game.AnimIdleOnLedge:
		return 0, solidityHidden
	case game.AnimFastLedgeGrab:
		return rampSolidityUp(nominal, anim.Frame, 5, 14), solidityPreset
	case game.AnimSlowLedgeGrab:
		return rampSolidityUp(nominal, anim.Frame, 21, 33), solidityPreset
	case game.AnimClimbDownLedge:
		return rampSolidityDown(nominal, anim.Frame, 0, 5), solidityPreset
	default:
		return nominal, solidityUnset
	}
}

// rampSolidityUp interpolates from zero at start to final at end.
func rampSolidityUp(final uint8, curr, start, end int16) uint8 {
	if curr >= 0 && curr < start {
		return 0
	}
	if end < curr {
		return final
	}
	return uint8(float32(final) * float32(curr-start) / float32(end-start))
}

// rampSolidityDown interpolates from initial at start down to zero at end.
// Frames before start also yield zero; with start always 0 in practice the
// branch never fires, and the asymmetry with rampSolidityUp is intentional
// (matches the climb-down animation's timing).
func rampSolidityDown(initial uint8, curr, start, end int16) uint8 {
	if curr >= start && end >= curr {
		return uint8(float32(initial) * (1.0 - float32(curr-start)/float32(end-start)))
	}
	return 0
}
