package shadow

import (
	"testing"

	"github.com/Planet-BB-Entertainment/SM64/internal/game"
)

func TestSolidityIdleOnLedgeHidesShadow(t *testing.T) {
	_, state := solidityForAnimation(game.AnimInfo{ID: game.AnimIdleOnLedge, Frame: 7}, 255)
	if state != solidityHidden {
		t.Errorf("idle on ledge: state = %d, want solidityHidden", state)
	}
}

func TestSolidityFastLedgeGrab(t *testing.T) {
	tests := []struct {
		frame int16
		want  uint8
	}{
		{0, 0},
		{4, 0},   // before the window
		{5, 0},   // window start
		{9, 80},  // midpoint: 180 * 4/9
		{14, 180}, // window end
		{20, 180}, // past the window
	}
	for _, tt := range tests {
		got, state := solidityForAnimation(game.AnimInfo{ID: game.AnimFastLedgeGrab, Frame: tt.frame}, 180)
		if state != solidityPreset {
			t.Fatalf("frame %d: state = %d, want solidityPreset", tt.frame, state)
		}
		if got != tt.want {
			t.Errorf("fast ledge grab frame %d: solidity = %d, want %d", tt.frame, got, tt.want)
		}
	}
}

func TestSoliditySlowLedgeGrab(t *testing.T) {
	tests := []struct {
		frame int16
		want  uint8
	}{
		{20, 0},
		{21, 0},
		{33, 180},
		{34, 180},
	}
	for _, tt := range tests {
		got, _ := solidityForAnimation(game.AnimInfo{ID: game.AnimSlowLedgeGrab, Frame: tt.frame}, 180)
		if got != tt.want {
			t.Errorf("slow ledge grab frame %d: solidity = %d, want %d", tt.frame, got, tt.want)
		}
	}
}

func TestSolidityClimbDown(t *testing.T) {
	tests := []struct {
		frame int16
		want  uint8
	}{
		{0, 180}, // full at window start
		{3, 71},  // 180 * (1 - 3/5), truncated from 71.999996
		{5, 0},   // zero at window end
		{6, 0},   // outside the window
	}
	for _, tt := range tests {
		got, state := solidityForAnimation(game.AnimInfo{ID: game.AnimClimbDownLedge, Frame: tt.frame}, 180)
		if state != solidityPreset {
			t.Fatalf("frame %d: state = %d, want solidityPreset", tt.frame, state)
		}
		if got != tt.want {
			t.Errorf("climb down frame %d: solidity = %d, want %d", tt.frame, got, tt.want)
		}
	}
}

func TestSolidityOtherAnimationsLeftUnset(t *testing.T) {
	got, state := solidityForAnimation(game.AnimInfo{ID: game.AnimNone, Frame: 3}, 199)
	if state != solidityUnset {
		t.Errorf("state = %d, want solidityUnset", state)
	}
	if got != 199 {
		t.Errorf("solidity = %d, want the nominal 199", got)
	}
}
