package lm36011

import "github.com/claytonkimber/LM36011/x/mathx"

// Current conversions. The flash regulator steps 11.7 mA per code from a
// nominal 11 mA floor; torch steps ≈2.93 mA from ≈2.4 mA. Codes are 7 bits.

const (
	FlashStep_mA float32 = 11.7
	FlashMax_mA  float32 = 1500.0
	TorchStep_mA float32 = 2.93
	TorchMax_mA  float32 = 376.0

	CodeMax uint8 = 0x7F
)

// FlashCodeFor_mA converts a flash current in milliamps to a 7-bit brightness
// code: floor(mA/11.7), saturated at 0x7F. Inputs outside [0, 1500] fail with
// ErrCurrentOutOfRange.
func FlashCodeFor_mA(mA float32) (uint8, error) {
	if !mathx.Between(mA, 0, FlashMax_mA) {
		return 0, ErrCurrentOutOfRange
	}
	return uint8(mathx.Min(uint32(mA/FlashStep_mA), uint32(CodeMax))), nil
}

// TorchCodeFor_mA converts a torch current in milliamps to a 7-bit brightness
// code: floor(mA/2.93), saturated at 0x7F. Inputs outside [0, 376] fail with
// ErrCurrentOutOfRange.
func TorchCodeFor_mA(mA float32) (uint8, error) {
	if !mathx.Between(mA, 0, TorchMax_mA) {
		return 0, ErrCurrentOutOfRange
	}
	return uint8(mathx.Min(uint32(mA/TorchStep_mA), uint32(CodeMax))), nil
}

// FlashCurrent_mA returns the nominal flash current for a brightness code.
// Informational; the inverse of FlashCodeFor_mA up to quantisation.
func FlashCurrent_mA(code uint8) float32 {
	return float32(code&uint8(flashLevelMask)) * FlashStep_mA
}

// TorchCurrent_mA returns the nominal torch current for a brightness code.
func TorchCurrent_mA(code uint8) float32 {
	return float32(code&uint8(torchLevelMask)) * TorchStep_mA
}
