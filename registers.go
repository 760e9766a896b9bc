// Package lm36011 provides constants for register addresses and bitfields
// used in the operation of the LM36011 LED flash/torch driver.
package lm36011

// 7-bit I2C address (fixed; the part has no address straps).
const Address = 0x64

// Register identifies one of the six byte-wide device registers.
type Register uint8

const (
	RegEnable          Register = 0x01 // R/W
	RegConfig          Register = 0x02 // R/W
	RegFlashBrightness Register = 0x03 // R/W
	RegTorchBrightness Register = 0x04 // R/W
	RegFlags           Register = 0x05 // R (latched faults)
	RegDeviceID        Register = 0x06 // R: id/revision; W: bit7 = software reset
)

func (r Register) String() string {
	switch r {
	case RegEnable:
		return "Enable Register"
	case RegConfig:
		return "Configuration Register"
	case RegFlashBrightness:
		return "LED Flash Brightness Register"
	case RegTorchBrightness:
		return "LED Torch Brightness Register"
	case RegFlags:
		return "Flags Register"
	case RegDeviceID:
		return "Device ID Register"
	}
	return "Unknown Register"
}

// KnownMask returns the bits of r that the shadow models. Reserved and
// undocumented bits are dropped on decode and written back as zero.
func (r Register) KnownMask() byte {
	switch r {
	case RegEnable:
		return 0x1F // 7:5 reserved
	case RegConfig:
		return 0xFF
	case RegFlashBrightness:
		return 0xFF
	case RegTorchBrightness:
		return 0x7F // bit 7 reserved
	case RegFlags:
		return 0x6F // bits 7 and 4 undocumented
	case RegDeviceID:
		return 0x3F // bit 7 reads zero, bit 6 reserved
	}
	return 0x00
}

// rawSoftwareReset is the write-side payload of RegDeviceID: setting bit 7
// forces a device reset; the remaining bits are ignored by the part.
const rawSoftwareReset byte = 0x80

// expectedSiliconRev is the silicon revision reported by current parts.
const expectedSiliconRev uint8 = 0x01
