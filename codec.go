package lm36011

// Typed views of the six registers. Each view holds only the bits named in
// the datasheet; the *FromRaw constructors truncate everything else so the
// shadow models known state only, and Raw round-trips whatever a FromRaw
// produced.

// --- Enable (0x01) ---

type EnableBits uint8

const (
	EnableIVFM   EnableBits = 0x10 // input-voltage flash monitor
	StrobeEdge   EnableBits = 0x08 // 1 = edge-triggered strobe, 0 = level
	StrobeEnable EnableBits = 0x04

	modeMask EnableBits = 0x03
)

// Mode is the 2-bit output mode in Enable bits 1:0.
type Mode uint8

const (
	ModeStandby Mode = 0x00
	ModeIRDrive Mode = 0x01
	ModeTorch   Mode = 0x02
	ModeFlash   Mode = 0x03
)

func EnableFromRaw(b byte) EnableBits { return EnableBits(b & RegEnable.KnownMask()) }

func (v EnableBits) Raw() byte                  { return byte(v) }
func (v EnableBits) Has(f EnableBits) bool      { return v&f != 0 }
func (v EnableBits) Mode() Mode                 { return Mode(v & modeMask) }
func (v EnableBits) WithMode(m Mode) EnableBits { return (v &^ modeMask) | EnableBits(m) }

// --- Config (0x02) ---

type ConfigBits uint8

const (
	TorchRamp1ms ConfigBits = 0x01 // 0 = no ramp

	ivfmMask     ConfigBits = 0xE0
	ivfmShift               = 5
	timeoutMask  ConfigBits = 0x1E
	timeoutShift            = 1
)

// IVFMLevel is the 3-bit IVFM threshold code in Config bits 7:5.
type IVFMLevel uint8

const (
	IVFM2V9 IVFMLevel = iota
	IVFM3V0
	IVFM3V1
	IVFM3V2
	IVFM3V3
	IVFM3V4
	IVFM3V5
	IVFM3V6
)

// Threshold_mV returns the monitor threshold: 2900 mV + 100 mV per code.
func (l IVFMLevel) Threshold_mV() int32 { return 2900 + 100*int32(l&0x07) }

// FlashTimeout is the 4-bit flash time-out code in Config bits 4:1.
type FlashTimeout uint8

const (
	Timeout40ms FlashTimeout = iota
	Timeout80ms
	Timeout120ms
	Timeout160ms
	Timeout200ms
	Timeout240ms
	Timeout280ms
	Timeout320ms
	Timeout360ms
	Timeout400ms
	Timeout600ms
	Timeout800ms
	Timeout1000ms
	Timeout1200ms
	Timeout1400ms
	Timeout1600ms
)

var timeoutDurations = [16]int32{
	40, 80, 120, 160, 200, 240, 280, 320,
	360, 400, 600, 800, 1000, 1200, 1400, 1600,
}

// Duration_ms returns the time-out in milliseconds. The ladder is 40 ms
// steps up to 320 ms, then coarser.
func (t FlashTimeout) Duration_ms() int32 { return timeoutDurations[t&0x0F] }

func ConfigFromRaw(b byte) ConfigBits { return ConfigBits(b & RegConfig.KnownMask()) }

func (v ConfigBits) Raw() byte             { return byte(v) }
func (v ConfigBits) Has(f ConfigBits) bool { return v&f != 0 }

func (v ConfigBits) IVFMLevel() IVFMLevel { return IVFMLevel((v & ivfmMask) >> ivfmShift) }
func (v ConfigBits) WithIVFMLevel(l IVFMLevel) ConfigBits {
	return (v &^ ivfmMask) | (ConfigBits(l) << ivfmShift & ivfmMask)
}

func (v ConfigBits) FlashTimeout() FlashTimeout {
	return FlashTimeout((v & timeoutMask) >> timeoutShift)
}
func (v ConfigBits) WithFlashTimeout(t FlashTimeout) ConfigBits {
	return (v &^ timeoutMask) | (ConfigBits(t) << timeoutShift & timeoutMask)
}

func (v ConfigBits) TorchRamp() bool { return v&TorchRamp1ms != 0 }
func (v ConfigBits) WithTorchRamp(on bool) ConfigBits {
	if on {
		return v | TorchRamp1ms
	}
	return v &^ TorchRamp1ms
}

// --- LED Flash Brightness (0x03) ---

type FlashBits uint8

const (
	// ThermalScaleback lets the part derate flash current on die temperature.
	ThermalScaleback FlashBits = 0x80

	// Canonical brightness codes (11.7 mA per step, code 0 ≈ 11 mA).
	Flash11mA   FlashBits = 0x00
	Flash257mA  FlashBits = 0x15
	Flash750mA  FlashBits = 0x3F
	Flash1030mA FlashBits = 0x5F
	Flash1200mA FlashBits = 0x66
	Flash1500mA FlashBits = 0x7F

	flashLevelMask FlashBits = 0x7F
)

func FlashFromRaw(b byte) FlashBits { return FlashBits(b & RegFlashBrightness.KnownMask()) }

func (v FlashBits) Raw() byte            { return byte(v) }
func (v FlashBits) Has(f FlashBits) bool { return v&f != 0 }
func (v FlashBits) Code() uint8          { return uint8(v & flashLevelMask) }
func (v FlashBits) WithCode(c uint8) FlashBits {
	return (v &^ flashLevelMask) | (FlashBits(c) & flashLevelMask)
}

// --- LED Torch Brightness (0x04) ---

type TorchBits uint8

const (
	// Canonical brightness codes (≈2.93 mA per step, code 0 ≈ 2.4 mA).
	Torch2p4mA TorchBits = 0x00
	Torch64mA  TorchBits = 0x15
	Torch188mA TorchBits = 0x3F
	Torch258mA TorchBits = 0x5F
	Torch302mA TorchBits = 0x66
	Torch376mA TorchBits = 0x7F

	torchLevelMask TorchBits = 0x7F
)

func TorchFromRaw(b byte) TorchBits { return TorchBits(b & RegTorchBrightness.KnownMask()) }

func (v TorchBits) Raw() byte   { return byte(v) }
func (v TorchBits) Code() uint8 { return uint8(v & torchLevelMask) }
func (v TorchBits) WithCode(c uint8) TorchBits {
	return (v &^ torchLevelMask) | (TorchBits(c) & torchLevelMask)
}

// --- Flags (0x05, read-only) ---

type FlagBits uint8

const (
	FlagIVFMTrip         FlagBits = 0x40
	FlagVLEDShort        FlagBits = 0x20
	FlagThermalScaleback FlagBits = 0x08 // derating currently active
	FlagThermalShutdown  FlagBits = 0x04
	FlagUVLO             FlagBits = 0x02
	FlagFlashTimeout     FlagBits = 0x01
)

func FlagsFromRaw(b byte) FlagBits { return FlagBits(b & RegFlags.KnownMask()) }

func (v FlagBits) Raw() byte           { return byte(v) }
func (v FlagBits) Has(f FlagBits) bool { return v&f != 0 }

// Fault reports whether any hard fault is latched (thermal shutdown, VLED
// short, or under-voltage lockout).
func (v FlagBits) Fault() bool {
	return v&(FlagThermalShutdown|FlagVLEDShort|FlagUVLO) != 0
}

// --- Device ID / Reset (0x06) ---

type DeviceIDBits uint8

const (
	deviceIDMask   DeviceIDBits = 0x38
	siliconRevMask DeviceIDBits = 0x07
)

func DeviceIDFromRaw(b byte) DeviceIDBits { return DeviceIDBits(b & RegDeviceID.KnownMask()) }

func (v DeviceIDBits) Raw() byte { return byte(v) }

// DeviceID returns the 3-bit device identifier (bits 5:3).
func (v DeviceIDBits) DeviceID() uint8 { return uint8(v&deviceIDMask) >> 3 }

// SiliconRevision returns the 3-bit revision field (bits 2:0).
func (v DeviceIDBits) SiliconRevision() uint8 { return uint8(v & siliconRevMask) }
