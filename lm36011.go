// Package lm36011 is a driver for the Texas Instruments LM36011 inductorless
// LED flash/torch driver (I2C, fixed address 0x64).
//
// Datasheet: https://www.ti.com/lit/ds/symlink/lm36011.pdf
//
// The driver keeps an in-memory shadow of the six device registers. Typed
// shadow mutators (SetMode, SetFlashTimeout, ...) touch memory only and are
// flushed in one transaction by WriteAll; ReadAll refreshes the whole shadow
// from the wire. Register-scoped GetRegister/SetRegister keep shadow and
// wire coherent one register at a time. Shadow is updated only when the bus
// operation succeeds.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when
// both w and r are provided, without releasing the bus.
//
// The driver allocates nothing after New and is safe for freestanding
// targets. It is single-owner: no internal locking, operations hit the bus
// in program order.
package lm36011

import (
	"tinygo.org/x/drivers"
)

// Device represents an LM36011 on an I2C bus, together with the shadow of
// its register file.
type Device struct {
	i2c  drivers.I2C
	addr uint16

	enable EnableBits
	config ConfigBits
	flash  FlashBits
	torch  TorchBits
	flags  FlagBits
	devID  DeviceIDBits

	// Fixed buffers to avoid per-call heap allocations.
	w [5]byte
	r [6]byte
}

// New creates a driver for a bus that is already configured. Only the Device
// object is created; the bus is not touched. The shadow starts at the
// documented power-on defaults.
func New(i2c drivers.I2C) *Device {
	d := &Device{i2c: i2c, addr: Address}
	d.resetShadow()
	return d
}

// resetShadow loads the power-on register defaults.
func (d *Device) resetShadow() {
	d.enable = EnableIVFM
	d.config = ConfigBits(0).
		WithIVFMLevel(IVFM2V9).
		WithFlashTimeout(Timeout600ms).
		WithTorchRamp(true)
	d.flash = Flash11mA | ThermalScaleback
	d.torch = Torch2p4mA
	d.flags = 0
	d.devID = 0
}

// --- Shadow views and memory-only mutators (flushed by WriteAll) ---

func (d *Device) Enable() EnableBits { return d.enable }
func (d *Device) Config() ConfigBits { return d.config }
func (d *Device) Flash() FlashBits   { return d.flash }
func (d *Device) Torch() TorchBits   { return d.torch }
func (d *Device) Flags() FlagBits    { return d.flags }
func (d *Device) ID() DeviceIDBits   { return d.devID }

func (d *Device) SetEnable(v EnableBits) { d.enable = EnableFromRaw(v.Raw()) }
func (d *Device) SetConfig(v ConfigBits) { d.config = ConfigFromRaw(v.Raw()) }
func (d *Device) SetFlash(v FlashBits)   { d.flash = FlashFromRaw(v.Raw()) }
func (d *Device) SetTorch(v TorchBits)   { d.torch = TorchFromRaw(v.Raw()) }

// SetMode selects the output mode, clearing the previous one under the mask.
func (d *Device) SetMode(m Mode) { d.enable = d.enable.WithMode(m) }

// SetStrobe configures the external strobe trigger: enabled or not, and
// edge- vs level-sensitive.
func (d *Device) SetStrobe(enabled, edge bool) {
	v := d.enable &^ (StrobeEnable | StrobeEdge)
	if enabled {
		v |= StrobeEnable
	}
	if edge {
		v |= StrobeEdge
	}
	d.enable = v
}

func (d *Device) SetIVFMLevel(l IVFMLevel) { d.config = d.config.WithIVFMLevel(l) }

func (d *Device) SetFlashTimeout(t FlashTimeout) { d.config = d.config.WithFlashTimeout(t) }

func (d *Device) SetTorchRamp(on bool) { d.config = d.config.WithTorchRamp(on) }

// setShadow routes a raw byte read from (or written to) the wire into the
// matching shadow slot, truncated to the register's known bits. Offsets
// outside the register file are passed on the wire but shadow nothing.
func (d *Device) setShadow(reg Register, raw byte) {
	switch reg {
	case RegEnable:
		d.enable = EnableFromRaw(raw)
	case RegConfig:
		d.config = ConfigFromRaw(raw)
	case RegFlashBrightness:
		d.flash = FlashFromRaw(raw)
	case RegTorchBrightness:
		d.torch = TorchFromRaw(raw)
	case RegFlags:
		d.flags = FlagsFromRaw(raw)
	case RegDeviceID:
		d.devID = DeviceIDFromRaw(raw)
	}
}

// --- Register-scoped wire operations ---

// GetRegister reads one register, refreshes its shadow slot and returns the
// raw byte as read (before known-bit truncation).
func (d *Device) GetRegister(reg Register) (byte, error) {
	raw, err := d.readReg(reg)
	if err != nil {
		return 0, err
	}
	d.setShadow(reg, raw)
	return raw, nil
}

// SetRegister writes one register. The shadow slot is updated only if the
// write succeeded. Writing the Flags offset is allowed at the wire level
// even though the part defines no effect for it.
func (d *Device) SetRegister(reg Register, val byte) error {
	if err := d.writeReg(reg, val); err != nil {
		return err
	}
	d.setShadow(reg, val)
	return nil
}

// --- Brightness setters ---

// SetFlashCurrentCode writes a 7-bit flash brightness code. Bit 7 (thermal
// scale-back) keeps its shadowed value both in the byte put on the wire and
// in the shadow. Codes above 0x7F fail with ErrCurrentOutOfRange.
func (d *Device) SetFlashCurrentCode(code uint8) error {
	if code > CodeMax {
		return ErrCurrentOutOfRange
	}
	raw := d.flash.WithCode(code).Raw()
	if err := d.writeReg(RegFlashBrightness, raw); err != nil {
		return err
	}
	d.flash = FlashFromRaw(raw)
	return nil
}

// SetFlashCurrent_mA sets the flash current in milliamps; see FlashCodeFor_mA
// for the quantisation rules.
func (d *Device) SetFlashCurrent_mA(mA float32) error {
	code, err := FlashCodeFor_mA(mA)
	if err != nil {
		return err
	}
	return d.SetFlashCurrentCode(code)
}

// SetTorchCurrentCode writes a 7-bit torch brightness code. Bit 7 is
// reserved and written as zero.
func (d *Device) SetTorchCurrentCode(code uint8) error {
	if code > CodeMax {
		return ErrCurrentOutOfRange
	}
	raw := d.torch.WithCode(code).Raw()
	if err := d.writeReg(RegTorchBrightness, raw); err != nil {
		return err
	}
	d.torch = TorchFromRaw(raw)
	return nil
}

// SetTorchCurrent_mA sets the torch current in milliamps; see TorchCodeFor_mA
// for the quantisation rules.
func (d *Device) SetTorchCurrent_mA(mA float32) error {
	code, err := TorchCodeFor_mA(mA)
	if err != nil {
		return err
	}
	return d.SetTorchCurrentCode(code)
}

// --- Bulk shadow/wire synchronisation ---

// ReadAll block-reads all six registers and refreshes the whole shadow.
// The update is atomic with respect to failure: on a transport error no
// shadow slot changes.
func (d *Device) ReadAll() error {
	buf, err := d.readBlock(RegEnable, 6)
	if err != nil {
		return err
	}
	d.enable = EnableFromRaw(buf[0])
	d.config = ConfigFromRaw(buf[1])
	d.flash = FlashFromRaw(buf[2])
	d.torch = TorchFromRaw(buf[3])
	d.flags = FlagsFromRaw(buf[4])
	d.devID = DeviceIDFromRaw(buf[5])
	return nil
}

// WriteAll flushes the four writable shadows (Enable, Config, Flash, Torch)
// in one block write. Flags is read-only and the Device ID register's write
// path is the reset trigger, so neither is included. On a transport error
// the device may hold a partially updated register file; the shadow is left
// as-is and callers wanting convergence should follow up with ReadAll.
func (d *Device) WriteAll() error {
	d.w[1] = d.enable.Raw()
	d.w[2] = d.config.Raw()
	d.w[3] = d.flash.Raw()
	d.w[4] = d.torch.Raw()
	return d.writeBlock(RegEnable, d.w[1:5])
}

// SoftwareReset forces a device reset by writing the reset bit of the
// Device ID register. On success the shadow is re-initialised to the
// power-on defaults, which is what the part now holds; no follow-up read
// is performed.
func (d *Device) SoftwareReset() error {
	if err := d.writeReg(RegDeviceID, rawSoftwareReset); err != nil {
		return err
	}
	d.resetShadow()
	return nil
}

// ReadFlags polls the latched fault flags with a single register read.
func (d *Device) ReadFlags() (FlagBits, error) {
	raw, err := d.GetRegister(RegFlags)
	if err != nil {
		return 0, err
	}
	return FlagsFromRaw(raw), nil
}

// VerifyID refreshes the whole shadow and checks that the part reports the
// expected silicon revision. A mismatch fails with ErrDeviceID.
//
// TODO: confirm with the hardware owner whether the device-ID field
// (bits 5:3) should be checked instead of (or as well as) the revision.
func (d *Device) VerifyID() (bool, error) {
	if err := d.ReadAll(); err != nil {
		return false, err
	}
	if d.devID.SiliconRevision() != expectedSiliconRev {
		return false, ErrDeviceID
	}
	return true, nil
}
