package lm36011

// Snapshot is a decoded view of the whole register shadow.
type Snapshot struct {
	Mode          Mode
	IVFMEnabled   bool
	StrobeEnabled bool
	StrobeEdge    bool

	IVFMThreshold_mV int32
	FlashTimeout_ms  int32
	TorchRamp1ms     bool

	Flash_mA         float32
	Torch_mA         float32
	ThermalScaleback bool

	Faults     FlagBits
	DeviceID   uint8
	SiliconRev uint8
}

// Snapshot decodes the current shadow. It does not touch the bus; call
// ReadSnapshot (or ReadAll first) for wire truth.
func (d *Device) Snapshot() Snapshot {
	return Snapshot{
		Mode:          d.enable.Mode(),
		IVFMEnabled:   d.enable.Has(EnableIVFM),
		StrobeEnabled: d.enable.Has(StrobeEnable),
		StrobeEdge:    d.enable.Has(StrobeEdge),

		IVFMThreshold_mV: d.config.IVFMLevel().Threshold_mV(),
		FlashTimeout_ms:  d.config.FlashTimeout().Duration_ms(),
		TorchRamp1ms:     d.config.TorchRamp(),

		Flash_mA:         FlashCurrent_mA(d.flash.Code()),
		Torch_mA:         TorchCurrent_mA(d.torch.Code()),
		ThermalScaleback: d.flash.Has(ThermalScaleback),

		Faults:     d.flags,
		DeviceID:   d.devID.DeviceID(),
		SiliconRev: d.devID.SiliconRevision(),
	}
}

// ReadSnapshot refreshes the shadow from the device and decodes it.
func (d *Device) ReadSnapshot() (Snapshot, error) {
	if err := d.ReadAll(); err != nil {
		return Snapshot{}, err
	}
	return d.Snapshot(), nil
}
