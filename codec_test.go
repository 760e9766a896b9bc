package lm36011

import "testing"

func TestKnownMaskRoundTrip(t *testing.T) {
	regs := []struct {
		reg    Register
		decode func(byte) byte
	}{
		{RegEnable, func(b byte) byte { return EnableFromRaw(b).Raw() }},
		{RegConfig, func(b byte) byte { return ConfigFromRaw(b).Raw() }},
		{RegFlashBrightness, func(b byte) byte { return FlashFromRaw(b).Raw() }},
		{RegTorchBrightness, func(b byte) byte { return TorchFromRaw(b).Raw() }},
		{RegFlags, func(b byte) byte { return FlagsFromRaw(b).Raw() }},
		{RegDeviceID, func(b byte) byte { return DeviceIDFromRaw(b).Raw() }},
	}
	for _, rc := range regs {
		mask := rc.reg.KnownMask()
		for b := 0; b <= 0xFF; b++ {
			got := rc.decode(byte(b))
			if want := byte(b) & mask; got != want {
				t.Fatalf("%v: decode(%#02x) = %#02x, want %#02x", rc.reg, b, got, want)
			}
			// Encoding a decoded value must be stable.
			if again := rc.decode(got); again != got {
				t.Fatalf("%v: round-trip unstable at %#02x", rc.reg, b)
			}
		}
	}
}

func TestModeClearThenSet(t *testing.T) {
	v := EnableBits(0x1F) // everything set, mode = flash
	if v.Mode() != ModeFlash {
		t.Fatalf("mode = %#02x", v.Mode())
	}
	v = v.WithMode(ModeStandby)
	if v.Raw() != 0x1C {
		t.Fatalf("WithMode(standby) = %#02x, want 0x1C", v.Raw())
	}
	v = v.WithMode(ModeTorch)
	if v.Raw() != 0x1E || v.Mode() != ModeTorch {
		t.Fatalf("WithMode(torch) = %#02x", v.Raw())
	}
	if !v.Has(EnableIVFM) || !v.Has(StrobeEnable) || !v.Has(StrobeEdge) {
		t.Fatal("mode change clobbered unrelated bits")
	}
}

func TestConfigFieldCodec(t *testing.T) {
	var v ConfigBits

	v = v.WithIVFMLevel(IVFM3V6)
	if v.Raw() != 0xE0 || v.IVFMLevel() != IVFM3V6 {
		t.Fatalf("ivfm encode = %#02x", v.Raw())
	}
	v = v.WithIVFMLevel(IVFM2V9)
	if v.Raw() != 0x00 {
		t.Fatalf("ivfm clear-then-set = %#02x", v.Raw())
	}

	v = v.WithFlashTimeout(Timeout1600ms)
	if v.Raw() != 0x1E || v.FlashTimeout() != Timeout1600ms {
		t.Fatalf("timeout encode = %#02x", v.Raw())
	}
	v = v.WithFlashTimeout(Timeout600ms)
	if v.Raw() != 0x14 {
		t.Fatalf("timeout clear-then-set = %#02x", v.Raw())
	}

	v = v.WithTorchRamp(true)
	if !v.TorchRamp() || v.Raw() != 0x15 {
		t.Fatalf("ramp set = %#02x", v.Raw())
	}
	if v.WithTorchRamp(false).Raw() != 0x14 {
		t.Fatal("ramp clear")
	}
}

func TestTimeoutDurations(t *testing.T) {
	cases := map[FlashTimeout]int32{
		Timeout40ms:   40,
		Timeout320ms:  320,
		Timeout360ms:  360,
		Timeout400ms:  400,
		Timeout600ms:  600,
		Timeout1000ms: 1000,
		Timeout1600ms: 1600,
	}
	for code, ms := range cases {
		if got := code.Duration_ms(); got != ms {
			t.Fatalf("Duration_ms(%#x) = %d, want %d", uint8(code), got, ms)
		}
	}
}

func TestIVFMThresholds(t *testing.T) {
	if IVFM2V9.Threshold_mV() != 2900 || IVFM3V3.Threshold_mV() != 3300 ||
		IVFM3V6.Threshold_mV() != 3600 {
		t.Fatal("IVFM threshold mapping incorrect")
	}
}

func TestFlashCodeField(t *testing.T) {
	v := FlashFromRaw(0x8C)
	if v.Code() != 0x0C || !v.Has(ThermalScaleback) {
		t.Fatalf("decode 0x8C: code=%#02x", v.Code())
	}
	if v.WithCode(0x7F).Raw() != 0xFF {
		t.Fatal("WithCode must preserve bit 7")
	}
	if FlashBits(0).WithCode(0xFF).Raw() != 0x7F {
		t.Fatal("WithCode must mask to 7 bits")
	}
}

func TestDeviceIDFields(t *testing.T) {
	v := DeviceIDFromRaw(0x09)
	if v.DeviceID() != 1 || v.SiliconRevision() != 1 {
		t.Fatalf("0x09 fields = %d/%d", v.DeviceID(), v.SiliconRevision())
	}
	v = DeviceIDFromRaw(0x2A)
	if v.DeviceID() != 5 || v.SiliconRevision() != 2 {
		t.Fatalf("0x2A fields = %d/%d", v.DeviceID(), v.SiliconRevision())
	}
}

func TestRegisterStrings(t *testing.T) {
	if RegEnable.String() != "Enable Register" ||
		RegDeviceID.String() != "Device ID Register" ||
		Register(0x42).String() != "Unknown Register" {
		t.Fatal("register names incorrect")
	}
}
