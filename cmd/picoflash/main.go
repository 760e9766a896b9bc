//go:build rp2040 || rp2350

// Command picoflash: LM36011 bring-up on RP2040/Pico.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target pico ./cmd/picoflash
//
// Wiring assumptions:
// - I2C0 @ 400 kHz on Pico defaults: SDA=GP4, SCL=GP5.
// - LM36011 on its fixed address 0x64; strobe pin left unconnected.
package main

import (
	"fmt"
	"machine"
	"time"

	lm36011 "github.com/claytonkimber/LM36011"
	"github.com/claytonkimber/LM36011/x/ramp"
)

func main() {
	time.Sleep(3 * time.Second)
	fmt.Println("\n== LM36011 bring-up ==")

	bus := machine.I2C0
	if err := bus.Configure(machine.I2CConfig{
		Frequency: 400_000,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	}); err != nil {
		fmt.Println("i2c configure:", err)
		return
	}

	led := lm36011.New(bus)

	if _, err := led.VerifyID(); err != nil {
		fmt.Println("verify id:", err)
		return
	}
	snap := led.Snapshot()
	fmt.Println("device id:", snap.DeviceID, "rev:", snap.SiliconRev)

	// Push the defaults, then bring torch up softly to ~188 mA and back.
	if err := led.WriteAll(); err != nil {
		fmt.Println("write all:", err)
		return
	}
	led.SetMode(lm36011.ModeTorch)
	if err := led.WriteAll(); err != nil {
		fmt.Println("torch on:", err)
		return
	}

	tick := func(d time.Duration) bool { time.Sleep(d); return true }
	step := func(code uint8) { _ = led.SetTorchCurrentCode(code) }

	target, _ := lm36011.TorchCodeFor_mA(188)
	ramp.Linear(0, target, lm36011.CodeMax, 1500, 50, tick, step)
	time.Sleep(2 * time.Second)
	ramp.Linear(target, 0, lm36011.CodeMax, 1500, 50, tick, step)

	// One 150 mA flash pulse, bounded by the 600 ms default time-out.
	if err := led.SetFlashCurrent_mA(150); err != nil {
		fmt.Println("flash current:", err)
		return
	}
	led.SetMode(lm36011.ModeFlash)
	if err := led.WriteAll(); err != nil {
		fmt.Println("flash on:", err)
		return
	}
	time.Sleep(700 * time.Millisecond)
	led.SetMode(lm36011.ModeStandby)
	if err := led.WriteAll(); err != nil {
		fmt.Println("standby:", err)
		return
	}

	for {
		flags, err := led.ReadFlags()
		if err != nil {
			fmt.Println("flags:", err)
		} else if flags != 0 {
			fmt.Printf("flags: %#02x (fault=%v)\n", flags.Raw(), flags.Fault())
		}
		time.Sleep(5 * time.Second)
	}
}
