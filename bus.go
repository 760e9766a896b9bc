package lm36011

// I2C byte-register operations over the fixed device address. The device
// auto-increments its register pointer, so block variants move the pointer
// once and stream.

func (d *Device) readReg(reg Register) (byte, error) {
	d.w[0] = byte(reg)
	if err := d.i2c.Tx(d.addr, d.w[:1], d.r[:1]); err != nil {
		return 0, I2CError{err}
	}
	return d.r[0], nil
}

// readBlock reads n consecutive registers starting at reg. The returned
// slice aliases the device read buffer and is only valid until the next
// bus operation.
func (d *Device) readBlock(reg Register, n int) ([]byte, error) {
	d.w[0] = byte(reg)
	if err := d.i2c.Tx(d.addr, d.w[:1], d.r[:n]); err != nil {
		return nil, I2CError{err}
	}
	return d.r[:n], nil
}

func (d *Device) writeReg(reg Register, val byte) error {
	d.w[0] = byte(reg)
	d.w[1] = val
	if err := d.i2c.Tx(d.addr, d.w[:2], nil); err != nil {
		return I2CError{err}
	}
	return nil
}

func (d *Device) writeBlock(reg Register, data []byte) error {
	d.w[0] = byte(reg)
	n := copy(d.w[1:], data)
	if err := d.i2c.Tx(d.addr, d.w[:1+n], nil); err != nil {
		return I2CError{err}
	}
	return nil
}
