package lm36011

import "errors"

var (
	// Sentinel errors (TinyGo-safe; no fmt)
	ErrCurrentOutOfRange = errors.New("lm36011: current out of range")
	ErrInvalidInput      = errors.New("lm36011: invalid input") // reserved for future validation
	ErrDeviceID          = errors.New("lm36011: unexpected device id")
)

// I2CError wraps a transport failure. The underlying bus error is carried
// unchanged and reachable through errors.Unwrap / errors.Is.
type I2CError struct {
	Err error
}

func (e I2CError) Error() string { return "lm36011: i2c: " + e.Err.Error() }
func (e I2CError) Unwrap() error { return e.Err }
