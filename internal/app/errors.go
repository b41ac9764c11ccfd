package service

import (
	"errors"
	"fmt"
)

// ErrUnregisteredDevice matches any *UnregisteredDeviceError via errors.Is.
var ErrUnregisteredDevice = errors.New("device not registered")

// UnregisteredDeviceError reports a press from a serial number with no action.
type UnregisteredDeviceError struct {
	SerialNumber string
}

func (e *UnregisteredDeviceError) Error() string {
	return fmt.Sprintf("serial number, %s, not registered!", e.SerialNumber)
}

// Is lets errors.Is(err, ErrUnregisteredDevice) match.
func (e *UnregisteredDeviceError) Is(target error) bool {
	return target == ErrUnregisteredDevice
}
