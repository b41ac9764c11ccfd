package press

import (
	"strings"

	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/model"
)

// batteryVoltages cycles through readings a healthy AAA cell reports.
var batteryVoltages = []string{"1705mV", "1650mV", "1570mV"} //nolint:gochecknoglobals // read-only fixture

// Normalize fills zero fields with defaults and trims the base URL.
func (c *Config) Normalize() {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Presses <= 0 {
		c.Presses = DefaultPresses
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.ClickType == "" {
		c.ClickType = DefaultClickType
	}
	if len(c.SerialNumbers) == 0 {
		c.SerialNumbers = []string{DefaultSerial}
	}
}

// generatePresses builds n button events, assigning serial numbers round-robin.
func generatePresses(c *Config) []model.ButtonEvent {
	events := make([]model.ButtonEvent, c.Presses)
	for i := range events {
		events[i] = model.ButtonEvent{
			SerialNumber:   c.SerialNumbers[i%len(c.SerialNumbers)],
			ClickType:      c.ClickType,
			BatteryVoltage: batteryVoltages[i%len(batteryVoltages)],
		}
	}
	return events
}
