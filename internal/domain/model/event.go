// Package model contains domain models passed between layers.
package model

import (
	"strconv"
	"time"
)

// ButtonEvent is the payload published when a physical button is pressed.
// Only SerialNumber drives behavior; the remaining fields are informational.
type ButtonEvent struct {
	SerialNumber   string `json:"serialNumber"`
	ClickType      string `json:"clickType,omitempty"`      // SINGLE, DOUBLE or LONG
	BatteryVoltage string `json:"batteryVoltage,omitempty"` // e.g. "1705mV"
}

// ActionRecord is the persisted fact that a registered button was pressed.
// Attribute names match the lasttimei_events table layout.
type ActionRecord struct {
	ID           string `json:"id" dynamodbav:"id"`
	SerialNumber string `json:"serialNumber" dynamodbav:"SerialNumber"`
	Action       string `json:"action" dynamodbav:"Action"`
	TimeStamp    int64  `json:"timestamp" dynamodbav:"TimeStamp"` // ms since epoch, stored as N
}

// NewActionRecord builds a record stamped with at.
func NewActionRecord(id, serialNumber, action string, at time.Time) ActionRecord {
	return ActionRecord{
		ID:           id,
		SerialNumber: serialNumber,
		Action:       action,
		TimeStamp:    at.UnixMilli(),
	}
}

// Time returns the record timestamp as a time.Time.
func (r ActionRecord) Time() time.Time {
	return time.UnixMilli(r.TimeStamp)
}

// TimeStampString is the wire form of TimeStamp.
func (r ActionRecord) TimeStampString() string {
	return strconv.FormatInt(r.TimeStamp, 10)
}
