// Package press simulates IoT button presses against the local HTTP API.
package press

import "time"

// Config holds configuration for a simulation run.
type Config struct {
	BaseURL       string        // Base URL of the service
	Presses       int           // Number of presses to submit
	Workers       int           // Number of concurrent workers
	Timeout       time.Duration // HTTP request timeout
	SerialNumbers []string      // Buttons to press, used round-robin
	ClickType     string        // SINGLE, DOUBLE or LONG
	Verify        bool          // Read back every recorded press
	Verbose       bool          // Log every press
}

// Outcome classifies one press by the status the API answered with.
type Outcome string

// Outcomes reported by the API.
const (
	OutcomeRecorded     Outcome = "recorded"
	OutcomeUnregistered Outcome = "unregistered"
	OutcomeStoreError   Outcome = "store_error"
	OutcomeFailed       Outcome = "failed"
)

// Result is the outcome of a single press.
type Result struct {
	SerialNumber string
	Outcome      Outcome
	ID           string // set when Outcome is OutcomeRecorded
	Message      string // error message from the API, if any
}

// Stats holds run statistics.
type Stats struct {
	Submitted    int
	Recorded     int
	Unregistered int
	StoreErrors  int
	Failed       int
	Verified     int
	Results      []Result
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}

func (s *Stats) add(r Result) {
	s.Submitted++
	s.Results = append(s.Results, r)
	switch r.Outcome {
	case OutcomeRecorded:
		s.Recorded++
	case OutcomeUnregistered:
		s.Unregistered++
	case OutcomeStoreError:
		s.StoreErrors++
	default:
		s.Failed++
	}
}
