package press

import "time"

// Defaults applied by Normalize.
const (
	DefaultBaseURL   = "http://localhost:9080"
	DefaultPresses   = 1
	DefaultWorkers   = 4
	DefaultTimeout   = 10 * time.Second
	DefaultClickType = "SINGLE"
	DefaultSerial    = "G030MD027383CRCB"
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

const percentageMultiplier = 100
