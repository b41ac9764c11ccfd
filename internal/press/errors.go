package press

import "errors"

// Sentinel errors for simulation runs.
var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrVerification     = errors.New("verification failed")
)
