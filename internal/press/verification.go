package press

import (
	"context"
	"fmt"
)

// verifyRecorded reads back every recorded press and checks the serial
// number round-trips.
func verifyRecorded(ctx context.Context, client *HTTPClient, stats *Stats) error {
	for _, r := range stats.Results {
		if r.Outcome != OutcomeRecorded {
			continue
		}
		rec, err := client.Get(ctx, r.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrVerification, err)
		}
		if rec.SerialNumber != r.SerialNumber {
			return fmt.Errorf("%w: record %s has serial %s, pressed %s",
				ErrVerification, r.ID, rec.SerialNumber, r.SerialNumber)
		}
		stats.Verified++
	}
	return nil
}
