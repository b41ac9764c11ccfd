// Package registry maps button serial numbers to the action each button records.
//
// The table is fixed when the process starts. Adding a button means adding an
// entry; lookup logic never changes.
package registry

import "sort"

// ActionWashedKidsBedSheets is recorded by the bedroom button.
const ActionWashedKidsBedSheets = "ACTION_WASHED_KIDS_BED_SHEETS"

// builtin holds one entry per deployed button.
var builtin = map[string]string{
	"G030MD027383CRCB": ActionWashedKidsBedSheets,
}

// Registry is a read-only serial number -> action table. Safe for concurrent use.
type Registry struct {
	actions map[string]string
}

// New copies entries into a Registry. Entries with an empty key or action are skipped.
func New(entries map[string]string) *Registry {
	r := &Registry{actions: make(map[string]string, len(entries))}
	for serial, action := range entries {
		if serial == "" || action == "" {
			continue
		}
		r.actions[serial] = action
	}
	return r
}

// Default returns the built-in table.
func Default() *Registry {
	return New(builtin)
}

// WithEntries returns a new Registry holding r's entries overlaid with extra.
func (r *Registry) WithEntries(extra map[string]string) *Registry {
	merged := make(map[string]string, len(r.actions)+len(extra))
	for k, v := range r.actions {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return New(merged)
}

// Resolve returns the action for serialNumber. ok is false when the device is
// not registered; that is the only negative outcome.
func (r *Registry) Resolve(serialNumber string) (action string, ok bool) {
	action, ok = r.actions[serialNumber]
	return action, ok
}

// Len reports the number of registered devices.
func (r *Registry) Len() int {
	return len(r.actions)
}

// SerialNumbers lists registered serial numbers in sorted order.
func (r *Registry) SerialNumbers() []string {
	out := make([]string, 0, len(r.actions))
	for serial := range r.actions {
		out = append(out, serial)
	}
	sort.Strings(out)
	return out
}
