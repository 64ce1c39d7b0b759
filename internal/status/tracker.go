// internal/status/tracker.go
package status

// Tracker folds ranging cycles into a Snapshot.
// Each method reports whether the snapshot changed.
type Tracker struct {
	snap Snapshot
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Snapshot { return t.snap }

// OK records a good reading. Recovery resets error state.
func (t *Tracker) OK(distance uint16) bool {
	changed := false

	if t.snap.Health != HealthOK {
		t.snap.Health = HealthOK
		changed = true
	}
	// Reset last error code when healthy.
	if t.snap.LastErrorCode != 0 {
		t.snap.LastErrorCode = 0
		changed = true
	}
	// Reset seconds-in-error on recovery.
	if t.snap.SecondsInError != 0 {
		t.snap.SecondsInError = 0
		changed = true
	}
	if t.snap.LastDistance != distance {
		t.snap.LastDistance = distance
		changed = true
	}

	return changed
}

// Fail records a failed cycle with its code.
// seconds_in_error only moves on Tick.
func (t *Tracker) Fail(code uint16) bool {
	changed := false

	if t.snap.Health != HealthError {
		t.snap.Health = HealthError
		changed = true
	}
	if t.snap.LastErrorCode != code {
		t.snap.LastErrorCode = code
		changed = true
	}

	return changed
}

// Tick advances seconds_in_error while not OK. It never wraps.
func (t *Tracker) Tick() bool {
	if t.snap.Health == HealthOK {
		return false
	}
	if t.snap.SecondsInError >= MaxSecondsInError {
		return false
	}
	t.snap.SecondsInError++
	return true
}
