package resttimer

import "time"

// CorrectedRemaining re-anchors a countdown to the wall clock. A countdown
// that decrements once per delivered tick falls arbitrarily far behind real
// time whenever tick delivery is suspended (client tab backgrounded, device
// asleep); recomputing from the absolute start instant removes that drift no
// matter how long ticking was frozen.
//
// startedAt is the instant the current unpaused segment began; a zero value
// means the countdown was paused or never started, in which case
// lastKnownRemaining is already authoritative and is returned unchanged.
func CorrectedRemaining(now, startedAt time.Time, originalDurationSeconds, lastKnownRemaining int) int {
	if startedAt.IsZero() {
		return lastKnownRemaining
	}

	// a negative elapsed is legitimate: snapshots of runs adjusted above
	// their original schedule anchor in the future, and the extra seconds
	// must come back on restore
	elapsed := int(now.Sub(startedAt) / time.Second)

	remaining := originalDurationSeconds - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
