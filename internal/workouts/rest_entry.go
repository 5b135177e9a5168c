package workouts

import "time"

// RestEntry records one finished between-sets rest: how long was planned,
// how long was actually rested, and whether the countdown ran out on its
// own or was skipped. SessionHash is a digest of the client session token,
// the raw token is never stored.
type RestEntry struct {
	ID             int        `json:"id"`
	SessionHash    string     `json:"sessionHash"`
	PlannedSeconds int        `json:"plannedSeconds"`
	ActualSeconds  int        `json:"actualSeconds"`
	Completed      bool       `json:"completed"`
	ZeroCrossingAt *time.Time `json:"zeroCrossingAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}
