package resttimer

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrInvalidSnapshot = errors.New("invalid rest timer snapshot")

// Snapshot is the minimal serializable subset of timer state needed to
// resume a countdown after the owning client surface is recreated. It is
// the only timer data that crosses a process boundary.
type Snapshot struct {
	RemainingSeconds        int        `json:"remainingSeconds"`
	IsPaused                bool       `json:"isPaused"`
	OriginalDurationSeconds *int       `json:"originalDurationSeconds"`
	StartTimestamp          *time.Time `json:"startTimestamp"`
}

func (s Snapshot) Validate() error {
	if s.RemainingSeconds < 0 {
		return fmt.Errorf("%w: negative remaining seconds %d", ErrInvalidSnapshot, s.RemainingSeconds)
	}
	if s.OriginalDurationSeconds != nil && *s.OriginalDurationSeconds <= 0 {
		return fmt.Errorf("%w: non-positive original duration %d", ErrInvalidSnapshot, *s.OriginalDurationSeconds)
	}
	return nil
}

func (s Snapshot) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// ParseSnapshot decodes and validates a persisted snapshot. Callers treat
// any error as "no snapshot" and fall back to a fresh start; a corrupt
// payload must never surface as a negative or nonsense remaining time.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err)
	}
	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}
