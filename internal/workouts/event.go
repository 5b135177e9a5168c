package workouts

import (
	"fmt"
	"time"
)

type TrainingStart struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

type TrainingFinish struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Calories  int       `json:"calories"`
}

// Event (DB level type) records training lifecycle markers sent from the
// client app: training started / training finished (with calories burned).
type Event struct {
	ID        int               `json:"id"`
	Type      EventType         `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Data      map[string]string `json:"data"`
}

func NewTrainingStartEvent(ts TrainingStart) Event {
	return Event{
		ID:        ts.ID,
		Type:      EventTypeTrainingStarted,
		Timestamp: ts.Timestamp,
		Data:      map[string]string{},
	}
}

func NewTrainingFinishEvent(tf TrainingFinish) Event {
	return Event{
		ID:        tf.ID,
		Type:      EventTypeTrainingFinished,
		Timestamp: tf.Timestamp,
		Data: map[string]string{
			"calories": fmt.Sprintf("%d", tf.Calories),
		},
	}
}

type EventType string

const (
	EventTypeTrainingStarted  EventType = "training_started"
	EventTypeTrainingFinished EventType = "training_finished"
)

func (et EventType) String() string {
	return string(et)
}

func (et EventType) IsValid() bool {
	switch et {
	case EventTypeTrainingStarted, EventTypeTrainingFinished:
		return true
	default:
		return false
	}
}
