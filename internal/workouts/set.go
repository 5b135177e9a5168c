package workouts

import "time"

// Set is one logged exercise set. Metadata is a free-form bag the client
// can use for env/testing markers and device info.
type Set struct {
	ID          int               `json:"id"`
	ExerciseID  string            `json:"exerciseId"`
	MuscleGroup string            `json:"muscleGroup"`
	Kilos       int               `json:"kilos"`
	Reps        int               `json:"reps"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}
