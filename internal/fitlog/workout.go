package fitlog

import "time"

type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	MuscleGroup string `json:"muscleGroup"`
}

type WorkoutSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// WorkoutLog is one logged session for a single exercise. The order of Sets
// is significant: it defines the "Set 1..N" labels shown to the user.
type WorkoutLog struct {
	ID         string       `json:"id"`
	Date       string       `json:"date"` // calendar date, YYYY-MM-DD, no time component
	ExerciseID string       `json:"exerciseId"`
	Sets       []WorkoutSet `json:"sets"`
}

type Profile struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// WorkoutMetrics is derived data, recomputed from the sets on every read and
// never persisted.
type WorkoutMetrics struct {
	TotalVolume   float64 `json:"totalVolume"`
	MaxWeight     float64 `json:"maxWeight"`
	MaxReps       int     `json:"maxReps"`
	Estimated1RM  float64 `json:"estimated1RM"`
	AverageWeight float64 `json:"averageWeight"`
	BestSetVolume float64 `json:"bestSetVolume"`
	TotalReps     int     `json:"totalReps"`
}

type MaxStats struct {
	MaxReps   int     `json:"maxReps"`
	MaxWeight float64 `json:"maxWeight"`
}

type BestWorkoutMetric string

const (
	MetricVolume  BestWorkoutMetric = "volume"
	MetricWeight  BestWorkoutMetric = "weight"
	MetricReps    BestWorkoutMetric = "reps"
	Metric1RM     BestWorkoutMetric = "1rm"
	MetricBestSet BestWorkoutMetric = "bestSet"
)

type BestWorkoutResult struct {
	Workout    WorkoutLog        `json:"workout"`
	Metric     BestWorkoutMetric `json:"metric"`
	MetricName string            `json:"metricName"`
	Value      float64           `json:"value"`
}

// WorkoutFilter narrows workout listings; empty fields match everything,
// both filters are AND'ed when set.
type WorkoutFilter struct {
	ExerciseID string
	Date       string
}
