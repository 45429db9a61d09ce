package fitlog

import (
	"sort"
	"time"
)

var metricNames = map[BestWorkoutMetric]string{
	MetricVolume:  "Total Volume",
	MetricWeight:  "Max Weight",
	MetricReps:    "Max Reps",
	Metric1RM:     "Estimated 1RM",
	MetricBestSet: "Best Set Volume",
}

func (m BestWorkoutMetric) Valid() bool {
	_, ok := metricNames[m]
	return ok
}

func (m BestWorkoutMetric) DisplayName() string {
	return metricNames[m]
}

// BestWorkout finds the workout with the greatest value of the given metric,
// optionally skipping the workout with id excludeID (used while editing a
// workout, so it is not compared against its own previous state).
//
// The running best starts at zero and is replaced only on strict
// improvement, so ties resolve to the earliest workout in input order, and
// a candidate set whose metric values are all exactly zero yields nil.
// Callers must keep a stable input order for reproducible tie-breaks.
func BestWorkout(workouts []WorkoutLog, metric BestWorkoutMetric, excludeID string) *BestWorkoutResult {
	if !metric.Valid() {
		return nil
	}

	var bestWorkout *WorkoutLog
	var bestValue float64

	for i := range workouts {
		if excludeID != "" && workouts[i].ID == excludeID {
			continue
		}

		metrics := CalculateWorkoutMetrics(workouts[i])

		var value float64
		switch metric {
		case MetricVolume:
			value = metrics.TotalVolume
		case MetricWeight:
			value = metrics.MaxWeight
		case MetricReps:
			value = float64(metrics.MaxReps)
		case Metric1RM:
			value = metrics.Estimated1RM
		case MetricBestSet:
			value = metrics.BestSetVolume
		}

		if value > bestValue {
			bestValue = value
			bestWorkout = &workouts[i]
		}
	}

	if bestWorkout == nil {
		return nil
	}

	return &BestWorkoutResult{
		Workout:    *bestWorkout,
		Metric:     metric,
		MetricName: metricNames[metric],
		Value:      bestValue,
	}
}

// LastWorkout returns the most recent workout by date, optionally skipping
// excludeID. Workouts sharing a date keep their input order.
func LastWorkout(workouts []WorkoutLog, excludeID string) *WorkoutLog {
	filtered := make([]WorkoutLog, 0, len(workouts))
	for _, w := range workouts {
		if excludeID != "" && w.ID == excludeID {
			continue
		}
		filtered = append(filtered, w)
	}

	if len(filtered) == 0 {
		return nil
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return parseWorkoutDate(filtered[i].Date).After(parseWorkoutDate(filtered[j].Date))
	})

	return &filtered[0]
}

// MaxStatsOf returns the per-set maxima across all given workouts.
func MaxStatsOf(workouts []WorkoutLog) MaxStats {
	var stats MaxStats
	for _, w := range workouts {
		for _, set := range w.Sets {
			if set.Reps > stats.MaxReps {
				stats.MaxReps = set.Reps
			}
			if set.Weight > stats.MaxWeight {
				stats.MaxWeight = set.Weight
			}
		}
	}
	return stats
}

func parseWorkoutDate(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		// unparseable dates sort last
		return time.Time{}
	}
	return t
}
