package fitlog

// CalculateWorkoutMetrics computes the aggregate statistics of a single
// workout in one pass over its sets. It is pure and never fails: an empty
// set list yields all-zero metrics, never NaN.
//
// AverageWeight is the plain mean of the set weights, not volume-weighted.
// Estimated1RM uses the Epley formula per set, maximized across sets; it is
// never derived from the aggregated totals.
func CalculateWorkoutMetrics(workout WorkoutLog) WorkoutMetrics {
	var metrics WorkoutMetrics
	var weightSum float64

	for _, set := range workout.Sets {
		setVolume := float64(set.Reps) * set.Weight

		metrics.TotalVolume += setVolume
		metrics.TotalReps += set.Reps
		weightSum += set.Weight

		if set.Weight > metrics.MaxWeight {
			metrics.MaxWeight = set.Weight
		}
		if set.Reps > metrics.MaxReps {
			metrics.MaxReps = set.Reps
		}
		if setVolume > metrics.BestSetVolume {
			metrics.BestSetVolume = setVolume
		}

		// Epley: weight * (1 + reps/30)
		if oneRM := set.Weight * (1 + float64(set.Reps)/30); oneRM > metrics.Estimated1RM {
			metrics.Estimated1RM = oneRM
		}
	}

	if len(workout.Sets) > 0 {
		metrics.AverageWeight = weightSum / float64(len(workout.Sets))
	}

	return metrics
}
