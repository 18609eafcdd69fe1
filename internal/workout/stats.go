package workout

import "github.com/misterclayt0n/megin/internal/models"

// ComputeStats derives volume, set and rep totals from completed sets.
//
// Only exercises with both sets and reps per set contribute. An exercise with
// no completed set is left out entirely. A weight of 0 means "not entered":
// the set still counts its reps, but the weight is not part of the average.
func ComputeStats(exercises []models.Exercise, setsDone map[string][]bool, weights map[string][]float64) models.WorkoutStats {
	var stats models.WorkoutStats

	for _, ex := range exercises {
		if !ex.TracksVolume() {
			continue
		}

		sets := setsDone[ex.ID]
		exWeights := weights[ex.ID]

		es := models.ExerciseStats{
			ExerciseID:   ex.ID,
			ExerciseName: ex.Name,
		}
		var weightSum float64
		for i, done := range sets {
			if !done {
				continue
			}
			var w float64
			if i < len(exWeights) {
				w = exWeights[i]
			}

			es.SetsCompleted++
			es.TotalReps += ex.RepsPerSet
			es.TotalVolume += w * float64(ex.RepsPerSet)
			if w != 0 {
				es.Weights = append(es.Weights, w)
				weightSum += w
			}
		}
		if es.SetsCompleted == 0 {
			continue
		}
		if len(es.Weights) > 0 {
			es.AverageWeight = weightSum / float64(len(es.Weights))
		}

		stats.TotalVolume += es.TotalVolume
		stats.TotalSets += es.SetsCompleted
		stats.TotalReps += es.TotalReps
		stats.ExerciseStats = append(stats.ExerciseStats, es)
	}

	if stats.TotalReps > 0 {
		stats.AverageWeightPerRep = stats.TotalVolume / float64(stats.TotalReps)
	}
	return stats
}
