package workout

import (
	"time"

	"github.com/misterclayt0n/megin/internal/models"
)

// UpdateRecords merges a completed workout into the personal records. Every
// comparison is strict, so repeating a record does not move its date.
func UpdateRecords(records *models.PersonalRecords, day models.DayID, stats models.WorkoutStats, now time.Time) {
	if records.Exercises == nil {
		records.Exercises = make(map[string]models.ExercisePR)
	}

	for _, es := range stats.ExerciseStats {
		pr, exists := records.Exercises[es.ExerciseID]
		if !exists {
			pr = models.ExercisePR{ExerciseID: es.ExerciseID}
		}
		pr.ExerciseName = es.ExerciseName

		changed := false
		if w := es.MaxWeight(); w > pr.MaxWeight {
			pr.MaxWeight = w
			pr.MaxWeightDate = now
			changed = true
		}
		if es.TotalVolume > pr.MaxVolume {
			pr.MaxVolume = es.TotalVolume
			pr.MaxVolumeDate = now
			changed = true
		}

		// A record only starts to exist once there is something to hold.
		if exists || changed {
			records.Exercises[es.ExerciseID] = pr
		}
	}

	if stats.TotalVolume > records.BestWorkoutVolume {
		records.BestWorkoutVolume = stats.TotalVolume
		records.BestWorkoutDate = now
		records.BestWorkoutDay = day
	}
}
