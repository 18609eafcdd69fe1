package workout

import (
	"slices"

	"github.com/misterclayt0n/megin/internal/models"
	"github.com/sirupsen/logrus"
)

// CompleteWorkout records the day in the history, updates the personal
// records and resets the day, then saves once. When no set was completed
// nothing changes and ok is false.
func (s *Store) CompleteWorkout(day models.DayID) (entry models.WorkoutHistoryEntry, ok bool) {
	stats := s.Stats(day)
	if stats.TotalSets == 0 {
		return models.WorkoutHistoryEntry{}, false
	}

	now := s.now()
	entry = models.WorkoutHistoryEntry{
		ID:          s.newID(),
		DayID:       day,
		CompletedAt: now,
		Stats:       stats,
		Exercises:   make([]models.ExerciseDetail, 0, len(stats.ExerciseStats)),
	}
	for _, es := range stats.ExerciseStats {
		entry.Exercises = append(entry.Exercises, models.ExerciseDetail{
			ExerciseID:    es.ExerciseID,
			Name:          es.ExerciseName,
			SetsCompleted: es.SetsCompleted,
			TotalReps:     es.TotalReps,
			Weights:       slices.Clone(es.Weights),
			Volume:        es.TotalVolume,
		})
	}

	s.history = append([]models.WorkoutHistoryEntry{entry}, s.history...)
	UpdateRecords(&s.records, day, stats, now)
	s.days[day] = s.defaultDay(day)
	s.persist()

	s.log.WithFields(logrus.Fields{
		"day":      day,
		"entry_id": entry.ID,
		"volume":   stats.TotalVolume,
	}).Info("Workout completed")

	return entry.Clone(), true
}

// DeleteHistoryEntry removes one entry from the history. Personal records are
// not recomputed. Deleting an unknown id does nothing.
func (s *Store) DeleteHistoryEntry(id string) bool {
	idx := slices.IndexFunc(s.history, func(e models.WorkoutHistoryEntry) bool {
		return e.ID == id
	})
	if idx < 0 {
		return false
	}

	s.history = slices.Delete(s.history, idx, idx+1)
	s.persist()
	return true
}

type HistorySummary struct {
	Workouts    int
	TotalVolume float64
	TotalSets   int
}

func Summarize(history []models.WorkoutHistoryEntry) HistorySummary {
	var sum HistorySummary
	for _, e := range history {
		sum.Workouts++
		sum.TotalVolume += e.Stats.TotalVolume
		sum.TotalSets += e.Stats.TotalSets
	}
	return sum
}
