package models

import (
	"slices"
	"time"
)

type DayState struct {
	Checked      map[string]bool      `json:"checked" toml:"checked"`
	SetsDone     map[string][]bool    `json:"sets_done" toml:"sets_done"`
	Weights      map[string][]float64 `json:"weights" toml:"weights"`
	CardioOption CardioOption         `json:"cardio_option,omitempty" toml:"cardio_option,omitempty"`
}

func NewDayState() *DayState {
	return &DayState{
		Checked:  make(map[string]bool),
		SetsDone: make(map[string][]bool),
		Weights:  make(map[string][]float64),
	}
}

func (d *DayState) Clone() *DayState {
	c := NewDayState()
	c.CardioOption = d.CardioOption
	for id, v := range d.Checked {
		c.Checked[id] = v
	}
	for id, v := range d.SetsDone {
		c.SetsDone[id] = slices.Clone(v)
	}
	for id, v := range d.Weights {
		c.Weights[id] = slices.Clone(v)
	}
	return c
}

type WorkoutStats struct {
	TotalVolume         float64         `json:"total_volume" toml:"total_volume"`
	TotalSets           int             `json:"total_sets" toml:"total_sets"`
	TotalReps           int             `json:"total_reps" toml:"total_reps"`
	AverageWeightPerRep float64         `json:"average_weight_per_rep" toml:"average_weight_per_rep"`
	ExerciseStats       []ExerciseStats `json:"exercise_stats" toml:"exercise_stats"`
}

type ExerciseStats struct {
	ExerciseID    string    `json:"exercise_id" toml:"exercise_id"`
	ExerciseName  string    `json:"exercise_name" toml:"exercise_name"`
	SetsCompleted int       `json:"sets_completed" toml:"sets_completed"`
	TotalReps     int       `json:"total_reps" toml:"total_reps"`
	Weights       []float64 `json:"weights" toml:"weights"` // Non-zero weights of completed sets.
	AverageWeight float64   `json:"average_weight" toml:"average_weight"`
	TotalVolume   float64   `json:"total_volume" toml:"total_volume"`
}

// MaxWeight returns the heaviest recorded weight, or 0 when none was entered.
func (s ExerciseStats) MaxWeight() float64 {
	var best float64
	for _, w := range s.Weights {
		if w > best {
			best = w
		}
	}
	return best
}

type ExercisePR struct {
	ExerciseID    string    `json:"exercise_id" toml:"exercise_id"`
	ExerciseName  string    `json:"exercise_name" toml:"exercise_name"`
	MaxWeight     float64   `json:"max_weight" toml:"max_weight"`
	MaxWeightDate time.Time `json:"max_weight_date" toml:"max_weight_date"`
	MaxVolume     float64   `json:"max_volume" toml:"max_volume"`
	MaxVolumeDate time.Time `json:"max_volume_date" toml:"max_volume_date"`
}

type PersonalRecords struct {
	Exercises         map[string]ExercisePR `json:"exercises" toml:"exercises"`
	BestWorkoutVolume float64               `json:"best_workout_volume" toml:"best_workout_volume"`
	BestWorkoutDate   time.Time             `json:"best_workout_date" toml:"best_workout_date"`
	BestWorkoutDay    DayID                 `json:"best_workout_day,omitempty" toml:"best_workout_day,omitempty"`
}

func (r PersonalRecords) Clone() PersonalRecords {
	c := r
	c.Exercises = make(map[string]ExercisePR, len(r.Exercises))
	for id, pr := range r.Exercises {
		c.Exercises[id] = pr
	}
	return c
}

type ExerciseDetail struct {
	ExerciseID    string    `json:"exercise_id" toml:"exercise_id"`
	Name          string    `json:"name" toml:"name"`
	SetsCompleted int       `json:"sets_completed" toml:"sets_completed"`
	TotalReps     int       `json:"total_reps" toml:"total_reps"`
	Weights       []float64 `json:"weights" toml:"weights"`
	Volume        float64   `json:"volume" toml:"volume"`
}

type WorkoutHistoryEntry struct {
	ID          string           `json:"id" toml:"id"`
	DayID       DayID            `json:"day_id" toml:"day_id"`
	CompletedAt time.Time        `json:"completed_at" toml:"completed_at"`
	Stats       WorkoutStats     `json:"stats" toml:"stats"`
	Exercises   []ExerciseDetail `json:"exercises" toml:"exercises"`
}

func (e WorkoutHistoryEntry) Clone() WorkoutHistoryEntry {
	c := e
	c.Stats.ExerciseStats = slices.Clone(e.Stats.ExerciseStats)
	for i := range c.Stats.ExerciseStats {
		c.Stats.ExerciseStats[i].Weights = slices.Clone(c.Stats.ExerciseStats[i].Weights)
	}
	c.Exercises = slices.Clone(e.Exercises)
	for i := range c.Exercises {
		c.Exercises[i].Weights = slices.Clone(c.Exercises[i].Weights)
	}
	return c
}

// CloneHistory deep-copies a list of entries.
func CloneHistory(history []WorkoutHistoryEntry) []WorkoutHistoryEntry {
	if history == nil {
		return nil
	}
	c := make([]WorkoutHistoryEntry, len(history))
	for i, e := range history {
		c[i] = e.Clone()
	}
	return c
}

// Snapshot is the whole persisted record.
type Snapshot struct {
	Days    map[DayID]*DayState   `json:"days" toml:"days"`
	History []WorkoutHistoryEntry `json:"history" toml:"history"`
	Records PersonalRecords       `json:"records" toml:"records"`
}

func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Days:    make(map[DayID]*DayState, len(s.Days)),
		History: CloneHistory(s.History),
		Records: s.Records.Clone(),
	}
	for id, d := range s.Days {
		if d != nil {
			c.Days[id] = d.Clone()
		}
	}
	return c
}
