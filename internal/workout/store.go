// Package workout owns the per-day training state and everything derived from
// it: set completion, per-set weights, statistics, personal records and the
// history of completed workouts.
//
// A Store is not safe for concurrent use. It is meant to be owned by a single
// caller (the CLI) for the lifetime of a session.
package workout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/megin/internal/catalog"
	"github.com/misterclayt0n/megin/internal/models"
	"github.com/misterclayt0n/megin/internal/storage"
	"github.com/sirupsen/logrus"
)

// Persister is the durable storage collaborator. Save may return before the
// write completes.
type Persister interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snap *models.Snapshot) error
}

type Store struct {
	catalog   *catalog.Catalog
	persister Persister
	log       logrus.FieldLogger
	now       func() time.Time
	newID     func() string

	days    map[models.DayID]*models.DayState
	history []models.WorkoutHistoryEntry
	records models.PersonalRecords
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = log }
}

// NewStore returns a store with every day at its default state. Call Load to
// restore persisted state. A nil persister keeps everything in memory.
func NewStore(cat *catalog.Catalog, persister Persister, opts ...Option) *Store {
	s := &Store{
		catalog:   cat,
		persister: persister,
		log:       logrus.StandardLogger(),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     newEntryID,
		days:      make(map[models.DayID]*models.DayState),
		records:   models.PersonalRecords{Exercises: make(map[string]models.ExercisePR)},
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, d := range models.Days() {
		s.days[d] = s.defaultDay(d)
	}
	return s
}

// History ids are UUIDv7 so they sort by creation time.
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func (s *Store) defaultDay(day models.DayID) *models.DayState {
	state := models.NewDayState()
	for _, ex := range s.catalog.Exercises(day) {
		state.Checked[ex.ID] = false
		if ex.TracksSets() {
			state.SetsDone[ex.ID] = make([]bool, ex.SetsCount)
			state.Weights[ex.ID] = make([]float64, ex.SetsCount)
		}
	}
	if day == models.Wednesday {
		state.CardioOption = models.CardioRun
	}
	return state
}

// Load restores persisted state. Missing or unreadable data leaves the
// defaults in place; the error is logged, never returned.
func (s *Store) Load(ctx context.Context) {
	if s.persister == nil {
		return
	}

	snap, err := s.persister.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		s.log.Debug("No saved workout state, starting fresh")
		return
	}
	if err != nil {
		s.log.WithError(err).Error("Failed to load workout state, using defaults")
		return
	}

	s.restore(snap)
	s.log.WithField("history_entries", len(s.history)).Debug("Workout state loaded")
}

func (s *Store) restore(snap *models.Snapshot) {
	for _, day := range models.Days() {
		stored := snap.Days[day]
		if stored == nil {
			continue
		}
		s.days[day] = s.mergeDay(day, stored)
	}

	s.history = models.CloneHistory(snap.History)

	s.records = snap.Records.Clone()
	if s.records.Exercises == nil {
		s.records.Exercises = make(map[string]models.ExercisePR)
	}
}

// mergeDay overlays stored values on the catalog defaults. Ids that are no
// longer in the catalog are carried over untouched.
func (s *Store) mergeDay(day models.DayID, stored *models.DayState) *models.DayState {
	state := s.defaultDay(day)

	for id, v := range stored.Checked {
		state.Checked[id] = v
	}
	for id, v := range stored.SetsDone {
		ex, known := s.catalog.Lookup(day, id)
		switch {
		case !known:
			state.SetsDone[id] = slices.Clone(v)
		case ex.TracksSets():
			state.SetsDone[id] = resize(v, ex.SetsCount)
		}
	}
	for id, v := range stored.Weights {
		ex, known := s.catalog.Lookup(day, id)
		switch {
		case !known:
			state.Weights[id] = slices.Clone(v)
		case ex.TracksSets():
			w := resize(v, ex.SetsCount)
			for i := range w {
				if w[i] < 0 || math.IsNaN(w[i]) || math.IsInf(w[i], 0) {
					w[i] = 0
				}
			}
			state.Weights[id] = w
		}
	}

	if day == models.Wednesday && stored.CardioOption.Valid() {
		state.CardioOption = stored.CardioOption
	}
	return state
}

// resize pads with zero values or truncates so len == n.
func resize[T any](v []T, n int) []T {
	out := make([]T, n)
	copy(out, v)
	return out
}

// ToggleExercise flips the checked flag. For set tracked exercises this is an
// override and the sets are left alone.
func (s *Store) ToggleExercise(day models.DayID, id string) {
	s.mustExercise(day, id)
	state := s.days[day]
	state.Checked[id] = !state.Checked[id]
	s.persist()
}

// ToggleSet flips one set and marks the exercise checked exactly when all of
// its sets are done. Exercises without sets are ignored.
func (s *Store) ToggleSet(day models.DayID, id string, setIndex int) {
	ex := s.mustExercise(day, id)
	if !ex.TracksSets() {
		return
	}
	mustSetIndex(ex, setIndex)

	state := s.days[day]
	sets := state.SetsDone[id]
	sets[setIndex] = !sets[setIndex]
	state.Checked[id] = allDone(sets)
	s.persist()
}

func allDone(sets []bool) bool {
	for _, done := range sets {
		if !done {
			return false
		}
	}
	return true
}

// SetWeight records the weight in kilograms for one set. Zero means no weight
// was entered.
func (s *Store) SetWeight(day models.DayID, id string, setIndex int, weight float64) {
	ex := s.mustExercise(day, id)
	mustSetIndex(ex, setIndex)
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		panic(fmt.Sprintf("workout: invalid weight %v for %s set %d", weight, id, setIndex))
	}

	s.days[day].Weights[id][setIndex] = weight
	s.persist()
}

// SelectCardioOption switches the active wednesday cardio exercise. Progress of
// both variants is kept.
func (s *Store) SelectCardioOption(option models.CardioOption) {
	if !option.Valid() {
		panic(fmt.Sprintf("workout: unknown cardio option %q", option))
	}
	s.days[models.Wednesday].CardioOption = option
	s.persist()
}

// ResetDay puts the day back to its defaults. There is no undo.
func (s *Store) ResetDay(day models.DayID) {
	s.mustDay(day)
	s.days[day] = s.defaultDay(day)
	s.persist()
}

// Day returns a copy of the day's state.
func (s *Store) Day(day models.DayID) *models.DayState {
	return s.mustDay(day).Clone()
}

func (s *Store) CardioOption() models.CardioOption {
	return s.days[models.Wednesday].CardioOption
}

// Active returns the exercises that count toward the day's completion and
// statistics.
func (s *Store) Active(day models.DayID) []models.Exercise {
	return s.catalog.Active(day, s.mustDay(day).CardioOption)
}

func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// Lookup finds an exercise of the day, inactive cardio variant included.
func (s *Store) Lookup(day models.DayID, id string) (models.Exercise, bool) {
	s.mustDay(day)
	return s.catalog.Lookup(day, id)
}

type Progress struct {
	Completed int
	Total     int
	Fraction  float64
}

func (s *Store) Progress(day models.DayID) Progress {
	state := s.mustDay(day)
	active := s.Active(day)

	p := Progress{Total: len(active)}
	for _, ex := range active {
		if state.Checked[ex.ID] {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Fraction = float64(p.Completed) / float64(p.Total)
	}
	return p
}

// Stats computes the statistics of the day's active exercises.
func (s *Store) Stats(day models.DayID) models.WorkoutStats {
	state := s.mustDay(day)
	return ComputeStats(s.Active(day), state.SetsDone, state.Weights)
}

// History returns completed workouts, most recent first.
func (s *Store) History() []models.WorkoutHistoryEntry {
	return models.CloneHistory(s.history)
}

func (s *Store) Records() models.PersonalRecords {
	return s.records.Clone()
}

// SortedRecords lists exercise records by max weight, then max volume, both
// descending.
func (s *Store) SortedRecords() []models.ExercisePR {
	prs := make([]models.ExercisePR, 0, len(s.records.Exercises))
	for _, pr := range s.records.Exercises {
		prs = append(prs, pr)
	}
	sort.Slice(prs, func(i, j int) bool {
		if prs[i].MaxWeight != prs[j].MaxWeight {
			return prs[i].MaxWeight > prs[j].MaxWeight
		}
		if prs[i].MaxVolume != prs[j].MaxVolume {
			return prs[i].MaxVolume > prs[j].MaxVolume
		}
		return prs[i].ExerciseID < prs[j].ExerciseID
	})
	return prs
}

// Snapshot returns a deep copy of everything that gets persisted.
func (s *Store) Snapshot() *models.Snapshot {
	snap := &models.Snapshot{
		Days:    make(map[models.DayID]*models.DayState, len(s.days)),
		History: models.CloneHistory(s.history),
		Records: s.records.Clone(),
	}
	for id, d := range s.days {
		snap.Days[id] = d.Clone()
	}
	return snap
}

// persist hands the current state to the persister. Failures are logged and
// the in-memory state stays as is; the next mutation saves again.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	if err := s.save(); err != nil {
		s.log.WithError(err).Error("Failed to save workout state")
	}
}

func (s *Store) save() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("persister panicked: %v", r)
		}
	}()
	return s.persister.Save(context.Background(), s.Snapshot())
}

func (s *Store) mustDay(day models.DayID) *models.DayState {
	state, ok := s.days[day]
	if !ok {
		panic(fmt.Sprintf("workout: unknown day %q", day))
	}
	return state
}

func (s *Store) mustExercise(day models.DayID, id string) models.Exercise {
	s.mustDay(day)
	ex, ok := s.catalog.Lookup(day, id)
	if !ok {
		panic(fmt.Sprintf("workout: unknown exercise %q for %s", id, day))
	}
	return ex
}

func mustSetIndex(ex models.Exercise, setIndex int) {
	if setIndex < 0 || setIndex >= ex.SetsCount {
		panic(fmt.Sprintf("workout: set index %d out of range for %s (%d sets)", setIndex, ex.ID, ex.SetsCount))
	}
}
