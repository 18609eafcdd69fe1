package storage

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/megin/internal/models"
)

// tomlSnapshot is the on-disk shape of a snapshot. The TOML encoder only
// handles maps keyed by plain strings, so days are keyed by string here.
type tomlSnapshot struct {
	Days    map[string]*models.DayState  `toml:"days"`
	History []models.WorkoutHistoryEntry `toml:"history"`
	Records models.PersonalRecords       `toml:"records"`
}

func encodeTOML(w io.Writer, snap *models.Snapshot) error {
	doc := tomlSnapshot{
		Days:    make(map[string]*models.DayState, len(snap.Days)),
		History: snap.History,
		Records: snap.Records,
	}
	for day, state := range snap.Days {
		if state != nil {
			doc.Days[string(day)] = state
		}
	}
	return toml.NewEncoder(w).Encode(doc)
}

func decodeTOML(data []byte) (*models.Snapshot, error) {
	var doc tomlSnapshot
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, err
	}

	snap := &models.Snapshot{
		Days:    make(map[models.DayID]*models.DayState, len(doc.Days)),
		History: doc.History,
		Records: doc.Records,
	}
	for day, state := range doc.Days {
		snap.Days[models.DayID(day)] = state
	}
	return snap, nil
}
