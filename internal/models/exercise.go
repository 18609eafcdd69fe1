package models

import (
	"fmt"
	"strings"
)

type DayID string

const (
	Monday    DayID = "monday"
	Wednesday DayID = "wednesday"
	Friday    DayID = "friday"
)

// Days returns the program days in weekly order.
func Days() []DayID {
	return []DayID{Monday, Wednesday, Friday}
}

// ParseDay accepts the full day name or its three letter prefix, case insensitive.
func ParseDay(s string) (DayID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Days() {
		if s == string(d) || (len(s) == 3 && strings.HasPrefix(string(d), s)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("Unknown day %q (expected monday, wednesday or friday)", s)
}

func (d DayID) Valid() bool {
	switch d {
	case Monday, Wednesday, Friday:
		return true
	}
	return false
}

type Section string

const (
	SectionWarmup   Section = "warmup"
	SectionMain     Section = "main"
	SectionFinisher Section = "finisher"
)

func (s Section) Valid() bool {
	switch s {
	case SectionWarmup, SectionMain, SectionFinisher:
		return true
	}
	return false
}

type CardioOption string

const (
	CardioRun  CardioOption = "run"
	CardioSwim CardioOption = "swim"
)

func (c CardioOption) Valid() bool {
	return c == CardioRun || c == CardioSwim
}

type Badge struct {
	Text string `json:"text" toml:"text"`
	Kind string `json:"kind" toml:"kind"`
}

type Exercise struct {
	ID           string       `json:"id"`
	Section      Section      `json:"section"`
	Variant      string       `json:"variant,omitempty"`
	Name         string       `json:"name"`
	Badge        *Badge       `json:"badge,omitempty"`
	Detail       string       `json:"detail,omitempty"`
	Prescription string       `json:"prescription"` // e.g. "4 x 5" or "2 min".
	Rest         string       `json:"rest,omitempty"`
	SetsCount    int          `json:"sets_count"`             // 0 when sets are not tracked.
	RepsPerSet   int          `json:"reps_per_set,omitempty"` // 0 when weight tracking does not apply.
	Cardio       CardioOption `json:"cardio,omitempty"`       // Set only on the two wednesday cardio variants.
}

func (e Exercise) TracksSets() bool {
	return e.SetsCount > 0
}

// TracksVolume reports whether completed sets of this exercise count toward volume.
func (e Exercise) TracksVolume() bool {
	return e.SetsCount > 0 && e.RepsPerSet > 0
}
