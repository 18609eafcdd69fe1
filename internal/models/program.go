package models

//
// For TOML parsing only
//

type ProgramTOML struct {
	Name        string    `toml:"name"`
	Description string    `toml:"description"`
	Days        []DayTOML `toml:"day"`
}

type DayTOML struct {
	ID        string         `toml:"id"`
	Name      string         `toml:"name"`
	Tagline   string         `toml:"tagline"`
	Exercises []ExerciseTOML `toml:"exercise"`
}

type ExerciseTOML struct {
	ID           string `toml:"id"`
	Section      string `toml:"section"`
	Variant      string `toml:"variant,omitempty"`
	Name         string `toml:"name"`
	Badge        *Badge `toml:"badge,omitempty"`
	Detail       string `toml:"detail,omitempty"`
	Prescription string `toml:"prescription"`
	Rest         string `toml:"rest,omitempty"`
	Sets         int    `toml:"sets"`
	Reps         int    `toml:"reps,omitempty"`
	Cardio       string `toml:"cardio,omitempty"` // "run" or "swim" for the two wednesday variants.
}
