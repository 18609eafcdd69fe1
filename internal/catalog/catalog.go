// Package catalog holds the fixed three day program: which exercises belong to
// each day, in which order, and how their sets are tracked.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/megin/internal/models"
)

//go:embed program.toml
var defaultProgram []byte

type Day struct {
	ID        models.DayID
	Name      string
	Tagline   string
	Exercises []models.Exercise
}

type Catalog struct {
	Name        string
	Description string
	days        map[models.DayID]*Day
}

// Default returns the program compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultProgram)
	if err != nil {
		panic("embedded program is invalid: " + err.Error())
	}
	return c
}

// Load reads a program definition from a TOML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Failed to read program file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var programTOML models.ProgramTOML
	if err := toml.Unmarshal(data, &programTOML); err != nil {
		return nil, fmt.Errorf("Invalid TOML format: %w", err)
	}

	c := &Catalog{
		Name:        programTOML.Name,
		Description: programTOML.Description,
		days:        make(map[models.DayID]*Day),
	}

	seen := make(map[string]bool)
	for _, dayTOML := range programTOML.Days {
		dayID, err := models.ParseDay(dayTOML.ID)
		if err != nil {
			return nil, err
		}
		if _, dup := c.days[dayID]; dup {
			return nil, fmt.Errorf("Day %s defined twice", dayID)
		}

		day := &Day{ID: dayID, Name: dayTOML.Name, Tagline: dayTOML.Tagline}
		for _, exTOML := range dayTOML.Exercises {
			ex, err := toExercise(exTOML)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", dayID, err)
			}
			if seen[ex.ID] {
				return nil, fmt.Errorf("Duplicate exercise id %q", ex.ID)
			}
			seen[ex.ID] = true
			day.Exercises = append(day.Exercises, ex)
		}
		c.days[dayID] = day
	}

	for _, d := range models.Days() {
		if _, ok := c.days[d]; !ok {
			return nil, fmt.Errorf("Program is missing day %s", d)
		}
	}

	if err := validateCardio(c); err != nil {
		return nil, err
	}

	return c, nil
}

func toExercise(t models.ExerciseTOML) (models.Exercise, error) {
	if t.ID == "" {
		return models.Exercise{}, fmt.Errorf("Exercise %q has no id", t.Name)
	}
	section := models.Section(t.Section)
	if !section.Valid() {
		return models.Exercise{}, fmt.Errorf("Exercise %s: unknown section %q", t.ID, t.Section)
	}
	if t.Sets < 0 || t.Reps < 0 {
		return models.Exercise{}, fmt.Errorf("Exercise %s: sets and reps must not be negative", t.ID)
	}
	if t.Reps > 0 && t.Sets == 0 {
		return models.Exercise{}, fmt.Errorf("Exercise %s: reps require at least one set", t.ID)
	}

	ex := models.Exercise{
		ID:           t.ID,
		Section:      section,
		Variant:      t.Variant,
		Name:         t.Name,
		Badge:        t.Badge,
		Detail:       t.Detail,
		Prescription: t.Prescription,
		Rest:         t.Rest,
		SetsCount:    t.Sets,
		RepsPerSet:   t.Reps,
	}
	if t.Cardio != "" {
		ex.Cardio = models.CardioOption(t.Cardio)
		if !ex.Cardio.Valid() {
			return models.Exercise{}, fmt.Errorf("Exercise %s: unknown cardio option %q", t.ID, t.Cardio)
		}
	}
	return ex, nil
}

// Wednesday must offer exactly one exercise per cardio option, and only
// wednesday may have them.
func validateCardio(c *Catalog) error {
	count := make(map[models.CardioOption]int)
	for dayID, day := range c.days {
		for _, ex := range day.Exercises {
			if ex.Cardio == "" {
				continue
			}
			if dayID != models.Wednesday {
				return fmt.Errorf("Exercise %s: cardio options are only allowed on wednesday", ex.ID)
			}
			count[ex.Cardio]++
		}
	}
	if count[models.CardioRun] != 1 || count[models.CardioSwim] != 1 {
		return fmt.Errorf("Wednesday needs exactly one run and one swim cardio exercise")
	}
	return nil
}

// Exercises returns every exercise of the day, both cardio variants included.
func (c *Catalog) Exercises(day models.DayID) []models.Exercise {
	return c.mustDay(day).Exercises
}

// Active returns the exercises that count for the day given the cardio
// selection. The selected cardio variant is listed first.
func (c *Catalog) Active(day models.DayID, cardio models.CardioOption) []models.Exercise {
	d := c.mustDay(day)

	var cardioEx []models.Exercise
	var rest []models.Exercise
	for _, ex := range d.Exercises {
		switch {
		case ex.Cardio == "":
			rest = append(rest, ex)
		case ex.Cardio == cardio:
			cardioEx = append(cardioEx, ex)
		}
	}
	return append(cardioEx, rest...)
}

func (c *Catalog) Lookup(day models.DayID, id string) (models.Exercise, bool) {
	for _, ex := range c.mustDay(day).Exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return models.Exercise{}, false
}

// CardioExercise returns wednesday's exercise for the cardio option.
func (c *Catalog) CardioExercise(option models.CardioOption) (models.Exercise, bool) {
	if !option.Valid() {
		return models.Exercise{}, false
	}
	for _, ex := range c.mustDay(models.Wednesday).Exercises {
		if ex.Cardio == option {
			return ex, true
		}
	}
	return models.Exercise{}, false
}

func (c *Catalog) Day(day models.DayID) *Day {
	return c.mustDay(day)
}

func (c *Catalog) mustDay(day models.DayID) *Day {
	d, ok := c.days[day]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown day %q", day))
	}
	return d
}
