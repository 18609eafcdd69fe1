package utils

import "time"

// Loc is the location dates are shown in.
var Loc = time.Local

// SetLocation switches the display location, e.g. "America/Sao_Paulo" or "Local".
func SetLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	Loc = loc
	return nil
}

// FormatDate returns the date part in the display location, or "N/A" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.In(Loc).Format("Jan 2, 2006")
}

func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.In(Loc).Format("Jan 2, 2006 at 15:04")
}
