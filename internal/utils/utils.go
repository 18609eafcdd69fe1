package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseWeight reads a weight typed by the user. Anything that is not a
// non-negative number counts as 0, i.e. "no weight entered".
func ParseWeight(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(strings.ToLower(s)), "kg"))
	s = strings.ReplaceAll(s, ",", ".")
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return w
}

// FormatKg prints a weight or volume without trailing zeros.
func FormatKg(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + " kg"
}
