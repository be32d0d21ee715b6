package utils

import (
	"strconv"
	"unicode/utf8"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// Truncate cuts s to at most max bytes without splitting a rune.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// MinorUnits converts a major-unit amount (e.g. dollars) into minor units (cents).
func MinorUnits(amount float64) int64 {
	if amount < 0 {
		return 0
	}
	return int64(amount*100 + 0.5)
}

// MajorUnits converts minor units back into a major-unit amount.
func MajorUnits(minor int64) float64 {
	return float64(minor) / 100
}
