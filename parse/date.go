package parse

import (
	"strconv"
	"strings"
	"time"

	"github.com/tagirov/rusk/models"
)

// Two-digit years below the pivot belong to the 2000s, the rest to the 1900s.
const yearPivot = 70

// Date parses a flexible human-entered date string into a calendar date.
//
// Accepted input is day-month-year with '-' or '/' as separator (mixing is
// fine), optional leading zeros on day and month, and either a 2-digit or a
// 4-digit year. Two-digit years expand by a fixed pivot: 00-69 become 20xx,
// 70-99 become 19xx. Relative keywords like "today" are not understood here;
// the command layer resolves those before calling this parser.
func Date(raw string) (models.Date, error) {
	trimmed := strings.TrimSpace(raw)
	parts := strings.Split(strings.ReplaceAll(trimmed, "/", "-"), "-")
	if len(parts) != 3 {
		return models.Date{}, &ParseError{Input: raw, Reason: "expected day-month-year, e.g. 31-12-2025"}
	}

	day, ok := dateComponent(parts[0], 2)
	if !ok {
		return models.Date{}, &ParseError{Input: raw, Reason: "day must be one or two digits"}
	}
	month, ok := dateComponent(parts[1], 2)
	if !ok {
		return models.Date{}, &ParseError{Input: raw, Reason: "month must be one or two digits"}
	}

	yearStr := parts[2]
	if !allDigits(yearStr) || (len(yearStr) != 2 && len(yearStr) != 4) {
		return models.Date{}, &ParseError{Input: raw, Reason: "year must be two or four digits"}
	}
	year, _ := strconv.Atoi(yearStr)
	if len(yearStr) == 2 {
		if year < yearPivot {
			year += 2000
		} else {
			year += 1900
		}
	}

	date, err := models.NewDate(year, time.Month(month), day)
	if err != nil {
		return models.Date{}, &ParseError{Input: raw, Reason: err.Error()}
	}
	return date, nil
}

// dateComponent parses a day or month piece of at most maxDigits digits.
func dateComponent(s string, maxDigits int) (int, bool) {
	if !allDigits(s) || len(s) > maxDigits {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
