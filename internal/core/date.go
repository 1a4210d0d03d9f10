package core

import (
	"strconv"
	"strings"
	"time"
)

// Layouts accepted before falling back to the numeric-part heuristic. The
// first few cover ISO-style input; the rest cover locale-formatted labels
// as produced by date widgets and hand typing.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"1/2/2006",
	"1-2-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	time.RFC3339,
}

// NormalizeDate resolves a human-entered date label to a calendar date.
// It never fails: labels it cannot make sense of resolve to now, so every
// entry lands in exactly one period bucket.
//
// An "(edited)" style annotation after the date is decorative and is
// stripped before parsing.
func NormalizeDate(label string, now time.Time) Date {
	s := label
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ToDate(now)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return ToDate(t)
		}
	}

	if d, ok := dateFromNumericParts(s); ok {
		return d
	}
	return ToDate(now)
}

// dateFromNumericParts splits on '/', '-' and '.' and interprets the
// numeric pieces. A leading number above 31 can only be a year, so the
// label reads year-first with month and day defaulting to 1; otherwise
// three parts are required and read as MM-DD-YYYY.
func dateFromNumericParts(s string) (Date, bool) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})

	var nums []int
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	if len(nums) == 0 {
		return Date{}, false
	}

	var year, month, day int
	if nums[0] > 31 {
		year, month, day = nums[0], 1, 1
		if len(nums) > 1 {
			month = nums[1]
		}
		if len(nums) > 2 {
			day = nums[2]
		}
	} else {
		if len(nums) < 3 {
			return Date{}, false
		}
		month, day, year = nums[0], nums[1], nums[2]
	}

	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, false
	}
	return NewDate(year, month, day), true
}
