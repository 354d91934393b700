package domain

import (
	"fmt"
	"sort"
	"time"
)

// Holiday is a calendar date on which no pickups happen
type Holiday struct {
	Date time.Time // Midnight in the business zone
	Name string
}

// ParseHoliday parses a YYYY-MM-DD date in the given location
func ParseHoliday(date string, name string, loc *time.Location) (Holiday, error) {
	d, err := time.ParseInLocation(DateFormat, date, loc)
	if err != nil {
		return Holiday{}, fmt.Errorf("parse holiday %q: %w", date, err)
	}
	return Holiday{Date: d, Name: name}, nil
}

// Key returns the YYYY-MM-DD representation of the holiday
func (h Holiday) Key() string {
	return h.Date.Format(DateFormat)
}

// Matches returns true if t falls on the holiday's calendar date
func (h Holiday) Matches(t time.Time) bool {
	local := t.In(h.Date.Location())
	y1, m1, d1 := local.Date()
	y2, m2, d2 := h.Date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsHoliday returns true if t falls on any of the holidays
func IsHoliday(holidays []Holiday, t time.Time) bool {
	for _, h := range holidays {
		if h.Matches(t) {
			return true
		}
	}
	return false
}

// MergeHolidays joins lists, drops duplicate dates (first name wins) and sorts by date
func MergeHolidays(lists ...[]Holiday) []Holiday {
	seen := make(map[string]struct{})
	result := make([]Holiday, 0)

	for _, list := range lists {
		for _, h := range list {
			if _, ok := seen[h.Key()]; ok {
				continue
			}
			seen[h.Key()] = struct{}{}
			result = append(result, h)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})

	return result
}

// FilterHolidays keeps holidays whose date lies in [from, to]
func FilterHolidays(holidays []Holiday, from, to time.Time) []Holiday {
	result := make([]Holiday, 0, len(holidays))
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for _, h := range holidays {
		if h.Date.Before(fromDay) || h.Date.After(to) {
			continue
		}
		result = append(result, h)
	}
	return result
}
