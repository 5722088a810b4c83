// Package schedule classifies shows relative to the current time.
//
// Classification is never stored: a show is past when its start time is at
// or before now and upcoming when it starts strictly after now.
package schedule

import "time"

// StartTimeLayout renders show start times as YYYY-MM-DD HH:MM:SS.
const StartTimeLayout = "2006-01-02 15:04:05"

// IsUpcoming reports whether a show starting at start is still ahead of now.
func IsUpcoming(start, now time.Time) bool {
	return start.After(now)
}

// Partition splits items into past and upcoming using startOf to read each
// item's start time. Input order is preserved in both partitions and both
// returned slices are non-nil.
func Partition[T any](items []T, now time.Time, startOf func(T) time.Time) (past, upcoming []T) {
	past = make([]T, 0, len(items))
	upcoming = make([]T, 0)
	for _, item := range items {
		if IsUpcoming(startOf(item), now) {
			upcoming = append(upcoming, item)
			continue
		}
		past = append(past, item)
	}
	return past, upcoming
}

// CountUpcoming returns how many of items start after now.
func CountUpcoming[T any](items []T, now time.Time, startOf func(T) time.Time) int {
	n := 0
	for _, item := range items {
		if IsUpcoming(startOf(item), now) {
			n++
		}
	}
	return n
}

// FormatStartTime renders t with StartTimeLayout.
func FormatStartTime(t time.Time) string {
	return t.Format(StartTimeLayout)
}

// startTimeLayouts are the accepted form encodings of a start time, in the
// order they are tried.
var startTimeLayouts = []string{
	StartTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.RFC3339,
}

// ParseStartTime parses a submitted start time in loc. Layouts carrying
// their own offset ignore loc.
func ParseStartTime(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	var firstErr error
	for _, layout := range startTimeLayouts {
		t, err := time.ParseInLocation(layout, raw, loc)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
