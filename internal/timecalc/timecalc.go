package timecalc

import (
	"fmt"
	"sync"
	"time"
)

// IDSource hands out task IDs derived from the creation time in
// milliseconds. IDs are strictly increasing for the lifetime of the source,
// even when two tasks are created within the same millisecond or the wall
// clock steps backwards.
type IDSource struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDSource returns an IDSource reading the wall clock.
func NewIDSource() *IDSource {
	return &IDSource{now: time.Now}
}

// Next returns the next ID.
func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := GenerateID(s.now())
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// GenerateID creates a task ID from a timestamp.
func GenerateID(t time.Time) int64 {
	return t.UnixMilli()
}

// FormatDuration formats a task duration as "1h 40m" or "0h 45m".
// Hours are floored and minutes are the floored remainder in the sign of d,
// so a duration 30 minutes below zero reads "-1h -30m".
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	const hourMs, minuteMs = int64(time.Hour / time.Millisecond), int64(time.Minute / time.Millisecond)
	return fmt.Sprintf("%dh %dm", floorDiv(ms, hourMs), floorDiv(ms%hourMs, minuteMs))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FormatClock formats t as a 12-hour clock time like "9:05 AM".
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// AtClock returns the instant on t's day at the given hour and minute.
func AtClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

