package model

import "time"

// Task is a single user-defined activity.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
}

// Duration returns EndTime - StartTime. It is negative when the end lies
// before the start; nothing prevents that.
func (t Task) Duration() time.Duration {
	return t.EndTime.Sub(t.StartTime)
}

// Credentials is the record written under the userData key at login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
