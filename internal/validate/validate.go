// Package validate holds the field checks of the login and task forms.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/Tiliavir/trivial-task-tracker/internal/timecalc"
)

// Field limits, in UTF-16 code units (see Length).
const (
	MinPasswordLen    = 8
	MaxTitleLen       = 100
	MaxDescriptionLen = 300
)

// Messages shown next to invalid fields.
const (
	EmailMessage       = "Invalid email"
	PasswordMessage    = "Password must be at least 8 characters long"
	TitleMessage       = "Invalid Title"
	DescriptionMessage = "Invalid Description"
)

var emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

// Email reports whether s looks like an address. The check is loose on
// purpose: something@something.something anywhere in s.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Password reports whether s has at least MinPasswordLen characters.
func Password(s string) bool {
	return Length(s) >= MinPasswordLen
}

// Title reports whether s fits MaxTitleLen.
func Title(s string) bool {
	return Length(s) <= MaxTitleLen
}

// Description reports whether s fits MaxDescriptionLen.
func Description(s string) bool {
	return Length(s) <= MaxDescriptionLen
}

// Length counts s in UTF-16 code units, so a character outside the Basic
// Multilingual Plane (most emoji) counts as two.
func Length(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// LoginForm reports whether the login button is enabled.
func LoginForm(email, password string) bool {
	return email != "" && password != "" && Email(email) && Password(password)
}

// TaskForm reports whether a task may be created from the given fields.
func TaskForm(title, description string) bool {
	return title != "" && description != "" && Title(title) && Description(description)
}

var clockLayouts = []string{
	"15:04",
	"3:04 PM",
	"3:04PM",
}

// ParseClock parses a time of day ("09:30", "9:30 AM", "9:30pm") and places
// it on day's date in day's location.
func ParseClock(s string, day time.Time) (time.Time, error) {
	in := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, in); err == nil {
			return timecalc.AtClock(day, t.Hour(), t.Minute()), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q (use HH:MM or H:MM AM/PM)", s)
}
