package models

import "time"

// Person holds the identity fields shared by students and instructors.
// It is embedded by composition; it is never stored on its own.
type Person struct {
	FullName    string
	Email       string
	DateOfBirth time.Time
}

// ProfileProvider is implemented by every person variant to render a
// one-line profile summary for transcripts and listings.
type ProfileProvider interface {
	ProfileDetails() string
}
