package domain

import "time"

// User is the identity record created at signup. Immutable afterwards except
// through administrative updates; deletion happens out of band.
type User struct {
	ID               string
	Username         string
	PasswordHash     string // argon2id PHC encoded
	FullName         string
	Age              int
	Gender           string
	ContactInfo      string
	PrimaryCaregiver string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UserProfile is the joined view of a User and their PreferenceProfile.
type UserProfile struct {
	User        User
	Preferences PreferenceProfile
}
