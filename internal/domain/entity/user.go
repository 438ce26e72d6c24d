// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record created the first time a Google account signs in.
// Subject is the only key used to find an existing user across logins.
type User struct {
	ID        int64     // Internal identifier, assigned at first login.
	Subject   string    // The identity provider's stable 'sub' claim. Unique and immutable.
	Email     string    // Refreshed on every login.
	Name      string    // Display name, refreshed on every login.
	CreatedAt time.Time // Timestamp of the first login.
	UpdatedAt time.Time // Timestamp of the last profile refresh.
}
