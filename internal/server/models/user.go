package models

import "time"

// User is a registered account. UserID is the generated time-ordered
// identifier and never changes. PasswordHash holds the salted stored form
// and is empty for accounts that only ever signed in through a federated
// provider.
type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string
	City         string
	PostalCode   string
	CreatedAt    time.Time
}
