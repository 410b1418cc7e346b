package users

import "time"

// User is the identity record. Username is unique and case-sensitive;
// Email is unique and stored lowercased. PasswordDigest is the one-way
// hash stored in place of the password and never leaves the service layer.
type User struct {
	ID             string
	Username       string
	Email          string
	PasswordDigest string
	CreatedAt      time.Time
}
