package models

import "time"

// User is a registered account. PasswordHash holds the bcrypt output and is
// never the plaintext password.
type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
