package domain

// User is the identity record. ID is store-assigned and immutable.
// Username is optional but unique when present; Email is required and unique.
// PasswordHash is never the raw password.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsVerified   bool
}
