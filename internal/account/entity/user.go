package entity

import "time"

// User represents a row in the `users` table. The password is stored only as
// a salted one-way hash; the raw value never reaches this struct.
type User struct {
	ID           string    `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"firstName"`
	Surname      string    `db:"surname" json:"surname"`
	Email        string    `db:"email" json:"email"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// PublicUser is the projection returned to callers after registration.
// It excludes the password hash entirely.
type PublicUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

// Profile is the minimal view returned on successful authentication.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the password-free projection of u.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, FirstName: u.FirstName, Surname: u.Surname, Email: u.Email, Username: u.Username}
}

// Profile returns the minimal authentication view of u.
func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, Email: u.Email}
}
