package models

import "time"

type User struct {
	ID       int       `db:"id"`
	Name     string    `db:"name"`
	Email    string    `db:"email"`
	Password []byte    `db:"password"` // bcrypt hash, never plaintext
	Created  time.Time `db:"created"`
}
