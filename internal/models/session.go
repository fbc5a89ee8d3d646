package models

import "time"

type Session struct {
	Token   string    `db:"token"`
	UserID  int       `db:"user_id"`
	Expires time.Time `db:"expires"`
	Created time.Time `db:"created"`
}
