package models

import (
	"errors"
	"regexp"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	ErrMissingUserID = errors.New("user id is required")
)

// User is the session identity as returned by the upstream API. The id is an
// opaque server-assigned value; once resolved it is never reassigned for the
// lifetime of the session.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Validate() error {
	if u.ID == "" {
		return ErrMissingUserID
	}

	if u.Email != "" && !emailRegex.MatchString(u.Email) {
		return errors.New("invalid email format")
	}

	return nil
}
