package entity

import "time"

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleEventDirector Role = "event_director"
	RoleUser          Role = "user"
)

// CanDirectEvents reports whether the role may hold an event director assignment.
func (r Role) CanDirectEvents() bool {
	switch r {
	case RoleAdmin, RoleEventDirector:
		return true
	case RoleUser:
		return false
	}
	return false
}

type Profile struct {
	ID        ProfileID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	FirstName *string   `db:"first_name" json:"first_name,omitempty"`
	LastName  *string   `db:"last_name" json:"last_name,omitempty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Role      Role      `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (p *Profile) FullName() string {
	var first, last string
	if p.FirstName != nil {
		first = *p.FirstName
	}
	if p.LastName != nil {
		last = *p.LastName
	}
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	}
	return p.Email
}

// EventDirector is a registry row pointing at the profile that owns it.
type EventDirector struct {
	ID        EventDirectorID `db:"id" json:"id"`
	UserID    ProfileID       `db:"user_id" json:"user_id"`
	IsActive  bool            `db:"is_active" json:"is_active"`
	Region    *string         `db:"region" json:"region,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}
