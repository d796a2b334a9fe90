package entity

import (
	"database/sql/driver"

	"github.com/google/uuid"
)

// ProfileID identifies a user profile. Assigned event directors, requestors,
// admins and message senders are all ProfileIDs.
type ProfileID uuid.UUID

// EventDirectorID identifies a row in the event director registry. It is not a
// ProfileID; convert with ProfileService.ResolveEventDirector.
type EventDirectorID uuid.UUID

var NilProfileID = ProfileID(uuid.Nil)

func ParseProfileID(s string) (ProfileID, error) {
	id, err := uuid.Parse(s)
	return ProfileID(id), err
}

func (id ProfileID) UUID() uuid.UUID { return uuid.UUID(id) }
func (id ProfileID) String() string { return uuid.UUID(id).String() }
func (id ProfileID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }
func (id ProfileID) Ptr() *ProfileID { return &id }
func (id ProfileID) Value() (driver.Value, error) { return uuid.UUID(id).Value() }

func (id *ProfileID) Scan(src any) error { return (*uuid.UUID)(id).Scan(src) }

func (id ProfileID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ProfileID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func ParseEventDirectorID(s string) (EventDirectorID, error) {
	id, err := uuid.Parse(s)
	return EventDirectorID(id), err
}

func (id EventDirectorID) String() string { return uuid.UUID(id).String() }
func (id EventDirectorID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func (id EventDirectorID) Value() (driver.Value, error) { return uuid.UUID(id).Value() }

func (id *EventDirectorID) Scan(src any) error { return (*uuid.UUID)(id).Scan(src) }

func (id EventDirectorID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *EventDirectorID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
