package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ToUUID returns uuid.Nil for anything that does not parse.
func ToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil
	}
	return id
}
