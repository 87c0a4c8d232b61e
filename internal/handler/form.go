package handler

import (
	"github.com/google/uuid"
)

// checkbox converts an HTML checkbox value: "on" is true, anything else,
// including a missing field, is false.
func checkbox(value string) bool {
	return value == "on"
}

// parseID parses an entity id from a path or form value. Empty strings, the
// "none" select sentinel and malformed ids all report false.
func parseID(raw string) (uuid.UUID, bool) {
	if raw == "" || raw == "none" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
