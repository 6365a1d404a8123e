package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// ActingUserHeader carries the id of the user performing a mutating request.
// Authentication happens upstream; the registry trusts the header value.
const ActingUserHeader = "X-Acting-User"

// ErrNoActingUser indicates a mutating request arrived without an acting user id.
var ErrNoActingUser = errors.New("missing X-Acting-User header")

// ActingUser extracts and parses the acting user id from the request header.
func ActingUser(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get(ActingUserHeader)
	if raw == "" {
		return uuid.Nil, ErrNoActingUser
	}
	return uuid.Parse(raw)
}
