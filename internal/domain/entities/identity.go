package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Client-local identifiers are handed out while an aggregate only exists in
// memory. They carry a recognizable prefix so they can never be mistaken for
// a server-issued id, and they are stripped before any create submission.
const (
	localPlanIDPrefix    = "plan-"
	localItemIDPrefix    = "item-"
	localSessionIDPrefix = "session-"
)

// reservedLocalMarkers are substrings that only ever appear in client-local
// placeholder ids ("new"/"empty"/"error"/"temp" sentinels plus the local
// prefixes above). A server id containing any of them is not a server id.
var reservedLocalMarkers = []string{
	"new", "empty", "error", "temp",
	localPlanIDPrefix, localItemIDPrefix, localSessionIDPrefix,
}

// serverIDShape matches hexadecimal/UUID-like identifiers as issued by the
// persistence layer.
var serverIDShape = regexp.MustCompile(`^[0-9a-fA-F-]+$`)

// minServerIDLength distinguishes server ids from short local counters.
// UUIDs are 36 characters; nothing locally generated reaches 24.
const minServerIDLength = 24

// NewLocalPlanID returns a placeholder id for a plan that has never been
// persisted.
func NewLocalPlanID() string {
	return fmt.Sprintf("%s%d", localPlanIDPrefix, time.Now().UnixNano())
}

// NewLocalItemID returns a placeholder id for a client-created item.
func NewLocalItemID(order int) string {
	return fmt.Sprintf("%s%d-%d", localItemIDPrefix, order, time.Now().UnixNano())
}

// NewLocalSessionID returns a placeholder id for a client-created session.
func NewLocalSessionID(sessionNumber int) string {
	return fmt.Sprintf("%s%d-%d", localSessionIDPrefix, sessionNumber, time.Now().UnixNano())
}

// IsPersistedID reports whether id has the shape of a server-issued
// identifier: non-empty, free of reserved local markers, hexadecimal/UUID
// shaped, and long enough to rule out short local counters.
func IsPersistedID(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	lower := strings.ToLower(id)
	for _, marker := range reservedLocalMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	if !serverIDShape.MatchString(id) {
		return false
	}
	return len(id) >= minServerIDLength
}

// PlanIdentity classifies a plan id exactly once, at construction. Everything
// downstream branches on the tag instead of re-inspecting the raw string, so
// the create/update decision cannot drift between call sites.
type PlanIdentity struct {
	id        string
	persisted bool
}

// ParsePlanIdentity classifies id. An empty id yields a local identity with a
// fresh placeholder.
func ParsePlanIdentity(id string) PlanIdentity {
	id = strings.TrimSpace(id)
	if id == "" {
		id = NewLocalPlanID()
	}
	return PlanIdentity{id: id, persisted: IsPersistedID(id)}
}

// ID returns the raw identifier (placeholder or server-issued).
func (pi PlanIdentity) ID() string { return pi.id }

// Persisted reports whether the plan already exists server-side.
func (pi PlanIdentity) Persisted() bool { return pi.persisted }
