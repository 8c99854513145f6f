// Package idx generates and validates time-ordered, type-tagged entity
// identifiers of the form "<11 hex digit millisecond timestamp>/<tag>".
package idx

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Kind selects the entity class encoded in an identifier's tag.
type Kind int

const (
	User Kind = iota
	Admin
	Spam
)

// tag returns the single-character suffix for the kind. Unknown kinds fall
// back to the user tag.
func (k Kind) tag() string {
	switch k {
	case Admin:
		return "a"
	case Spam:
		return "s"
	default:
		return "u"
	}
}

// timestampPattern matches the 11-hex-digit millisecond timestamp part.
// Case-insensitive: generated identifiers are lowercase but validation
// accepts either case.
var timestampPattern = regexp.MustCompile(`^[0-9a-fA-F]{11}$`)

// Generate returns a fresh identifier for the given kind.
//
// The timestamp occupies exactly 11 hex digits at realistic epoch values
// (until roughly year 5138); shorter values are left-padded with zeros.
// Two calls for the same kind within one millisecond produce the same
// identifier; uniqueness relies on the store's constraint.
func Generate(kind Kind) string {
	return fmt.Sprintf("%011x/%s", time.Now().UnixMilli(), kind.tag())
}

// Validate reports whether id has the expected shape: exactly two
// '/'-separated parts, a known tag, and an 11-hex-digit timestamp.
func Validate(id string) bool {
	parts := strings.Split(id, "/")
	if len(parts) != 2 {
		return false
	}

	switch parts[1] {
	case "u", "a", "s":
	default:
		return false
	}

	return timestampPattern.MatchString(parts[0])
}
