package farerules

import (
	"strings"

	"github.com/spf13/cast"
)

// Tri is a three-valued logic value. Unknown is the zero value on purpose:
// an absent or unreadable indicator must never default to a denial.
type Tri int

const (
	TriUnknown Tri = iota
	TriTrue
	TriFalse
)

func (t Tri) String() string {
	switch t {
	case TriTrue:
		return "true"
	case TriFalse:
		return "false"
	default:
		return "unknown"
	}
}

// TriFromAny coerces the heterogeneous raw indicator representations the
// airlines send (bool, 0/1 numbers, assorted strings) into a Tri.
// Unrecognized values and the literal "Missing" resolve to Unknown.
func TriFromAny(value interface{}) Tri {
	if value == nil {
		return TriUnknown
	}

	if b, err := cast.ToBoolE(value); err == nil {
		if b {
			return TriTrue
		}
		return TriFalse
	}

	switch strings.ToLower(strings.TrimSpace(cast.ToString(value))) {
	case "yes", "allowed":
		return TriTrue
	case "no", "not allowed", "nav":
		return TriFalse
	default:
		return TriUnknown
	}
}
