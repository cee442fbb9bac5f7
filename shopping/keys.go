package shopping

import (
	"regexp"
	"strings"
)

// Merged multi-airline documents namespace a subset of entity keys with a
// 2-3 character airline code and a hyphen ("KQ-SEG1"). TaggedKey makes the
// convention explicit: Airline is empty for shared/global keys.
type TaggedKey struct {
	Airline  string
	LocalKey string
}

var (
	airlinePrefixPattern = regexp.MustCompile(`^([A-Z][A-Z0-9]{1,2})-(.+)$`)
	airlineCodePattern   = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,2}$`)
)

func SplitKey(key string) TaggedKey {
	match := airlinePrefixPattern.FindStringSubmatch(key)
	if match == nil {
		return TaggedKey{LocalKey: key}
	}
	return TaggedKey{Airline: match[1], LocalKey: match[2]}
}

func (k TaggedKey) String() string {
	if k.Airline == "" {
		return k.LocalKey
	}
	return k.Airline + "-" + k.LocalKey
}

// StripPrefix removes an airline prefix from a single key.
func StripPrefix(key string) string {
	return SplitKey(key).LocalKey
}

// StripPrefixAll de-prefixes every key in the slice, preserving order.
func StripPrefixAll(keys []string) []string {
	if keys == nil {
		return nil
	}
	stripped := make([]string, 0, len(keys))
	for _, key := range keys {
		stripped = append(stripped, StripPrefix(key))
	}
	return stripped
}

// StripPrefixRefs de-prefixes a space-separated reference string, the form
// Flight.SegmentReferences and OriginDestination.FlightReferences use.
func StripPrefixRefs(refs string) string {
	fields := strings.Fields(refs)
	for i, field := range fields {
		fields[i] = StripPrefix(field)
	}
	return strings.Join(fields, " ")
}

// IsAirlineCode reports whether the value looks like a bare airline code,
// the shape warning Owner fields carry.
func IsAirlineCode(value string) bool {
	return airlineCodePattern.MatchString(value)
}
