package shopping

import "sort"

// Detection is the airline multiplexing verdict for one raw document.
// Airlines is sorted and deduplicated.
type Detection struct {
	MultiAirline bool
	Airlines     []string
}

// DetectAirlines decides whether a document merges offers from several
// airlines. Three independent signals declare multi-airline: a prefixed
// traveler or segment key, more than one distinct warning/error owner, or
// more than one per-airline shopping response id in the metadata block.
// Any internal failure resolves to the single-airline verdict; the
// single-airline code path degrades gracefully while a wrong multi-airline
// verdict would misroute every downstream call.
func DetectAirlines(dataLists DataLists, metadata *Metadata, warnings []Warning) (detection Detection) {
	defer func() {
		if r := recover(); r != nil {
			detection = Detection{}
		}
	}()

	var (
		codes       = map[string]bool{}
		prefixedKey bool
	)

	for _, traveler := range dataLists.AnonymousTravelerList {
		if tagged := SplitKey(traveler.ObjectKey); tagged.Airline != "" {
			codes[tagged.Airline] = true
			prefixedKey = true
		}
	}
	for _, segment := range dataLists.FlightSegmentList {
		if tagged := SplitKey(segment.SegmentKey); tagged.Airline != "" {
			codes[tagged.Airline] = true
			prefixedKey = true
		}
	}

	var warningOwners = map[string]bool{}
	for _, warning := range warnings {
		if IsAirlineCode(warning.Owner) {
			warningOwners[warning.Owner] = true
			codes[warning.Owner] = true
		}
	}

	var responseIDOwners int
	if metadata != nil {
		seen := map[string]bool{}
		for _, entry := range metadata.Other.ShoppingResponseIDs {
			if IsAirlineCode(entry.Owner) && !seen[entry.Owner] {
				seen[entry.Owner] = true
				codes[entry.Owner] = true
			}
		}
		responseIDOwners = len(seen)
	}

	detection.MultiAirline = prefixedKey || len(warningOwners) > 1 || responseIDOwners > 1

	for code := range codes {
		detection.Airlines = append(detection.Airlines, code)
	}
	sort.Strings(detection.Airlines)

	return detection
}

// Detect runs airline detection over a shopping response.
func (rs *AirShoppingRS) Detect() Detection {
	return DetectAirlines(rs.DataLists, rs.Metadata, append(rs.Warnings, rs.Errors...))
}

// Detect runs airline detection over a pricing response.
func (rs *FlightPriceRS) Detect() Detection {
	return DetectAirlines(rs.DataLists, rs.Metadata, append(rs.Warnings, rs.Errors...))
}
