package offers

import (
	"sort"
	"time"

	"github.com/asadbekGo/ett-ndc-sdk/shopping"
)

// minTurnaroundGap is the smallest ground time treated as the turnaround
// point of a round trip.
const minTurnaroundGap = 4 * time.Hour

// LegSplitter groups an offer's segments into directional legs. The
// default is a heuristic, not a guarantee: replace it when the vendor
// starts sending explicit leg markers for irregular multi-city trips.
type LegSplitter func(segments []shopping.FlightSegment) [][]shopping.FlightSegment

// SplitLegs is the default LegSplitter. Segments are ordered by departure
// time; the itinerary splits at the largest arrival-to-departure gap when
// that gap exceeds four hours and the first origin equals the last
// destination. Itineraries of four or more segments whose gaps all stay
// under the threshold are split at the midpoint; everything else,
// including a one-way trip with a long stopover, is one contiguous leg.
func SplitLegs(segments []shopping.FlightSegment) [][]shopping.FlightSegment {
	if len(segments) == 0 {
		return nil
	}

	sorted := make([]shopping.FlightSegment, len(segments))
	copy(sorted, segments)
	sort.Slice(sorted, func(i, j int) bool {
		return departureTime(sorted[i]).Before(departureTime(sorted[j]))
	})

	if len(sorted) == 1 {
		return [][]shopping.FlightSegment{sorted}
	}

	var (
		roundTrip = sorted[0].Departure.AirportCode == sorted[len(sorted)-1].Arrival.AirportCode
		maxGap    time.Duration
		splitAt   int
	)
	for i := 0; i < len(sorted)-1; i++ {
		gap := departureTime(sorted[i+1]).Sub(arrivalTime(sorted[i]))
		if gap > maxGap {
			maxGap = gap
			splitAt = i + 1
		}
	}

	if roundTrip && maxGap > minTurnaroundGap {
		return [][]shopping.FlightSegment{sorted[:splitAt], sorted[splitAt:]}
	}

	if len(sorted) >= 4 && maxGap <= minTurnaroundGap {
		mid := len(sorted) / 2
		return [][]shopping.FlightSegment{sorted[:mid], sorted[mid:]}
	}

	return [][]shopping.FlightSegment{sorted}
}

func departureTime(segment shopping.FlightSegment) time.Time {
	return parseSegmentTime(segment.Departure)
}

func arrivalTime(segment shopping.FlightSegment) time.Time {
	return parseSegmentTime(segment.Arrival)
}

func parseSegmentTime(endpoint shopping.Endpoint) time.Time {
	if endpoint.Time != "" {
		if t, err := time.Parse("2006-01-02 15:04", endpoint.Date+" "+endpoint.Time); err == nil {
			return t
		}
	}
	if t, err := time.Parse(time.DateOnly, endpoint.Date); err == nil {
		return t
	}
	return time.Time{}
}
