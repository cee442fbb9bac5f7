package offers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asadbekGo/ett-ndc-sdk/shopping"
)

func segment(key, from, to, depDate, depTime, arrDate, arrTime string) shopping.FlightSegment {
	return shopping.FlightSegment{
		SegmentKey: key,
		Departure:  shopping.Endpoint{AirportCode: from, Date: depDate, Time: depTime},
		Arrival:    shopping.Endpoint{AirportCode: to, Date: arrDate, Time: arrTime},
	}
}

func legKeys(legs [][]shopping.FlightSegment) [][]string {
	var keys [][]string
	for _, leg := range legs {
		var legK []string
		for _, s := range leg {
			legK = append(legK, s.SegmentKey)
		}
		keys = append(keys, legK)
	}
	return keys
}

type (
	splitLegsTestCase struct {
		name     string
		segments []shopping.FlightSegment
		expected [][]string
	}
)

var splitLegsTestCases = []splitLegsTestCase{
	{
		name:     "empty",
		segments: nil,
		expected: nil,
	},
	{
		name: "single segment",
		segments: []shopping.FlightSegment{
			segment("SEG1", "NBO", "CDG", "2026-09-10", "08:00", "2026-09-10", "15:30"),
		},
		expected: [][]string{{"SEG1"}},
	},
	{
		name: "round trip splits at the turnaround",
		segments: []shopping.FlightSegment{
			segment("SEG1", "NBO", "CDG", "2026-09-10", "08:00", "2026-09-10", "15:30"),
			segment("SEG2", "CDG", "NBO", "2026-09-20", "10:00", "2026-09-20", "17:10"),
		},
		expected: [][]string{{"SEG1"}, {"SEG2"}},
	},
	{
		name: "one way connection stays one leg",
		segments: []shopping.FlightSegment{
			segment("SEG1", "NBO", "AMS", "2026-09-10", "08:00", "2026-09-10", "15:30"),
			segment("SEG2", "AMS", "OSL", "2026-09-10", "17:00", "2026-09-10", "18:45"),
		},
		expected: [][]string{{"SEG1", "SEG2"}},
	},
	{
		name: "round trip with short connections splits at the largest gap",
		segments: []shopping.FlightSegment{
			segment("SEG1", "NBO", "AMS", "2026-09-10", "08:00", "2026-09-10", "15:30"),
			segment("SEG2", "AMS", "CDG", "2026-09-10", "17:00", "2026-09-10", "18:10"),
			segment("SEG3", "CDG", "AMS", "2026-09-18", "09:00", "2026-09-18", "10:10"),
			segment("SEG4", "AMS", "NBO", "2026-09-18", "12:00", "2026-09-18", "19:00"),
		},
		expected: [][]string{{"SEG1", "SEG2"}, {"SEG3", "SEG4"}},
	},
	{
		name: "long tight itinerary falls back to the midpoint",
		segments: []shopping.FlightSegment{
			segment("SEG1", "NBO", "ADD", "2026-09-10", "06:00", "2026-09-10", "08:00"),
			segment("SEG2", "ADD", "CAI", "2026-09-10", "09:30", "2026-09-10", "12:30"),
			segment("SEG3", "CAI", "ATH", "2026-09-10", "14:00", "2026-09-10", "16:00"),
			segment("SEG4", "ATH", "VIE", "2026-09-10", "17:30", "2026-09-10", "19:30"),
		},
		expected: [][]string{{"SEG1", "SEG2"}, {"SEG3", "SEG4"}},
	},
	{
		name: "one way with a long stopover stays one leg",
		segments: []shopping.FlightSegment{
			segment("SEG1", "NBO", "ADD", "2026-09-10", "06:00", "2026-09-10", "08:00"),
			segment("SEG2", "ADD", "CAI", "2026-09-10", "09:30", "2026-09-10", "12:30"),
			segment("SEG3", "CAI", "ATH", "2026-09-11", "14:00", "2026-09-11", "16:00"),
			segment("SEG4", "ATH", "VIE", "2026-09-11", "17:30", "2026-09-11", "19:30"),
		},
		expected: [][]string{{"SEG1", "SEG2", "SEG3", "SEG4"}},
	},
	{
		name: "unsorted input is ordered by departure time",
		segments: []shopping.FlightSegment{
			segment("SEG2", "CDG", "NBO", "2026-09-20", "10:00", "2026-09-20", "17:10"),
			segment("SEG1", "NBO", "CDG", "2026-09-10", "08:00", "2026-09-10", "15:30"),
		},
		expected: [][]string{{"SEG1"}, {"SEG2"}},
	},
	{
		name: "same day return under the gap threshold stays one leg",
		segments: []shopping.FlightSegment{
			segment("SEG1", "NBO", "MBA", "2026-09-10", "08:00", "2026-09-10", "09:00"),
			segment("SEG2", "MBA", "NBO", "2026-09-10", "11:00", "2026-09-10", "12:00"),
		},
		expected: [][]string{{"SEG1", "SEG2"}},
	},
}

func TestSplitLegs(t *testing.T) {
	for _, tc := range splitLegsTestCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, legKeys(SplitLegs(tc.segments)))
		})
	}
}
