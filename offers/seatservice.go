package offers

import (
	"github.com/asadbekGo/ett-ndc-sdk/shopping"
)

type (
	// SeatAvailabilityRQ asks the vendor for the seat map of a priced
	// offer, its segments grouped into directional legs.
	SeatAvailabilityRQ struct {
		Query              LegQuery                    `json:"Query"`
		ShoppingResponseID shopping.ShoppingResponseID `json:"ShoppingResponseID"`
		Travelers          []shopping.Traveler         `json:"Travelers"`
		DataLists          shopping.DataLists          `json:"DataLists"`
	}

	// ServiceListRQ asks for the ancillary services sellable on a priced
	// offer. The vendor expects the same per-leg flight grouping as the
	// seat call.
	ServiceListRQ struct {
		Query              LegQuery                    `json:"Query"`
		ShoppingResponseID shopping.ShoppingResponseID `json:"ShoppingResponseID"`
		Travelers          []shopping.Traveler         `json:"Travelers"`
		DataLists          shopping.DataLists          `json:"DataLists"`
	}

	LegQuery struct {
		OriginDestinations []QueryLeg `json:"OriginDestinations"`
	}

	QueryLeg struct {
		Origin         string                   `json:"Origin"`
		Destination    string                   `json:"Destination"`
		FlightSegments []shopping.FlightSegment `json:"FlightSegments"`
	}
)

// BuildSeatAvailabilityRQ builds the seat-map request from a pricing
// response. A nil splitter uses the default leg heuristic.
func BuildSeatAvailabilityRQ(rs *shopping.FlightPriceRS, index int, split LegSplitter) (SeatAvailabilityRQ, SelectionContext, error) {
	query, selection, dataLists, err := buildLegStage(rs, index, split)
	if err != nil {
		return SeatAvailabilityRQ{}, SelectionContext{}, err
	}

	return SeatAvailabilityRQ{
		Query: query,
		ShoppingResponseID: shopping.ShoppingResponseID{
			ResponseID: selection.ShoppingResponseID,
			Owner:      selection.Airline,
		},
		Travelers: dataLists.AnonymousTravelerList,
		DataLists: dataLists,
	}, selection, nil
}

// BuildServiceListRQ builds the ancillary-service request from a pricing
// response.
func BuildServiceListRQ(rs *shopping.FlightPriceRS, index int, split LegSplitter) (ServiceListRQ, SelectionContext, error) {
	query, selection, dataLists, err := buildLegStage(rs, index, split)
	if err != nil {
		return ServiceListRQ{}, SelectionContext{}, err
	}

	return ServiceListRQ{
		Query: query,
		ShoppingResponseID: shopping.ShoppingResponseID{
			ResponseID: selection.ShoppingResponseID,
			Owner:      selection.Airline,
		},
		Travelers: dataLists.AnonymousTravelerList,
		DataLists: dataLists,
	}, selection, nil
}

// buildLegStage re-applies detection, owner extraction and re-keying to
// the pricing response; the airline-prefix convention can recur at every
// hop of the protocol.
func buildLegStage(rs *shopping.FlightPriceRS, index int, split LegSplitter) (LegQuery, SelectionContext, shopping.DataLists, error) {
	detection := rs.Detect()
	refs := rs.References(detection)

	selection, offer, err := SelectPriced(rs, refs, index)
	if err != nil {
		return LegQuery{}, SelectionContext{}, shopping.DataLists{}, err
	}

	dataLists, err := RekeyedDataLists(refs, offer, selection.Airline)
	if err != nil {
		return LegQuery{}, SelectionContext{}, shopping.DataLists{}, err
	}

	if split == nil {
		split = SplitLegs
	}

	var query LegQuery
	for _, leg := range split(offerSegments(RekeyOffer(offer), dataLists)) {
		if len(leg) == 0 {
			continue
		}
		query.OriginDestinations = append(query.OriginDestinations, QueryLeg{
			Origin:         leg[0].Departure.AirportCode,
			Destination:    leg[len(leg)-1].Arrival.AirportCode,
			FlightSegments: leg,
		})
	}

	return query, selection, dataLists, nil
}

// offerSegments returns the re-keyed segments the offer references, in
// document order.
func offerSegments(rekeyed shopping.Offer, dataLists shopping.DataLists) []shopping.FlightSegment {
	wanted := collectOfferRefs(rekeyed)

	var segments []shopping.FlightSegment
	for _, segment := range dataLists.FlightSegmentList {
		if wanted.segments[segment.SegmentKey] {
			segments = append(segments, segment)
		}
	}
	return segments
}
