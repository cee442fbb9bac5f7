package offers

import (
	"github.com/asadbekGo/ett-ndc-sdk/datahash"
	"github.com/asadbekGo/ett-ndc-sdk/farerules"
	"github.com/asadbekGo/ett-ndc-sdk/shopping"
)

type (
	// ClientOffer is the simplified, display-ready view of one offer the
	// client application works with for the rest of the session.
	ClientOffer struct {
		OfferID            string                     `json:"offerId"`
		Airline            string                     `json:"airline"`
		ShoppingResponseID string                     `json:"shoppingResponseId"`
		Price              PriceSummary               `json:"price"`
		Legs               []ClientLeg                `json:"legs"`
		Baggage            []BagSummary               `json:"baggage,omitempty"`
		FareRules          []farerules.Interpretation `json:"fareRules,omitempty"`
		DataHash           string                     `json:"dataHash"`
	}

	ClientLeg struct {
		Origin      string          `json:"origin"`
		Destination string          `json:"destination"`
		Segments    []ClientSegment `json:"segments"`
	}

	ClientSegment struct {
		SegmentKey       string `json:"segmentKey"`
		From             string `json:"from"`
		To               string `json:"to"`
		DepartureDate    string `json:"departureDate"`
		DepartureTime    string `json:"departureTime"`
		ArrivalDate      string `json:"arrivalDate"`
		ArrivalTime      string `json:"arrivalTime"`
		MarketingCarrier string `json:"marketingCarrier"`
		OperatingCarrier string `json:"operatingCarrier"`
		FlightNumber     string `json:"flightNumber"`
	}

	BagSummary struct {
		ListKey  string  `json:"listKey"`
		Pieces   int     `json:"pieces,omitempty"`
		WeightKg float64 `json:"weightKg,omitempty"`
	}
)

// SummarizeOffer produces the client-facing view of one offer: owning
// airline, aggregated price, legs, baggage and interpreted fare rules,
// plus the integrity hash the client echoes back at order time.
func SummarizeOffer(doc *shopping.AirShoppingRS, index int) (ClientOffer, error) {
	detection := doc.Detect()
	refs := doc.References(detection)

	selection, offer, err := Select(doc, refs, index)
	if err != nil {
		return ClientOffer{}, err
	}

	dataLists, err := RekeyedDataLists(refs, offer, selection.Airline)
	if err != nil {
		return ClientOffer{}, err
	}

	price := AggregatePrice(offer, refs, selection.Airline)

	clientOffer := ClientOffer{
		OfferID:            offer.OfferID.Value,
		Airline:            selection.Airline,
		ShoppingResponseID: selection.ShoppingResponseID,
		Price:              price,
	}

	rekeyed := RekeyOffer(offer)
	for _, leg := range SplitLegs(offerSegments(rekeyed, dataLists)) {
		if len(leg) == 0 {
			continue
		}
		clientLeg := ClientLeg{
			Origin:      leg[0].Departure.AirportCode,
			Destination: leg[len(leg)-1].Arrival.AirportCode,
		}
		for _, segment := range leg {
			clientLeg.Segments = append(clientLeg.Segments, ClientSegment{
				SegmentKey:       segment.SegmentKey,
				From:             segment.Departure.AirportCode,
				To:               segment.Arrival.AirportCode,
				DepartureDate:    segment.Departure.Date,
				DepartureTime:    segment.Departure.Time,
				ArrivalDate:      segment.Arrival.Date,
				ArrivalTime:      segment.Arrival.Time,
				MarketingCarrier: segment.MarketingCarrier.AirlineID,
				OperatingCarrier: segment.OperatingCarrier.AirlineID,
				FlightNumber:     segment.MarketingCarrier.FlightNumber,
			})
		}
		clientOffer.Legs = append(clientOffer.Legs, clientLeg)
	}

	for _, bag := range dataLists.CheckedBagAllowanceList {
		summary := BagSummary{ListKey: bag.ListKey}
		if bag.PieceAllowance != nil {
			summary.Pieces = bag.PieceAllowance.TotalQuantity
		}
		if bag.WeightAllowance != nil {
			summary.WeightKg = bag.WeightAllowance.MaximumWeight
		}
		clientOffer.Baggage = append(clientOffer.Baggage, summary)
	}

	for _, offerPrice := range rekeyed.PricedOffer.OfferPrices {
		for _, fareComponent := range offerPrice.FareDetail.FareComponents {
			clientOffer.FareRules = append(clientOffer.FareRules,
				farerules.InterpretAll(refs, fareComponent.FareRules.PenaltyReferences, selection.Airline)...)
		}
	}

	clientOffer.DataHash, err = datahash.GenerateDataHash(offerHashPayload(clientOffer))
	if err != nil {
		return ClientOffer{}, err
	}

	return clientOffer, nil
}

// ValidateOfferHash checks the hash the client sent back against the
// offer as currently cached. A mismatch means the price changed mid
// session and the booking must be re-confirmed.
func ValidateOfferHash(offer ClientOffer, clientHash string) (bool, error) {
	return datahash.ValidateDataHash(offerHashPayload(offer), clientHash)
}

func offerHashPayload(offer ClientOffer) datahash.OfferHash {
	payload := datahash.OfferHash{
		OfferID:    offer.OfferID,
		Owner:      offer.Airline,
		ResponseID: offer.ShoppingResponseID,
		Total:      offer.Price.Total,
		Currency:   offer.Price.Currency,
	}
	for _, block := range offer.Price.Breakdown {
		payload.PaxPrices = append(payload.PaxPrices, datahash.PaxPrice{
			PaxType:  block.PTC,
			Count:    block.TravelerCount,
			Price:    block.PerTraveler,
			Currency: block.Currency,
		})
	}
	return payload
}
