package offers

import (
	"fmt"

	"github.com/asadbekGo/ett-ndc-sdk/shopping"
)

// SelectionContext carries one user selection through every downstream
// request-building call. It is never mutated, only re-derived per stage.
type SelectionContext struct {
	OfferIndex         int    `json:"offerIndex"`
	Airline            string `json:"airline"`
	ShoppingResponseID string `json:"shoppingResponseId"`
}

// Select resolves a global offer index (across every airline's offer
// group) into the offer, its owning airline and the transaction id the
// vendor requires for that airline.
func Select(doc *shopping.AirShoppingRS, refs *shopping.ReferenceSet, index int) (SelectionContext, shopping.Offer, error) {
	offers := flattenOffers(doc.OffersGroup)
	if index < 0 || index >= len(offers) {
		return SelectionContext{}, shopping.Offer{}, fmt.Errorf("offer index %d out of %d offers: %w", index, len(offers), ErrOfferNotFound)
	}
	offer := offers[index]

	airline, err := OwningAirline(offer, refs)
	if err != nil {
		return SelectionContext{}, shopping.Offer{}, fmt.Errorf("offer index %d: %w", index, err)
	}

	responseID, ok := refs.ShoppingResponseIDFor(airline)
	if !ok {
		return SelectionContext{}, shopping.Offer{}, fmt.Errorf("airline %s: %w", airline, ErrMissingShoppingResponseID)
	}

	return SelectionContext{OfferIndex: index, Airline: airline, ShoppingResponseID: responseID}, offer, nil
}

// SelectPriced is the pricing-stage counterpart of Select.
func SelectPriced(rs *shopping.FlightPriceRS, refs *shopping.ReferenceSet, index int) (SelectionContext, shopping.Offer, error) {
	if index < 0 || index >= len(rs.PricedFlightOffers) {
		return SelectionContext{}, shopping.Offer{}, fmt.Errorf("priced offer index %d out of %d offers: %w", index, len(rs.PricedFlightOffers), ErrOfferNotFound)
	}
	offer := asOffer(rs.PricedFlightOffers[index])

	airline, err := OwningAirline(offer, refs)
	if err != nil {
		return SelectionContext{}, shopping.Offer{}, fmt.Errorf("priced offer index %d: %w", index, err)
	}

	responseID, ok := refs.ShoppingResponseIDFor(airline)
	if !ok {
		return SelectionContext{}, shopping.Offer{}, fmt.Errorf("airline %s: %w", airline, ErrMissingShoppingResponseID)
	}

	return SelectionContext{OfferIndex: index, Airline: airline, ShoppingResponseID: responseID}, offer, nil
}

// OwningAirline extracts the authoritative airline for an offer. The
// fallback order is OfferID owner, then the operating carrier of the
// first referenced segment, then the marketing carrier: for codeshare
// itineraries the operating carrier is the one that honours the offer.
func OwningAirline(offer shopping.Offer, refs *shopping.ReferenceSet) (string, error) {
	if offer.OfferID.Owner != "" {
		return offer.OfferID.Owner, nil
	}

	var marketing string
	for _, offerPrice := range offer.PricedOffer.OfferPrices {
		for _, association := range offerPrice.RequestedDate.Associations {
			for _, segmentRef := range association.ApplicableFlight.FlightSegmentReference {
				segment, ok := refs.ResolveSegment(segmentRef.Ref, "")
				if !ok {
					continue
				}
				if segment.OperatingCarrier.AirlineID != "" {
					return segment.OperatingCarrier.AirlineID, nil
				}
				if marketing == "" {
					marketing = segment.MarketingCarrier.AirlineID
				}
			}
		}
	}
	if marketing != "" {
		return marketing, nil
	}

	return "", ErrMissingOfferOwner
}

func flattenOffers(group shopping.OffersGroup) []shopping.Offer {
	var offers []shopping.Offer
	for _, airlineOffers := range group.AirlineOffers {
		offers = append(offers, airlineOffers.Offers...)
	}
	return offers
}

func asOffer(priced shopping.PricedFlightOffer) shopping.Offer {
	return shopping.Offer{
		OfferID:     priced.OfferID,
		PricedOffer: shopping.PricedOffer{OfferPrices: priced.OfferPrice},
	}
}
