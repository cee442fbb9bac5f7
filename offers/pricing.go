package offers

import (
	"github.com/asadbekGo/ett-ndc-sdk/shopping"
)

type (
	// FlightPriceRQ is the vendor's pricing request, scoped to the owning
	// airline with every entity key in canonical form.
	FlightPriceRQ struct {
		Query              PriceQuery                  `json:"Query"`
		ShoppingResponseID shopping.ShoppingResponseID `json:"ShoppingResponseID"`
		Travelers          []shopping.Traveler         `json:"Travelers"`
		DataLists          shopping.DataLists          `json:"DataLists"`
	}

	PriceQuery struct {
		Offers []QueryOffer `json:"Offers"`
	}

	QueryOffer struct {
		OfferID      shopping.OfferID `json:"OfferID"`
		OfferItemIDs []string         `json:"OfferItemIDs"`
	}
)

// BuildFlightPriceRQ turns a shopping response and a global offer index
// into the pricing request for that offer's airline.
func BuildFlightPriceRQ(doc *shopping.AirShoppingRS, index int) (FlightPriceRQ, SelectionContext, error) {
	detection := doc.Detect()
	refs := doc.References(detection)

	selection, offer, err := Select(doc, refs, index)
	if err != nil {
		return FlightPriceRQ{}, SelectionContext{}, err
	}

	dataLists, err := RekeyedDataLists(refs, offer, selection.Airline)
	if err != nil {
		return FlightPriceRQ{}, SelectionContext{}, err
	}

	rekeyed := RekeyOffer(offer)
	queryOffer := QueryOffer{OfferID: rekeyed.OfferID}
	for _, offerPrice := range rekeyed.PricedOffer.OfferPrices {
		queryOffer.OfferItemIDs = append(queryOffer.OfferItemIDs, offerPrice.OfferItemID)
	}

	request := FlightPriceRQ{
		Query: PriceQuery{Offers: []QueryOffer{queryOffer}},
		ShoppingResponseID: shopping.ShoppingResponseID{
			ResponseID: selection.ShoppingResponseID,
			Owner:      selection.Airline,
		},
		Travelers: dataLists.AnonymousTravelerList,
		DataLists: dataLists,
	}

	return request, selection, nil
}
