package offers

import (
	sdk "github.com/asadbekGo/ett-ndc-sdk"
	"github.com/asadbekGo/ett-ndc-sdk/shopping"
)

type (
	// PriceSummary is the aggregated price of one offer across every
	// passenger type.
	PriceSummary struct {
		Total     float64    `json:"total"`
		Currency  string     `json:"currency"`
		Breakdown []PTCPrice `json:"breakdown"`
	}

	PTCPrice struct {
		PTC           string   `json:"ptc"`
		TravelerCount int      `json:"travelerCount"`
		PerTraveler   float64  `json:"perTraveler"`
		Total         float64  `json:"total"`
		Currency      string   `json:"currency"`
		TravelerRefs  []string `json:"travelerRefs"`
	}
)

// AggregatePrice sums each price block's per-passenger amount over its
// distinct traveler references. Round trips repeat the same traveler
// reference once per directional leg, so the references of all
// associations are deduplicated before counting.
func AggregatePrice(offer shopping.Offer, refs *shopping.ReferenceSet, airline string) PriceSummary {
	var summary PriceSummary

	for _, offerPrice := range offer.PricedOffer.OfferPrices {
		var travelerRefs []string
		for _, association := range offerPrice.RequestedDate.Associations {
			travelerRefs = append(travelerRefs, association.AssociatedTraveler.TravelerReferences...)
		}
		travelerRefs = sdk.RemoveDuplicateStrings(travelerRefs, false)

		var ptc string
		for _, travelerRef := range travelerRefs {
			if traveler, ok := refs.ResolveTraveler(travelerRef, airline); ok {
				ptc = traveler.PTC
				break
			}
		}

		price := offerPrice.RequestedDate.PriceDetail.TotalAmount
		block := PTCPrice{
			PTC:           ptc,
			TravelerCount: len(travelerRefs),
			PerTraveler:   price.Value,
			Total:         sdk.Round(price.Value*float64(len(travelerRefs)), 2),
			Currency:      price.Code,
			TravelerRefs:  shopping.StripPrefixAll(travelerRefs),
		}

		summary.Breakdown = append(summary.Breakdown, block)
		summary.Total += block.Total
		if summary.Currency == "" {
			summary.Currency = price.Code
		}
	}

	summary.Total = sdk.Round(summary.Total, 2)

	return summary
}
