package offers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asadbekGo/ett-ndc-sdk/shopping"
)

func TestAggregatePriceDeduplicatesTravelers(t *testing.T) {
	doc := mergedShoppingRS()
	refs := doc.References(doc.Detect())

	// Both directional associations list the same two travelers; the pair
	// must only be charged once.
	summary := AggregatePrice(kenyaOffer(), refs, "KQ")

	assert.Len(t, summary.Breakdown, 1)
	block := summary.Breakdown[0]
	assert.Equal(t, "ADT", block.PTC)
	assert.Equal(t, 2, block.TravelerCount)
	assert.Equal(t, 250.5, block.PerTraveler)
	assert.Equal(t, 501.0, block.Total)
	assert.Equal(t, "USD", block.Currency)
	assert.Equal(t, []string{"PAX1", "PAX2"}, block.TravelerRefs)

	assert.Equal(t, 501.0, summary.Total)
	assert.Equal(t, "USD", summary.Currency)
}

func TestAggregatePriceMultiplePTCBlocks(t *testing.T) {
	dataLists := shopping.DataLists{
		AnonymousTravelerList: []shopping.Traveler{
			{ObjectKey: "PAX1", PTC: "ADT"},
			{ObjectKey: "PAX2", PTC: "CHD"},
		},
	}
	refs := shopping.BuildReferenceSet(dataLists, nil, shopping.ShoppingResponseID{}, shopping.Detection{})

	offer := shopping.Offer{PricedOffer: shopping.PricedOffer{OfferPrices: []shopping.OfferPrice{
		{RequestedDate: shopping.RequestedDate{
			PriceDetail: shopping.PriceDetail{TotalAmount: shopping.CurrencyAmount{Value: 100.10, Code: "EUR"}},
			Associations: []shopping.Association{
				{AssociatedTraveler: shopping.AssociatedTraveler{TravelerReferences: []string{"PAX1"}}},
			},
		}},
		{RequestedDate: shopping.RequestedDate{
			PriceDetail: shopping.PriceDetail{TotalAmount: shopping.CurrencyAmount{Value: 75.05, Code: "EUR"}},
			Associations: []shopping.Association{
				{AssociatedTraveler: shopping.AssociatedTraveler{TravelerReferences: []string{"PAX2"}}},
			},
		}},
	}}}

	summary := AggregatePrice(offer, refs, "")

	assert.Len(t, summary.Breakdown, 2)
	assert.Equal(t, "ADT", summary.Breakdown[0].PTC)
	assert.Equal(t, "CHD", summary.Breakdown[1].PTC)
	assert.Equal(t, 175.15, summary.Total)
	assert.Equal(t, "EUR", summary.Currency)
}
