package offers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asadbekGo/ett-ndc-sdk/farerules"
)

func TestSummarizeOffer(t *testing.T) {
	offer, err := SummarizeOffer(mergedShoppingRS(), 0)
	assert.NoError(t, err)

	assert.Equal(t, "OFFERKQ1", offer.OfferID)
	assert.Equal(t, "KQ", offer.Airline)
	assert.Equal(t, "resp-kq", offer.ShoppingResponseID)
	assert.Equal(t, 501.0, offer.Price.Total)
	assert.Equal(t, "USD", offer.Price.Currency)

	assert.Len(t, offer.Legs, 2)
	assert.Equal(t, "NBO", offer.Legs[0].Origin)
	assert.Equal(t, "CDG", offer.Legs[0].Destination)
	assert.Len(t, offer.Legs[0].Segments, 1)
	assert.Equal(t, "SEG1", offer.Legs[0].Segments[0].SegmentKey)
	assert.Equal(t, "KQ", offer.Legs[0].Segments[0].MarketingCarrier)
	assert.Equal(t, "112", offer.Legs[0].Segments[0].FlightNumber)
	assert.Equal(t, "CDG", offer.Legs[1].Origin)
	assert.Equal(t, "NBO", offer.Legs[1].Destination)

	assert.Equal(t, []BagSummary{{ListKey: "BAG1", Pieces: 2}}, offer.Baggage)

	assert.Len(t, offer.FareRules, 1)
	assert.Equal(t, farerules.Yes, offer.FareRules[0].PenaltyApplicable)
	assert.Equal(t, farerules.No, offer.FareRules[0].RefundApplicable)

	assert.NotEmpty(t, offer.DataHash)
}

func TestSummarizeOfferSecondAirline(t *testing.T) {
	offer, err := SummarizeOffer(mergedShoppingRS(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "AF", offer.Airline)
	assert.Equal(t, "resp-af", offer.ShoppingResponseID)
	assert.Len(t, offer.Legs, 1)
	assert.Equal(t, "CDG", offer.Legs[0].Origin)
	assert.Equal(t, "NBO", offer.Legs[0].Destination)
}

func TestValidateOfferHash(t *testing.T) {
	offer, err := SummarizeOffer(mergedShoppingRS(), 0)
	assert.NoError(t, err)

	valid, err := ValidateOfferHash(offer, offer.DataHash)
	assert.NoError(t, err)
	assert.True(t, valid)

	// A price change mid session invalidates the hash.
	tampered := offer
	tampered.Price.Total = 450
	valid, err = ValidateOfferHash(tampered, offer.DataHash)
	assert.NoError(t, err)
	assert.False(t, valid)

	valid, err = ValidateOfferHash(offer, "not-a-hash")
	assert.NoError(t, err)
	assert.False(t, valid)
}
