package offers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asadbekGo/ett-ndc-sdk/shopping"
)

type (
	owningAirlineTestCase struct {
		name      string
		offer     shopping.Offer
		dataLists shopping.DataLists
		expected  string
		expectErr error
	}
)

func offerReferencingSegment(ref string) shopping.Offer {
	return shopping.Offer{
		PricedOffer: shopping.PricedOffer{OfferPrices: []shopping.OfferPrice{
			{RequestedDate: shopping.RequestedDate{Associations: []shopping.Association{
				{ApplicableFlight: shopping.ApplicableFlight{
					FlightSegmentReference: []shopping.SegmentReference{{Ref: ref}},
				}},
			}}},
		}},
	}
}

var owningAirlineTestCases = []owningAirlineTestCase{
	{
		name:     "offer id owner wins",
		offer:    shopping.Offer{OfferID: shopping.OfferID{Owner: "KQ"}},
		expected: "KQ",
	},
	{
		name:  "operating carrier fallback",
		offer: offerReferencingSegment("SEG1"),
		dataLists: shopping.DataLists{FlightSegmentList: []shopping.FlightSegment{
			{
				SegmentKey:       "SEG1",
				OperatingCarrier: shopping.Carrier{AirlineID: "ET"},
				MarketingCarrier: shopping.Carrier{AirlineID: "KL"},
			},
		}},
		expected: "ET",
	},
	{
		name:  "marketing carrier when no operating carrier",
		offer: offerReferencingSegment("SEG1"),
		dataLists: shopping.DataLists{FlightSegmentList: []shopping.FlightSegment{
			{
				SegmentKey:       "SEG1",
				MarketingCarrier: shopping.Carrier{AirlineID: "KL"},
			},
		}},
		expected: "KL",
	},
	{
		name:      "no owner anywhere",
		offer:     offerReferencingSegment("SEG9"),
		dataLists: shopping.DataLists{},
		expectErr: ErrMissingOfferOwner,
	},
}

func TestOwningAirline(t *testing.T) {
	for _, tc := range owningAirlineTestCases {
		t.Run(tc.name, func(t *testing.T) {
			refs := shopping.BuildReferenceSet(tc.dataLists, nil, shopping.ShoppingResponseID{}, shopping.Detection{})
			airline, err := OwningAirline(tc.offer, refs)
			if tc.expectErr != nil {
				assert.True(t, errors.Is(err, tc.expectErr))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, airline)
		})
	}
}

func TestSelectMissingShoppingResponseID(t *testing.T) {
	doc := mergedShoppingRS()
	doc.Metadata = nil
	doc.ShoppingResponseID = shopping.ShoppingResponseID{}

	refs := doc.References(doc.Detect())
	_, _, err := Select(doc, refs, 0)
	assert.True(t, errors.Is(err, ErrMissingShoppingResponseID))
}

func TestSelectFallsBackToDocumentResponseID(t *testing.T) {
	doc := mergedShoppingRS()
	doc.Metadata = nil

	refs := doc.References(doc.Detect())
	selection, offer, err := Select(doc, refs, 0)
	assert.NoError(t, err)
	assert.Equal(t, "KQ", selection.Airline)
	assert.Equal(t, "resp-doc", selection.ShoppingResponseID)
	assert.Equal(t, "OFFERKQ1", offer.OfferID.Value)
}
