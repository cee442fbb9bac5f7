package offers

import (
	"fmt"
	"sort"

	"github.com/asadbekGo/ett-ndc-sdk/shopping"
)

// offerRefs is the set of raw entity keys the selected offer points at,
// exactly as they appear in the document.
type offerRefs struct {
	travelers map[string]bool
	segments  map[string]bool
	flights   map[string]bool
	ods       map[string]bool
	bags      map[string]bool
	penalties map[string]bool
}

func collectOfferRefs(offer shopping.Offer) offerRefs {
	refs := offerRefs{
		travelers: map[string]bool{},
		segments:  map[string]bool{},
		flights:   map[string]bool{},
		ods:       map[string]bool{},
		bags:      map[string]bool{},
		penalties: map[string]bool{},
	}

	for _, offerPrice := range offer.PricedOffer.OfferPrices {
		for _, association := range offerPrice.RequestedDate.Associations {
			for _, travelerRef := range association.AssociatedTraveler.TravelerReferences {
				refs.travelers[travelerRef] = true
			}
			for _, segmentRef := range association.ApplicableFlight.FlightSegmentReference {
				refs.segments[segmentRef.Ref] = true
				if segmentRef.BagDetailAssociation != nil {
					for _, bagRef := range segmentRef.BagDetailAssociation.CheckedBagReferences {
						refs.bags[bagRef] = true
					}
				}
			}
			for _, flightRef := range association.ApplicableFlight.FlightReferences {
				refs.flights[flightRef] = true
			}
			for _, odRef := range association.ApplicableFlight.OriginDestinationReferences {
				refs.ods[odRef] = true
			}
		}
		for _, fareComponent := range offerPrice.FareDetail.FareComponents {
			for _, penaltyRef := range fareComponent.FareRules.PenaltyReferences {
				refs.penalties[penaltyRef] = true
			}
		}
	}

	return refs
}

// RekeyedDataLists builds the entity lists for a downstream request: the
// owning airline's whole partition with every key de-prefixed, plus the
// global entities the offer references. Everything belonging to other
// airlines and every unreferenced global entity is dropped. Output lists
// are sorted by key so re-running the pipeline is byte-identical.
func RekeyedDataLists(refs *shopping.ReferenceSet, offer shopping.Offer, airline string) (shopping.DataLists, error) {
	var (
		owned     = refs.Airline(airline)
		wanted    = collectOfferRefs(offer)
		dataLists shopping.DataLists
	)

	for key, traveler := range owned.Travelers {
		traveler.ObjectKey = shopping.StripPrefix(key)
		dataLists.AnonymousTravelerList = append(dataLists.AnonymousTravelerList, traveler)
	}
	for key := range wanted.travelers {
		if traveler, ok := refs.Global.Travelers[key]; ok {
			dataLists.AnonymousTravelerList = append(dataLists.AnonymousTravelerList, traveler)
		}
	}

	for key, segment := range owned.Segments {
		segment.SegmentKey = shopping.StripPrefix(key)
		dataLists.FlightSegmentList = append(dataLists.FlightSegmentList, segment)
	}
	for key := range wanted.segments {
		if segment, ok := refs.Global.Segments[key]; ok {
			dataLists.FlightSegmentList = append(dataLists.FlightSegmentList, segment)
		}
	}

	for key, flight := range owned.Flights {
		flight.FlightKey = shopping.StripPrefix(key)
		flight.SegmentReferences = shopping.StripPrefixRefs(flight.SegmentReferences)
		dataLists.FlightList = append(dataLists.FlightList, flight)
	}
	for key := range wanted.flights {
		if flight, ok := refs.Global.Flights[key]; ok {
			flight.SegmentReferences = shopping.StripPrefixRefs(flight.SegmentReferences)
			dataLists.FlightList = append(dataLists.FlightList, flight)
		}
	}

	for key, od := range owned.OriginDestinations {
		od.OriginDestinationKey = shopping.StripPrefix(key)
		od.FlightReferences = shopping.StripPrefixRefs(od.FlightReferences)
		dataLists.OriginDestinationList = append(dataLists.OriginDestinationList, od)
	}
	for key := range wanted.ods {
		if od, ok := refs.Global.OriginDestinations[key]; ok {
			od.FlightReferences = shopping.StripPrefixRefs(od.FlightReferences)
			dataLists.OriginDestinationList = append(dataLists.OriginDestinationList, od)
		}
	}

	for key, bag := range owned.Baggage {
		bag.ListKey = shopping.StripPrefix(key)
		dataLists.CheckedBagAllowanceList = append(dataLists.CheckedBagAllowanceList, bag)
	}
	for key := range wanted.bags {
		if bag, ok := refs.Global.Baggage[key]; ok {
			dataLists.CheckedBagAllowanceList = append(dataLists.CheckedBagAllowanceList, bag)
		}
	}

	for key, service := range owned.Services {
		service.ServiceDefinitionID = shopping.StripPrefix(key)
		dataLists.ServiceDefinitionList = append(dataLists.ServiceDefinitionList, service)
	}

	for key, penalty := range owned.Penalties {
		penalty.ObjectKey = shopping.StripPrefix(key)
		dataLists.PenaltyList = append(dataLists.PenaltyList, penalty)
	}
	for key := range wanted.penalties {
		if penalty, ok := refs.Global.Penalties[key]; ok {
			dataLists.PenaltyList = append(dataLists.PenaltyList, penalty)
		}
	}

	sortDataLists(&dataLists)

	if len(dataLists.FlightSegmentList) == 0 {
		return shopping.DataLists{}, fmt.Errorf("airline %s: %w", airline, ErrNoSegmentsResolved)
	}

	return dataLists, nil
}

// RekeyOffer returns a copy of the offer with every entity reference
// de-prefixed, matching the re-keyed data lists it is emitted alongside.
func RekeyOffer(offer shopping.Offer) shopping.Offer {
	offerPrices := make([]shopping.OfferPrice, len(offer.PricedOffer.OfferPrices))
	for i, offerPrice := range offer.PricedOffer.OfferPrices {
		associations := make([]shopping.Association, len(offerPrice.RequestedDate.Associations))
		for j, association := range offerPrice.RequestedDate.Associations {
			segmentRefs := make([]shopping.SegmentReference, len(association.ApplicableFlight.FlightSegmentReference))
			for k, segmentRef := range association.ApplicableFlight.FlightSegmentReference {
				segmentRef.Ref = shopping.StripPrefix(segmentRef.Ref)
				if segmentRef.BagDetailAssociation != nil {
					bagDetail := *segmentRef.BagDetailAssociation
					bagDetail.CheckedBagReferences = shopping.StripPrefixAll(bagDetail.CheckedBagReferences)
					bagDetail.CarryOnReferences = shopping.StripPrefixAll(bagDetail.CarryOnReferences)
					segmentRef.BagDetailAssociation = &bagDetail
				}
				segmentRefs[k] = segmentRef
			}

			association.ApplicableFlight.FlightSegmentReference = segmentRefs
			association.ApplicableFlight.FlightReferences = shopping.StripPrefixAll(association.ApplicableFlight.FlightReferences)
			association.ApplicableFlight.OriginDestinationReferences = shopping.StripPrefixAll(association.ApplicableFlight.OriginDestinationReferences)
			association.AssociatedTraveler.TravelerReferences = shopping.StripPrefixAll(association.AssociatedTraveler.TravelerReferences)
			associations[j] = association
		}
		offerPrice.RequestedDate.Associations = associations

		fareComponents := make([]shopping.FareComponent, len(offerPrice.FareDetail.FareComponents))
		for j, fareComponent := range offerPrice.FareDetail.FareComponents {
			fareComponent.FareRules.PenaltyReferences = shopping.StripPrefixAll(fareComponent.FareRules.PenaltyReferences)
			fareComponents[j] = fareComponent
		}
		offerPrice.FareDetail.FareComponents = fareComponents

		offerPrices[i] = offerPrice
	}

	offer.PricedOffer.OfferPrices = offerPrices
	return offer
}

func sortDataLists(dataLists *shopping.DataLists) {
	sort.Slice(dataLists.AnonymousTravelerList, func(i, j int) bool {
		return dataLists.AnonymousTravelerList[i].ObjectKey < dataLists.AnonymousTravelerList[j].ObjectKey
	})
	sort.Slice(dataLists.FlightSegmentList, func(i, j int) bool {
		return dataLists.FlightSegmentList[i].SegmentKey < dataLists.FlightSegmentList[j].SegmentKey
	})
	sort.Slice(dataLists.FlightList, func(i, j int) bool {
		return dataLists.FlightList[i].FlightKey < dataLists.FlightList[j].FlightKey
	})
	sort.Slice(dataLists.OriginDestinationList, func(i, j int) bool {
		return dataLists.OriginDestinationList[i].OriginDestinationKey < dataLists.OriginDestinationList[j].OriginDestinationKey
	})
	sort.Slice(dataLists.CheckedBagAllowanceList, func(i, j int) bool {
		return dataLists.CheckedBagAllowanceList[i].ListKey < dataLists.CheckedBagAllowanceList[j].ListKey
	})
	sort.Slice(dataLists.ServiceDefinitionList, func(i, j int) bool {
		return dataLists.ServiceDefinitionList[i].ServiceDefinitionID < dataLists.ServiceDefinitionList[j].ServiceDefinitionID
	})
	sort.Slice(dataLists.PenaltyList, func(i, j int) bool {
		return dataLists.PenaltyList[i].ObjectKey < dataLists.PenaltyList[j].ObjectKey
	})
}
