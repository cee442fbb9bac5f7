package offers

import (
	"github.com/asadbekGo/ett-ndc-sdk/shopping"
)

type (
	// PassengerInput is the booking data the client application collects
	// for one traveler.
	PassengerInput struct {
		TravelerRef    string `json:"travelerRef,omitempty"`
		PTC            string `json:"ptc"`
		Title          string `json:"title,omitempty"`
		FirstName      string `json:"firstName"`
		LastName       string `json:"lastName"`
		Birthdate      string `json:"birthdate,omitempty"`
		Email          string `json:"email,omitempty"`
		Phone          string `json:"phone,omitempty"`
		DocumentNumber string `json:"documentNumber,omitempty"`
		DocumentExpiry string `json:"documentExpiry,omitempty"`
		Nationality    string `json:"nationality,omitempty"`
	}

	// SeatSelection references a seat chosen from the seat-availability
	// response.
	SeatSelection struct {
		TravelerRef string `json:"travelerRef"`
		SegmentRef  string `json:"segmentRef"`
		Row         string `json:"row"`
		Column      string `json:"column"`
	}

	// ServiceSelection references an ancillary chosen from the
	// service-list response.
	ServiceSelection struct {
		TravelerRef string `json:"travelerRef"`
		SegmentRef  string `json:"segmentRef,omitempty"`
		ServiceID   string `json:"serviceId"`
	}

	OrderCreateRQ struct {
		Query     OrderQuery         `json:"Query"`
		DataLists shopping.DataLists `json:"DataLists"`
	}

	OrderQuery struct {
		Passengers       []OrderPassenger      `json:"Passengers"`
		ShoppingResponse OrderShoppingResponse `json:"ShoppingResponse"`
		OrderItems       OrderItems            `json:"OrderItems,omitempty"`
	}

	OrderPassenger struct {
		ObjectKey string             `json:"ObjectKey"`
		PTC       string             `json:"PTC"`
		Name      PassengerName      `json:"Name"`
		Contacts  *PassengerContacts `json:"Contacts,omitempty"`
		Document  *PassengerDocument `json:"PassengerIDInfo,omitempty"`
	}

	PassengerName struct {
		Title     string `json:"Title,omitempty"`
		Given     string `json:"Given"`
		Surname   string `json:"Surname"`
		Birthdate string `json:"Birthdate,omitempty"`
	}

	PassengerContacts struct {
		Email string `json:"EmailAddress,omitempty"`
		Phone string `json:"Phone,omitempty"`
	}

	PassengerDocument struct {
		Number      string `json:"ID,omitempty"`
		Expiry      string `json:"ExpiryDate,omitempty"`
		Nationality string `json:"CountryOfIssuance,omitempty"`
	}

	OrderShoppingResponse struct {
		Owner      string       `json:"Owner"`
		ResponseID string       `json:"ResponseID"`
		Offers     []QueryOffer `json:"Offers"`
	}

	OrderItems struct {
		SeatItems    []SeatItem    `json:"SeatItems,omitempty"`
		ServiceItems []ServiceItem `json:"ServiceItems,omitempty"`
	}

	SeatItem struct {
		TravelerRef string `json:"TravelerRef"`
		SegmentRef  string `json:"SegmentRef"`
		Row         string `json:"Row"`
		Column      string `json:"Column"`
	}

	ServiceItem struct {
		TravelerRef string `json:"TravelerRef"`
		SegmentRef  string `json:"SegmentRef,omitempty"`
		ServiceID   string `json:"ServiceID"`
		Name        string `json:"Name,omitempty"`
	}
)

// BuildOrderCreateRQ assembles the booking request from the pricing
// response plus the seat and service picks made against the two
// intermediate responses. Passengers are matched to the re-keyed traveler
// records by explicit reference when given, otherwise positionally.
func BuildOrderCreateRQ(rs *shopping.FlightPriceRS, index int, passengers []PassengerInput, seats []SeatSelection, services []ServiceSelection) (OrderCreateRQ, SelectionContext, error) {
	detection := rs.Detect()
	refs := rs.References(detection)

	selection, offer, err := SelectPriced(rs, refs, index)
	if err != nil {
		return OrderCreateRQ{}, SelectionContext{}, err
	}

	dataLists, err := RekeyedDataLists(refs, offer, selection.Airline)
	if err != nil {
		return OrderCreateRQ{}, SelectionContext{}, err
	}

	rekeyed := RekeyOffer(offer)
	queryOffer := QueryOffer{OfferID: rekeyed.OfferID}
	for _, offerPrice := range rekeyed.PricedOffer.OfferPrices {
		queryOffer.OfferItemIDs = append(queryOffer.OfferItemIDs, offerPrice.OfferItemID)
	}

	request := OrderCreateRQ{
		Query: OrderQuery{
			ShoppingResponse: OrderShoppingResponse{
				Owner:      selection.Airline,
				ResponseID: selection.ShoppingResponseID,
				Offers:     []QueryOffer{queryOffer},
			},
		},
		DataLists: dataLists,
	}

	for i, passenger := range passengers {
		objectKey := shopping.StripPrefix(passenger.TravelerRef)
		if objectKey == "" && i < len(dataLists.AnonymousTravelerList) {
			objectKey = dataLists.AnonymousTravelerList[i].ObjectKey
		}

		ptc := passenger.PTC
		if ptc == "" {
			if traveler, ok := refs.ResolveTraveler(objectKey, selection.Airline); ok {
				ptc = traveler.PTC
			}
		}

		orderPassenger := OrderPassenger{
			ObjectKey: objectKey,
			PTC:       ptc,
			Name: PassengerName{
				Title:     passenger.Title,
				Given:     passenger.FirstName,
				Surname:   passenger.LastName,
				Birthdate: passenger.Birthdate,
			},
		}
		if passenger.Email != "" || passenger.Phone != "" {
			orderPassenger.Contacts = &PassengerContacts{Email: passenger.Email, Phone: passenger.Phone}
		}
		if passenger.DocumentNumber != "" {
			orderPassenger.Document = &PassengerDocument{
				Number:      passenger.DocumentNumber,
				Expiry:      passenger.DocumentExpiry,
				Nationality: passenger.Nationality,
			}
		}

		request.Query.Passengers = append(request.Query.Passengers, orderPassenger)
	}

	for _, seat := range seats {
		request.Query.OrderItems.SeatItems = append(request.Query.OrderItems.SeatItems, SeatItem{
			TravelerRef: shopping.StripPrefix(seat.TravelerRef),
			SegmentRef:  shopping.StripPrefix(seat.SegmentRef),
			Row:         seat.Row,
			Column:      seat.Column,
		})
	}

	for _, service := range services {
		item := ServiceItem{
			TravelerRef: shopping.StripPrefix(service.TravelerRef),
			SegmentRef:  shopping.StripPrefix(service.SegmentRef),
			ServiceID:   shopping.StripPrefix(service.ServiceID),
		}
		if definition, ok := refs.ResolveService(service.ServiceID, selection.Airline); ok {
			item.Name = definition.Name
		}
		request.Query.OrderItems.ServiceItems = append(request.Query.OrderItems.ServiceItems, item)
	}

	return request, selection, nil
}
