package shopping

// Raw vendor document shapes. Field names follow the vendor's NDC-style
// JSON; list wrappers are flattened to plain slices so callers range over
// them directly.

type (
	AirShoppingRS struct {
		Document           Document           `json:"Document"`
		Success            *Success           `json:"Success,omitempty"`
		ShoppingResponseID ShoppingResponseID `json:"ShoppingResponseID"`
		OffersGroup        OffersGroup        `json:"OffersGroup"`
		DataLists          DataLists          `json:"DataLists"`
		Metadata           *Metadata          `json:"Metadata,omitempty"`
		Warnings           []Warning          `json:"Warnings,omitempty"`
		Errors             []Warning          `json:"Errors,omitempty"`
	}

	FlightPriceRS struct {
		Document           Document            `json:"Document"`
		Success            *Success            `json:"Success,omitempty"`
		ShoppingResponseID ShoppingResponseID  `json:"ShoppingResponseID"`
		PricedFlightOffers []PricedFlightOffer `json:"PricedFlightOffers"`
		DataLists          DataLists           `json:"DataLists"`
		Metadata           *Metadata           `json:"Metadata,omitempty"`
		Warnings           []Warning           `json:"Warnings,omitempty"`
		Errors             []Warning           `json:"Errors,omitempty"`
	}

	Document struct {
		Name             string `json:"Name,omitempty"`
		ReferenceVersion string `json:"ReferenceVersion,omitempty"`
	}

	Success struct{}

	ShoppingResponseID struct {
		ResponseID string `json:"ResponseID"`
		Owner      string `json:"Owner,omitempty"`
	}

	Warning struct {
		Owner     string `json:"Owner,omitempty"`
		Code      string `json:"Code,omitempty"`
		ShortText string `json:"ShortText,omitempty"`
		Value     string `json:"value,omitempty"`
	}

	Metadata struct {
		Other OtherMetadata `json:"Other"`
	}

	OtherMetadata struct {
		ShoppingResponseIDs []AirlineShoppingResponseID `json:"ShoppingResponseIDs,omitempty"`
	}

	AirlineShoppingResponseID struct {
		Owner      string `json:"Owner"`
		ResponseID string `json:"ResponseID"`
	}
)

type (
	OffersGroup struct {
		AirlineOffers []AirlineOffers `json:"AirlineOffers"`
	}

	AirlineOffers struct {
		Owner  string  `json:"Owner,omitempty"`
		Offers []Offer `json:"AirlineOffer"`
	}

	Offer struct {
		OfferID     OfferID     `json:"OfferID"`
		TotalPrice  Price       `json:"TotalPrice"`
		TimeLimits  *TimeLimits `json:"TimeLimits,omitempty"`
		PricedOffer PricedOffer `json:"PricedOffer"`
	}

	OfferID struct {
		Value   string `json:"value"`
		Owner   string `json:"Owner"`
		Channel string `json:"Channel,omitempty"`
	}

	TimeLimits struct {
		OfferExpiration string `json:"OfferExpiration,omitempty"`
		Payment         string `json:"Payment,omitempty"`
	}

	PricedOffer struct {
		OfferPrices []OfferPrice `json:"OfferPrice"`
	}

	// PricedFlightOffer is the pricing-stage counterpart of Offer.
	PricedFlightOffer struct {
		OfferID    OfferID      `json:"OfferID"`
		OfferPrice []OfferPrice `json:"OfferPrice"`
	}

	OfferPrice struct {
		OfferItemID   string        `json:"OfferItemID"`
		RequestedDate RequestedDate `json:"RequestedDate"`
		FareDetail    FareDetail    `json:"FareDetail"`
	}

	RequestedDate struct {
		PriceDetail  PriceDetail   `json:"PriceDetail"`
		Associations []Association `json:"Associations"`
	}

	PriceDetail struct {
		TotalAmount CurrencyAmount `json:"TotalAmount"`
		BaseAmount  CurrencyAmount `json:"BaseAmount"`
		Taxes       Taxes          `json:"Taxes"`
	}

	Taxes struct {
		Total CurrencyAmount `json:"Total"`
	}

	CurrencyAmount struct {
		Value float64 `json:"value"`
		Code  string  `json:"Code"`
	}

	Price struct {
		TotalAmount CurrencyAmount `json:"TotalAmount"`
	}

	Association struct {
		AssociatedTraveler AssociatedTraveler `json:"AssociatedTraveler"`
		ApplicableFlight   ApplicableFlight   `json:"ApplicableFlight"`
	}

	AssociatedTraveler struct {
		TravelerReferences []string `json:"TravelerReferences"`
	}

	ApplicableFlight struct {
		FlightSegmentReference      []SegmentReference `json:"FlightSegmentReference"`
		FlightReferences            []string           `json:"FlightReferences,omitempty"`
		OriginDestinationReferences []string           `json:"OriginDestinationReferences,omitempty"`
	}

	SegmentReference struct {
		Ref                  string                `json:"ref"`
		ClassOfService       *ClassOfService       `json:"ClassOfService,omitempty"`
		BagDetailAssociation *BagDetailAssociation `json:"BagDetailAssociation,omitempty"`
	}

	ClassOfService struct {
		Code          string `json:"Code"`
		MarketingName string `json:"MarketingName,omitempty"`
	}

	BagDetailAssociation struct {
		CheckedBagReferences []string `json:"CheckedBagReferences,omitempty"`
		CarryOnReferences    []string `json:"CarryOnReferences,omitempty"`
	}

	FareDetail struct {
		FareComponents []FareComponent `json:"FareComponent"`
	}

	FareComponent struct {
		FareBasis FareBasis `json:"FareBasis"`
		FareRules FareRules `json:"FareRules"`
	}

	FareBasis struct {
		FareBasisCode FareBasisCode `json:"FareBasisCode"`
		RBD           string        `json:"RBD,omitempty"`
	}

	FareBasisCode struct {
		Code string `json:"Code"`
	}

	FareRules struct {
		PenaltyReferences []string `json:"PenaltyReferences,omitempty"`
	}
)

type (
	DataLists struct {
		AnonymousTravelerList   []Traveler            `json:"AnonymousTravelerList,omitempty"`
		FlightSegmentList       []FlightSegment       `json:"FlightSegmentList,omitempty"`
		FlightList              []Flight              `json:"FlightList,omitempty"`
		OriginDestinationList   []OriginDestination   `json:"OriginDestinationList,omitempty"`
		CheckedBagAllowanceList []CheckedBagAllowance `json:"CheckedBagAllowanceList,omitempty"`
		ServiceDefinitionList   []ServiceDefinition   `json:"ServiceDefinitionList,omitempty"`
		PenaltyList             []Penalty             `json:"PenaltyList,omitempty"`
	}

	Traveler struct {
		ObjectKey string `json:"ObjectKey"`
		PTC       string `json:"PTC"`
	}

	FlightSegment struct {
		SegmentKey       string       `json:"SegmentKey"`
		Departure        Endpoint     `json:"Departure"`
		Arrival          Endpoint     `json:"Arrival"`
		MarketingCarrier Carrier      `json:"MarketingCarrier"`
		OperatingCarrier Carrier      `json:"OperatingCarrier"`
		Equipment        *Equipment   `json:"Equipment,omitempty"`
		FlightDetail     FlightDetail `json:"FlightDetail"`
	}

	Endpoint struct {
		AirportCode string `json:"AirportCode"`
		Date        string `json:"Date"`
		Time        string `json:"Time"`
		Terminal    string `json:"Terminal,omitempty"`
	}

	Carrier struct {
		AirlineID    string `json:"AirlineID"`
		Name         string `json:"Name,omitempty"`
		FlightNumber string `json:"FlightNumber,omitempty"`
	}

	Equipment struct {
		AircraftCode string `json:"AircraftCode"`
	}

	FlightDetail struct {
		FlightDuration string `json:"FlightDuration,omitempty"`
		Stops          int    `json:"Stops,omitempty"`
	}

	Flight struct {
		FlightKey         string `json:"FlightKey"`
		Journey           string `json:"Journey,omitempty"`
		SegmentReferences string `json:"SegmentReferences"`
	}

	OriginDestination struct {
		OriginDestinationKey string `json:"OriginDestinationKey"`
		DepartureCode        string `json:"DepartureCode"`
		ArrivalCode          string `json:"ArrivalCode"`
		FlightReferences     string `json:"FlightReferences"`
	}

	CheckedBagAllowance struct {
		ListKey         string           `json:"ListKey"`
		PieceAllowance  *PieceAllowance  `json:"PieceAllowance,omitempty"`
		WeightAllowance *WeightAllowance `json:"WeightAllowance,omitempty"`
	}

	PieceAllowance struct {
		ApplicableParty string `json:"ApplicableParty,omitempty"`
		TotalQuantity   int    `json:"TotalQuantity"`
	}

	WeightAllowance struct {
		MaximumWeight float64 `json:"MaximumWeight"`
		UOM           string  `json:"UOM,omitempty"`
	}

	ServiceDefinition struct {
		ServiceDefinitionID string `json:"ServiceDefinitionID"`
		Name                string `json:"Name"`
		Code                string `json:"Code,omitempty"`
		Description         string `json:"Description,omitempty"`
	}

	// Penalty indicators arrive as bool, number or string depending on the
	// airline, hence interface{} fields. The farerules package owns the
	// coercion.
	Penalty struct {
		ObjectKey        string          `json:"ObjectKey"`
		CancelFeeInd     interface{}     `json:"CancelFeeInd,omitempty"`
		RefundableInd    interface{}     `json:"RefundableInd,omitempty"`
		ChangeFeeInd     interface{}     `json:"ChangeFeeInd,omitempty"`
		ChangeAllowedInd interface{}     `json:"ChangeAllowedInd,omitempty"`
		Details          []PenaltyDetail `json:"Details,omitempty"`
	}

	PenaltyDetail struct {
		Type        string          `json:"Type"`
		Application PenaltyTiming   `json:"Application"`
		Amounts     []PenaltyAmount `json:"Amounts,omitempty"`
	}

	PenaltyTiming struct {
		Code string `json:"Code"`
	}

	PenaltyAmount struct {
		CurrencyAmountValue CurrencyAmount `json:"CurrencyAmountValue"`
		AmountApplication   string         `json:"AmountApplication,omitempty"`
	}
)
