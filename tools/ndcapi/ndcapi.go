package ndcapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	sdk "github.com/asadbekGo/ett-ndc-sdk"
	"github.com/asadbekGo/ett-ndc-sdk/offers"
	"github.com/asadbekGo/ett-ndc-sdk/shopping"
)

type (
	// VendorData mirrors the vendor credential record the caller keeps in
	// its supplier table.
	VendorData struct {
		Guid           string `json:"guid"`
		Username       string `json:"username"`
		Password       string `json:"password"`
		APIUrl         string `json:"api_url"`
		AuthUrl        string `json:"vendor_auth_url"`
		Token          string `json:"token"`
		TokenExpiresAt string `json:"token_expire_at"`
		ThirdPartyId   string `json:"third_party_id"`
	}

	LoginResponse struct {
		Token   string `json:"token"`
		Expires string `json:"expires"`
	}

	vendorTokenResponse struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}

	// SearchParams is the client search form; BuildAirShoppingRQ turns it
	// into the vendor's shopping request without any reference resolution.
	SearchParams struct {
		Origin        string `json:"origin"`
		Destination   string `json:"destination"`
		DepartureDate string `json:"departureDate"`
		ReturnDate    string `json:"returnDate,omitempty"`
		Adults        int    `json:"adults"`
		Children      int    `json:"children"`
		Infants       int    `json:"infants"`
		CabinClass    string `json:"cabinClass,omitempty"`
	}

	AirShoppingRQ struct {
		CoreQuery  CoreQuery       `json:"CoreQuery"`
		Travelers  []TravelerQuery `json:"Travelers"`
		Preference *Preference     `json:"Preference,omitempty"`
	}

	CoreQuery struct {
		OriginDestinations []OriginDestinationQuery `json:"OriginDestinations"`
	}

	OriginDestinationQuery struct {
		Departure EndpointQuery `json:"Departure"`
		Arrival   EndpointQuery `json:"Arrival"`
	}

	EndpointQuery struct {
		AirportCode string `json:"AirportCode"`
		Date        string `json:"Date"`
	}

	TravelerQuery struct {
		PTC   string `json:"PTC"`
		Count int    `json:"Count"`
	}

	Preference struct {
		CabinClass string `json:"CabinClass"`
	}
)

// Login obtains a vendor access token with the client-credentials flow.
func Login(vendor VendorData) (LoginResponse, error) {
	payload := strings.NewReader(
		"grant_type=client_credentials" +
			"&client_id=" + vendor.Username +
			"&client_secret=" + vendor.Password +
			"&scope=NdcApi")

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	request, err := http.NewRequest("POST", vendor.AuthUrl+"/connect/token", payload)
	if err != nil {
		return LoginResponse{}, err
	}

	request.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	res, err := client.Do(request)
	if err != nil {
		return LoginResponse{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return LoginResponse{}, &loginError{status: res.Status}
	}

	var tokenResponse vendorTokenResponse
	err = json.NewDecoder(res.Body).Decode(&tokenResponse)

	return LoginResponse{
		Token:   tokenResponse.AccessToken,
		Expires: time.Now().Add(time.Duration(tokenResponse.ExpiresIn) * time.Second).Format(time.RFC3339),
	}, err
}

type loginError struct {
	status string
}

func (e *loginError) Error() string {
	return "API request failed with status code: " + e.status
}

// EnsureToken refreshes the vendor token when it expires within the next
// ten minutes. It returns the (possibly refreshed) vendor record.
func EnsureToken(vendor VendorData, ettNdcApi *sdk.ApiFunction) (VendorData, sdk.ResponseError) {
	var errorResponse = sdk.ResponseError{}

	expireTime, err := time.Parse(time.RFC3339, vendor.TokenExpiresAt)
	if err != nil {
		errorResponse.StatusCode = 422
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		errorResponse.ErrorMessage = ettNdcApi.Logger.ErrorLog.Sprint(err.Error())
		return vendor, errorResponse
	}
	expireTime = expireTime.Add(-time.Minute * 10)

	if time.Now().UTC().Before(expireTime) {
		return vendor, errorResponse
	}

	login, err := Login(vendor)
	if err != nil {
		errorResponse.StatusCode = 422
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		errorResponse.ErrorMessage = ettNdcApi.Logger.ErrorLog.Sprint(err.Error())
		return vendor, errorResponse
	}

	vendor.Token = login.Token
	vendor.TokenExpiresAt = login.Expires
	return vendor, errorResponse
}

// BuildAirShoppingRQ is the search-request builder: a single fixed shape,
// no cross-document references involved.
func BuildAirShoppingRQ(params SearchParams) AirShoppingRQ {
	request := AirShoppingRQ{
		CoreQuery: CoreQuery{
			OriginDestinations: []OriginDestinationQuery{
				{
					Departure: EndpointQuery{AirportCode: params.Origin, Date: params.DepartureDate},
					Arrival:   EndpointQuery{AirportCode: params.Destination},
				},
			},
		},
	}

	if params.ReturnDate != "" {
		request.CoreQuery.OriginDestinations = append(request.CoreQuery.OriginDestinations, OriginDestinationQuery{
			Departure: EndpointQuery{AirportCode: params.Destination, Date: params.ReturnDate},
			Arrival:   EndpointQuery{AirportCode: params.Origin},
		})
	}

	if params.Adults > 0 {
		request.Travelers = append(request.Travelers, TravelerQuery{PTC: "ADT", Count: params.Adults})
	}
	if params.Children > 0 {
		request.Travelers = append(request.Travelers, TravelerQuery{PTC: "CHD", Count: params.Children})
	}
	if params.Infants > 0 {
		request.Travelers = append(request.Travelers, TravelerQuery{PTC: "INF", Count: params.Infants})
	}

	if params.CabinClass != "" {
		request.Preference = &Preference{CabinClass: params.CabinClass}
	}

	return request
}

// AirShopping runs the vendor's shopping call.
func AirShopping(vendor VendorData, request AirShoppingRQ, ettNdcApi *sdk.ApiFunction) (shopping.AirShoppingRS, sdk.ResponseError) {
	var document shopping.AirShoppingRS
	errorResponse := doVendorCall(vendor, "/ndc/v1/airshopping", request, &document, "NDC Air Shopping", ettNdcApi)
	return document, errorResponse
}

// FlightPrice runs the vendor's pricing call for one selected offer. The
// third-party id header routes the call to the owning airline.
func FlightPrice(vendor VendorData, request offers.FlightPriceRQ, ettNdcApi *sdk.ApiFunction) (shopping.FlightPriceRS, sdk.ResponseError) {
	var document shopping.FlightPriceRS
	errorResponse := doVendorCall(vendor, "/ndc/v1/flightprice", request, &document, "NDC Flight Price", ettNdcApi)
	return document, errorResponse
}

// SeatAvailability runs the vendor's seat-map call.
func SeatAvailability(vendor VendorData, request offers.SeatAvailabilityRQ, ettNdcApi *sdk.ApiFunction) (map[string]interface{}, sdk.ResponseError) {
	var document map[string]interface{}
	errorResponse := doVendorCall(vendor, "/ndc/v1/seatavailability", request, &document, "NDC Seat Availability", ettNdcApi)
	return document, errorResponse
}

// ServiceList runs the vendor's ancillary-service call.
func ServiceList(vendor VendorData, request offers.ServiceListRQ, ettNdcApi *sdk.ApiFunction) (map[string]interface{}, sdk.ResponseError) {
	var document map[string]interface{}
	errorResponse := doVendorCall(vendor, "/ndc/v1/servicelist", request, &document, "NDC Service List", ettNdcApi)
	return document, errorResponse
}

// OrderCreate runs the vendor's booking call.
func OrderCreate(vendor VendorData, request offers.OrderCreateRQ, ettNdcApi *sdk.ApiFunction) (map[string]interface{}, sdk.ResponseError) {
	var document map[string]interface{}
	errorResponse := doVendorCall(vendor, "/ndc/v1/ordercreate", request, &document, "NDC Order Create", ettNdcApi)
	return document, errorResponse
}

func doVendorCall(vendor VendorData, path string, request interface{}, response interface{}, callName string, ettNdcApi *sdk.ApiFunction) sdk.ResponseError {
	var errorResponse = sdk.ResponseError{}

	var headers = map[string]interface{}{
		"Authorization":  "Bearer " + vendor.Token,
		"Content-Type":   "application/json",
		"Third-Party-Id": vendor.ThirdPartyId,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	body, err := sdk.DoRequest(ctx, vendor.APIUrl+path, http.MethodPost, request, "", headers)
	if err != nil {
		errorResponse.StatusCode = 422
		errorResponse.Description = string(body)
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		errorResponse.ErrorMessage = ettNdcApi.Logger.ErrorLog.Sprint(err.Error())
		go ettNdcApi.SendTelegram("[" + callName + "] [🔴 Down] Request failed: " + err.Error())
		return errorResponse
	}

	err = json.Unmarshal(body, response)
	if err != nil {
		errorResponse.StatusCode = 500
		errorResponse.Description = string(body)
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		errorResponse.ErrorMessage = ettNdcApi.Logger.ErrorLog.Sprint("Error while unmarshalling "+callName+" response: ", err.Error())
		go ettNdcApi.SendTelegramFile(body, "ndc_response.json")
		return errorResponse
	}

	return errorResponse
}
