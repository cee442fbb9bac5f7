package auth

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	sdk "github.com/asadbekGo/ett-ndc-sdk"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

type (
	ValidateTokenRequest struct {
		Domain      string `json:"domain"`
		Audience    string `json:"audience"`
		AccessToken string `json:"access_token"`
	}

	CustomClaims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
		Sub           string `json:"sub"`
	}
)

func (c *CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// Auth0ValidateToken verifies an agency user's RS256 access token against
// the tenant's JWKS endpoint.
func Auth0ValidateToken(validateTokenRequest ValidateTokenRequest, ettNdcApi *sdk.ApiFunction) (customClaims CustomClaims, errorResponse sdk.ResponseError) {
	if !strings.Contains(validateTokenRequest.Domain, "https://") {
		validateTokenRequest.Domain = "https://" + validateTokenRequest.Domain + "/"
	}

	if validateTokenRequest.Domain[len(validateTokenRequest.Domain)-1:] != "/" {
		validateTokenRequest.Domain = validateTokenRequest.Domain + "/"
	}

	issuerURL, err := url.Parse(validateTokenRequest.Domain)
	if err != nil {
		errorResponse.StatusCode = 400
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		errorResponse.ErrorMessage = ettNdcApi.Logger.ErrorLog.Sprint("Failed to parse the issuer url: " + err.Error())
		return CustomClaims{}, errorResponse
	}
	var provider = jwks.NewCachingProvider(issuerURL, 5*time.Minute)

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{validateTokenRequest.Audience},
		validator.WithCustomClaims(
			func() validator.CustomClaims {
				return &CustomClaims{}
			},
		),
	)
	if err != nil {
		errorResponse.StatusCode = 500
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		errorResponse.ErrorMessage = ettNdcApi.Logger.ErrorLog.Sprint("Failed to set up the validator: " + err.Error())
		return CustomClaims{}, errorResponse
	}

	claims, err := jwtValidator.ValidateToken(context.Background(), validateTokenRequest.AccessToken)
	if err != nil {
		errorResponse.StatusCode = 401
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		errorResponse.ErrorMessage = ettNdcApi.Logger.ErrorLog.Sprint("Invalid token: " + err.Error())
		return CustomClaims{}, errorResponse
	}

	body, err := json.Marshal(claims)
	if err != nil {
		errorResponse.StatusCode = 500
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		errorResponse.ErrorMessage = ettNdcApi.Logger.ErrorLog.Sprint("Failed to marshal claims: " + err.Error())
		return CustomClaims{}, errorResponse
	}

	err = json.Unmarshal(body, &customClaims)
	if err != nil {
		errorResponse.StatusCode = 500
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		errorResponse.ErrorMessage = ettNdcApi.Logger.ErrorLog.Sprint("Failed to unmarshal claims: " + err.Error())
		return CustomClaims{}, errorResponse
	}

	return customClaims, errorResponse
}
