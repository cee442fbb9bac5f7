package auth

import (
	"time"

	sdk "github.com/asadbekGo/ett-ndc-sdk"
	"github.com/golang-jwt/jwt/v5"
)

type SessionClaims struct {
	UserId    string `json:"user_id"`
	AgencyId  string `json:"agency_id,omitempty"`
	SessionId string `json:"session_id"`
	jwt.RegisteredClaims
}

// IssueSessionToken signs a short-lived HS256 token that ties the caller to
// one shopping session. The session id is the cache key for the stored
// shopping document.
func IssueSessionToken(userId, agencyId, sessionId, secretKey string, ttl time.Duration, ettNdcApi *sdk.ApiFunction) (string, sdk.ResponseError) {
	var errorResponse = sdk.ResponseError{}

	claims := SessionClaims{
		UserId:    userId,
		AgencyId:  agencyId,
		SessionId: sessionId,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ett-ndc-sdk",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secretKey))
	if err != nil {
		errorResponse.StatusCode = 500
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		errorResponse.ErrorMessage = ettNdcApi.Logger.ErrorLog.Sprint("Failed to sign session token: " + err.Error())
		return "", errorResponse
	}

	return signed, errorResponse
}

// ValidateSessionToken parses and verifies a session token issued by
// IssueSessionToken. Expired or foreign-signed tokens come back as 401.
func ValidateSessionToken(accessToken, secretKey string, ettNdcApi *sdk.ApiFunction) (SessionClaims, sdk.ResponseError) {
	var (
		claims        SessionClaims
		errorResponse = sdk.ResponseError{}
	)

	if accessToken == "" {
		errorResponse.StatusCode = 401
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		errorResponse.ErrorMessage = ettNdcApi.Logger.ErrorLog.Sprint("Token is required")
		return claims, errorResponse
	}

	token, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil || !token.Valid {
		errorResponse.StatusCode = 401
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		if err != nil {
			errorResponse.ErrorMessage = ettNdcApi.Logger.ErrorLog.Sprint("Invalid token: " + err.Error())
		} else {
			errorResponse.ErrorMessage = ettNdcApi.Logger.ErrorLog.Sprint("Invalid token")
		}
		return SessionClaims{}, errorResponse
	}

	if claims.SessionId == "" {
		errorResponse.StatusCode = 401
		errorResponse.ClientErrorMessage = sdk.ErrorCodeWithMessage[errorResponse.StatusCode]
		errorResponse.ErrorMessage = ettNdcApi.Logger.ErrorLog.Sprint("Session id is missing in token claims")
		return SessionClaims{}, errorResponse
	}

	return claims, errorResponse
}
