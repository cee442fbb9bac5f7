package datahash

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// OfferHash is the canonical payload hashed when an offer is shown to the
// client. The client echoes the hash back at order time so a price change
// between the shopping and booking stages is detected before the vendor
// call is made.
type (
	OfferHash struct {
		OfferID    string     `json:"offerId"`
		Owner      string     `json:"owner"`
		ResponseID string     `json:"responseId"`
		Total      float64    `json:"total"`
		Currency   string     `json:"currency"`
		PaxPrices  []PaxPrice `json:"paxPrices,omitempty"`
	}

	PaxPrice struct {
		PaxType  string  `json:"paxType"`
		Count    int     `json:"count"`
		Price    float64 `json:"price"`
		Currency string  `json:"currency"`
	}
)

func HashSHA256(data string) string {
	hash := sha256.New()
	hash.Write([]byte(data))
	hashedData := hash.Sum(nil)
	return hex.EncodeToString(hashedData)
}

func VerifySHA256(data, hashedData string) bool {
	return HashSHA256(data) == hashedData
}

func GenerateDataHash(generated interface{}) (string, error) {
	datahashByte, err := json.Marshal(generated)
	if err != nil {
		return "", err
	}
	return HashSHA256(string(datahashByte)), nil
}

func ValidateDataHash(generated interface{}, client string) (bool, error) {
	datahashByte, err := json.Marshal(generated)
	if err != nil {
		return false, err
	}
	return VerifySHA256(string(datahashByte), client), nil
}
