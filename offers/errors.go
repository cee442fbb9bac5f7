package offers

import "errors"

// Fatal pipeline conditions. All are raised at the point of detection
// with call-site context and are never retried internally.
var (
	ErrOfferNotFound             = errors.New("offer not found")
	ErrMissingOfferOwner         = errors.New("offer owner not found")
	ErrMissingShoppingResponseID = errors.New("shopping response id not found")
	ErrNoSegmentsResolved        = errors.New("no flight segments resolved")
)
