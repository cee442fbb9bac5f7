package farerules

import (
	"strings"

	"github.com/asadbekGo/ett-ndc-sdk/shopping"
)

// Penalty detail application codes as the vendor sends them.
const (
	TimingAfterDepartureNoShow   = "1"
	TimingPriorToDeparture       = "2"
	TimingAfterDeparture         = "3"
	TimingPriorToDepartureNoShow = "4"
)

// Interpretation is the displayable change/cancellation policy derived
// from one raw penalty record. It is never persisted. A side the record
// says nothing about is reported N/A, not No.
type Interpretation struct {
	PenaltyApplicable Answer  `json:"penaltyApplicable"`
	RefundApplicable  Answer  `json:"refundApplicable"`
	CancelAllowed     Answer  `json:"cancelAllowed"`
	ChangeAllowed     Answer  `json:"changeAllowed"`
	Interpretation    string  `json:"interpretation"`
	TimingCode        string  `json:"timingCode,omitempty"`
	MinAmount         float64 `json:"minAmount,omitempty"`
	MaxAmount         float64 `json:"maxAmount,omitempty"`
	Currency          string  `json:"currency,omitempty"`
}

// Interpret derives the policy for one penalty record. It is total: any
// missing or malformed indicator resolves to Unknown, never to an error.
func Interpret(penalty shopping.Penalty) Interpretation {
	var (
		cancelCovered = penalty.CancelFeeInd != nil || penalty.RefundableInd != nil
		changeCovered = penalty.ChangeFeeInd != nil || penalty.ChangeAllowedInd != nil
	)
	for _, detail := range penalty.Details {
		if isChangeAction(detail.Type) {
			changeCovered = true
		} else {
			cancelCovered = true
		}
	}
	if !cancelCovered && !changeCovered {
		// Empty record: everything unknown rather than a refusal.
		cancelCovered, changeCovered = true, true
	}

	cancel := cancelMatrix(TriFromAny(penalty.CancelFeeInd), TriFromAny(penalty.RefundableInd))
	change := changeMatrix(TriFromAny(penalty.ChangeFeeInd), TriFromAny(penalty.ChangeAllowedInd))

	result := Interpretation{
		PenaltyApplicable: NotApplicable,
		RefundApplicable:  NotApplicable,
		CancelAllowed:     NotApplicable,
		ChangeAllowed:     NotApplicable,
	}

	var texts []string
	if cancelCovered {
		result.PenaltyApplicable = cancel.PenaltyApplicable
		result.RefundApplicable = cancel.RefundApplicable
		result.CancelAllowed = cancel.CancelAllowed
		texts = append(texts, cancel.Text)
	}
	if changeCovered {
		result.PenaltyApplicable = combineAnswers(result.PenaltyApplicable, change.PenaltyApplicable)
		result.ChangeAllowed = change.ChangeAllowed
		texts = append(texts, change.Text)
	}

	for _, detail := range penalty.Details {
		code := detail.Application.Code
		if afterDeparture(code) {
			// Post-departure action is categorically refused no matter what
			// the indicators claim.
			result.TimingCode = code
			if isChangeAction(detail.Type) {
				result.ChangeAllowed = No
				texts = replaceText(texts, change.Text, "No changes permitted "+timingPhrase(code))
			} else {
				result.RefundApplicable = No
				result.CancelAllowed = No
				texts = replaceText(texts, cancel.Text, "No refund or cancellation "+timingPhrase(code))
			}
		} else if result.TimingCode == "" {
			result.TimingCode = code
		}

		for _, amount := range detail.Amounts {
			switch strings.ToUpper(amount.AmountApplication) {
			case "MIN":
				result.MinAmount = amount.CurrencyAmountValue.Value
			case "MAX":
				result.MaxAmount = amount.CurrencyAmountValue.Value
			}
			if amount.CurrencyAmountValue.Code != "" {
				result.Currency = amount.CurrencyAmountValue.Code
			}
		}
	}

	result.Interpretation = strings.Join(dedupeTexts(texts), "; ")

	return result
}

// InterpretAll resolves each penalty reference against the document's
// penalty list and interprets the ones that resolve. Unresolvable
// references are skipped: fare-rule display is best effort.
func InterpretAll(refs *shopping.ReferenceSet, penaltyRefs []string, airline string) []Interpretation {
	var interpretations []Interpretation
	for _, ref := range penaltyRefs {
		penalty, ok := refs.ResolvePenalty(ref, airline)
		if !ok {
			continue
		}
		interpretations = append(interpretations, Interpret(penalty))
	}
	return interpretations
}

func afterDeparture(code string) bool {
	return code == TimingAfterDepartureNoShow || code == TimingAfterDeparture
}

func timingPhrase(code string) string {
	if code == TimingAfterDepartureNoShow {
		return "after departure (no-show)"
	}
	return "after departure"
}

func isChangeAction(actionType string) bool {
	return strings.Contains(strings.ToLower(actionType), "change")
}

// combineAnswers merges penalty-applicable verdicts: a definite Yes wins,
// then Unknown, then No. N/A only survives when both sides are N/A.
func combineAnswers(a, b Answer) Answer {
	if a == NotApplicable {
		return b
	}
	if b == NotApplicable {
		return a
	}
	if a == Yes || b == Yes {
		return Yes
	}
	if a == Unknown || b == Unknown {
		return Unknown
	}
	return No
}

func replaceText(texts []string, old, replacement string) []string {
	for i, text := range texts {
		if text == old {
			texts[i] = replacement
			return texts
		}
	}
	return append(texts, replacement)
}

func dedupeTexts(texts []string) []string {
	seen := map[string]bool{}
	var unique []string
	for _, text := range texts {
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		unique = append(unique, text)
	}
	return unique
}
