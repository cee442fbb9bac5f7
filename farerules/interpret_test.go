package farerules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asadbekGo/ett-ndc-sdk/shopping"
)

type (
	triFromAnyTestCase struct {
		name     string
		value    interface{}
		expected Tri
	}

	interpretTestCase struct {
		name     string
		penalty  shopping.Penalty
		expected Interpretation
	}
)

var triFromAnyTestCases = []triFromAnyTestCase{
	{name: "nil", value: nil, expected: TriUnknown},
	{name: "bool true", value: true, expected: TriTrue},
	{name: "bool false", value: false, expected: TriFalse},
	{name: "string true", value: "true", expected: TriTrue},
	{name: "string false", value: "false", expected: TriFalse},
	{name: "number one", value: 1, expected: TriTrue},
	{name: "number zero", value: float64(0), expected: TriFalse},
	{name: "yes", value: "Yes", expected: TriTrue},
	{name: "allowed", value: "ALLOWED", expected: TriTrue},
	{name: "no", value: "No", expected: TriFalse},
	{name: "not allowed", value: "Not Allowed", expected: TriFalse},
	{name: "nav", value: "NAV", expected: TriFalse},
	{name: "missing literal", value: "Missing", expected: TriUnknown},
	{name: "garbage", value: "perhaps", expected: TriUnknown},
	{name: "whitespace padded", value: "  yes  ", expected: TriTrue},
}

func TestTriFromAny(t *testing.T) {
	for _, tc := range triFromAnyTestCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TriFromAny(tc.value))
		})
	}
}

func TestMatricesAreTotal(t *testing.T) {
	states := []Tri{TriUnknown, TriTrue, TriFalse}

	for _, fee := range states {
		for _, refundable := range states {
			verdict := cancelMatrix(fee, refundable)
			assert.NotEmpty(t, verdict.Text, "cancel (%v,%v)", fee, refundable)
			assert.NotEmpty(t, verdict.PenaltyApplicable, "cancel (%v,%v)", fee, refundable)
			assert.NotEmpty(t, verdict.RefundApplicable, "cancel (%v,%v)", fee, refundable)
			assert.NotEmpty(t, verdict.CancelAllowed, "cancel (%v,%v)", fee, refundable)
		}
	}
	for _, fee := range states {
		for _, allowed := range states {
			verdict := changeMatrix(fee, allowed)
			assert.NotEmpty(t, verdict.Text, "change (%v,%v)", fee, allowed)
			assert.NotEmpty(t, verdict.PenaltyApplicable, "change (%v,%v)", fee, allowed)
			assert.NotEmpty(t, verdict.ChangeAllowed, "change (%v,%v)", fee, allowed)
		}
	}
}

func TestUnknownNeverReportedAsDenial(t *testing.T) {
	// An absent indicator must produce a different verdict than an
	// explicit false one.
	unknownVerdict := cancelMatrix(TriUnknown, TriUnknown)
	falseVerdict := cancelMatrix(TriFalse, TriFalse)
	assert.NotEqual(t, falseVerdict, unknownVerdict)
	assert.Equal(t, Unknown, unknownVerdict.PenaltyApplicable)
	assert.Equal(t, Unknown, unknownVerdict.RefundApplicable)

	unknownChange := changeMatrix(TriUnknown, TriUnknown)
	assert.Equal(t, Unknown, unknownChange.ChangeAllowed)
}

var interpretTestCases = []interpretTestCase{
	{
		name: "free change only record",
		penalty: shopping.Penalty{
			ObjectKey:        "PEN1",
			ChangeFeeInd:     false,
			ChangeAllowedInd: true,
		},
		expected: Interpretation{
			PenaltyApplicable: No,
			RefundApplicable:  NotApplicable,
			CancelAllowed:     NotApplicable,
			ChangeAllowed:     Yes,
			Interpretation:    "Free change + difference in fare",
		},
	},
	{
		name: "fully refundable cancel record",
		penalty: shopping.Penalty{
			ObjectKey:     "PEN2",
			CancelFeeInd:  false,
			RefundableInd: true,
		},
		expected: Interpretation{
			PenaltyApplicable: No,
			RefundApplicable:  Yes,
			CancelAllowed:     Yes,
			ChangeAllowed:     NotApplicable,
			Interpretation:    "Fully refundable, no cancellation penalty",
		},
	},
	{
		name: "penalty on both sides",
		penalty: shopping.Penalty{
			ObjectKey:        "PEN3",
			CancelFeeInd:     true,
			RefundableInd:    true,
			ChangeFeeInd:     true,
			ChangeAllowedInd: true,
		},
		expected: Interpretation{
			PenaltyApplicable: Yes,
			RefundApplicable:  Yes,
			CancelAllowed:     Yes,
			ChangeAllowed:     Yes,
			Interpretation:    "Cancellation with penalty, remainder of the fare refunded; Change with penalty + difference in fare",
		},
	},
	{
		name: "string indicators",
		penalty: shopping.Penalty{
			ObjectKey:        "PEN4",
			ChangeFeeInd:     "No",
			ChangeAllowedInd: "Allowed",
		},
		expected: Interpretation{
			PenaltyApplicable: No,
			RefundApplicable:  NotApplicable,
			CancelAllowed:     NotApplicable,
			ChangeAllowed:     Yes,
			Interpretation:    "Free change + difference in fare",
		},
	},
	{
		name:    "empty record is fully unknown",
		penalty: shopping.Penalty{ObjectKey: "PEN5"},
		expected: Interpretation{
			PenaltyApplicable: Unknown,
			RefundApplicable:  Unknown,
			CancelAllowed:     Unknown,
			ChangeAllowed:     Unknown,
			Interpretation:    "Cancellation conditions unknown, contact the airline; Change conditions unknown, contact the airline",
		},
	},
	{
		name: "after departure overrides refundable cancel",
		penalty: shopping.Penalty{
			ObjectKey:     "PEN6",
			CancelFeeInd:  false,
			RefundableInd: true,
			Details: []shopping.PenaltyDetail{
				{Type: "Cancel", Application: shopping.PenaltyTiming{Code: TimingAfterDeparture}},
			},
		},
		expected: Interpretation{
			PenaltyApplicable: No,
			RefundApplicable:  No,
			CancelAllowed:     No,
			ChangeAllowed:     NotApplicable,
			Interpretation:    "No refund or cancellation after departure",
			TimingCode:        TimingAfterDeparture,
		},
	},
	{
		name: "after departure no-show overrides change",
		penalty: shopping.Penalty{
			ObjectKey:        "PEN7",
			ChangeFeeInd:     false,
			ChangeAllowedInd: true,
			Details: []shopping.PenaltyDetail{
				{Type: "Change", Application: shopping.PenaltyTiming{Code: TimingAfterDepartureNoShow}},
			},
		},
		expected: Interpretation{
			PenaltyApplicable: No,
			RefundApplicable:  NotApplicable,
			CancelAllowed:     NotApplicable,
			ChangeAllowed:     No,
			Interpretation:    "No changes permitted after departure (no-show)",
			TimingCode:        TimingAfterDepartureNoShow,
		},
	},
	{
		name: "prior to departure keeps matrix verdict",
		penalty: shopping.Penalty{
			ObjectKey:        "PEN8",
			ChangeFeeInd:     true,
			ChangeAllowedInd: true,
			Details: []shopping.PenaltyDetail{
				{
					Type:        "Change",
					Application: shopping.PenaltyTiming{Code: TimingPriorToDeparture},
					Amounts: []shopping.PenaltyAmount{
						{CurrencyAmountValue: shopping.CurrencyAmount{Value: 50, Code: "EUR"}, AmountApplication: "MIN"},
						{CurrencyAmountValue: shopping.CurrencyAmount{Value: 150, Code: "EUR"}, AmountApplication: "MAX"},
					},
				},
			},
		},
		expected: Interpretation{
			PenaltyApplicable: Yes,
			RefundApplicable:  NotApplicable,
			CancelAllowed:     NotApplicable,
			ChangeAllowed:     Yes,
			Interpretation:    "Change with penalty + difference in fare",
			TimingCode:        TimingPriorToDeparture,
			MinAmount:         50,
			MaxAmount:         150,
			Currency:          "EUR",
		},
	},
}

func TestInterpret(t *testing.T) {
	for _, tc := range interpretTestCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Interpret(tc.penalty))
		})
	}
}

func TestInterpretAll(t *testing.T) {
	dataLists := shopping.DataLists{
		PenaltyList: []shopping.Penalty{
			{ObjectKey: "KQ-PEN1", CancelFeeInd: false, RefundableInd: true},
			{ObjectKey: "KQ-PEN2", ChangeFeeInd: false, ChangeAllowedInd: true},
		},
	}
	refs := shopping.BuildReferenceSet(dataLists, nil, shopping.ShoppingResponseID{}, shopping.Detection{})

	interpretations := InterpretAll(refs, []string{"KQ-PEN1", "KQ-PEN2", "KQ-PEN9"}, "KQ")
	assert.Len(t, interpretations, 2, "unresolvable reference skipped")
	assert.Equal(t, Yes, interpretations[0].RefundApplicable)
	assert.Equal(t, Yes, interpretations[1].ChangeAllowed)
}
