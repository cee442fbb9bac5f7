package farerules

// Answer is the client-facing verdict for one policy dimension.
type Answer string

const (
	Yes           Answer = "Yes"
	No            Answer = "No"
	Unknown       Answer = "Unknown"
	NotApplicable Answer = "N/A"
)

type cancelVerdict struct {
	PenaltyApplicable Answer
	RefundApplicable  Answer
	CancelAllowed     Answer
	Text              string
}

type changeVerdict struct {
	PenaltyApplicable Answer
	ChangeAllowed     Answer
	Text              string
}

// cancelMatrix is total over every (cancelFee, refundable) pair. An
// Unknown input always yields a distinct verdict from a False input so
// that missing data is never reported as a denial.
func cancelMatrix(cancelFee, refundable Tri) cancelVerdict {
	switch cancelFee {
	case TriTrue:
		switch refundable {
		case TriTrue:
			return cancelVerdict{Yes, Yes, Yes, "Cancellation with penalty, remainder of the fare refunded"}
		case TriFalse:
			return cancelVerdict{Yes, No, Yes, "Cancellation penalty applies, fare is non-refundable"}
		default:
			return cancelVerdict{Yes, Unknown, Yes, "Cancellation penalty applies, refund depends on fare rules"}
		}
	case TriFalse:
		switch refundable {
		case TriTrue:
			return cancelVerdict{No, Yes, Yes, "Fully refundable, no cancellation penalty"}
		case TriFalse:
			return cancelVerdict{No, No, No, "Non-refundable fare, cancellation not permitted"}
		default:
			return cancelVerdict{No, Unknown, Yes, "No cancellation penalty, refund depends on fare rules"}
		}
	default:
		switch refundable {
		case TriTrue:
			return cancelVerdict{Unknown, Yes, Yes, "Refundable, cancellation penalty unknown"}
		case TriFalse:
			return cancelVerdict{Unknown, No, Unknown, "Non-refundable fare, cancellation penalty unknown"}
		default:
			return cancelVerdict{Unknown, Unknown, Unknown, "Cancellation conditions unknown, contact the airline"}
		}
	}
}

// changeMatrix is total over every (changeFee, changeAllowed) pair.
func changeMatrix(changeFee, changeAllowed Tri) changeVerdict {
	switch changeFee {
	case TriTrue:
		switch changeAllowed {
		case TriTrue:
			return changeVerdict{Yes, Yes, "Change with penalty + difference in fare"}
		case TriFalse:
			return changeVerdict{Yes, No, "Changes not permitted"}
		default:
			return changeVerdict{Yes, Unknown, "Change penalty applies, changeability depends on fare rules"}
		}
	case TriFalse:
		switch changeAllowed {
		case TriTrue:
			return changeVerdict{No, Yes, "Free change + difference in fare"}
		case TriFalse:
			return changeVerdict{No, No, "Changes not permitted"}
		default:
			return changeVerdict{No, Unknown, "No change penalty, changeability depends on fare rules"}
		}
	default:
		switch changeAllowed {
		case TriTrue:
			return changeVerdict{Unknown, Yes, "Change permitted, penalty unknown"}
		case TriFalse:
			return changeVerdict{Unknown, No, "Changes not permitted, penalty unknown"}
		default:
			return changeVerdict{Unknown, Unknown, "Change conditions unknown, contact the airline"}
		}
	}
}
