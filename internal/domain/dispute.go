package domain

import "time"

type Decision string

const (
	DecisionRefundBuyer Decision = "REFUND_BUYER"
	DecisionPaySeller   Decision = "PAY_SELLER"
)

// ValidDecision reports whether s is one of the two allowed decision
// literals. Responses from the reasoning service are checked against this
// before they are trusted.
func ValidDecision(s string) bool {
	return Decision(s) == DecisionRefundBuyer || Decision(s) == DecisionPaySeller
}

// DisputeRecord is attached to an order the first time a cancellation is
// requested. The resolution fields are written at most once.
type DisputeRecord struct {
	Requested   bool
	Reason      string
	Decision    Decision
	Explanation string
	ResolvedAt  *time.Time
}

func (d *DisputeRecord) Resolved() bool {
	return d != nil && d.ResolvedAt != nil
}
