package checkout

// FlagPolicy enumerates the values to attempt for the delivery-handling
// flag of a checkout request. The backend does not publish which value it
// accepts, so submission cycles this ordered list, stopping at the first
// non-5xx response. The list is the only thing retried: transport errors
// stop the cycle immediately, and a non-empty accepted response is final.
//
// The policy is a value so it can be swapped for SingleFlag once the
// upstream contract is pinned down; the cycling variant exists to work
// around today's ambiguity, not as a long-term pattern.
type FlagPolicy struct {
	// Candidates returns the ordered flag values to try for a merchant.
	Candidates func(merchantID int64) []int64
}

// DefaultFlagPolicy tries the merchant id first (merchant handles its own
// delivery) and then zero (courier assignment left to the backend).
func DefaultFlagPolicy() FlagPolicy {
	return FlagPolicy{
		Candidates: func(merchantID int64) []int64 {
			return []int64{merchantID, 0}
		},
	}
}

// SingleFlag always submits the one given value. Use it against backends
// with a deterministic delivery-flag contract.
func SingleFlag(flag int64) FlagPolicy {
	return FlagPolicy{
		Candidates: func(int64) []int64 {
			return []int64{flag}
		},
	}
}
