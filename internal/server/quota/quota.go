// Package quota holds the pure storage-quota arithmetic. It performs no I/O;
// callers check before transferring bytes and persist the delta afterwards.
package quota

import "github.com/dmitrijs2005/memoria/internal/common"

// Decision is the outcome of CheckLimit.
type Decision struct {
	Allowed   bool
	Remaining int64
	NewTotal  int64
}

// CheckLimit allows a write of additional bytes iff used+additional <= limit.
// Remaining is the headroom before the write, never negative.
func CheckLimit(used, limit, additional int64) Decision {
	newTotal := used + additional
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   additional >= 0 && newTotal <= limit,
		Remaining: remaining,
		NewTotal:  newTotal,
	}
}

// Reclaim returns the usage after freeing r bytes, floored at zero.
func Reclaim(used, r int64) int64 {
	if used-r < 0 {
		return 0
	}
	return used - r
}

// SumSizes totals a batch so it can be checked once.
func SumSizes(sizes []int64) int64 {
	var total int64
	for _, s := range sizes {
		total += s
	}
	return total
}

// Exceeded builds the error surfaced for a rejected write.
func Exceeded(used, limit, attempted int64) error {
	return &common.QuotaError{Used: used, Limit: limit, Attempted: attempted}
}
