package model

import "github.com/delta10/signalen-console/util"

// MatchesBucket reports whether the signal's raw state code falls in the
// given UI filter bucket. An empty bucket matches everything; an unknown
// bucket matches nothing.
func (s Signal) MatchesBucket(bucket string) bool {
	if bucket == "" {
		return true
	}
	states, ok := StatusFilterBuckets[bucket]
	if !ok {
		return false
	}
	for _, state := range states {
		if s.Status.State == state {
			return true
		}
	}
	return false
}

// MatchesQuery does a case-insensitive substring match over the fields
// staff search on: display id, title text and address.
func (s Signal) MatchesQuery(q string) bool {
	if q == "" {
		return true
	}
	for _, field := range []string{s.IDDisplay, s.Text, s.Location.AddressText} {
		if util.ContainsFold(field, q) {
			return true
		}
	}
	return false
}

// FilterSignals applies the status bucket and free-text filters the list
// and map views share.
func FilterSignals(signals []Signal, bucket, q string) []Signal {
	filtered := make([]Signal, 0, len(signals))
	for _, s := range signals {
		if s.MatchesBucket(bucket) && s.MatchesQuery(q) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
