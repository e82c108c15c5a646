package filter

import "github.com/shopspring/decimal"

// CountBy tallies records per key. Every key in known is present in the
// result, with zero when no record carries it.
func CountBy[T any, K comparable](records []T, key func(T) K, known ...K) map[K]int {
	counts := make(map[K]int, len(known))
	for _, k := range known {
		counts[k] = 0
	}
	for _, r := range records {
		counts[key(r)]++
	}
	return counts
}

// Count returns how many records satisfy pred.
func Count[T any](records []T, pred Predicate[T]) int {
	if pred == nil {
		return len(records)
	}
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// Sum totals a decimal field over records.
func Sum[T any](records []T, get func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(get(r))
	}
	return total
}
