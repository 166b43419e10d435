// Package report provides the typed aggregation primitives shared by the
// report generators: calendar bucketing, group-by with stable partition
// order, and foreign-key join indexes (scalar and key-list).
package report

import "time"

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// DayKey buckets a timestamp into its UTC calendar day ("YYYY-MM-DD")
func DayKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// MonthKey buckets a timestamp into its UTC calendar month ("YYYY-MM")
func MonthKey(t time.Time) string {
	return t.UTC().Format(monthLayout)
}

// GroupBy partitions items by key. Keys come back in first-seen order and
// each partition keeps the arrival order of its items, so order-sensitive
// accumulators (first, push) observe source order.
func GroupBy[T any, K comparable](items []T, key func(T) K) ([]K, map[K][]T) {
	keys := make([]K, 0)
	groups := make(map[K][]T)
	for _, it := range items {
		k := key(it)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], it)
	}
	return keys, groups
}

// IndexBy builds a one-to-one join index. The first record wins on duplicate
// keys; lookups that miss simply report !ok.
func IndexBy[T any, K comparable](items []T, key func(T) K) map[K]T {
	idx := make(map[K]T, len(items))
	for _, it := range items {
		k := key(it)
		if _, ok := idx[k]; !ok {
			idx[k] = it
		}
	}
	return idx
}

// IndexGroupBy builds a one-to-many join index keyed by a scalar foreign key
func IndexGroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	idx := make(map[K][]T)
	for _, it := range items {
		idx[key(it)] = append(idx[key(it)], it)
	}
	return idx
}

// CollectByKeys resolves an ordered foreign-key list against an index,
// preserving list order. Dangling references are skipped.
func CollectByKeys[T any, K comparable](keys []K, idx map[K]T) []T {
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		if it, ok := idx[k]; ok {
			out = append(out, it)
		}
	}
	return out
}
