// Package filter narrows record lists with composable predicates and tallies
// the result.
//
// Criteria combine with logical AND across fields. A multi-value criterion on
// one field matches when any of its values matches. A criterion with nothing
// selected is a no-op, represented by a nil Predicate.
package filter

import (
	"slices"
	"strings"
)

// All is the selection value meaning "no restriction".
const All = "all"

// Predicate reports whether a record passes one criterion. A nil Predicate
// passes everything.
type Predicate[T any] func(T) bool

// Apply returns the records that satisfy every predicate, in source order.
// The result never aliases the input slice.
func Apply[T any](records []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}

	out := make([]T, 0, len(records))
next:
	for _, r := range records {
		for _, p := range active {
			if !p(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// In matches records whose field is one of values.
func In[T any, S ~string](get func(T) S, values []S) Predicate[T] {
	if len(values) == 0 {
		return nil
	}
	set := make(map[S]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(r T) bool {
		_, ok := set[get(r)]
		return ok
	}
}

// Equals matches records whose field equals value. "all" and "" disable it.
func Equals[T any, S ~string](get func(T) S, value S) Predicate[T] {
	if value == "" || string(value) == All {
		return nil
	}
	return func(r T) bool { return get(r) == value }
}

// Contains matches records where any of the fields contains needle.
// Matching is case-sensitive.
func Contains[T any](needle string, fields ...func(T) string) Predicate[T] {
	if needle == "" || len(fields) == 0 {
		return nil
	}
	return func(r T) bool {
		for _, f := range fields {
			if strings.Contains(f(r), needle) {
				return true
			}
		}
		return false
	}
}

// HasPrefix matches records whose field starts with prefix. An empty prefix
// disables it.
func HasPrefix[T any](get func(T) string, prefix string) Predicate[T] {
	if prefix == "" {
		return nil
	}
	return func(r T) bool { return strings.HasPrefix(get(r), prefix) }
}

// Member matches records whose key is present in set.
func Member[T any, K comparable](get func(T) K, set map[K]struct{}) Predicate[T] {
	return func(r T) bool {
		_, ok := set[get(r)]
		return ok
	}
}

// ParseList splits a comma-separated query value into its non-empty
// elements. Elements are not trimmed.
func ParseList[S ~string](raw string) []S {
	if raw == "" {
		return nil
	}
	var out []S
	for _, part := range strings.Split(raw, ",") {
		if part != "" {
			out = append(out, S(part))
		}
	}
	return out
}

// ExpandAll replaces a selection containing "all" with the full value set.
func ExpandAll[S ~string](selected []S, all []S) []S {
	if slices.Contains(selected, S(All)) {
		return slices.Clone(all)
	}
	return selected
}

// Unique returns the distinct keys of records in first-seen order.
func Unique[T any, K comparable](records []T, key func(T) K) []K {
	seen := make(map[K]struct{}, len(records))
	var out []K
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Set collects the keys of records into a lookup set.
func Set[T any, K comparable](records []T, key func(T) K) map[K]struct{} {
	set := make(map[K]struct{}, len(records))
	for _, r := range records {
		set[key(r)] = struct{}{}
	}
	return set
}
