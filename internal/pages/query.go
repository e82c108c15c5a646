package pages

import (
	"net/url"
	"strings"
	"time"

	"lull-backoffice/internal/filter"
)

// Option is one entry of a select box.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func list[S ~string](q url.Values, key string) []S {
	return filter.ParseList[S](q.Get(key))
}

// selection reads a single-select value, mapping empty to "all".
func selection(q url.Values, key string) string {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return filter.All
	}
	return v
}

func month(t time.Time) string { return t.Format("2006-01") }

func day(t time.Time) string { return t.Format("2006-01-02") }

func stringOptions(values []string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: v})
	}
	return out
}
