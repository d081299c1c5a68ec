package usecase

import (
	"fmt"
	"strings"

	"todoist-export/pkg/todoist"
)

// sanitizeForCSV re-encodes the fields that would otherwise corrupt a
// comma-separated row. Labels collapse into one quoted comma-joined
// string (or nil when the set is empty); content is always wrapped in
// exactly one pair of quote characters. Must run after both resolvers
// and immediately before row emission.
func sanitizeForCSV(items []*todoist.Item) []*todoist.Item {
	for _, item := range items {
		labels := labelStrings(item.Labels)
		if len(labels) == 0 {
			item.Labels = nil
		} else {
			item.Labels = quoteField(strings.Join(labels, ","))
		}

		item.Content = quoteField(item.Content)
	}
	return items
}

// quoteField wraps a value in one pair of quote characters, converting
// non-string values to their string form first.
func quoteField(v any) string {
	return `"` + fmt.Sprint(v) + `"`
}

// labelStrings normalizes the labels field, which holds []string when
// built in-process and []any after a JSON round trip.
func labelStrings(v any) []string {
	switch labels := v.(type) {
	case []string:
		return labels
	case []any:
		out := make([]string, 0, len(labels))
		for _, l := range labels {
			out = append(out, fmt.Sprint(l))
		}
		return out
	default:
		return nil
	}
}
