package usecase

import (
	"strings"
	"testing"

	"todoist-export/pkg/todoist"
)

func TestSanitizeForCSV(t *testing.T) {
	t.Run("Labels Join Into One Quoted Field", func(t *testing.T) {
		items := []*todoist.Item{{Content: "buy milk", Labels: []string{"urgent", "home"}}}
		sanitizeForCSV(items)

		if items[0].Labels != `"urgent,home"` {
			t.Errorf("unexpected labels field: %v", items[0].Labels)
		}
	})

	t.Run("Empty Label Set Becomes Absent", func(t *testing.T) {
		for _, labels := range []any{nil, []string{}, []any{}} {
			items := []*todoist.Item{{Content: "x", Labels: labels}}
			sanitizeForCSV(items)
			if items[0].Labels != nil {
				t.Errorf("labels %#v: expected nil, got %v", labels, items[0].Labels)
			}
		}
	})

	t.Run("Labels Survive JSON Round Trip Shape", func(t *testing.T) {
		// After a JSON decode the slice arrives as []any.
		items := []*todoist.Item{{Content: "x", Labels: []any{"a", "b"}}}
		sanitizeForCSV(items)
		if items[0].Labels != `"a,b"` {
			t.Errorf("unexpected labels field: %v", items[0].Labels)
		}
	})

	t.Run("Content Wrapped In Exactly One Quote Pair", func(t *testing.T) {
		items := []*todoist.Item{{Content: "buy milk, eggs"}}
		sanitizeForCSV(items)

		content := items[0].Content
		if !strings.HasPrefix(content, `"`) || !strings.HasSuffix(content, `"`) {
			t.Fatalf("content not quoted: %q", content)
		}
		if strings.Count(content, `"`) != 2 {
			t.Errorf("expected exactly one quote pair, got %q", content)
		}
	})
}

func TestQuoteField(t *testing.T) {
	if got := quoteField("abc"); got != `"abc"` {
		t.Errorf("string: got %q", got)
	}
	if got := quoteField(42); got != `"42"` {
		t.Errorf("non-string input must stringify first: got %q", got)
	}
}
