package usecase

import (
	"strings"
	"testing"

	"todoist-export/pkg/todoist"
)

func TestEncodeCSV(t *testing.T) {
	s := &todoist.Snapshot{
		Items: []*todoist.Item{{
			ID:        10,
			Content:   "buy milk",
			Labels:    []string{"urgent", "home"},
			ProjectID: float64(1),
		}},
		Projects: []todoist.Project{{ID: 1, Name: "Work"}},
		User:     &todoist.User{ID: 1},
	}

	resolveProjectNames(s)
	resolveUserNames(s)
	sanitizeForCSV(s.Items)

	data, err := encodeCSV(s.Items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}

	header := strings.Split(lines[0], ",")
	row := splitRow(lines[1])
	if len(row) != len(header) {
		t.Fatalf("row has %d fields, header has %d", len(row), len(header))
	}

	fields := map[string]string{}
	for i, col := range header {
		fields[col] = row[i]
	}

	if fields["content"] != `"buy milk"` {
		t.Errorf("content field: got %s", fields["content"])
	}
	if fields["labels"] != `"urgent,home"` {
		t.Errorf("labels field: got %s", fields["labels"])
	}
	if fields["project_id"] != "Work" {
		t.Errorf("project_id field: got %s", fields["project_id"])
	}
	if fields["id"] != "10" {
		t.Errorf("id field: got %s", fields["id"])
	}
}

// splitRow splits a CSV row on commas that are outside quote pairs.
func splitRow(line string) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			b.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, b.String())
	return fields
}

func TestFieldString(t *testing.T) {
	if got := fieldString(nil); got != "" {
		t.Errorf("nil must render empty, got %q", got)
	}
	if got := fieldString(float64(42)); got != "42" {
		t.Errorf("numeric ref must render without exponent, got %q", got)
	}
	if got := fieldString("Work"); got != "Work" {
		t.Errorf("resolved name: got %q", got)
	}
}
