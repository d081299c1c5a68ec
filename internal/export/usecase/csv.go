package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"todoist-export/pkg/todoist"
)

// csvColumns is the fixed column order of the CSV export.
var csvColumns = []string{
	"id",
	"content",
	"project_id",
	"labels",
	"priority",
	"due_date",
	"checked",
	"date_added",
	"date_completed",
	"assigned_by_uid",
	"added_by_uid",
	"responsible_uid",
}

// encodeCSV renders one row per item. The sanitizer is the quoting
// layer: content and labels arrive pre-wrapped in quote characters, so
// rows are a plain comma join — a quoting encoder on top would double
// the embedded quotes and corrupt the fields.
func encodeCSV(items []*todoist.Item) ([]byte, error) {
	var b strings.Builder
	b.WriteString(strings.Join(csvColumns, ","))
	b.WriteByte('\n')

	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("nil item at row %d", i)
		}
		b.WriteString(strings.Join(rowFields(item), ","))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func rowFields(item *todoist.Item) []string {
	dueDate := ""
	if item.Due != nil {
		dueDate = item.Due.Date
	}

	return []string{
		strconv.FormatInt(item.ID, 10),
		item.Content,
		fieldString(item.ProjectID),
		fieldString(item.Labels),
		strconv.Itoa(item.Priority),
		dueDate,
		strconv.FormatBool(item.Checked),
		item.DateAdded,
		item.DateCompleted,
		fieldString(item.AssignedByUID),
		fieldString(item.AddedByUID),
		fieldString(item.ResponsibleUID),
	}
}

// fieldString renders a reference or labels field; nil is the explicit
// absence marker and renders empty.
func fieldString(v any) string {
	if v == nil {
		return ""
	}
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return fmt.Sprint(v)
}
