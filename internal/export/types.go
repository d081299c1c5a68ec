package export

import "strings"

// Format is the output format of an export. The "include archived"
// dimension is a separate boolean on Input — it is never encoded into
// the format value.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Valid reports whether f is a supported export format.
func (f Format) Valid() bool {
	return f == FormatJSON || f == FormatCSV
}

// ParseFormat normalizes a raw format query value. The legacy
// "<format>_all" spelling still arrives from old links; the suffix is
// parsed off into the archived flag here and never stored in the
// format value. An empty raw value defaults to JSON.
func ParseFormat(raw string, archived bool) (Format, bool, error) {
	if trimmed, ok := strings.CutSuffix(raw, "_all"); ok {
		raw = trimmed
		archived = true
	}
	if raw == "" {
		return FormatJSON, archived, nil
	}

	f := Format(raw)
	if !f.Valid() {
		return "", false, ErrUnsupportedFormat
	}
	return f, archived, nil
}

// Input describes one export request.
type Input struct {
	Token           string
	Format          Format
	IncludeArchived bool
}

// Output is the finished export artifact, ready to stream.
type Output struct {
	Filename    string
	ContentType string
	Data        []byte
}
