// Package dates normalizes the date encodings remote APIs send into
// time.Time values, and renders them back out in a single canonical format.
package dates

import (
	"fmt"
	"regexp"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
)

// DefaultFormat is the canonical wire format, a Zulu timestamp.
const DefaultFormat = "2006-01-02T15:04:05Z"

var (
	dateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeOnly = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
	zulu     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)
)

// Normalizer parses the wire date encodings a remote API is known to emit
// and serializes every date through one configured format. Serialization
// always uses the configured format, so parse followed by serialize only
// reproduces the input string when the input matched that format.
type Normalizer struct {
	format string
}

// New returns a Normalizer serializing with the given format, or
// DefaultFormat when format is empty.
func New(format string) *Normalizer {
	if format == "" {
		format = DefaultFormat
	}
	return &Normalizer{format: format}
}

// Format returns the configured serialization format.
func (n *Normalizer) Format() string {
	return n.format
}

// SetFormat replaces the serialization format. An empty format restores
// DefaultFormat.
func (n *Normalizer) SetFormat(format string) {
	if format == "" {
		format = DefaultFormat
	}
	n.format = format
}

// Parse interprets raw as a date. Rules apply in order, first match wins:
// time.Time values pass through, numeric values are Unix seconds, then the
// exact shapes "2006-01-02", "15:04:05" and "2006-01-02T15:04:05Z", then the
// configured format, and finally a heuristic parse of anything else.
func (n *Normalizer) Parse(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return time.Unix(cast.ToInt64(v), 0).UTC(), nil
	}

	s, ok := raw.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("cannot parse %T as a date", raw)
	}

	switch {
	case dateOnly.MatchString(s):
		return time.Parse("2006-01-02", s)
	case timeOnly.MatchString(s):
		return time.Parse("15:04:05", s)
	case zulu.MatchString(s):
		return time.Parse("2006-01-02T15:04:05Z", s)
	}

	if t, err := time.Parse(n.format, s); err == nil {
		return t, nil
	}
	return dateparse.ParseAny(s)
}

// Serialize renders t in the configured format.
func (n *Normalizer) Serialize(t time.Time) string {
	return t.Format(n.format)
}

// Timestamp parses raw and returns it as Unix seconds.
func (n *Normalizer) Timestamp(raw any) (int64, error) {
	t, err := n.Parse(raw)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}
