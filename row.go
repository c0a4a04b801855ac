package influx

import (
	"strings"
	"time"
)

// Row is a non-owning view over one row of a series plus the shared column
// names. It stays valid as long as its Response does.
type Row struct {
	columns []string
	values  []Value
}

// Rows returns views over all rows of the series.
func (s *Series) Rows() []Row {
	rows := make([]Row, len(s.Values))
	for i := range s.Values {
		rows[i] = Row{columns: s.Columns, values: s.Values[i]}
	}
	return rows
}

// Row returns a view over the i-th row of the series.
func (s *Series) Row(i int) Row {
	return Row{columns: s.Columns, values: s.Values[i]}
}

// Get returns the value of the named column. Accessing a column the series
// does not have yields an UnknownColumnError.
func (r Row) Get(column string) (Value, error) {
	for i, name := range r.columns {
		if name == column {
			return r.values[i], nil
		}
	}
	return Value{}, &UnknownColumnError{Column: column}
}

// GetDefault returns the value of the named column, or def if the series has
// no such column.
func (r Row) GetDefault(column string, def Value) Value {
	v, err := r.Get(column)
	if err != nil {
		return def
	}
	return v
}

// Time parses the row's "time" column. The derivation does not copy; it
// re-parses the cell's text on every call.
func (r Row) Time() (time.Time, error) {
	v, err := r.Get("time")
	if err != nil {
		return time.Time{}, err
	}
	// Queries issued with an epoch precision get integer timestamps back.
	if i, ok := v.Int(); ok {
		return time.Unix(0, i), nil
	}
	return parseTimestamp(v.Text())
}

// timestampRetries bounds the truncation fallback below.
const timestampRetries = 3

// parseTimestamp parses an RFC 3339 time column value. Some server versions
// render fractional seconds beyond nanosecond precision; when the first
// parse fails, the fraction is capped at nine digits and then shaved one
// digit per retry. If every attempt fails the original parse error is
// surfaced, wrapped in a TimestampParseError.
func parseTimestamp(text string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, text)
	if err == nil {
		return t, nil
	}
	orig := err

	candidate := capFraction(text, 9)
	for i := 0; i < timestampRetries; i++ {
		if t, err := time.Parse(time.RFC3339Nano, candidate); err == nil {
			return t, nil
		}
		next := capFraction(candidate, fractionLen(candidate)-1)
		if next == candidate {
			break
		}
		candidate = next
	}
	return time.Time{}, &TimestampParseError{Text: text, Err: orig}
}

// capFraction truncates the fractional-second digits of an RFC 3339 string
// to at most n digits, dropping the point entirely for n <= 0. Strings
// without a fraction pass through unchanged.
func capFraction(text string, n int) string {
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return text
	}
	end := dot + 1
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	digits := end - dot - 1
	if digits <= n {
		return text
	}
	if n <= 0 {
		return text[:dot] + text[end:]
	}
	return text[:dot+1+n] + text[end:]
}

func fractionLen(text string) int {
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return 0
	}
	n := 0
	for i := dot + 1; i < len(text) && text[i] >= '0' && text[i] <= '9'; i++ {
		n++
	}
	return n
}
