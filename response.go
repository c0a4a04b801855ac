package influx

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Response is the decoded form of a query response. It owns the full
// Result/Series tree; rows handed out by Series are views into it.
type Response struct {
	// Results holds one entry per statement in the query.
	Results []*Result
	// Err is the server's top-level error message, if any.
	Err string
}

// Result is the outcome of a single statement.
type Result struct {
	// StatementID is the statement's position in the query.
	StatementID int
	// Series are the matched series. Empty when the statement matched
	// nothing; an empty-database query returns only the statement ID.
	Series []*Series
	// Err is the server's error message for this statement, if any.
	Err string
}

// Series is a named columnar result set. Column 0 is conventionally "time".
// Every row of Values is exactly as long as Columns.
type Series struct {
	Name    string
	Columns []string
	Values  [][]Value
}

type jsonResponse struct {
	Results []jsonResult `json:"results"`
	Err     string       `json:"error"`
}

type jsonResult struct {
	StatementID int          `json:"statement_id"`
	Series      []jsonSeries `json:"series"`
	Err         string       `json:"error"`
}

type jsonSeries struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Values  [][]any  `json:"values"`
}

// DecodeResponse parses the raw JSON body of a query response.
//
// Cell types are determined per value from the JSON representation, never
// per column: the server renders what is logically one column as integers,
// floats or strings depending on the data, so the decoder must not assume a
// fixed type for a position. Integer-shaped numbers become IntegerType,
// numbers with a fraction or exponent become FloatType, and an
// integer-shaped number too large for int64 falls back to FloatType.
//
// Malformed JSON yields a ParseError. A value row whose length differs from
// the column list yields a MalformedResponseError; nothing is padded or
// truncated.
func DecodeResponse(data []byte) (*Response, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw jsonResponse
	if err := dec.Decode(&raw); err != nil {
		return nil, &ParseError{Err: err}
	}

	resp := &Response{Err: raw.Err}
	for _, r := range raw.Results {
		result := &Result{
			StatementID: r.StatementID,
			Err:         r.Err,
		}
		for _, s := range r.Series {
			series, err := decodeSeries(s)
			if err != nil {
				return nil, err
			}
			result.Series = append(result.Series, series)
		}
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}

func decodeSeries(s jsonSeries) (*Series, error) {
	series := &Series{
		Name:    s.Name,
		Columns: s.Columns,
	}
	for i, row := range s.Values {
		if len(row) != len(s.Columns) {
			return nil, &MalformedResponseError{
				Series:  s.Name,
				Row:     i,
				Columns: len(s.Columns),
				Values:  len(row),
			}
		}
		values := make([]Value, len(row))
		for j, cell := range row {
			values[j] = decodeCell(cell)
		}
		series.Values = append(series.Values, values)
	}
	return series, nil
}

func decodeCell(cell any) Value {
	switch v := cell.(type) {
	case nil:
		return Null()
	case bool:
		return Boolean(v)
	case string:
		return String(v)
	case json.Number:
		return decodeNumber(v)
	default:
		// Nested arrays or objects never appear in value grids; keep the
		// textual form rather than fail the whole response.
		data, err := json.Marshal(v)
		if err != nil {
			return Null()
		}
		return String(string(data))
	}
}

func decodeNumber(n json.Number) Value {
	text := n.String()
	if !strings.ContainsAny(text, ".eE") {
		if i, err := n.Int64(); err == nil {
			return Integer(i)
		}
	}
	f, err := n.Float64()
	if err != nil {
		return String(text)
	}
	return Float(f)
}
