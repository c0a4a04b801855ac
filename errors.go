package influx

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error represents an error response from the server.
type Error struct {
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

// ParseError reports a query response that is not decodable JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a decodable response that violates the
// columnar invariant: every value row must be exactly as long as the column
// list of its series.
type MalformedResponseError struct {
	Series  string
	Row     int
	Columns int
	Values  int
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: series %q row %d has %d values for %d columns",
		e.Series, e.Row, e.Values, e.Columns)
}

// UnknownColumnError reports a row access by a column name the series does
// not have.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column: %q", e.Column)
}

// TimestampParseError reports a time column value that could not be parsed,
// even after truncating over-precise fractional seconds.
type TimestampParseError struct {
	Text string
	Err  error
}

func (e *TimestampParseError) Error() string {
	return fmt.Sprintf("parse timestamp %q: %s", e.Text, e.Err)
}

func (e *TimestampParseError) Unwrap() error {
	return e.Err
}

func checkStatusCode(resp *http.Response, expected int) error {
	if resp.StatusCode == expected {
		return nil
	}
	return statusError(resp)
}

func checkStatusCodeSuccess(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	return statusError(resp)
}

func statusError(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	msg := string(data)
	if err != nil {
		return fmt.Errorf("%d: %s", resp.StatusCode, msg)
	}
	var errResp Error
	if err := json.Unmarshal(data, &errResp); err != nil || errResp.Message == "" {
		return fmt.Errorf("%d: %s", resp.StatusCode, msg)
	}
	return &errResp
}

// sneakyBodyClose closes the body and ignores the error.
// This is useful to close the HTTP response body when we don't care about the error.
func sneakyBodyClose(body io.ReadCloser) {
	if body != nil {
		_ = body.Close()
	}
}
