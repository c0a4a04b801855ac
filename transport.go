package influx

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/klauspost/compress/gzip"
)

// Transport performs the three raw HTTP exchanges the client needs. The
// default implementation talks to the server's HTTP API; tests inject an
// in-memory double instead.
//
// A Transport must be safe for concurrent use if the Client is shared.
type Transport interface {
	// Manage runs a management command, such as CREATE DATABASE. The server
	// must answer with status 200 exactly.
	Manage(ctx context.Context, endpoint, command string) error
	// Query runs a query against the named database and returns the raw
	// response body. Any 2xx status is a success.
	Query(ctx context.Context, endpoint, db, query string) ([]byte, error)
	// Write sends line-protocol text to the named database. Any 2xx status
	// is a success.
	Write(ctx context.Context, endpoint, db, lines string) error
}

type httpTransport struct {
	http HTTPClient
}

// NewHTTPTransport creates the default Transport on top of the internal HTTP
// client.
func NewHTTPTransport() Transport {
	return &httpTransport{
		http: NewHTTPClient(),
	}
}

var _ Transport = (*httpTransport)(nil)

func (t *httpTransport) Manage(ctx context.Context, endpoint, command string) error {
	u, err := url.Parse(endpoint + "/query")
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("q", command)
	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.http.Post(ctx, u, header, []byte(form.Encode()))
	if err != nil {
		return err
	}
	defer sneakyBodyClose(resp.Body)
	return checkStatusCode(resp, 200)
}

func (t *httpTransport) Query(ctx context.Context, endpoint, db, query string) ([]byte, error) {
	u, err := url.Parse(endpoint + "/query")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("db", db)
	q.Set("q", query)
	u.RawQuery = q.Encode()

	resp, err := t.http.Get(ctx, u)
	if err != nil {
		return nil, err
	}
	defer sneakyBodyClose(resp.Body)
	if err := checkStatusCodeSuccess(resp); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

func (t *httpTransport) Write(ctx context.Context, endpoint, db, lines string) error {
	u, err := url.Parse(endpoint + "/write")
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set("db", db)
	u.RawQuery = q.Encode()

	body, err := gzipBytes(lines)
	if err != nil {
		return err
	}
	header := http.Header{}
	header.Set("Content-Type", "text/plain; charset=utf-8")
	header.Set("Content-Encoding", "gzip")

	resp, err := t.http.Post(ctx, u, header, body)
	if err != nil {
		return err
	}
	defer sneakyBodyClose(resp.Body)
	return checkStatusCodeSuccess(resp)
}

// gzipBytes compresses the write body. The server transparently decodes
// gzip-encoded line protocol, which matters for the repetitive tag sets
// typical of this format.
func gzipBytes(s string) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
