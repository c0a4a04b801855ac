package influx

import (
	"bytes"
	"context"
	"fmt"
)

// Database is a handle to one database on the server. All methods are single
// blocking round-trips through the client's transport; nothing is retried or
// buffered here.
type Database struct {
	c *Client

	// Name is the name of the database.
	Name string
}

// CreateDatabase issues CREATE DATABASE for the given name and returns a
// handle bound to it. Creating a database that already exists succeeds on the
// server side, so calling this twice with the same name is safe.
func (c *Client) CreateDatabase(ctx context.Context, name string) (*Database, error) {
	db := c.Database(name)
	if err := c.Manage(ctx, "CREATE DATABASE "+db.Identifier()); err != nil {
		return nil, err
	}
	return db, nil
}

// Database binds a handle to an existing database without touching the
// server.
func (c *Client) Database(name string) *Database {
	return &Database{
		c:    c,
		Name: name,
	}
}

// Insert encodes the points into the line protocol and writes them in one
// request. Inserting zero points performs no request at all.
func (db *Database) Insert(ctx context.Context, points ...*Point) error {
	if len(points) == 0 {
		return nil
	}
	return db.c.transport.Write(ctx, db.c.config.Endpoint, db.Name, EncodeLines(points...))
}

// Query runs a query against this database and decodes the response.
func (db *Database) Query(ctx context.Context, query string) (*Response, error) {
	data, err := db.c.transport.Query(ctx, db.c.config.Endpoint, db.Name, query)
	if err != nil {
		return nil, err
	}
	return DecodeResponse(data)
}

// Manage runs a management command, such as CREATE RETENTION POLICY.
func (db *Database) Manage(ctx context.Context, command string) error {
	return db.c.Manage(ctx, command)
}

// Drop issues DROP DATABASE for this database.
func (db *Database) Drop(ctx context.Context) error {
	return db.c.Manage(ctx, "DROP DATABASE "+db.Identifier())
}

// Identifier returns the database name quoted for use in a management
// command. Plain names pass through unquoted.
func (db *Database) Identifier() string {
	return quoteIdent(db.Name)
}

// quoteIdent double-quotes an identifier unless it consists solely of
// letters, digits and underscores.
func quoteIdent(s string) string {
	if isPlainIdent(s) {
		return s
	}

	var b bytes.Buffer
	b.WriteByte('"')
	for _, c := range s {
		switch c {
		case '\t':
			b.WriteString("\\t")
		case '\n':
			b.WriteString("\\n")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			if c < 0x20 {
				b.WriteString(fmt.Sprintf("\\x%02x", c))
				break
			}
			b.WriteRune(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func isPlainIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		case c == '_':
		default:
			return false
		}
	}
	return true
}
