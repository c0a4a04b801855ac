package influx

import (
	"sort"
	"time"
)

// Tag is an indexed key/value label attached to a point.
type Tag struct {
	Key   string
	Value string
}

// Field is a named, typed value recorded by a point.
type Field struct {
	Key   string
	Value Value
}

// Point is a single measurement sample to write.
//
// Tags and fields keep their insertion order; the encoder applies no
// canonical sort and the server does not require one. A point with a zero
// Timestamp carries no timestamp on the wire and the server assigns one.
//
// A well-formed point has a non-empty name and at least one field. The
// encoder does not enforce this; validity is the caller's responsibility.
type Point struct {
	Name      string
	Tags      []Tag
	Fields    []Field
	Timestamp time.Time
}

// NewPoint creates a point with the given measurement name.
func NewPoint(name string) *Point {
	return &Point{Name: name}
}

// NewPointFromMap builds a point from plain string tag and field maps,
// guessing each field's type from its text (see Raw). Keys are emitted in
// sorted order since Go maps carry none.
//
// This is the legacy untyped construction path. Prefer NewPoint with typed
// AddField values.
func NewPointFromMap(name string, tags map[string]string, fields map[string]string) *Point {
	p := NewPoint(name)
	for _, k := range sortedKeys(tags) {
		p.AddTag(k, tags[k])
	}
	for _, k := range sortedKeys(fields) {
		p.AddField(k, Raw(fields[k]))
	}
	return p
}

// AddTag appends a tag and returns the point for chaining.
func (p *Point) AddTag(key, value string) *Point {
	p.Tags = append(p.Tags, Tag{Key: key, Value: value})
	return p
}

// AddField appends a field and returns the point for chaining.
func (p *Point) AddField(key string, value Value) *Point {
	p.Fields = append(p.Fields, Field{Key: key, Value: value})
	return p
}

// At sets the point's timestamp and returns the point for chaining.
func (p *Point) At(t time.Time) *Point {
	p.Timestamp = t
	return p
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
