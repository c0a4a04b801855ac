package influx

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEncodeLine(t *testing.T) {
	p := NewPoint("cpu").
		AddTag("tag1", "foo").
		AddField("temperature", Integer(42)).
		At(time.Unix(0, 1434055562000000000))
	require.Equal(t, "cpu,tag1=foo temperature=42i 1434055562000000000", EncodeLine(p))
}

func TestEncodeLineWithoutTimestamp(t *testing.T) {
	p := NewPoint("cpu").AddField("load", Float(0.5))
	require.Equal(t, "cpu load=0.5", EncodeLine(p))
}

func TestEncodeLineOrderIndependentEquivalence(t *testing.T) {
	p := NewPoint("cpu").
		AddTag("tag2", "foo").
		AddTag("tag1", "toto").
		AddField("temperature", Integer(53)).
		AddField("load", Integer(42))
	requireLineEquivalent(t, "cpu,tag1=toto,tag2=foo load=42i,temperature=53i", EncodeLine(p))
}

func TestEncodeLineEscaping(t *testing.T) {
	p := NewPoint(`cpu "load", test`).
		AddTag("tag 1", `to"to`).
		AddField("foo,=", String("=a,b"))
	require.Equal(t, `cpu\ "load"\,\ test,tag\ 1=to"to foo\,\=="=a,b"`, EncodeLine(p))
}

func TestEncodeLineBackslashes(t *testing.T) {
	p := NewPoint(`dir\name`).
		AddTag(`path`, `C:\temp`).
		AddField("note", String(`a\b`))
	require.Equal(t, `dir\\name,path=C:\\temp note="a\\b"`, EncodeLine(p))
}

func TestEncodeLines(t *testing.T) {
	require.Equal(t, "", EncodeLines())

	a := NewPoint("cpu").AddField("load", Integer(1))
	b := NewPoint("mem").AddField("used", Integer(2))
	require.Equal(t, "cpu load=1i\nmem used=2i", EncodeLines(a, b))
}

func TestEncodeLineFromMap(t *testing.T) {
	p := NewPointFromMap("cpu",
		map[string]string{"tag2": "foo", "tag1": "toto"},
		map[string]string{"temperature": "53", "load": "42"})
	// Map keys are sorted, so the output is deterministic.
	require.Equal(t, "cpu,tag1=toto,tag2=foo load=42i,temperature=53i", EncodeLine(p))
}

// requireLineEquivalent asserts protocol-level equality: same name, same tag
// set, same field set, same timestamp. Emit order never matters on the wire,
// so comparisons normalize instead of matching strings.
func requireLineEquivalent(t *testing.T, want, got string) {
	t.Helper()
	require.Equal(t, normalizeLine(t, want), normalizeLine(t, got))
}

func normalizeLine(t *testing.T, line string) string {
	t.Helper()

	sections := splitUnescaped(line, ' ')
	require.GreaterOrEqual(t, len(sections), 2, "line %q has no field section", line)
	require.LessOrEqual(t, len(sections), 3, "line %q has too many sections", line)

	nameAndTags := splitUnescaped(sections[0], ',')
	tags := nameAndTags[1:]
	sort.Strings(tags)

	fields := splitUnescaped(sections[1], ',')
	sort.Strings(fields)

	normalized := nameAndTags[0]
	if len(tags) > 0 {
		normalized += "," + strings.Join(tags, ",")
	}
	normalized += " " + strings.Join(fields, ",")
	if len(sections) == 3 {
		normalized += " " + sections[2]
	}
	return normalized
}

// splitUnescaped splits on sep, honoring backslash escapes.
func splitUnescaped(s string, sep byte) []string {
	var parts []string
	var cur strings.Builder
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			cur.WriteByte('\\')
			cur.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == sep:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if escaped {
		cur.WriteByte('\\')
	}
	parts = append(parts, cur.String())
	return parts
}
