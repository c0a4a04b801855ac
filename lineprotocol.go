package influx

import (
	"strconv"
	"strings"
)

// The line protocol defines three escape contexts. Measurement names escape
// commas and spaces; tag and field keys and tag values additionally escape
// '='; quoted string field values escape only the quote itself. A backslash
// escapes the backslash everywhere.
var (
	measurementEscaper = strings.NewReplacer(`\`, `\\`, `,`, `\,`, ` `, `\ `)
	keyEscaper         = strings.NewReplacer(`\`, `\\`, `,`, `\,`, `=`, `\=`, ` `, `\ `)
	stringFieldEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
)

// EncodeLine encodes one point as a single line of the line protocol:
//
//	name[,tagKey=tagValue]* fieldKey=fieldValue[,fieldKey=fieldValue]*[ unixNanos]
//
// Tags and fields are emitted in the order they were added. The timestamp is
// nanoseconds since the Unix epoch and is omitted when the point has none.
func EncodeLine(p *Point) string {
	var b strings.Builder
	b.WriteString(measurementEscaper.Replace(p.Name))

	for _, tag := range p.Tags {
		b.WriteByte(',')
		b.WriteString(keyEscaper.Replace(tag.Key))
		b.WriteByte('=')
		b.WriteString(keyEscaper.Replace(tag.Value))
	}

	b.WriteByte(' ')
	for i, field := range p.Fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(keyEscaper.Replace(field.Key))
		b.WriteByte('=')
		b.WriteString(field.Value.Encode())
	}

	if !p.Timestamp.IsZero() {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(p.Timestamp.UnixNano(), 10))
	}

	return b.String()
}

// EncodeLines encodes points joined by newlines, with no trailing newline.
// No points encode to the empty string.
func EncodeLines(points ...*Point) string {
	if len(points) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(EncodeLine(p))
	}
	return b.String()
}
