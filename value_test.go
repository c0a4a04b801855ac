package influx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeTypedValues(t *testing.T) {
	require.Equal(t, "16i", Integer(16).Encode())
	require.Equal(t, "-16i", Integer(-16).Encode())
	require.Equal(t, "16", Float(16.0).Encode())
	require.Equal(t, "16.5", Float(16.5).Encode())
	require.Equal(t, "true", Boolean(true).Encode())
	require.Equal(t, "false", Boolean(false).Encode())
	require.Equal(t, `"bar"`, String("bar").Encode())
}

func TestEncodeStringEscapes(t *testing.T) {
	require.Equal(t, `"say \"hi\""`, String(`say "hi"`).Encode())
	require.Equal(t, `"back\\slash"`, String(`back\slash`).Encode())
	// Commas, spaces and equals signs are legal inside quoted strings.
	require.Equal(t, `"a,b= c"`, String("a,b= c").Encode())
}

func TestEncodeRawValues(t *testing.T) {
	// Raw text keeps the caller's formatting.
	require.Equal(t, "16.0", Raw("16.0").Encode())
	require.Equal(t, "TRUE", Raw("TRUE").Encode())
	require.Equal(t, "16i", Raw("16i").Encode())

	// Integer-typed raw text gets the suffix appended, once.
	require.Equal(t, "16i", Raw("16").Encode())
	require.Equal(t, "-3i", RawTyped("-3", IntegerType).Encode())
	require.Equal(t, "16i", RawTyped("16i", IntegerType).Encode())
}

func TestExplicitTypeWinsOverGuess(t *testing.T) {
	// "42" would be guessed as an integer; the declared type is kept and the
	// text emitted verbatim.
	v := RawTyped("42", StringType)
	require.Equal(t, StringType, v.Type())
	require.Equal(t, "42", v.Encode())
}

func TestGuessType(t *testing.T) {
	for _, text := range []string{"t", "T", "true", "True", "TRUE", "f", "F", "false", "False", "FALSE"} {
		require.Equal(t, BooleanType, guessType(text), text)
	}

	require.Equal(t, IntegerType, guessType("0"))
	require.Equal(t, IntegerType, guessType("42"))
	require.Equal(t, IntegerType, guessType("-42"))
	require.Equal(t, IntegerType, guessType("42i"))

	require.Equal(t, FloatType, guessType("4.2"))
	require.Equal(t, FloatType, guessType("-4.2"))
	require.Equal(t, FloatType, guessType("+4.2"))
	require.Equal(t, FloatType, guessType("4e2"))
	require.Equal(t, FloatType, guessType("4.2e-2"))
	require.Equal(t, FloatType, guessType("4.2E+10"))

	require.Equal(t, StringType, guessType(""))
	require.Equal(t, StringType, guessType("-"))
	require.Equal(t, StringType, guessType("i"))
	require.Equal(t, StringType, guessType("truthy"))
	require.Equal(t, StringType, guessType("4.2.1"))
	require.Equal(t, StringType, guessType("4.2e"))
	require.Equal(t, StringType, guessType("4.2e+"))
	require.Equal(t, StringType, guessType("4-2"))
	require.Equal(t, StringType, guessType("e42"))
	require.Equal(t, StringType, guessType("bar"))
}

func TestValueAccessors(t *testing.T) {
	i, ok := Integer(7).Int()
	require.True(t, ok)
	require.Equal(t, int64(7), i)

	f, ok := Float(2.5).Float64()
	require.True(t, ok)
	require.Equal(t, 2.5, f)

	b, ok := Boolean(true).Bool()
	require.True(t, ok)
	require.True(t, b)

	require.Equal(t, "bar", String("bar").Text())

	_, ok = String("bar").Int()
	require.False(t, ok)
	require.True(t, Null().IsNull())
	require.False(t, Integer(7).IsNull())
}

func TestRawValueAccessors(t *testing.T) {
	i, ok := Raw("42i").Int()
	require.True(t, ok)
	require.Equal(t, int64(42), i)

	f, ok := Raw("4.25").Float64()
	require.True(t, ok)
	require.Equal(t, 4.25, f)

	b, ok := Raw("F").Bool()
	require.True(t, ok)
	require.False(t, b)
}
