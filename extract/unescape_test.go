package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
		ok    bool
	}{
		{"plain", `"hello",`, "hello", true},
		{"empty", `""`, "", true},
		{"simple escapes", `"a\"b\\c\/d"`, `a"b\c/d`, true},
		{"control escapes", `"\b\f\n\r\t"`, "\b\f\n\r\t", true},
		{"unicode two byte", `"caf\u00e9"`, "café", true},
		{"unicode upper hex", `"\u00C9"`, "É", true},
		{"unicode one byte", `"\u0041"`, "A", true},
		{"unicode three byte", `"\u20ac"`, "€", true},
		{"unicode nul", `"a\u0000b"`, "a\x00b", true},
		{"unknown escape passes through", `"\q"`, "q", true},
		{"stops at first quote", `"ab"cd"`, "ab", true},
		{"raw utf8 kept", `"héllo"`, "héllo", true},
		{"not quoted", `hello`, "", false},
		{"number", `42`, "", false},
		{"empty span", ``, "", false},
		{"unterminated", `"abc`, "", false},
		{"trailing backslash", `"abc\`, "", false},
		{"short unicode", `"\u00e"`, "", false},
		{"bad hex", `"\u00g9"`, "", false},
		{"lone high surrogate", `"\ud83d"`, "", false},
		{"lone low surrogate", `"\udc00"`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := String{}.Append(nil, []byte(tt.value))
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.want, string(out))
			}
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		`quote " and backslash \ and slash /`,
		"tabs\tnewlines\nreturns\r",
		"\b\f",
		"é and € and 中文",
		"<html>&amp;</html>",
		"\x01\x1f control",
	}

	for _, in := range inputs {
		encoded, err := json.Marshal(in)
		require.NoError(t, err)

		out, ok := String{}.Append(nil, encoded)
		require.True(t, ok, "encoded %s", encoded)
		require.Equal(t, in, string(out))
	}
}

func TestString_FailureLeavesPrefixForCaller(t *testing.T) {
	dst := []byte("keep")
	out, ok := String{}.Append(dst, []byte(`"abc`))
	require.False(t, ok)
	require.Equal(t, "keep", string(out[:len(dst)]))
}

func FuzzString(f *testing.F) {
	f.Add([]byte(`"aé\n"`))
	f.Add([]byte(`"\ud800"`))
	f.Add([]byte(`"abc`))

	f.Fuzz(func(t *testing.T, value []byte) {
		clipped := value[:len(value):len(value)]
		out, ok := String{}.Append(nil, clipped)
		if !ok {
			return
		}
		require.LessOrEqual(t, len(out), len(value)*2)
	})
}
