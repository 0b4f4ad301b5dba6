package canonical

import (
	"strings"
	"testing"

	"github.com/blockberries/icon-sdk-go/types"
)

// unescape reverses EscapeString.
func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Run with: go test -fuzz=FuzzEscapeString -fuzztime=60s ./canonical/...
func FuzzEscapeString(f *testing.F) {
	f.Add("")
	f.Add("plain")
	f.Add(`a.b\c{d}[e]`)
	f.Add(`\\\\`)
	f.Add("0xde0b6b3a7640000")
	f.Add("日本語.한국어")
	f.Add("\x00\xff")

	f.Fuzz(func(t *testing.T, s string) {
		escaped := EscapeString(s)

		if got := unescape(escaped); got != s {
			t.Fatalf("unescape(EscapeString(%q)) = %q", s, got)
		}

		// Every delimiter in the output is preceded by an escaping backslash.
		for i := 0; i < len(escaped); i++ {
			if escaped[i] == '\\' {
				i++
				continue
			}
			if strings.IndexByte(".{}[]", escaped[i]) >= 0 {
				t.Fatalf("unescaped %q at %d in %q", escaped[i], i, escaped)
			}
		}

		out, err := Encode(types.String(s))
		if err != nil {
			t.Fatal(err)
		}
		if string(out) != escaped {
			t.Fatalf("Encode(String) = %q, want %q", out, escaped)
		}
	})
}

func FuzzEncodeParams_Deterministic(f *testing.F) {
	f.Add("icx_sendTransaction", "to", "hx1", "value", "0x1")
	f.Add("icx_call", "", "", "data", "a.b")
	f.Add("m", "signature", "abc", "nid", "0x1")

	f.Fuzz(func(t *testing.T, method, k1, v1, k2, v2 string) {
		params := types.StringMap(map[string]string{k1: v1, k2: v2})

		first, err1 := EncodeParams(method, params)
		second, err2 := EncodeParams(method, params.Clone())
		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("inconsistent errors: %v vs %v", err1, err2)
		}
		if err1 != nil {
			if method != "" {
				t.Fatalf("unexpected error: %v", err1)
			}
			return
		}
		if string(first) != string(second) {
			t.Fatalf("non-deterministic pre-image: %q vs %q", first, second)
		}
		if !strings.HasPrefix(string(first), method+".") {
			t.Fatalf("pre-image %q does not start with method", first)
		}
	})
}
