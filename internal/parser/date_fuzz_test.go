package parser

import (
	"testing"
)

// FuzzParseDate checks that ParseDate never panics and that every accepted
// date survives a format/parse round trip.
// Run with: go test ./internal/parser -fuzz=FuzzParseDate -fuzztime=30s
func FuzzParseDate(f *testing.F) {
	seeds := []string{
		"2024-01-28",
		"2024-1-5",
		"2024-02-29",
		"2023-02-29",
		"0000-01-01",
		"9999-12-31",
		" 2024-01-28",
		"2024-01-28\n",
		"28-01-2024",
		"2024/01/28",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		d, err := ParseDate(input)
		if err != nil {
			return
		}
		again, err := ParseDate(FormatDate(d))
		if err != nil {
			t.Fatalf("formatted date %q of input %q does not parse: %v", FormatDate(d), input, err)
		}
		if !again.Equal(d) {
			t.Fatalf("round trip of %q changed %v to %v", input, d, again)
		}
	})
}
