package contract

import (
	"strings"
	"testing"
)

// FuzzParseBoolString fuzzes ParseBoolString and checks it agrees with the accepted spellings.
func FuzzParseBoolString(f *testing.F) {
	for _, seed := range []string{"yes", "no", "TRUE", "0", "", "auto", "  yes"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		got, err := ParseBoolString(s)
		switch strings.ToLower(s) {
		case "yes", "true", "1":
			if err != nil || !got {
				t.Fatalf("%q should parse as true", s)
			}
		case "no", "false", "0":
			if err != nil || got {
				t.Fatalf("%q should parse as false", s)
			}
		default:
			if err == nil {
				t.Fatalf("%q should be rejected", s)
			}
		}
	})
}
