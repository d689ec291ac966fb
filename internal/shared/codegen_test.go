package shared

import (
	"strings"
	"testing"
)

func TestGenerateCode(t *testing.T) {
	t.Run("Length", func(t *testing.T) {
		for _, length := range []int{1, 4, 6, 12, 32} {
			code := GenerateCode(length)
			if len(code) != length {
				t.Errorf("expected code of length %d, got %d (%q)", length, len(code), code)
			}
		}
	})

	t.Run("Alphabet", func(t *testing.T) {
		code := GenerateCode(256)
		for _, c := range code {
			if !strings.ContainsRune(codeAlphabet, c) {
				t.Errorf("code contains character %q outside the alphabet", c)
			}
		}

		for _, forbidden := range "0l" {
			if strings.ContainsRune(codeAlphabet, forbidden) {
				t.Errorf("alphabet should not contain ambiguous character %q", forbidden)
			}
		}
		if len(codeAlphabet) != 34 {
			t.Errorf("expected 34 character alphabet, got %d", len(codeAlphabet))
		}
	})

	t.Run("NonPositiveLength", func(t *testing.T) {
		if code := GenerateCode(0); code != "" {
			t.Errorf("expected empty code for length 0, got %q", code)
		}
		if code := GenerateCode(-3); code != "" {
			t.Errorf("expected empty code for negative length, got %q", code)
		}
	})
}
