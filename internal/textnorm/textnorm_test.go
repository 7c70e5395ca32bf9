package textnorm

import "testing"

func TestNormalizeFoldsAccentsAndCase(t *testing.T) {
	cases := map[string]string{
		"México":        "mexico",
		"MEXICO":        "mexico",
		"  Bogotá ":     "bogota",
		"São Paulo":     "sao paulo",
		"Zürich":        "zurich",
		"remote":        "remote",
		"":              "",
		"   ":           "",
		"Español (ES)":  "espanol (es)",
		"CDMX, México":  "cdmx, mexico",
	}

	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"México", "  SÃO PAULO  ", "already normal", "Ciudad de México, MX"}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
