package roster

import (
	"testing"
)

func TestLetterFor(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLetter string
		wantOK     bool
	}{
		{
			name:       "uppercase first character",
			input:      "Aang",
			wantLetter: "A",
			wantOK:     true,
		},
		{
			name:       "lowercase folded to uppercase",
			input:      "bob",
			wantLetter: "B",
			wantOK:     true,
		},
		{
			name:       "leading digits skipped",
			input:      "100 Goblins",
			wantLetter: "G",
			wantOK:     true,
		},
		{
			name:       "leading punctuation skipped",
			input:      "!!warning sign",
			wantLetter: "W",
			wantOK:     true,
		},
		{
			name:   "leading non-ascii letter has no bucket",
			input:  "¡Élan!",
			wantOK: false,
		},
		{
			name:   "accented first letter stops the scan",
			input:  "Émile",
			wantOK: false,
		},
		{
			name:   "digits only",
			input:  "12345",
			wantOK: false,
		},
		{
			name:   "empty string",
			input:  "",
			wantOK: false,
		},
		{
			name:       "whitespace then letter",
			input:      "   zuko",
			wantLetter: "Z",
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			letter, ok := LetterFor(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("LetterFor(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && letter != tt.wantLetter {
				t.Errorf("LetterFor(%q) = %q, want %q", tt.input, letter, tt.wantLetter)
			}
		})
	}
}

func TestAllLetters(t *testing.T) {
	letters := AllLetters()

	if len(letters) != 26 {
		t.Fatalf("AllLetters() returned %d letters, want 26", len(letters))
	}
	if letters[0] != "A" || letters[25] != "Z" {
		t.Errorf("AllLetters() range = %q..%q, want A..Z", letters[0], letters[25])
	}
	for i := 1; i < len(letters); i++ {
		if letters[i-1] >= letters[i] {
			t.Errorf("AllLetters() not in order at index %d: %q >= %q", i, letters[i-1], letters[i])
		}
	}
}
