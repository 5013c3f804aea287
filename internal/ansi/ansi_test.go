package ansi

import (
	"testing"

	"github.com/dl/powpow/internal/scan"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		spans []scan.Span
		want  string
	}{
		{
			name:  "single span",
			line:  "this is a string",
			spans: []scan.Span{{Start: 10, End: 16}},
			want:  "this is a " + Red + "string" + Reset,
		},
		{
			name:  "multiple spans",
			line:  "ababab",
			spans: []scan.Span{{Start: 0, End: 2}, {Start: 2, End: 4}, {Start: 4, End: 6}},
			want:  Red + "ab" + Reset + Red + "ab" + Reset + Red + "ab" + Reset,
		},
		{
			name:  "no spans",
			line:  "plain",
			spans: nil,
			want:  "plain",
		},
		{
			name:  "span past end of line clamped",
			line:  "abc",
			spans: []scan.Span{{Start: 2, End: 9}},
			want:  "ab" + Red + "c" + Reset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.line, tt.spans)
			if got != tt.want {
				t.Errorf("Highlight() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStrip_RoundTrip(t *testing.T) {
	line := "one two one two one\n"
	spans := scan.IndexAll(line, "one")

	highlighted := Highlight(line, spans)
	if highlighted == line {
		t.Fatal("expected markers to be inserted")
	}
	if got := Strip(highlighted); got != line {
		t.Errorf("Strip(Highlight()) = %q, want %q", got, line)
	}
}
