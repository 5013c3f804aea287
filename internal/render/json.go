package render

import (
	"encoding/json"
	"strings"
)

// JSONFormatter formats results as JSON Lines (one object per matched line).
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// jsonLine is the JSON serialization format for a matched line.
type jsonLine struct {
	Type    string    `json:"type"`
	Source  string    `json:"source,omitempty"`
	LineNum int       `json:"line_number"`
	Text    string    `json:"text"`
	Matches []jsonPos `json:"matches,omitempty"`
}

type jsonPos struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (f *JSONFormatter) Format(buf []byte, result Result, multiSource bool) []byte {
	for _, lm := range result.Res.LineMatches() {
		jl := jsonLine{
			Type:    "match",
			Source:  result.Source,
			LineNum: lm.Index + 1,
			Text:    strings.TrimSuffix(lm.Line, "\n"),
		}
		if len(lm.Spans) > 0 {
			jl.Matches = make([]jsonPos, len(lm.Spans))
			for i, sp := range lm.Spans {
				jl.Matches[i] = jsonPos{Start: sp.Start, End: sp.End}
			}
		}
		data, _ := json.Marshal(jl)
		buf = append(buf, data...)
		buf = append(buf, '\n')
	}
	return buf
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
