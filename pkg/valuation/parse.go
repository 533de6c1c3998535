package valuation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errMissingFields = errors.New("missing required fields in analysis response")

const (
	defaultSearchVolume  = "5K"
	defaultKeywordVolume = 1000
)

// parseAnalysis decodes the provider's completion text into AnalysisData.
// Providers occasionally wrap the JSON in markdown fences or prose despite
// the json_object response format, so the first balanced object span is
// extracted before unmarshalling.
func parseAnalysis(text string) (*AnalysisData, error) {
	jsonText := strings.TrimSpace(text)
	jsonText = strings.ReplaceAll(jsonText, "```json", "")
	jsonText = strings.ReplaceAll(jsonText, "```", "")

	if span, ok := extractObject(jsonText); ok {
		jsonText = span
	}

	var data AnalysisData
	if err := json.Unmarshal([]byte(jsonText), &data); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	if len(data.ValueHistory) == 0 || len(data.TrafficData) == 0 || len(data.SEOMetrics) == 0 {
		return nil, errMissingFields
	}

	applyDefaults(&data)
	return &data, nil
}

// extractObject returns the first balanced {...} span in s. String literals
// are honored so braces inside JSON strings do not unbalance the scan.
func extractObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

// applyDefaults patches values the provider is known to leave empty or
// zeroed, so downstream charts always have something to render.
func applyDefaults(data *AnalysisData) {
	switch data.SearchVolume {
	case "", "0", "0/mo":
		data.SearchVolume = defaultSearchVolume
	}

	for i := range data.KeywordData {
		if data.KeywordData[i].Volume == 0 {
			data.KeywordData[i].Volume = defaultKeywordVolume
		}
	}
}
