package valuation

// AnalysisData is the structured valuation report produced by the provider.
// The JSON shape is consumed as-is by the frontend charts, so field names
// follow the payload rather than Go conventions.
type AnalysisData struct {
	ValueHistory     []ValuePoint   `json:"valueHistory"`
	TrafficData      []TrafficPoint `json:"trafficData"`
	SEOMetrics       []SEOMetric    `json:"seoMetrics"`
	KeywordData      []Keyword      `json:"keywordData,omitzero"`
	Features         []Feature      `json:"features,omitzero"`
	MarketScore      float64        `json:"marketScore,omitzero"`
	EstimatedGrowth  string         `json:"estimatedGrowth,omitzero"`
	SearchVolume     string         `json:"searchVolume,omitzero"`
	DomainAge        float64        `json:"domainAge,omitzero"`
	RegistrationYear int            `json:"registrationYear,omitzero"`
	Summary          string         `json:"summary,omitzero"`
	// EstimatedPrice is the provider's fair-market estimate in ETH. Zero when
	// the provider was told a price is already known.
	EstimatedPrice float64 `json:"estimatedPrice,omitzero"`
}

// ValuePoint is one month of historical value data.
type ValuePoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// TrafficPoint is one month of estimated visit counts.
type TrafficPoint struct {
	Month  string  `json:"month"`
	Visits float64 `json:"visits"`
}

// SEOMetric is a scored metric such as Domain Authority. Inverse marks
// metrics where lower is better (spam score).
type SEOMetric struct {
	Label   string  `json:"label"`
	Score   float64 `json:"score"`
	Max     float64 `json:"max"`
	Inverse bool    `json:"inverse,omitzero"`
}

// Keyword is a related search phrase with volume and ranking difficulty.
type Keyword struct {
	Keyword    string  `json:"keyword"`
	Volume     float64 `json:"volume"`
	Difficulty float64 `json:"difficulty"`
}

// Feature is a named desirability trait of the domain.
type Feature struct {
	Label     string `json:"label"`
	Available bool   `json:"available"`
}
