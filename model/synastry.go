package model

// --- SYNASTRY ---

// SynastryChart is one person's half of a synastry result.
type SynastryChart struct {
	Positions map[string]float64 `json:"positions"`
	Houses    []float64          `json:"houses"`
}

// SynastryAspect is an angular relation between two planets of different
// charts, within the orb the remote service applies.
type SynastryAspect struct {
	Planet1    string  `json:"planet1"`
	Planet2    string  `json:"planet2"`
	Aspect     string  `json:"aspect"`
	DegreeDiff float64 `json:"degree_diff"`
}

// SynastryResult is the full comparison between two natal charts.
type SynastryResult struct {
	Person1           SynastryChart             `json:"person1"`
	Person2           SynastryChart             `json:"person2"`
	HouseInteractions map[string]map[string]int `json:"house_interactions"`
	Aspects           []SynastryAspect          `json:"aspects"`
}

// --- FRIENDS ---

// Friend is a saved person whose birth data can prefill the second side of a
// synastry form.
type Friend struct {
	Name       string `json:"name"`
	BirthDate  string `json:"birthDate"`
	BirthTime  string `json:"birthTime"`
	BirthPlace string `json:"birthPlace"`
}
