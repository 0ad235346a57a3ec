package model

// --- CHART DATA ---

// PlanetPosition is a single entry of the remote planet-position map. The
// sign is never trusted from the wire: it is re-derived locally from the
// longitude after every successful fetch.
type PlanetPosition struct {
	Longitude      float64 `json:"longitude"`
	SpeedLongitude float64 `json:"speed_longitude"`
	Sign           string  `json:"sign,omitempty"`
	House          int     `json:"house,omitempty"`
}

// ChartResult is the natal chart as computed by the remote service, opaque
// beyond the planet-position map and optional interpretation text.
type ChartResult struct {
	PlanetPositions map[string]PlanetPosition `json:"planet_positions"`
	Interpretation  string                    `json:"interpretation,omitempty"`
}

// DeriveSigns fills the Sign of every position from its longitude.
func (c *ChartResult) DeriveSigns() {
	for planet, pos := range c.PlanetPositions {
		pos.Sign = SignForLongitude(pos.Longitude)
		c.PlanetPositions[planet] = pos
	}
}

// NatalChartResult is the shape of the older /natal-chart endpoint: bare
// ecliptic longitudes per planet plus house cusps and the resolved timezone.
type NatalChartResult struct {
	Positions map[string]float64 `json:"positions"`
	Houses    []float64          `json:"houses"`
	Timezone  string             `json:"timezone"`
}

// HoroscopeResult is the playful daily-horoscope reply.
type HoroscopeResult struct {
	Name       string `json:"name"`
	Birthdate  string `json:"birthdate"`
	ZodiacSign string `json:"zodiacSign"`
	Message    string `json:"message"`
}
