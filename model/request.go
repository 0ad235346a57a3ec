package model

// Request payloads for the remote astrology service. Builders are
// deterministic: the same BirthInput always composes byte-identical JSON, and
// no field is defaulted beyond its zero value.

// BirthChartRequest is the body of POST /api/calculate-birth-chart.
type BirthChartRequest struct {
	BirthDate  string `json:"birth_date"`
	BirthTime  string `json:"birth_time"`
	BirthPlace string `json:"birth_place"`
}

// NatalChartRequest is the body of POST /natal-chart, which takes a single
// combined date/time field.
type NatalChartRequest struct {
	BirthDate string `json:"birth_date"`
	Location  string `json:"location"`
}

// SynastryPerson is one side of a synastry comparison.
type SynastryPerson struct {
	Name      string `json:"name,omitempty"`
	BirthDate string `json:"birthDate"`
	BirthTime string `json:"birthTime"`
	Location  string `json:"location"`
}

// SynastryRequest is the body of POST /api/calculate-synastry.
type SynastryRequest struct {
	Person1 SynastryPerson `json:"person1"`
	Person2 SynastryPerson `json:"person2"`
}

// HoroscopeRequest is the body of POST /api/horoscope.
type HoroscopeRequest struct {
	Name      string `json:"name"`
	Birthdate string `json:"birthdate"`
}

// ChatRequest is the body of POST /api/chat/message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ToBirthChartRequest composes the split-field payload, day/month and
// hour/minute zero-padded to two digits.
func (in *BirthInput) ToBirthChartRequest() BirthChartRequest {
	return BirthChartRequest{
		BirthDate:  in.DateString(),
		BirthTime:  in.TimeString(),
		BirthPlace: in.Place,
	}
}

// ToNatalChartRequest composes the combined-field payload.
func (in *BirthInput) ToNatalChartRequest() NatalChartRequest {
	return NatalChartRequest{
		BirthDate: in.Timestamp(),
		Location:  in.Place,
	}
}

// ToSynastryPerson composes one side of a synastry payload.
func (in *BirthInput) ToSynastryPerson() SynastryPerson {
	return SynastryPerson{
		Name:      in.Name,
		BirthDate: in.ISODateString(),
		BirthTime: in.TimeString(),
		Location:  in.Place,
	}
}
