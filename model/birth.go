package model

import "fmt"

// --- BIRTH DATA ---

// BirthInputRaw carries the form fields exactly as the user typed them.
// @Description Raw birth form fields prior to validation
type BirthInputRaw struct {
	Name  string `json:"name" example:"Ayşe"`
	Date  string `json:"birth_date" example:"15.05.1995"`
	Time  string `json:"birth_time" example:"14:30"`
	Place string `json:"birth_place" example:"Istanbul, Turkey"`
}

// BirthInput is a fully validated birth record. Instances only exist on the
// far side of the validator: either every field passed its rule or the value
// was never constructed.
type BirthInput struct {
	Name   string
	Day    int
	Month  int
	Year   int
	Hour   int
	Minute int
	Place  string
}

// DateString renders the date as the remote chart endpoint expects it,
// zero-padded DD.MM.YYYY.
func (in *BirthInput) DateString() string {
	return fmt.Sprintf("%02d.%02d.%04d", in.Day, in.Month, in.Year)
}

// ISODateString renders the date as YYYY-MM-DD.
func (in *BirthInput) ISODateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", in.Year, in.Month, in.Day)
}

// TimeString renders the wall-clock time as zero-padded HH:MM.
func (in *BirthInput) TimeString() string {
	return fmt.Sprintf("%02d:%02d", in.Hour, in.Minute)
}

// Timestamp renders the combined field some endpoints expect,
// "YYYY-MM-DD HH:MM:00" with seconds fixed at zero.
func (in *BirthInput) Timestamp() string {
	return in.ISODateString() + " " + in.TimeString() + ":00"
}

// BirthProfile is the persisted snapshot of the last submitted birth data,
// kept alongside the chart so other views can prefill forms without
// re-asking.
type BirthProfile struct {
	Name       string `json:"name,omitempty"`
	BirthDate  string `json:"birthDate"`
	BirthTime  string `json:"birthTime"`
	BirthPlace string `json:"birthPlace"`
}

// ToProfile snapshots the validated input in its canonical padded form.
func (in *BirthInput) ToProfile() BirthProfile {
	return BirthProfile{
		Name:       in.Name,
		BirthDate:  in.ISODateString(),
		BirthTime:  in.TimeString(),
		BirthPlace: in.Place,
	}
}
