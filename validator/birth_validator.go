package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sahradeniz/Astrologi-Ai-sub000/customerrors"
	"github.com/sahradeniz/Astrologi-Ai-sub000/model"
)

var (
	datePattern = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)
)

const isoDateLayout = "2006-01-02"

// ValidateBirthInput checks raw form fields against the GG.AA.YYYY intake
// rules and composes a BirthInput. It fails fast: the first broken rule is
// returned as a ValidationError and no further rules run.
//
// The day upper bound is a flat 31 regardless of month, so 29.02 passes even
// on non-leap years. The live forms have always accepted such dates and the
// remote service resolves them itself.
// TODO: confirm with product whether a days-per-month check should be added.
func ValidateBirthInput(raw model.BirthInputRaw) (*model.BirthInput, error) {
	m := datePattern.FindStringSubmatch(strings.TrimSpace(raw.Date))
	if m == nil {
		return nil, customerrors.NewValidationError("birth_date",
			"Geçersiz tarih formatı. Lütfen GG.AA.YYYY formatında girin")
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 {
		return nil, customerrors.NewValidationError("birth_date", "Geçersiz ay")
	}
	if day < 1 || day > 31 {
		return nil, customerrors.NewValidationError("birth_date", "Geçersiz gün")
	}

	hour, minute, err := validateTime(raw.Time)
	if err != nil {
		return nil, err
	}

	place, err := validatePlace(raw.Place)
	if err != nil {
		return nil, err
	}

	return &model.BirthInput{
		Name:   strings.TrimSpace(raw.Name),
		Day:    day,
		Month:  month,
		Year:   year,
		Hour:   hour,
		Minute: minute,
		Place:  place,
	}, nil
}

// ValidateISOBirthInput is the entry point for forms that collect the date as
// YYYY-MM-DD. Any date time.Parse accepts in that layout is valid; time and
// place follow the same rules as the GG.AA.YYYY entry point.
func ValidateISOBirthInput(raw model.BirthInputRaw) (*model.BirthInput, error) {
	t, err := time.Parse(isoDateLayout, strings.TrimSpace(raw.Date))
	if err != nil {
		return nil, customerrors.NewValidationError("birth_date",
			"Geçersiz doğum tarihi formatı. YYYY-MM-DD kullan")
	}

	hour, minute, err := validateTime(raw.Time)
	if err != nil {
		return nil, err
	}

	place, err := validatePlace(raw.Place)
	if err != nil {
		return nil, err
	}

	return &model.BirthInput{
		Name:   strings.TrimSpace(raw.Name),
		Day:    t.Day(),
		Month:  int(t.Month()),
		Year:   t.Year(),
		Hour:   hour,
		Minute: minute,
		Place:  place,
	}, nil
}

func validateTime(value string) (int, int, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, 0, customerrors.NewValidationError("birth_time",
			"Geçersiz saat formatı. Lütfen SS:DD formatında girin")
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return hour, minute, nil
}

func validatePlace(value string) (string, error) {
	place := strings.TrimSpace(value)
	if place == "" {
		return "", customerrors.NewValidationError("birth_place", "Lütfen doğum yerini girin")
	}
	if utf8.RuneCountInString(place) < 2 {
		return "", customerrors.NewValidationError("birth_place", "Doğum yeri çok kısa")
	}
	return place, nil
}
